package bsearch

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNoRoot is returned by Bisect when f(lo) and f(hi) share a sign.
	ErrNoRoot = errors.New("bsearch: no root in interval")
	// ErrBadInterval is returned when lo > hi or eps is not positive.
	ErrBadInterval = errors.New("bsearch: bad interval")
)

// LowerBound returns the first index i with s[i] >= x, or len(s).
func LowerBound[T constraints.Ordered](s []T, x T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// UpperBound returns the first index i with s[i] > x, or len(s).
func UpperBound[T constraints.Ordered](s []T, x T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] <= x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// Contains reports whether the sorted slice s holds x.
func Contains[T constraints.Ordered](s []T, x T) bool {
	i := LowerBound(s, x)

	return i < len(s) && s[i] == x
}

// MaxTrue returns the largest x in [lo, hi] with pred(x) true, assuming pred
// is true up to some point and false after it. ok is false when pred(lo)
// is already false.
func MaxTrue(lo, hi int64, pred func(int64) bool) (x int64, ok bool) {
	if lo > hi || !pred(lo) {
		return 0, false
	}
	for lo < hi {
		// upper middle, so lo always moves
		mid := lo + (hi-lo+1)/2
		if pred(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, true
}

// MinTrue returns the smallest x in [lo, hi] with pred(x) true, assuming pred
// is false up to some point and true after it. ok is false when pred(hi)
// is false.
func MinTrue(lo, hi int64, pred func(int64) bool) (x int64, ok bool) {
	if lo > hi || !pred(hi) {
		return 0, false
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo, true
}

// Bisect finds x in [lo, hi] with |f(x)| small, for f continuous and
// monotone on the interval. It stops once the bracket is narrower than eps.
// An endpoint that is an exact root is returned as is.
func Bisect(f func(float64) float64, lo, hi, eps float64) (float64, error) {
	if lo > hi || !(eps > 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, ErrBadInterval
	}
	flo, fhi := f(lo), f(hi)
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case (flo > 0) == (fhi > 0):
		return 0, ErrNoRoot
	}
	for i := 0; i < 200 && hi-lo > eps; i++ {
		mid := lo + (hi-lo)/2
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if (fm > 0) == (flo > 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}

	return lo + (hi-lo)/2, nil
}
