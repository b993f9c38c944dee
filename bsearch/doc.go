// Package bsearch collects the binary-search shapes that recur in
// judge problems: bounds on sorted slices, the boundary of a monotone
// integer predicate, and bisection of a monotone real function.
//
// MaxTrue answers "largest x for which the predicate still holds", as in
// choosing the highest saw blade that still yields enough wood, or the
// largest minimum distance at which all cows fit. MinTrue is its mirror.
package bsearch
