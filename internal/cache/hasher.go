package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// EdgeKey is the hashed view of one edge.
type EdgeKey struct {
	From, To int
	Weight   int64
}

// GraphHash returns a stable digest of a graph. Edge order is part of the
// digest because traversal results depend on insertion order.
func GraphHash(order int, directed bool, edges []EdgeKey) string {
	h := sha256.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(uint64(order))
	if directed {
		put(1)
	} else {
		put(0)
	}
	put(uint64(len(edges)))
	for _, e := range edges {
		put(uint64(e.From))
		put(uint64(e.To))
		put(uint64(e.Weight))
	}
	sum := h.Sum(nil)

	return hex.EncodeToString(sum[:16])
}

// BuildSolveKey builds the cache key of a solve result.
func BuildSolveKey(algorithm, graphHash, optionsHash string) string {
	if optionsHash == "" {
		return fmt.Sprintf("solve:%s:%s", algorithm, graphHash)
	}

	return fmt.Sprintf("solve:%s:%s:%s", algorithm, graphHash, optionsHash)
}
