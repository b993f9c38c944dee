package trie

import "errors"

// ErrPrefixConflict is returned by InsertUnique when the new word and a
// stored word are prefixes of one another.
var ErrPrefixConflict = errors.New("trie: prefix conflict")

// node is one character position.
type node struct {
	children map[rune]*node
	pass     int   // words inserted through this node
	end      int   // words ending exactly here
	best     int64 // max weight of words through this node
}

// Trie is a prefix tree. The zero value is not usable; call New.
type Trie struct {
	root     *node
	distinct int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}
