package trie

import (
	"fmt"
	"slices"
)

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word with the given weight. Inserting a word twice counts it
// twice in CountPrefix but once in Len and WithPrefix.
// Complexity: O(len(word)).
func (t *Trie) Insert(word string, weight int64) {
	cur := t.root
	t.touch(cur, weight)
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
		t.touch(cur, weight)
	}
	if cur.end == 0 {
		t.distinct++
	}
	cur.end++
}

// touch records one more word of weight w passing through n.
func (t *Trie) touch(n *node, w int64) {
	if n.pass == 0 || w > n.best {
		n.best = w
	}
	n.pass++
}

// find returns the node for prefix, or nil.
func (t *Trie) find(prefix string) *node {
	cur := t.root
	for _, r := range prefix {
		cur = cur.children[r]
		if cur == nil {
			return nil
		}
	}

	return cur
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)

	return n != nil && n.end > 0
}

// CountPrefix returns how many inserted words start with prefix.
func (t *Trie) CountPrefix(prefix string) int {
	if n := t.find(prefix); n != nil {
		return n.pass
	}

	return 0
}

// MaxWeight returns the largest weight among words starting with prefix.
// ok is false when no word has that prefix.
func (t *Trie) MaxWeight(prefix string) (best int64, ok bool) {
	n := t.find(prefix)
	if n == nil || n.pass == 0 {
		return 0, false
	}

	return n.best, true
}

// InsertUnique inserts word with weight 0 unless it conflicts with a stored
// word: a stored word that is a prefix of word, word being a prefix of a
// stored word, or an exact duplicate. The trie is unchanged on conflict.
// The empty word conflicts with any non-empty trie.
func (t *Trie) InsertUnique(word string) error {
	cur := t.root
	for _, r := range word {
		if cur.end > 0 {
			return fmt.Errorf("%w: %q extends a stored word", ErrPrefixConflict, word)
		}
		cur = cur.children[r]
		if cur == nil {
			t.Insert(word, 0)
			return nil
		}
	}
	if cur.pass > 0 {
		return fmt.Errorf("%w: %q is a prefix of a stored word", ErrPrefixConflict, word)
	}
	t.Insert(word, 0)

	return nil
}

// MaxPrefixScore returns the maximum of depth × pass over all nodes, i.e. the
// best len(p) × (number of words with prefix p). 0 for an empty trie.
func (t *Trie) MaxPrefixScore() int64 {
	var best int64
	type item struct {
		n     *node
		depth int64
	}
	stack := []item{{t.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s := it.depth * int64(it.n.pass); s > best {
			best = s
		}
		for _, c := range it.n.children {
			stack = append(stack, item{c, it.depth + 1})
		}
	}

	return best
}

// WithPrefix returns the distinct words starting with prefix in
// lexicographic (rune) order.
func (t *Trie) WithPrefix(prefix string) []string {
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, []rune(prefix), &out)

	return out
}

// collect appends every word below n, children visited in rune order.
func collect(n *node, word []rune, out *[]string) {
	if n.end > 0 {
		*out = append(*out, string(word))
	}
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	for _, r := range keys {
		collect(n.children[r], append(word, r), out)
	}
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.distinct
}
