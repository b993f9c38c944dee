// Package trie provides a prefix tree over Unicode strings with the
// per-node counters that prefix problems need.
//
// Every node tracks how many inserted words pass through it and the largest
// weight among them, so the common queries run in O(len(prefix)):
//
//	Insert(word, weight)  add a word (duplicates count again).
//	Contains(word)        exact membership.
//	CountPrefix(prefix)   number of inserted words starting with prefix.
//	MaxWeight(prefix)     best weight among words starting with prefix.
//	InsertUnique(word)    insert only if no stored word is a prefix of word
//	                      and word is not a prefix of a stored word;
//	                      otherwise ErrPrefixConflict.
//	MaxPrefixScore()      max over all prefixes of len(prefix) × words
//	                      sharing it.
//	WithPrefix(prefix)    distinct words with that prefix, sorted.
//	Len()                 number of distinct words.
//
// A Trie is not safe for concurrent mutation.
package trie
