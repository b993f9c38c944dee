package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/trie"
)

func TestInsertContainsCount(t *testing.T) {
	tr := trie.New()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.CountPrefix(""))

	tr.Insert("hack", 0)
	tr.Insert("hackerrank", 0)
	tr.Insert("hack", 0)

	assert.True(t, tr.Contains("hack"))
	assert.False(t, tr.Contains("hac"))
	assert.False(t, tr.Contains("hackerrankx"))
	assert.Equal(t, 3, tr.CountPrefix("hac"))
	assert.Equal(t, 1, tr.CountPrefix("hacke"))
	assert.Equal(t, 0, tr.CountPrefix("hak"))
	assert.Equal(t, 3, tr.CountPrefix(""))
	assert.Equal(t, 2, tr.Len())
}

func TestMaxWeight(t *testing.T) {
	tr := trie.New()
	_, ok := tr.MaxWeight("")
	assert.False(t, ok)

	tr.Insert("hackerearth", 10)
	tr.Insert("hackerrank", 9)
	tr.Insert("codechef", -3)

	w, ok := tr.MaxWeight("hacker")
	require.True(t, ok)
	assert.Equal(t, int64(10), w)

	w, ok = tr.MaxWeight("code")
	require.True(t, ok)
	assert.Equal(t, int64(-3), w)

	_, ok = tr.MaxWeight("x")
	assert.False(t, ok)
}

func TestInsertUnique(t *testing.T) {
	cases := []struct {
		name  string
		words []string
		bad   int // index of the first conflicting word, -1 if none
	}{
		{"good set", []string{"aab", "defgab", "abcde", "aabcde", "bbbbbbbbbb", "jabjjjad"}, 3},
		{"prefix first", []string{"aab", "aac", "aacghgh", "aabghgh"}, 2},
		{"duplicate", []string{"abc", "abc"}, 1},
		{"phone book", []string{"911", "97625999", "91125426"}, 2},
		{"consistent", []string{"113", "12340", "123440", "12345", "98346"}, -1},
		{"empty word", []string{"", "a"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := trie.New()
			bad := -1
			for i, w := range tc.words {
				if err := tr.InsertUnique(w); err != nil {
					assert.ErrorIs(t, err, trie.ErrPrefixConflict)
					bad = i
					break
				}
			}
			assert.Equal(t, tc.bad, bad)
		})
	}
}

func TestInsertUniqueLeavesTrieUnchanged(t *testing.T) {
	tr := trie.New()
	require.NoError(t, tr.InsertUnique("abc"))
	require.Error(t, tr.InsertUnique("ab"))
	require.Error(t, tr.InsertUnique("abcd"))
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 1, tr.CountPrefix("a"))
	assert.False(t, tr.Contains("ab"))
}

func TestMaxPrefixScore(t *testing.T) {
	assert.Equal(t, int64(0), trie.New().MaxPrefixScore())

	tr := trie.New()
	for _, w := range []string{"AAA", "AAC", "AAAG"} {
		tr.Insert(w, 0)
	}
	// "AA": 2×3 = 6, "AAA": 3×2 = 6, "AAAG": 4×1 = 4
	assert.Equal(t, int64(6), tr.MaxPrefixScore())

	tr = trie.New()
	for _, w := range []string{"ACGT", "ACGT", "ACGTA"} {
		tr.Insert(w, 0)
	}
	// "ACGT" is shared by all three: 4×3
	assert.Equal(t, int64(12), tr.MaxPrefixScore())
}

func TestWithPrefix(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"banana", "band", "ban", "apple", "bandana", "band"} {
		tr.Insert(w, 0)
	}
	assert.Equal(t, []string{"ban", "banana", "band", "bandana"}, tr.WithPrefix("ba"))
	assert.Equal(t, []string{"apple", "ban", "banana", "band", "bandana"}, tr.WithPrefix(""))
	assert.Nil(t, tr.WithPrefix("c"))
	assert.Equal(t, []string{"bandana"}, tr.WithPrefix("banda"))
}

func TestUnicode(t *testing.T) {
	tr := trie.New()
	tr.Insert("привет", 1)
	tr.Insert("привал", 2)
	assert.Equal(t, 2, tr.CountPrefix("при"))
	assert.Equal(t, []string{"привал", "привет"}, tr.WithPrefix("прив"))
}
