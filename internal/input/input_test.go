package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
)

func TestTokenizer(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("  3 -7\n\t2.5 word\n9223372036854775807"))

	n, err := tok.Int()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	neg, err := tok.Int()
	require.NoError(t, err)
	assert.Equal(t, -7, neg)

	f, err := tok.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-12)

	s, err := tok.String()
	require.NoError(t, err)
	assert.Equal(t, "word", s)

	big, err := tok.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), big)
	assert.Equal(t, 5, tok.Count())

	_, err = tok.Next()
	assert.ErrorIs(t, err, io.EOF)
	_, err = tok.Int()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestTokenizerBadNumber(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("x"))
	_, err := tok.Int()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token 1")
}

func TestTokenizerInts(t *testing.T) {
	vals, err := NewTokenizer(strings.NewReader("1 2 3 4")).Ints(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, vals)

	_, err = NewTokenizer(strings.NewReader("1")).Ints(2)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReadGraphOneBasedWeighted(t *testing.T) {
	in := "4 3\n1 2 5\n2 3 7\n3 4 -2\n"
	g, err := ReadGraph(strings.NewReader(in), ReadOptions{OneBased: true, Directed: true, Weighted: true})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))

	edges := g.Edges()
	assert.Equal(t, int64(-2), edges[2].Weight)
	assert.Equal(t, 2, edges[2].From)
	assert.Equal(t, 3, edges[2].To)
}

func TestReadGraphUnweighted(t *testing.T) {
	g, err := ReadGraph(strings.NewReader("3 2 0 1 1 2"), ReadOptions{})
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.True(t, g.HasEdge(1, 0), "undirected edge is symmetric")
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight)
	}
}

func TestReadGraphErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		opts   ReadOptions
		target error
	}{
		{"truncated", "3 2\n0 1\n", ReadOptions{}, ErrUnexpectedEOF},
		{"huge edge count", "3 999999999999999\n", ReadOptions{}, ErrUnexpectedEOF},
		{"negative header", "-1 0", ReadOptions{}, ErrBadHeader},
		{"out of range", "2 1\n0 5", ReadOptions{}, core.ErrVertexOutOfRange},
		{"one-based zero", "2 1\n0 1", ReadOptions{OneBased: true}, core.ErrVertexOutOfRange},
		{"loop", "2 1\n1 1", ReadOptions{}, core.ErrLoopNotAllowed},
		{"parallel", "2 2\n0 1\n1 0", ReadOptions{}, core.ErrMultiEdgeNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraph(strings.NewReader(tt.in), tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestReadEdgeListHeaderOnly(t *testing.T) {
	n, edges, err := ReadEdgeList(NewTokenizer(strings.NewReader("3 999999999999999\n")), ReadOptions{})
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Zero(t, n)
	assert.Nil(t, edges)
}

func TestReadGraphMultiLoops(t *testing.T) {
	g, err := ReadGraph(strings.NewReader("2 3\n0 1\n1 0\n1 1"), ReadOptions{Multi: true, Loops: true})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
}
