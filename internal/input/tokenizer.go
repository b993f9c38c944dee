// Package input reads whitespace-separated contest-style input: a
// tokenizer for numbers and words, and a graph reader for the usual
// "n m" header followed by m edge lines.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrUnexpectedEOF is returned when a token is required but the input ended.
var ErrUnexpectedEOF = errors.New("input: unexpected end of input")

const maxTokenSize = 1 << 20

// Tokenizer splits an io.Reader into whitespace-separated tokens.
type Tokenizer struct {
	sc    *bufio.Scanner
	count int
}

// NewTokenizer wraps r. Tokens may be up to 1 MiB long.
func NewTokenizer(r io.Reader) *Tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Tokenizer{sc: sc}
}

// Next returns the next token, io.EOF at a clean end, or the scanner error.
func (t *Tokenizer) Next() (string, error) {
	if t.sc.Scan() {
		t.count++
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", fmt.Errorf("input: %w", err)
	}

	return "", io.EOF
}

// Count reports how many tokens have been consumed.
func (t *Tokenizer) Count() int { return t.count }

// String returns the next token, failing with ErrUnexpectedEOF at the end.
func (t *Tokenizer) String() (string, error) {
	tok, err := t.Next()
	if errors.Is(err, io.EOF) {
		return "", ErrUnexpectedEOF
	}
	return tok, err
}

func (t *Tokenizer) Int() (int, error) {
	tok, err := t.String()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("input: token %d: %w", t.count, err)
	}

	return v, nil
}

func (t *Tokenizer) Int64() (int64, error) {
	tok, err := t.String()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("input: token %d: %w", t.count, err)
	}

	return v, nil
}

func (t *Tokenizer) Float64() (float64, error) {
	tok, err := t.String()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("input: token %d: %w", t.count, err)
	}

	return v, nil
}

// Ints reads exactly n integers.
func (t *Tokenizer) Ints(n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := t.Int()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
