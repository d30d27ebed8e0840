// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package xmrseed

import (
	"fmt"
	"sync"

	"github.com/complex-gh/xmrseed/wordlists"
)

// WordList is an immutable, ordered list of unique mnemonic words. It is safe
// for concurrent use.
type WordList struct {
	words []string
	index map[string]int
}

// NewWordList builds a WordList from words. The slice is copied. Lookups are
// exact: no case folding or trimming is applied.
func NewWordList(words []string) (*WordList, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}

	wl := &WordList{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word at index %d", ErrInvalidWordList, i)
		}
		if j, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%w: %q appears at index %d and %d", ErrInvalidWordList, w, j, i)
		}
		wl.words[i] = w
		wl.index[w] = i
	}
	return wl, nil
}

var english = sync.OnceValue(func() *WordList {
	wl, err := NewWordList(wordlists.English)
	if err != nil {
		panic(err)
	}
	return wl
})

// English returns the shared Monero English word list.
func English() *WordList {
	return english()
}

// Len returns the number of words in the list.
func (wl *WordList) Len() int { return len(wl.words) }

// Word returns the word at index i. It panics if i is out of range.
func (wl *WordList) Word(i int) string { return wl.words[i] }

// Index returns the position of word in the list.
func (wl *WordList) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	return i, ok
}
