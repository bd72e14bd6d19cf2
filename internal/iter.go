// Package internal holds iterator helpers shared by the domains.
package internal

import (
	"iter"
)

// Concat2 yields every pair of each sequence in turn.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Describe turns the indexed display symbols of an alphabet into
// (symbol, meaning) pairs.
func Describe(entries iter.Seq2[int, string], meaning func(index int) string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for index, display := range entries {
			if !yield(display, meaning(index)) {
				return
			}
		}
	}
}
