// Package syllable splits words into syllables.
package syllable

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnsupportedCharacter is returned for words containing characters the
// hyphenator has no rule for.
var ErrUnsupportedCharacter = errors.New("unsupported character")

// Hyphenator splits a word into its syllables.
type Hyphenator interface {
	Hyphenate(word string) ([]string, error)
}

// HyphenatorFunc adapts a function to the Hyphenator interface.
type HyphenatorFunc func(word string) ([]string, error)

func (f HyphenatorFunc) Hyphenate(word string) ([]string, error) {
	return f(word)
}

// Spanish is a rule based Spanish syllabifier: vowel groups form the
// nuclei, diphthongs and triphthongs stay together, two strong vowels (or an
// accented weak one) make a hiatus, and the consonants between nuclei are
// divided keeping the inseparable onsets (bl, br, cl, cr, ...) and digraphs
// (ch, ll, rr) at the start of the next syllable.
type Spanish struct{}

// NewSpanish returns the Spanish syllabifier.
func NewSpanish() *Spanish {
	return &Spanish{}
}

var _ Hyphenator = (*Spanish)(nil)

const (
	consonant = iota
	weak
	strong
)

var onsets = map[string]bool{
	"bl": true, "br": true, "cl": true, "cr": true, "dr": true,
	"fl": true, "fr": true, "gl": true, "gr": true, "kl": true,
	"kr": true, "pl": true, "pr": true, "tr": true,
	"ch": true, "ll": true, "rr": true,
}

// Hyphenate implements Hyphenator.
func (s *Spanish) Hyphenate(word string) ([]string, error) {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil, fmt.Errorf("empty word: %w", ErrUnsupportedCharacter)
	}

	lower := make([]rune, len(runes))
	for i, r := range runes {
		if !unicode.IsLetter(r) || !unicode.Is(unicode.Latin, r) {
			return nil, fmt.Errorf("%q in %q: %w", r, word, ErrUnsupportedCharacter)
		}
		lower[i] = unicode.ToLower(r)
	}

	kinds := make([]int, len(lower))
	for i, r := range lower {
		kinds[i] = kind(lower, i, r)
	}

	// nuclei as [start, end) rune ranges
	var nuclei [][2]int
	for i := 0; i < len(lower); {
		if kinds[i] == consonant {
			i++
			continue
		}
		start := i
		i++
		for i < len(lower) && kinds[i] != consonant && !hiatus(lower[i-1], lower[i], kinds[i-1], kinds[i]) {
			i++
		}
		nuclei = append(nuclei, [2]int{start, i})
	}

	if len(nuclei) < 2 {
		return []string{word}, nil
	}

	syllables := make([]string, 0, len(nuclei))
	from := 0
	for n := 0; n < len(nuclei)-1; n++ {
		cut := split(lower, nuclei[n][1], nuclei[n+1][0])
		syllables = append(syllables, string(runes[from:cut]))
		from = cut
	}
	syllables = append(syllables, string(runes[from:]))

	return syllables, nil
}

// split returns the position where the consonants between two nuclei,
// lower[from:to], are divided.
func split(lower []rune, from, to int) int {
	n := to - from
	if n < 2 {
		return from
	}
	if onsets[string(lower[to-2:to])] {
		return to - 2
	}
	return to - 1
}

func kind(lower []rune, i int, r rune) int {
	switch r {
	case 'a', 'e', 'o', 'á', 'é', 'ó', 'í', 'ú', 'à', 'è', 'ò', 'ì', 'ù':
		return strong
	case 'i', 'u', 'ü':
		return weak
	case 'y':
		// y is a vowel on its own or closing a word after a vowel
		if len(lower) == 1 {
			return weak
		}
		if i == len(lower)-1 && i > 0 && isVowel(lower[i-1]) {
			return weak
		}
	}
	return consonant
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'á', 'é', 'í', 'ó', 'ú', 'ü', 'à', 'è', 'ò', 'ì', 'ù':
		return true
	}
	return false
}

// hiatus reports whether two adjacent vowels belong to different syllables.
func hiatus(a, b rune, ka, kb int) bool {
	if ka == strong && kb == strong {
		return true
	}
	return ka == weak && kb == weak && a == b
}
