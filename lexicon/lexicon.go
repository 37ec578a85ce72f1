package lexicon

import (
	"fmt"
	"sort"

	"github.com/revelaction/cohmetrix/errs"
)

// Class is a connective class.
type Class string

const (
	Causal      Class = "causal"
	Logical     Class = "logical"
	Adversative Class = "adversative"
	Temporal    Class = "temporal"
	Additive    Class = "additive"
)

// Classes returns the connective classes in a fixed order.
func Classes() []Class {
	return []Class{Causal, Logical, Adversative, Temporal, Additive}
}

// Language holds the closed word lists of one language.
type Language struct {
	Code        string
	Connectives map[Class][]string
	Negation    []string
}

var languages = map[string]*Language{
	"es": &Spanish,
}

// Get returns the language with the given code.
func Get(code string) (*Language, error) {
	l, ok := languages[code]
	if !ok {
		return nil, fmt.Errorf("language %q is not supported: %w", code, errs.ErrInvalidConfiguration)
	}
	return l, nil
}

// Supported returns the codes of the available languages.
func Supported() []string {
	codes := make([]string, 0, len(languages))
	for c := range languages {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
