package syllable

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSpanishHyphenate(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"perro", "pe-rro"},
		{"casa", "ca-sa"},
		{"libro", "li-bro"},
		{"perspectiva", "pers-pec-ti-va"},
		{"ciudad", "ciu-dad"},
		{"poeta", "po-e-ta"},
		{"día", "dí-a"},
		{"niño", "ni-ño"},
		{"Perro", "Pe-rro"},
		{"coche", "co-che"},
		{"calle", "ca-lle"},
		{"buey", "buey"},
		{"hoy", "hoy"},
		{"y", "y"},
		{"sol", "sol"},
	}

	h := NewSpanish()
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := h.Hyphenate(tt.word)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(got, "-") != tt.want {
				t.Errorf("expected %s, got %s", tt.want, strings.Join(got, "-"))
			}
		})
	}
}

func TestSpanishHyphenateUnsupported(t *testing.T) {
	h := NewSpanish()
	for _, w := range []string{"", "3", "a-b", "мир"} {
		if _, err := h.Hyphenate(w); !errors.Is(err, ErrUnsupportedCharacter) {
			t.Errorf("%q: expected ErrUnsupportedCharacter, got %v", w, err)
		}
	}
}

func TestHyphenatorFunc(t *testing.T) {
	var h Hyphenator = HyphenatorFunc(func(word string) ([]string, error) {
		return []string{word}, nil
	})

	got, err := h.Hyphenate("casa")
	if err != nil || !reflect.DeepEqual(got, []string{"casa"}) {
		t.Errorf("unexpected result %v %v", got, err)
	}
}
