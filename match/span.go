package match

import "sort"

// Span is a contiguous run of tokens [Start, End) carrying a label.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Len returns the number of tokens of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether both spans share a token.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Filter resolves overlapping spans: longer spans win, ties go to the
// earliest start, and a span sharing any token with an already kept span is
// dropped. Duplicates collapse. The result is ordered by start.
func Filter(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Len() != sorted[j].Len() {
			return sorted[i].Len() > sorted[j].Len()
		}
		return sorted[i].Start < sorted[j].Start
	})

	var kept []Span
	seen := map[int]bool{}

NEXT:
	for _, s := range sorted {
		if s.Len() <= 0 {
			continue
		}
		for i := s.Start; i < s.End; i++ {
			if seen[i] {
				continue NEXT
			}
		}
		kept = append(kept, s)
		for i := s.Start; i < s.End; i++ {
			seen[i] = true
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Start < kept[j].Start
	})

	return kept
}

// Shift returns the spans moved offset tokens to the right.
func Shift(spans []Span, offset int) []Span {
	shifted := make([]Span, len(spans))
	for i, s := range spans {
		shifted[i] = Span{Start: s.Start + offset, End: s.End + offset, Label: s.Label}
	}
	return shifted
}
