package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/revelaction/cohmetrix/errs"
)

// Map holds index values by code. An undefined statistic, like the
// cohesion of a text with a single sentence, is NaN.
type Map map[string]float64

// Merge copies the values of o into m.
func (m Map) Merge(o Map) {
	for k, v := range o {
		m[k] = v
	}
}

// Undefined returns the codes with an undefined value, in classifier order
// followed by unknown codes sorted.
func (m Map) Undefined() []string {
	var u []string
	for _, c := range m.Keys() {
		if math.IsNaN(m[c]) {
			u = append(u, c)
		}
	}
	return u
}

// Missing returns the codes of wanted not present in m.
func (m Map) Missing(wanted []string) []string {
	var missing []string
	for _, c := range wanted {
		if _, ok := m[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Keys returns the codes of m: known codes in classifier order, then the
// others sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	known := make(map[string]bool, len(codes))
	for _, c := range codes {
		known[c] = true
		if _, ok := m[c]; ok {
			keys = append(keys, c)
		}
	}

	var extra []string
	for k := range m {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Vector returns the values of the given codes in order. Absent codes fail
// with ErrMissingDependency, undefined values with ErrUndefinedStatistic.
func (m Map) Vector(order []string) ([]float64, error) {
	if missing := m.Missing(order); len(missing) > 0 {
		return nil, fmt.Errorf("indices %s not computed: %w", strings.Join(missing, ", "), errs.ErrMissingDependency)
	}

	v := make([]float64, len(order))
	var undefined []string
	for i, c := range order {
		v[i] = m[c]
		if math.IsNaN(v[i]) {
			undefined = append(undefined, c)
		}
	}
	if len(undefined) > 0 {
		return nil, fmt.Errorf("indices %s are undefined (the text needs at least 2 sentences and 1 noun phrase): %w",
			strings.Join(undefined, ", "), errs.ErrUndefinedStatistic)
	}
	return v, nil
}

// MarshalJSON writes the codes in classifier order with null for undefined
// values.
func (m Map) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')

		v := m[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.WriteString("null")
			continue
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON reads null values as undefined.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Map, len(raw))
	for k, v := range raw {
		if v == nil {
			out[k] = math.NaN()
			continue
		}
		out[k] = *v
	}
	*m = out
	return nil
}
