package render

import (
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes reports as a YAML sequence.
type YAMLRenderer struct {
	W io.Writer
}

// NewYAMLRenderer creates a YAMLRenderer writing to w.
func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{W: w}
}

var _ Renderer = (*YAMLRenderer)(nil)

// Render writes the reports with the indices in classifier order and null
// for undefined values.
func (r *YAMLRenderer) Render(reports []Report) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rep := range reports {
		n := &yaml.Node{}
		if err := n.Encode(rep); err != nil {
			return err
		}
		if rep.Indices != nil {
			n.Content = append(n.Content, scalar("!!str", "indices"), indicesNode(rep))
		}
		seq.Content = append(seq.Content, n)
	}

	enc := yaml.NewEncoder(r.W)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}

func indicesNode(rep Report) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, code := range rep.Indices.Keys() {
		v := rep.Indices[code]
		val := scalar("!!null", "null")
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			val = scalar("", strconv.FormatFloat(v, 'g', -1, 64))
		}
		m.Content = append(m.Content, scalar("!!str", code), val)
	}
	return m
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
