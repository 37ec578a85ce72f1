package sentence

var (
	chunkDeps = map[string]bool{
		"nsubj":      true,
		"nsubj:pass": true,
		"obj":        true,
		"obl":        true,
		"nmod":       true,
		"pcomp":      true,
		"appos":      true,
		"ROOT":       true,
	}

	chunkPostModifiers = map[string]bool{
		"flat":     true,
		"fixed":    true,
		"compound": true,
	}
)

// DeriveChunks builds the base noun phrases of a token sequence from its
// dependency tree, for engines that do not report noun chunks. Nominal heads
// in argument positions open a chunk spanning their left dependents, an
// adjectival first right dependent extends it, and coordinated nominals
// inherit the chunk status of the coordination head.
func DeriveChunks(tokens []Token) []Chunk {
	tree := NewTree(tokens)

	var chunks []Chunk
	prevEnd := -1
	for i, w := range tokens {
		if w.Pos != Noun && w.Pos != Propn && w.Pos != Pron {
			continue
		}

		left := tree.LeftEdge(i)
		if left <= prevEnd {
			continue
		}

		switch {
		case chunkDeps[w.Dep]:
			end := i
			if rights := tree.Rights(i); len(rights) > 0 {
				first := rights[0]
				switch {
				case tokens[first].Dep == "amod":
					end = tree.RightEdge(first)
				case chunkPostModifiers[tokens[first].Dep]:
					end = tree.RightEdge(i)
				}
			}
			prevEnd = end
			if tokens[left].Pos == Adp {
				left++
			}
			chunks = append(chunks, Chunk{Start: left, End: end + 1})

		case w.Dep == "conj":
			h := tree.Head(i)
			for tokens[h].Dep == "conj" && tree.Head(h) < h {
				h = tree.Head(h)
			}
			if !chunkDeps[tokens[h].Dep] {
				continue
			}
			prevEnd = i
			if tokens[left].Pos == Cconj {
				left++
			}
			chunks = append(chunks, Chunk{Start: left, End: i + 1})
		}
	}

	return chunks
}
