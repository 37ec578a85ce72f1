package sentence

// Tree is the dependency tree of a token sequence. Positions are indexes in
// the sequence the tree was built from.
type Tree struct {
	tokens   []Token
	head     []int
	children [][]int
	left     []int
	right    []int
}

// NewTree builds the dependency tree of tokens. Token heads are resolved
// through the token Ids; unknown heads make the token a root, and a cycle is broken
// by making its first repeated member a root.
func NewTree(tokens []Token) *Tree {
	n := len(tokens)
	t := &Tree{
		tokens:   tokens,
		head:     make([]int, n),
		children: make([][]int, n),
		left:     make([]int, n),
		right:    make([]int, n),
	}

	pos := make(map[int]int, n)
	for i, tok := range tokens {
		pos[tok.Id] = i
	}

	for i, tok := range tokens {
		h, ok := pos[tok.Head]
		if !ok {
			h = i
		}
		t.head[i] = h
	}

	// break cycles
	for i := range tokens {
		seen := map[int]bool{i: true}
		for j := t.head[i]; j != t.head[j]; j = t.head[j] {
			if seen[j] {
				t.head[j] = j
				break
			}
			seen[j] = true
		}
	}

	for i := range tokens {
		if h := t.head[i]; h != i {
			t.children[h] = append(t.children[h], i)
		}
	}

	for i := range tokens {
		t.left[i], t.right[i] = i, i
	}
	for i := range tokens {
		for j, prev := t.head[i], i; prev != j; prev, j = j, t.head[j] {
			if i < t.left[j] {
				t.left[j] = i
			}
			if i > t.right[j] {
				t.right[j] = i
			}
		}
	}

	return t
}

// Len returns the number of tokens.
func (t *Tree) Len() int {
	return len(t.tokens)
}

// Head returns the position of the head of the token at i.
func (t *Tree) Head(i int) int {
	return t.head[i]
}

// LeftEdge returns the leftmost position of the subtree rooted at i.
func (t *Tree) LeftEdge(i int) int {
	return t.left[i]
}

// RightEdge returns the rightmost position of the subtree rooted at i.
func (t *Tree) RightEdge(i int) int {
	return t.right[i]
}

// Rights returns the children of i placed after it, in order.
func (t *Tree) Rights(i int) []int {
	var r []int
	for _, c := range t.children[i] {
		if c > i {
			r = append(r, c)
		}
	}
	return r
}

// Root returns the position of the syntactic root of the span [start, end):
// the first token whose head lies outside the span.
func (t *Tree) Root(start, end int) int {
	for i := start; i < end; i++ {
		h := t.head[i]
		if h == i || h < start || h >= end {
			return i
		}
	}
	return start
}
