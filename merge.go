package semchunk

// merge runs a single greedy forward pass over the splitter's output,
// coalescing adjacent chunks whose combined counts still fit the budget.
// A merged chunk spans the original text between its endpoints, so any
// separator dropped between the two pieces is restored and the concatenation
// of the output always reproduces the concatenation of the input spans. The
// restored separator bytes are themselves tokens to some counters, so the
// merged span is recounted and the merge is rejected when the recount exceeds
// the budget. The pass is deliberately O(n) and never re-attempts a merge
// after emitting an accumulator, trading optimal packing for determinism.
func (st *state) merge(chunks []Chunk) ([]Chunk, error) {
	if len(chunks) < 2 {
		return chunks, nil
	}
	out := make([]Chunk, 0, len(chunks))
	acc := chunks[0]
	for _, ch := range chunks[1:] {
		if acc.TokenCount+ch.TokenCount <= st.budget {
			sp := span{acc.Start, ch.End}
			n, err := st.count(sp)
			if err != nil {
				return nil, err
			}
			if n <= st.budget {
				acc = st.chunk(sp, n)
				continue
			}
		}
		out = append(out, acc)
		acc = ch
	}
	return append(out, acc), nil
}
