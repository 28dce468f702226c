package semchunk

import (
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// split reduces sp to an ordered sequence of chunks whose counts fit the
// budget. It runs an explicit LIFO worklist instead of language recursion so
// pathological inputs (no separators at any level) cannot exhaust the stack.
func (st *state) split(sp span) ([]Chunk, error) {
	var out []Chunk
	stack := []span{sp}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.len() == 0 {
			continue
		}
		n, err := st.count(cur)
		if err != nil {
			return nil, err
		}
		if n <= st.budget {
			out = append(out, st.chunk(cur, n))
			continue
		}
		left, right, ok, err := st.bisect(cur)
		if err != nil {
			return nil, err
		}
		if !ok {
			// A minimal unit that still exceeds the budget. Emitting it
			// over budget beats losing content.
			out = append(out, st.chunk(cur, n))
			continue
		}
		// Left on top of the stack keeps the output in text order.
		stack = append(stack, right, left)
	}
	return out, nil
}

// splitParallel evaluates the two sides of each split concurrently until the
// fork budget is exhausted, then falls back to the sequential worklist.
// Output order is identical to the sequential form.
func (st *state) splitParallel(sp span, forks int) ([]Chunk, error) {
	if forks <= 0 || sp.len() == 0 {
		return st.split(sp)
	}
	n, err := st.count(sp)
	if err != nil {
		return nil, err
	}
	if n <= st.budget {
		return []Chunk{st.chunk(sp, n)}, nil
	}
	left, right, ok, err := st.bisect(sp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Chunk{st.chunk(sp, n)}, nil
	}
	var lres, rres []Chunk
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		lres, err = st.splitParallel(left, forks-1)
		return err
	})
	g.Go(func() error {
		var err error
		rres, err = st.splitParallel(right, forks-1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(lres, rres...), nil
}

// chunk materializes a span together with its memoized token count.
func (st *state) chunk(sp span, tokens int) Chunk {
	return Chunk{
		Text:       st.text[sp.start:sp.end],
		TokenCount: tokens,
		Start:      sp.start,
		End:        sp.end,
	}
}

// bisect splits sp in two at the best candidate of the coarsest applicable
// hierarchy level. ok is false when sp is a single indivisible unit.
func (st *state) bisect(sp span) (left, right span, ok bool, err error) {
	text := st.text[sp.start:sp.end]
	total, err := st.count(sp)
	if err != nil {
		return span{}, span{}, false, err
	}
	for _, level := range st.hierarchy {
		pts := level.points(text)
		if len(pts) == 0 {
			continue
		}
		pt, err := st.choose(sp, pts, total)
		if err != nil {
			return span{}, span{}, false, err
		}
		return span{sp.start, sp.start + pt.leftEnd}, span{sp.start + pt.rightStart, sp.end}, true, nil
	}
	// No level applies: hard fallback on the rune midpoint. Reachable only
	// with a custom hierarchy that lacks a character-level entry.
	if mid := runeMidpoint(text); mid > 0 {
		return span{sp.start, sp.start + mid}, span{sp.start + mid, sp.end}, true, nil
	}
	return span{}, span{}, false, nil
}

// choose selects a split candidate by bisection over the monotone prefix
// counts, costing O(log k) counter calls for k candidates. While the span
// needs more than two chunks the largest prefix that still fits the budget is
// peeled off; once two chunks suffice the split balances the token mass
// between them. Token-count ties go to the candidate nearest the textual
// midpoint, then to the later candidate.
func (st *state) choose(sp span, pts []splitPoint, total int) (splitPoint, error) {
	prefix := func(i int) (int, error) {
		return st.count(span{sp.start, sp.start + pts[i].leftEnd})
	}
	if total > 2*st.budget {
		lo, hi := 0, len(pts)-1
		best := -1
		for lo <= hi {
			mid := (lo + hi) / 2
			n, err := prefix(mid)
			if err != nil {
				return splitPoint{}, err
			}
			if n <= st.budget {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		if best < 0 {
			// Even the first prefix is over budget; take it and let the
			// recursion refine it at a finer level.
			best = 0
		}
		return pts[best], nil
	}
	// Both final pieces can fit the budget: find the first candidate whose
	// prefix reaches half the span's token mass and compare it with its
	// predecessor.
	lo, hi := 0, len(pts)
	for lo < hi {
		mid := (lo + hi) / 2
		n, err := prefix(mid)
		if err != nil {
			return splitPoint{}, err
		}
		if 2*n >= total {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == len(pts) {
		return pts[len(pts)-1], nil
	}
	if lo == 0 {
		return pts[0], nil
	}
	a, b := lo-1, lo
	na, err := prefix(a)
	if err != nil {
		return splitPoint{}, err
	}
	nb, err := prefix(b)
	if err != nil {
		return splitPoint{}, err
	}
	da, db := absInt(2*na-total), absInt(2*nb-total)
	if da < db {
		return pts[a], nil
	}
	if db < da {
		return pts[b], nil
	}
	ta := absInt(2*pts[a].pos - sp.len())
	tb := absInt(2*pts[b].pos - sp.len())
	if ta < tb {
		return pts[a], nil
	}
	return pts[b], nil
}

// runeMidpoint returns the rune boundary nearest the byte midpoint of text,
// or 0 when text holds fewer than two runes.
func runeMidpoint(text string) int {
	if utf8.RuneCountInString(text) < 2 {
		return 0
	}
	mid := len(text) / 2
	for mid > 0 && !utf8.RuneStart(text[mid]) {
		mid--
	}
	if mid == 0 {
		_, size := utf8.DecodeRuneInString(text)
		mid = size
	}
	return mid
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
