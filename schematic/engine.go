package schematic

import (
	"context"

	"github.com/engineparts/aoc"
	"golang.org/x/sync/errgroup"
)

// Adjacent reports whether symbol sym touches number num, diagonals
// included. num's columns are widened by one on each side, clamped to
// [0, rowLen] where rowLen is the length of sym's row, and tested for
// overlap with sym's own columns.
func Adjacent(num, sym Span, rowLen int) bool {
	if sym.Row < num.Row-1 || sym.Row > num.Row+1 {
		return false
	}
	lo := aoc.Clamp(num.Start-1, 0, rowLen)
	hi := aoc.Clamp(num.End+1, 0, rowLen)
	return sym.Start < hi && lo < sym.End
}

// PartNumbers returns every number adjacent to at least one symbol, in
// row-major order. Each number appears once no matter how many symbols
// it touches.
func (g *Grid) PartNumbers() []Span {
	var parts []Span
	for y := range g.rows {
		parts = g.appendRowParts(parts, y)
	}
	return parts
}

// SumAdjacentNumbers returns the sum of the part numbers.
func (g *Grid) SumAdjacentNumbers() uint64 {
	var sum uint64
	for _, p := range g.PartNumbers() {
		sum += p.Value
	}
	return sum
}

// SumAdjacentNumbersConcurrently is SumAdjacentNumbers with rows spread
// over at most workers goroutines. workers <= 0 means no limit.
func (g *Grid) SumAdjacentNumbersConcurrently(ctx context.Context, workers int) (uint64, error) {
	sums := make([]uint64, len(g.rows))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for y := range g.rows {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, p := range g.appendRowParts(nil, y) {
				sums[y] += p.Value
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	var total uint64
	for _, s := range sums {
		total += s
	}
	return total, nil
}

func (g *Grid) appendRowParts(dst []Span, y int) []Span {
	for num := range Numbers(y, g.rows[y]) {
		if g.touchesSymbol(num) {
			dst = append(dst, num)
		}
	}
	return dst
}

func (g *Grid) touchesSymbol(num Span) bool {
	lo, hi := g.neighborRows(num.Row)
	for y := lo; y <= hi; y++ {
		line := g.rows[y]
		for sym := range Symbols(y, line, AnySymbol) {
			if sym.Start > num.End {
				break
			}
			if Adjacent(num, sym, len(line)) {
				return true
			}
		}
	}
	return false
}

// GearNeighbors maps the position of every symbol in class to the numbers
// adjacent to it. Symbols with no neighbors map to an empty list.
func (g *Grid) GearNeighbors(class SymbolClass) map[aoc.Pt][]Span {
	m := map[aoc.Pt][]Span{}
	for y, line := range g.rows {
		for sym := range Symbols(y, line, class) {
			m[sym.Pos()] = g.adjacentNumbers(sym)
		}
	}
	return m
}

func (g *Grid) adjacentNumbers(sym Span) []Span {
	var nums []Span
	rowLen := len(g.rows[sym.Row])
	lo, hi := g.neighborRows(sym.Row)
	for y := lo; y <= hi; y++ {
		for num := range Numbers(y, g.rows[y]) {
			if num.Start > sym.End {
				break
			}
			if Adjacent(num, sym, rowLen) {
				nums = append(nums, num)
			}
		}
	}
	return nums
}

// GearRatios returns the ratio of each '*' touching exactly two numbers,
// keyed by its position.
func (g *Grid) GearRatios() map[aoc.Pt]uint64 {
	ratios := map[aoc.Pt]uint64{}
	for pos, nums := range g.GearNeighbors(Gear) {
		if len(nums) == 2 {
			ratios[pos] = nums[0].Value * nums[1].Value
		}
	}
	return ratios
}

// SumGearRatios returns the sum of all gear ratios.
func (g *Grid) SumGearRatios() uint64 {
	var sum uint64
	for _, r := range g.GearRatios() {
		sum += r
	}
	return sum
}
