package main

import (
	"context"
	"runtime"
	"slices"

	"github.com/engineparts/aoc"
	"github.com/engineparts/aoc/schematic"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

func readSchematic() (*schematic.Grid, error) {
	lines, err := aoc.Lines()
	if err != nil {
		return nil, err
	}
	return schematic.NewGrid(lines), nil
}

/*
want=4361
467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func day3() (any, error) {
	g, err := readSchematic()
	if err != nil {
		return nil, err
	}
	aoc.Log.Debug("schematic", zap.Int("rows", g.Rows()), zap.Int("parts", len(g.PartNumbers())))
	return g.SumAdjacentNumbersConcurrently(context.Background(), runtime.GOMAXPROCS(0))
}

/*
want=467835
*/
func day3b() (any, error) {
	g, err := readSchematic()
	if err != nil {
		return nil, err
	}
	ratios := g.GearRatios()
	gears := maps.Keys(ratios)
	slices.SortFunc(gears, func(a, b aoc.Pt) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	var sum uint64
	for _, p := range gears {
		aoc.Log.Debug("gear", zap.Int("row", p.Y), zap.Int("col", p.X), zap.Uint64("ratio", ratios[p]))
		sum += ratios[p]
	}
	return sum, nil
}
