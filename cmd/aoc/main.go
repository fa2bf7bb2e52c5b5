// Command aoc solves the engine schematic puzzle.
//
//	aoc --day 3 --input schematic.txt
package main

import (
	_ "embed"

	"github.com/engineparts/aoc"
)

//go:embed day3.go
var day3Src []byte

func init() {
	if err := aoc.ExtractSamples(day3Src); err != nil {
		panic(err)
	}
	aoc.Add(day3, day3b)
}

func main() {
	aoc.Main()
}
