package schematic

import (
	"fmt"
	"iter"
	"strconv"
	"unicode"

	"github.com/engineparts/aoc"
)

type Kind uint8

const (
	Number Kind = iota
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// A Span is the half-open column range [Start, End) on Row holding either
// a number or a single symbol character. Spans are identified by position,
// not by value.
type Span struct {
	Row        int
	Start, End int
	Kind       Kind
	Value      uint64 // Number only
	Char       byte   // Symbol only
}

// Pos returns the position of the span's first column.
func (s Span) Pos() aoc.Pt { return aoc.Pt{X: s.Start, Y: s.Row} }

func (s Span) String() string {
	if s.Kind == Symbol {
		return fmt.Sprintf("%q@%d:%d", s.Char, s.Row, s.Start)
	}
	return fmt.Sprintf("%d@%d:[%d,%d)", s.Value, s.Row, s.Start, s.End)
}

// A SymbolClass reports whether a character is a symbol of interest.
type SymbolClass func(c byte) bool

// AnySymbol matches anything that isn't a digit, whitespace or '.'.
func AnySymbol(c byte) bool {
	return !isDigit(c) && c != '.' && !unicode.IsSpace(rune(c))
}

// Gear matches only '*'.
func Gear(c byte) bool { return c == '*' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Numbers yields the maximal runs of digits on line, left to right.
// It panics if a run doesn't fit in a uint64.
func Numbers(row int, line string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i := 0; i < len(line); {
			if !isDigit(line[i]) {
				i++
				continue
			}
			j := i + 1
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			s := Span{
				Row:   row,
				Start: i,
				End:   j,
				Kind:  Number,
				Value: aoc.MustGet(strconv.ParseUint(line[i:j], 10, 64)),
			}
			if !yield(s) {
				return
			}
			i = j
		}
	}
}

// Symbols yields a one-column span for each character of line in class.
func Symbols(row int, line string, class SymbolClass) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i := 0; i < len(line); i++ {
			if !class(line[i]) {
				continue
			}
			if !yield(Span{Row: row, Start: i, End: i + 1, Kind: Symbol, Char: line[i]}) {
				return
			}
		}
	}
}
