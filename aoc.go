// Package aoc are quick & dirty utilities for running Advent of Code
// puzzles: registration, sample checking, and input fetching.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
)

// Year is the event year inputs are fetched for.
const Year = 2023

// Puzzle computes one answer from Input.
type Puzzle func() (any, error)

var (
	puzzles      []string
	puzzleByName = map[string]Puzzle{} // func name -> func
	sampleInput  = map[string]string{}
	sampleWant   = map[string]string{}
)

var (
	curDay    int
	altInput  []byte // non-nil to run a sample
	inputFile string // --input override
)

// Log is the runner's logger. It discards until Main configures it.
var Log = zap.NewNop()

var errNoPuzzles = errors.New("no puzzles registered")

// Main runs the command line interface and exits non-zero on failure.
func Main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCommand returns the root command. Its flags pick which registered
// puzzle runs and where its input comes from.
func NewCommand() *cobra.Command {
	var (
		day        string
		verbose    bool
		skipSample bool
	)
	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         fmt.Sprintf("Run Advent of Code %d puzzles", Year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Encoding = "console"
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			Log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = Log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.OutOrStdout(), day, skipSample)
			if err != nil {
				Log.Error("puzzle failed", zap.Error(err))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed.")
	cmd.Flags().StringVar(&inputFile, "input", "", "read puzzle input from this file instead of the cached or fetched input")
	cmd.Flags().BoolVar(&skipSample, "skip-sample", false, "don't check the sample before the real input")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(w io.Writer, funcName string, skipSample bool) error {
	if funcName == "" {
		if len(puzzles) == 0 {
			return errNoPuzzles
		}
		funcName = puzzles[len(puzzles)-1]
	}
	if unicode.IsDigit(rune(funcName[0])) {
		funcName = "day" + funcName
	}

	f, ok := puzzleByName[funcName]
	if !ok {
		return fmt.Errorf("puzzle func %v not registered", funcName)
	}
	day, err := dayOf(funcName)
	if err != nil {
		return err
	}
	curDay = day

	if skipSample {
		Log.Debug("skipping sample", zap.String("puzzle", funcName))
	} else if err := CheckSample(funcName); err != nil {
		return err
	}

	t0 := time.Now()
	v, err := f()
	if err != nil {
		return fmt.Errorf("%s: %w", funcName, err)
	}
	Log.Debug("solved", zap.String("puzzle", funcName), zap.Duration("took", time.Since(t0)))
	_, err = fmt.Fprintln(w, v)
	return err
}

var getDay = regexp.MustCompile(`\d+`)

func dayOf(funcName string) (int, error) {
	m := getDay.FindString(funcName)
	if m == "" {
		return 0, fmt.Errorf("no digits in func name %q from which to extract day number", funcName)
	}
	return Int(m), nil
}

// CheckSample runs the named puzzle against the sample from its doc
// comment. A puzzle without a sample only logs a warning.
func CheckSample(funcName string) error {
	f, ok := puzzleByName[funcName]
	if !ok {
		return fmt.Errorf("puzzle func %v not registered", funcName)
	}
	want, ok := sampleWant[funcName]
	if !ok {
		Log.Warn("no sample", zap.String("puzzle", funcName))
		return nil
	}
	altInput = []byte(sampleInput[funcName])
	defer func() { altInput = nil }()

	v, err := f()
	if err != nil {
		return fmt.Errorf("%s sample: %w", funcName, err)
	}
	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("for %v sample, got=%v; want %v", funcName, got, want)
	}
	Log.Info("OK sample result", zap.String("puzzle", funcName), zap.String("got", want))
	return nil
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples records the samples found in the doc comments of src's
// funcs. A comment holds "want=ANSWER" followed by the sample input; a
// comment with only "want=" reuses the previous func's input.
func ExtractSamples(src []byte) error {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "samples.go", src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				sampleWant[funcName] = m[1]
				in := Or(m[2], lastInput)
				sampleInput[funcName] = in
				lastInput = in
			}
		}
	}
	return nil
}

func funcName(f Puzzle) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	return name[strings.LastIndex(name, ".")+1:]
}

// Add registers puzzles under their func names. The last one added is
// the default.
func Add(puzFuncs ...Puzzle) {
	for _, f := range puzFuncs {
		name := funcName(f)
		puzzles = append(puzzles, name)
		puzzleByName[name] = f
	}
}

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Input returns the current puzzle's input: the sample while one is being
// checked, else the --input file, else <day>.input, which is fetched and
// cached on first use.
func Input() ([]byte, error) {
	if altInput != nil {
		return altInput, nil
	}
	if inputFile != "" {
		return os.ReadFile(inputFile)
	}
	filename := fmt.Sprintf("%d.input", curDay)
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	f, err = fetch(fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", Year, curDay))
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, f, 0644); err != nil {
		return nil, err
	}
	Log.Debug("cached input", zap.String("file", filename), zap.Int("bytes", len(f)))
	return f, nil
}

func session() (string, error) {
	if v := os.Getenv("AOC_SESSION"); v != "" {
		return strings.TrimSpace(v), nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no session: set AOC_SESSION or write ~/keys/aoc.session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func fetch(url string) ([]byte, error) {
	s, err := session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s})
	Log.Info("fetching input", zap.String("url", url))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// Lines returns the input split into lines.
func Lines() ([]string, error) {
	var lines []string
	err := ForLinesY(func(_ int, line string) { lines = append(lines, line) })
	return lines, err
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func ForLinesY(onLine func(y int, line string)) error {
	in, err := Input()
	if err != nil {
		return err
	}
	s := bufio.NewScanner(bytes.NewReader(in))
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	return s.Err()
}

func Int(s string) int {
	return MustGet(strconv.Atoi(s))
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
