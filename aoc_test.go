package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSrc = `package x

/*
want=6
1
2
3
*/
func sum9() (any, error) { return nil, nil }

// want=3
func count9() (any, error) { return nil, nil }

func nosample9() (any, error) { return nil, nil }
`

func sum9() (any, error) {
	var total int
	err := ForLinesY(func(_ int, line string) { total += Int(line) })
	return total, err
}

func count9() (any, error) {
	lines, err := Lines()
	return len(lines), err
}

func nosample9() (any, error) { return "ok", nil }

func init() {
	if err := ExtractSamples([]byte(testSrc)); err != nil {
		panic(err)
	}
	Add(sum9, count9, nosample9)
}

func TestExtractSamples(t *testing.T) {
	require.Equal(t, "6", sampleWant["sum9"])
	require.Equal(t, "1\n2\n3\n", sampleInput["sum9"])
	require.Equal(t, "3", sampleWant["count9"])
	require.Equal(t, sampleInput["sum9"], sampleInput["count9"])
	require.NotContains(t, sampleWant, "nosample9")

	require.Error(t, ExtractSamples([]byte("not go")))
}

func TestCheckSample(t *testing.T) {
	require.NoError(t, CheckSample("sum9"))
	require.NoError(t, CheckSample("count9"))
	require.NoError(t, CheckSample("nosample9"))
	require.Nil(t, altInput)
	require.Error(t, CheckSample("missing9"))

	sampleWant["count9"] = "4"
	t.Cleanup(func() { sampleWant["count9"] = "3" })
	require.ErrorContains(t, CheckSample("count9"), "got=3; want 4")
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("10\n20\n"), 0644))
	inputFile = path
	t.Cleanup(func() { inputFile = "" })

	var out bytes.Buffer
	require.NoError(t, run(&out, "sum9", false))
	require.Equal(t, "30\n", out.String())
	require.Equal(t, 9, curDay)

	out.Reset()
	require.NoError(t, run(&out, "", true))
	require.Equal(t, "ok\n", out.String())

	require.ErrorContains(t, run(&out, "9", false), "day9 not registered")
}

func TestDayOf(t *testing.T) {
	d, err := dayOf("day12b")
	require.NoError(t, err)
	require.Equal(t, 12, d)

	_, err = dayOf("dayx")
	require.Error(t, err)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, Clamp(-1, 0, 5))
	require.Equal(t, 5, Clamp(9, 0, 5))
	require.Equal(t, 3, Clamp(3, 0, 5))
	require.Equal(t, 0, Clamp(-1, 0, 0))
}

func TestOr(t *testing.T) {
	require.Equal(t, "b", Or("", "b", "c"))
	require.Equal(t, 0, Or(0, 0))
}

func TestMustGet(t *testing.T) {
	require.Equal(t, 42, Int("42"))
	require.Panics(t, func() { Int("x") })
}
