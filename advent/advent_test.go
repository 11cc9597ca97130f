package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/cespare/aoc2022/search"
)

func run(t *testing.T, name, input string) []string {
	t.Helper()
	var out bytes.Buffer
	e := &env{name: name, in: strings.NewReader(input), out: &out}
	if err := solutions[name](e); err != nil {
		t.Fatalf("day %s: %s", name, err)
	}
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

const (
	example8 = `30373
25512
65332
33549
35390
`
	example9 = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`
	example9Long = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`
	example12 = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`
	example14 = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`
	example17 = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>\n"
	example18 = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`
	example23 = `....#..
..###.#
#...#.#
.#...##
#.###..
##.#.##
.#..#..
`
	example24 = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`
)

func TestExamples(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  []string
	}{
		{"8", example8, []string{"21", "8"}},
		{"9", example9, []string{"13", "1"}},
		{"12", example12, []string{"31", "29"}},
		{"14", example14, []string{"24", "93"}},
		{"17", example17, []string{"3068", "1514285714288"}},
		{"18", example18, []string{"64", "58"}},
		{"18", "1,1,1\n2,1,1\n", []string{"10", "10"}},
		{"23", example23, []string{"110", "20"}},
		{"24", example24, []string{"18", "54"}},
	} {
		got := run(t, tt.name, tt.input)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("day %s: got %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestLongRope(t *testing.T) {
	got := run(t, "9", example9Long)
	if got[1] != "36" {
		t.Errorf("got %s; want 36", got[1])
	}
}

// The cycle extrapolation must agree with direct simulation.
func TestChamberCycle(t *testing.T) {
	jets, err := parseJets(example17)
	if err != nil {
		t.Fatal(err)
	}
	c := newChamber(jets)
	heights := []int{0}
	for i := 0; i < 5000; i++ {
		c.drop()
		heights = append(heights, c.height)
	}

	c = newChamber(jets)
	cycle, err := search.DetectCycle(0, 100_000, func() (chamberState, int) {
		c.drop()
		return c.state(), c.height
	})
	if err != nil {
		t.Fatal(err)
	}
	if cycle.Length*10 >= len(heights) {
		t.Fatalf("cycle length %d too long to check", cycle.Length)
	}
	for _, n := range []int{0, 1, 100, 2022, 3001, 4999, 5000} {
		if got := cycle.At(n); got != heights[n] {
			t.Errorf("At(%d): got %d; want %d", n, got, heights[n])
		}
	}
}

func TestDump(t *testing.T) {
	var out bytes.Buffer
	e := &env{name: "14", in: strings.NewReader(example14), out: &out, dump: true}
	if err := day14(e); err != nil {
		t.Fatal(err)
	}
	want := `......+...
..........
......o...
.....ooo..
....#ooo##
...o#ooo#.
..###ooo#.
....oooo#.
.o.ooooo#.
#########.`
	if !strings.Contains(out.String(), want) {
		t.Errorf("dump output missing part 1 rendering; got:\n%s", out.String())
	}
}

func TestMalformedInput(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
	}{
		{"8", "123\n12\n"},
		{"9", "X 3\n"},
		{"9", "R three\n"},
		{"12", "SabE\nabc?\n"},
		{"12", "abc\n"},
		{"14", "498,4 -> 500,6\n"},
		{"14", "498;4 -> 498,6\n"},
		{"17", "<<>x\n"},
		{"18", "1,2\n"},
		{"23", "....\n"},
		{"24", "#.##\n#.x#\n##.#\n"},
		{"24", "####\n#..#\n####\n"},
	} {
		var out bytes.Buffer
		e := &env{name: tt.name, in: strings.NewReader(tt.input), out: &out}
		if err := solutions[tt.name](e); err == nil {
			t.Errorf("day %s with input %q: got nil error", tt.name, tt.input)
		}
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "8.txt"), []byte(example8), 0o644); err != nil {
		t.Fatal(err)
	}
	var compressed bytes.Buffer
	zw, err := zstd.NewWriter(&compressed)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte(example24)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "24.txt.zst"), compressed.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	config := filepath.Join(dir, "advent.ini")
	const ini = `[inputs]
24 = 24.txt.zst
8 = 8.txt
`
	if err := os.WriteFile(config, []byte(ini), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runAll(config, false, &out); err != nil {
		t.Fatal(err)
	}
	want := "day 8:\n21\n8\nday 24:\n18\n54\n"
	if got := out.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRunAllUnknownDay(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "advent.ini")
	if err := os.WriteFile(config, []byte("[inputs]\n99 = nope.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runAll(config, false, new(bytes.Buffer)); err == nil {
		t.Error("got nil error for unknown day")
	}
}

func TestNameLess(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want bool
	}{
		{"8", "12", true},
		{"12", "8", false},
		{"24", "24", false},
		{"9", "9b", true},
	} {
		if got := nameLess(tt.a, tt.b); got != tt.want {
			t.Errorf("nameLess(%q, %q): got %t; want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCommandLine(t *testing.T) {
	for _, tt := range []struct {
		args    []string
		in      string
		want    string
		wantErr bool
	}{
		{args: []string{"8"}, in: example8, want: "21\n8\n"},
		{args: []string{"-v", "24"}, in: example24, want: "18\n54\n"},
		{args: []string{"99"}, wantErr: true},
		{args: []string{}, wantErr: true},
		{args: []string{"8", "9"}, wantErr: true},
	} {
		var out bytes.Buffer
		cmd := rootCmd()
		cmd.SetArgs(tt.args)
		cmd.SetIn(strings.NewReader(tt.in))
		cmd.SetOut(&out)
		cmd.SetErr(new(bytes.Buffer))
		err := cmd.Execute()
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: got nil error", tt.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %s", tt.args, err)
			continue
		}
		if got := out.String(); got != tt.want {
			t.Errorf("%q: got %q; want %q", tt.args, got, tt.want)
		}
	}
}
