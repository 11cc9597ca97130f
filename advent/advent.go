package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
)

var (
	dump        bool
	verbose     bool
	profileFile string
	configFile  string

	stopProfile func() error
)

func main() {
	log.SetFlags(0)
	err := rootCmd().Execute()
	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			log.Println("Error writing profile:", err)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "advent <solution> < input",
		Short: "Run Advent of Code 2022 solutions",
		Long: `Run one solution on stdin, printing one answer per line.

Solutions:
  ` + strings.Join(solutionNames(), " ") + `

Examples:
  advent 24 < input24.txt
  advent --dump -v 17 < input17.txt
  advent all --config advent.ini`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: startProfiling,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			fn, ok := solutions[name]
			if !ok {
				return fmt.Errorf("unknown solution %q", name)
			}
			return fn(&env{
				name:    name,
				in:      cmd.InOrStdin(),
				out:     cmd.OutOrStdout(),
				dump:    dump,
				verbose: verbose,
			})
		},
	}
	root.Flags().BoolVar(&dump, "dump", false, "Print diagnostic renderings after the answers")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log search statistics to stderr")
	root.PersistentFlags().StringVar(&profileFile, "fgprof", "", "Write a wall-clock profile to this file")

	all := &cobra.Command{
		Use:   "all",
		Short: "Run every solution listed in an input map",
		Long: `Run the solutions named in the [inputs] section of an ini file
concurrently, printing each day's answers in day order.

Input paths are relative to the ini file; .zst inputs are decompressed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(configFile, verbose, cmd.OutOrStdout())
		},
	}
	all.Flags().StringVarP(&configFile, "config", "c", "advent.ini", "Input map file")
	root.AddCommand(all)
	return root
}

func solutionNames() []string {
	names := maps.Keys(solutions)
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func startProfiling(cmd *cobra.Command, args []string) error {
	if profileFile == "" {
		return nil
	}
	var err error
	stopProfile, err = startProfile(profileFile)
	return err
}

func startProfile(filename string) (stop func() error, err error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	stopFG := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopFG(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

// An env is everything a solution needs for one run: its input, where
// to print answers, and the diagnostic switches.
type env struct {
	name    string
	in      io.Reader
	out     io.Writer
	dump    bool
	verbose bool
}

// lines reads all of the input.
func (e *env) lines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(e.in)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (e *env) answer(v any) {
	fmt.Fprintln(e.out, v)
}

// logf logs to stderr when verbose output is on.
func (e *env) logf(format string, args ...any) {
	if e.verbose {
		log.Printf("day %s: "+format, append([]any{e.name}, args...)...)
	}
}

// stat logs a count with digit grouping.
func (e *env) stat(what string, n int) {
	e.logf("%s: %s", what, humanize.Comma(int64(n)))
}

type solution func(*env) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
