package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vaughan0/go-ini"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// runAll runs every solution listed in the [inputs] section of the
// config file, each on its own input, in parallel. Outputs are printed
// in day order once all runs finish.
//
// Relative input paths are resolved against the config file's
// directory. Inputs ending in .zst are decompressed on the fly.
func runAll(configFile string, verbose bool, w io.Writer) error {
	config, err := ini.LoadFile(configFile)
	if err != nil {
		return err
	}
	inputs := config.Section("inputs")
	if len(inputs) == 0 {
		return fmt.Errorf("%s: no [inputs] listed", configFile)
	}
	names := maps.Keys(inputs)
	for _, name := range names {
		if _, ok := solutions[name]; !ok {
			return fmt.Errorf("%s: unknown solution %q", configFile, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })

	outputs := make([]bytes.Buffer, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		path := inputs[name]
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(configFile), path)
		}
		g.Go(func() error {
			r, err := openInput(path)
			if err != nil {
				return err
			}
			defer r.Close()
			e := &env{name: name, in: r, out: &outputs[i], verbose: verbose}
			if err := solutions[name](e); err != nil {
				return fmt.Errorf("day %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, name := range names {
		fmt.Fprintf(w, "day %s:\n", name)
		if _, err := w.Write(outputs[i].Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	d, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return zstdFile{d, f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}
