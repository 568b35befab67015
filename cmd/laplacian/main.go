// Command laplacian configures a spatial Laplacian filter from a YAML file
// or command line flags and streams CSV samples through it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/laplacian/csvio"
	"github.com/katalvlaran/laplacian/filter"
	"github.com/katalvlaran/laplacian/laplacian"
	"github.com/katalvlaran/laplacian/layout"
	"github.com/katalvlaran/laplacian/mask"
)

const usage = "Usage: laplacian (-config <file.yaml> | -layout \"1 2; 3 4\") [-nchannels N] [-in samples.csv] [-out filtered.csv] [-frame 32] [-describe] [-strict] [-verify] [-v]"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "laplacian: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("laplacian", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML file with name and params (layout, nchannels)")
	layoutText := fs.String("layout", "", "Layout string, rows separated by ';'")
	nchannels := fs.Int("nchannels", 0, "Channel count; 0 derives it from the layout")
	inPath := fs.String("in", "-", "Input CSV (T rows x N channels); '-' reads stdin")
	outPath := fs.String("out", "-", "Output CSV; '-' writes stdout")
	frame := fs.Int("frame", 32, "Samples per frame")
	describe := fs.Bool("describe", false, "Print layout islands and per-channel neighbours, then exit")
	strict := fs.Bool("strict", false, "Reject duplicated channel indices in YAML grid layouts")
	verify := fs.Bool("verify", false, "Check the mask column invariants before filtering")
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(*configPath, *layoutText, *nchannels)
	if err != nil {
		fs.Usage()
		return err
	}
	if *strict {
		if err = checkGrid(cfg.Params[laplacian.ParamLayout]); err != nil {
			return err
		}
	}

	f, _, err := filter.FromConfig(cfg, filter.WithLogger(logger))
	if err != nil {
		return err
	}

	if *verify {
		if err = mask.Verify(f.Mask()); err != nil {
			return err
		}
		logger.Info("mask verified")
	}
	if *describe {
		return describeLayout(stdout, f.Layout(), f.NChannels())
	}

	in, closeIn, err := openInput(*inPath, stdin)
	if err != nil {
		return err
	}
	defer closeIn()
	out, closeOut, err := openOutput(*outPath, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	rd := csvio.NewReader(in)
	frames := 0
	for {
		samples, err := rd.Next(*frame)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		filtered, err := f.Apply(samples)
		if err != nil {
			return err
		}
		if err = csvio.WriteMatrix(out, filtered); err != nil {
			return err
		}
		frames++
	}
	logger.Debug("done", slog.Int("frames", frames))
	return nil
}

// loadConfig builds the filter config from either a YAML file or flags.
// An explicit -nchannels overrides the file.
func loadConfig(path, layoutText string, n int) (filter.Config, error) {
	var cfg filter.Config
	switch {
	case path != "" && layoutText != "":
		return cfg, errors.New("use either -config or -layout, not both")
	case path != "":
		c, err := filter.LoadConfigFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = c
	case layoutText != "":
		cfg = filter.Config{Params: laplacian.Params{laplacian.ParamLayout: layoutText}}
	default:
		return cfg, errors.New("a layout is required")
	}
	if n > 0 {
		cfg.Params[laplacian.ParamNChannels] = n
	}
	return cfg, nil
}

// checkGrid runs the duplicate check on grid-valued layouts, which
// Configure accepts without one. Text layouts are checked by Configure.
func checkGrid(raw any) error {
	if _, isText := raw.(string); isText || raw == nil {
		return nil
	}
	// A grid that does not convert is left for Configure to report.
	if grid, err := laplacian.GridFromParam(raw); err == nil {
		return layout.CheckDuplicates(grid)
	}
	return nil
}

func describeLayout(w io.Writer, l *layout.Layout, n int) error {
	plan, err := mask.Plan(l, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Layout %dx%d, %d channels:\n%s\n", l.Rows(), l.Cols(), n, l)
	placed := l.Channels()
	var missing []int
	for _, col := range plan {
		if !col.Found {
			missing = append(missing, col.Channel)
		}
	}
	fmt.Fprintf(w, "\nPlaced: %d %v\n", len(placed), placed)
	if len(missing) > 0 {
		fmt.Fprintf(w, "Missing (zero output): %v\n", missing)
	}
	comps := l.Components()
	fmt.Fprintf(w, "\nIslands: %d\n", len(comps))
	for i, c := range comps {
		fmt.Fprintf(w, "  %d: %v\n", i+1, c)
	}
	fmt.Fprintf(w, "\n%-8s %-8s %-6s %s\n", "Channel", "Cell", "Degree", "Neighbours")
	for _, col := range plan {
		cell := "-"
		if col.Found {
			cell = col.Position.String()
		}
		nb := make([]string, len(col.Neighbors))
		for i, v := range col.Neighbors {
			nb[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "%-8d %-8s %-6d %s\n", col.Channel, cell, col.Degree(), strings.Join(nb, " "))
	}
	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { fh.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "-" {
		return stdout, func() {}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { fh.Close() }, nil
}
