// Package main provides the tint command-line tool. It parses color
// expressions and theme files, renders the resolved colors to PNG images,
// and can preview them in a window using Ebiten.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/tintkit/tint/internal/config"
	"github.com/tintkit/tint/internal/profiling"
	"github.com/tintkit/tint/internal/render"
	"github.com/tintkit/tint/pkg/tint"
)

// Version is the current version of tint.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	expr := flag.String("e", "", "Color expression to parse and print")
	themePath := flag.String("c", "", "Path to theme file (Lua or YAML)")
	active := flag.Bool("active", true, "Resolve accent colors in their active form (with -e)")
	output := flag.String("o", "", "Write the rendered color to a PNG file")
	size := flag.String("size", "256x256", "Output image size as WIDTHxHEIGHT")
	preview := flag.Bool("preview", false, "Open a window previewing the resolved colors")
	watch := flag.Bool("watch", false, "Reload the theme file when it changes (requires -c)")
	debug := flag.Bool("debug", false, "Log watch events at debug level (with -watch)")
	cpuProfile := flag.String("cpuprofile", "", "Write CPU profile to file")
	memProfile := flag.String("memprofile", "", "Write memory profile to file")
	version := flag.Bool("v", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("tint version %s\n", Version)
		return 0
	}

	width, height, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid size %q: %v\n", *size, err)
		return 1
	}

	profConfig := profiling.Config{
		CPUProfilePath: *cpuProfile,
		MemProfilePath: *memProfile,
	}
	if profConfig.Enabled() {
		profiler := profiling.New(profConfig)
		if err := profiler.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start profiling: %v\n", err)
			return 1
		}
		defer func() {
			if err := profiler.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to stop profiling: %v\n", err)
			}
		}()
	}

	if *expr != "" {
		return runExpr(*expr, *active, *output, width, height, *preview)
	}

	if *themePath == "" {
		fmt.Fprintln(os.Stderr, "No expression or theme file specified. Use -e or -c.")
		fmt.Fprintln(os.Stderr, "Usage: tint -e <expression> | tint -c <theme-file>")
		return 1
	}

	return runTheme(themeOptions{
		path:    *themePath,
		output:  *output,
		width:   width,
		height:  height,
		preview: *preview,
		watch:   *watch,
		debug:   *debug,
	})
}

// runExpr parses a single color expression and prints the result.
// With -o it also renders the color to a PNG file.
func runExpr(expr string, active bool, output string, width, height int, preview bool) int {
	c, err := tint.ParseActive(expr, active)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", expr, err)
		return 1
	}

	fmt.Println(describe(c))

	if output != "" {
		if err := writePNG(output, c, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			return 1
		}
		fmt.Printf("Wrote %dx%d image to %s\n", width, height, output)
	}

	if preview {
		return runPreview(render.NewPreview("tint", width, c))
	}

	return 0
}

// themeOptions collects the flags that apply to theme file mode.
type themeOptions struct {
	path    string
	output  string
	width   int
	height  int
	preview bool
	watch   bool
	debug   bool
}

// runTheme loads a theme file, prints its resolved colors, and optionally
// renders, previews, or watches it.
func runTheme(opts themeOptions) int {
	if _, err := os.Stat(opts.path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Theme file not found: %s\n", opts.path)
		} else {
			fmt.Fprintf(os.Stderr, "Error accessing theme file %s: %v\n", opts.path, err)
		}
		return 1
	}

	parser, err := config.NewParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating theme parser: %v\n", err)
		return 1
	}
	defer parser.Close()

	theme, err := loadTheme(parser, opts.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
		return 1
	}

	activeColor, inactiveColor, err := resolveTheme(theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving theme colors: %v\n", err)
		return 1
	}

	printColors(activeColor, inactiveColor)

	if opts.output != "" {
		if err := writePNG(opts.output, activeColor, opts.width, opts.height); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", opts.output, err)
			return 1
		}
		fmt.Printf("Wrote %dx%d image to %s\n", opts.width, opts.height, opts.output)
	}

	if !opts.preview && !opts.watch {
		return 0
	}

	var p *render.Preview
	if opts.preview {
		p = render.NewPreview("tint: "+filepath.Base(opts.path), opts.width, activeColor, inactiveColor)
	}

	reload := func() error {
		theme, err := loadTheme(parser, opts.path)
		if err != nil {
			return err
		}
		activeColor, inactiveColor, err := resolveTheme(theme)
		if err != nil {
			return err
		}
		printColors(activeColor, inactiveColor)
		if p != nil {
			p.SetColors(activeColor, inactiveColor)
		}
		return nil
	}

	if opts.watch {
		watcher, err := tint.WatchTheme(opts.path, reload, tint.WatchOptions{
			Logger: watchLogger(opts.debug),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching theme file: %v\n", err)
			return 1
		}
		watcher.Start()
		defer watcher.Stop()
	}

	if p != nil {
		return runPreview(p)
	}

	// Watch-only mode. Block until a termination signal arrives, reloading
	// on SIGHUP in addition to file change events.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for sig := range sigCh {
		switch sig {
		case syscall.SIGHUP:
			fmt.Println("Received SIGHUP, reloading theme...")
			if err := reload(); err != nil {
				fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
			}
		default:
			fmt.Println("Shutting down...")
			return 0
		}
	}

	return 0
}

// watchLogger selects the watch-mode logger. The -debug flag switches to
// debug-level logging with source locations.
func watchLogger(debug bool) tint.Logger {
	if debug {
		return tint.DebugLogger()
	}
	return tint.DefaultLogger()
}

// runPreview runs a preview window until it is closed or a termination
// signal arrives.
func runPreview(p *render.Preview) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	p.SetContext(ctx)
	if err := p.Run(); err != nil && !errors.Is(err, render.ErrPreviewTerminated) {
		fmt.Fprintf(os.Stderr, "Preview error: %v\n", err)
		return 1
	}
	return 0
}

// loadTheme parses and validates a theme file. Validation warnings are
// printed to stderr; validation errors fail the load.
func loadTheme(parser *config.Parser, path string) (*config.Theme, error) {
	theme, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	result := theme.Validate()
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}
	if err := result.Error(); err != nil {
		return nil, err
	}

	return theme, nil
}

// resolveTheme resolves both theme colors against the current environment.
func resolveTheme(theme *config.Theme) (active, inactive tint.Color, err error) {
	active, err = theme.Active()
	if err != nil {
		return nil, nil, fmt.Errorf("active color: %w", err)
	}
	inactive, err = theme.Inactive()
	if err != nil {
		return nil, nil, fmt.Errorf("inactive color: %w", err)
	}
	return active, inactive, nil
}

func printColors(active, inactive tint.Color) {
	fmt.Printf("active:   %s\n", describe(active))
	fmt.Printf("inactive: %s\n", describe(inactive))
}

// describe formats a resolved color for terminal output.
func describe(c tint.Color) string {
	switch v := c.(type) {
	case *tint.Solid:
		return "solid " + v.Color.Hex()
	case *tint.Gradient:
		var b strings.Builder
		fmt.Fprintf(&b, "gradient from (%.2f, %.2f) to (%.2f, %.2f)",
			v.Direction.Start[0], v.Direction.Start[1],
			v.Direction.End[0], v.Direction.End[1])
		for _, s := range v.Stops {
			fmt.Fprintf(&b, "\n  %.3f %s", s.Position, s.Color.Hex())
		}
		return b.String()
	default:
		return fmt.Sprintf("%v", c)
	}
}

// parseSize parses a WIDTHxHEIGHT string such as "256x256".
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT")
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("dimensions must be positive")
	}
	return width, height, nil
}

// writePNG renders a color and writes it to a PNG file.
func writePNG(path string, c tint.Color, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, render.Rasterize(c, width, height)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
