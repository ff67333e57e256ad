package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/mapbuilder/internal/config"
	"github.com/ironsheep/mapbuilder/internal/mapdata"
	"github.com/ironsheep/mapbuilder/internal/raster"
	"github.com/ironsheep/mapbuilder/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mapbuilder %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp(os.Stdout)
			return
		}
	}

	// Configure logging to stderr (stdout carries the map document or the
	// MCP stream)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if err := serve(cfg); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if err := build(cfg, os.Args[1:]); err != nil {
		fail(err)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "mapbuilder - convert color-coded map images into level JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mapbuilder -f map.bmp [options]   Build a level document")
	fmt.Fprintln(w, "  mapbuilder serve                  Run the MCP server on stdin/stdout")
	fmt.Fprintln(w, "  mapbuilder version                Print version information")
	fmt.Fprintln(w, "  mapbuilder help                   Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build options:")
	fs := newBuildFlags(&buildArgs{}, mapdata.Options{BlockSize: mapdata.DefaultBlockSize, Workers: 1})
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables (also read from .env):")
	fmt.Fprintf(w, "  %s=debug       Enable debug logging\n", config.EnvLogLevel)
	fmt.Fprintf(w, "  %s=N          World size of one cell (default %d)\n", config.EnvBlockSize, mapdata.DefaultBlockSize)
	fmt.Fprintf(w, "  %s=path          YAML palette file\n", config.EnvPalette)
	fmt.Fprintf(w, "  %s=N            Concurrent row classifiers\n", config.EnvWorkers)
	fmt.Fprintf(w, "  %s=N         Decoded images kept by the server (default %d)\n", config.EnvCacheSize, raster.DefaultCacheSize)
}

type buildArgs struct {
	file        string
	output      string
	palettePath string
	counts      mapdata.Counts
	opts        mapdata.Options
}

func newBuildFlags(a *buildArgs, defaults mapdata.Options) *flag.FlagSet {
	fs := flag.NewFlagSet("mapbuilder", flag.ContinueOnError)
	fs.StringVar(&a.file, "f", "", "map image to convert (required)")
	fs.StringVar(&a.output, "o", "", "write the document to this file instead of stdout")
	fs.StringVar(&a.palettePath, "palette", "", "YAML palette file (overrides "+config.EnvPalette+")")
	fs.IntVar(&a.counts.RoundRocks, "round-rocks", 0, "number of round rocks")
	fs.IntVar(&a.counts.SquareRocks, "square-rocks", 0, "number of square rocks")
	fs.IntVar(&a.counts.Gems, "gems", 0, "number of gems")
	fs.IntVar(&a.opts.BlockSize, "block-size", defaults.BlockSize, "world size of one cell")
	fs.IntVar(&a.opts.Workers, "workers", defaults.Workers, "concurrent row classifiers")
	return fs
}

func build(cfg *config.Config, args []string) error {
	var a buildArgs
	fs := newBuildFlags(&a, cfg.Options())
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(os.Stdout)
			return nil
		}
		return err
	}
	if a.file == "" {
		return fmt.Errorf("no map image given (use -f, or see mapbuilder help)")
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if a.opts.BlockSize < 1 || a.opts.Workers < 1 {
		return fmt.Errorf("-block-size and -workers must be positive")
	}
	if a.palettePath != "" {
		cfg.PalettePath = a.palettePath
	}

	p, err := cfg.Palette()
	if err != nil {
		return err
	}

	grid, err := raster.Load(a.file)
	if err != nil {
		return err
	}
	if cfg.Debug() {
		log.Printf("Loaded %s: %dx%d", a.file, grid.Width(), grid.Height())
	}

	md, err := mapdata.Assemble(grid, p, a.counts, a.opts)
	if err != nil {
		return err
	}
	if cfg.Debug() {
		log.Printf("Assembled map: %+v", md.Stats)
	}

	if a.output == "" {
		if _, err := md.WriteTo(os.Stdout); err != nil {
			return err
		}
		return nil
	}

	f, err := os.Create(a.output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if _, err := md.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serve(cfg *config.Config) error {
	p, err := cfg.Palette()
	if err != nil {
		return err
	}
	if cfg.Debug() {
		log.Printf("Map Builder MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Palette: %d colors, block size %d, %d workers", len(p.Entries()), cfg.BlockSize, cfg.Workers)
	}

	server.Version = Version
	srv := server.New(p, cfg.Options(), cfg.CacheSize)
	return srv.Run()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "mapbuilder: %v\n", err)
	os.Exit(1)
}
