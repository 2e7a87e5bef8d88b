package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"goinvent/batch"
	"goinvent/grid"
	"goinvent/internal/config"
	"goinvent/inventor"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	csvFile := flag.String("csv", "", "Component table CSV file")
	layoutFile := flag.String("layout", "", "optikit-layout.json file")
	outDir := flag.String("out", "", "Folder for the assembly document")
	name := flag.String("name", "", "Assembly file name (default: UC2_Assembly.iam)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		OutputDir:    *outDir,
		AssemblyName: *name,
		TableCSV:     *csvFile,
		LayoutJSON:   *layoutFile,
	})

	var (
		table []grid.Component
		err   error
	)
	switch {
	case cfg.TableCSV != "" && cfg.LayoutJSON != "":
		fmt.Fprintln(os.Stderr, "Error: give either -csv or -layout, not both.")
		os.Exit(1)
	case cfg.TableCSV != "":
		table, err = grid.ReadCSV(cfg.TableCSV)
	case cfg.LayoutJSON != "":
		table, err = grid.ReadLayout(cfg.LayoutJSON)
	default:
		fmt.Fprintln(os.Stderr, "Error: component table required. Use -csv or -layout.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table, missing := grid.Validate(table)
	for _, m := range missing {
		fmt.Fprintf(os.Stderr, "Warning: component file missing, skipped: %s\n", m)
	}
	if len(table) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no placeable components in table.")
		os.Exit(1)
	}

	ses, err := inventor.Connect(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ses.Release()

	spacing := r3.Vec{X: cfg.Spacing[0], Y: cfg.Spacing[1], Z: cfg.Spacing[2]}

	fmt.Printf("Grid assembly build\n")
	fmt.Printf("Components: %d, Spacing: (%g, %g, %g)\n", len(table), spacing.X, spacing.Y, spacing.Z)
	fmt.Printf("Assembly: %s\n", cfg.AssemblyName)
	fmt.Println("------------------------------------------------------------")

	placed, err := batch.BuildFromTable(ses, cfg.OutputDir, cfg.AssemblyName, spacing, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, p := range placed {
		if p.Err != nil {
			failed++
			fmt.Printf("  FAILED %s (%d,%d,%d): %v\n", p.Name, p.Pos.X, p.Pos.Y, p.Pos.Z, p.Err)
		}
	}
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Placed: %d/%d\n", len(placed)-failed, len(placed))

	if failed > 0 || len(missing) > 0 {
		os.Exit(1)
	}
}
