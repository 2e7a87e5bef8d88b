package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"goinvent/batch"
	"goinvent/internal/config"
	"goinvent/inventor"
	"goinvent/viewstyle"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	dir := flag.String("dir", "", "Folder containing assembly (*.iam) files")
	outputDir := flag.String("output", "", "Output folder for images (default: assembly folder)")
	format := flag.String("format", "", "Image format: png, jpg, bmp, tif, webp (default: png)")
	views := flag.String("views", "", "Comma-separated views (default: front,back,left,right,top,bottom)")
	width := flag.Int("width", 0, "Image width in pixels (default: 1920)")
	height := flag.Int("height", 0, "Image height in pixels (default: 1080)")
	realistic := flag.Bool("realistic", false, "Use realistic rendering")
	wireframe := flag.Bool("wireframe", false, "Use wireframe rendering")
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
		AssemblyDir: *dir,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
	})

	if cfg.AssemblyDir == "" {
		fmt.Fprintln(os.Stderr, "Error: assembly folder required. Use -dir flag or config.json.")
		os.Exit(1)
	}

	imgFormat, err := viewstyle.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	viewList, err := parseViews(*views, cfg.Views)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	style := viewstyle.DefaultStyle()
	style.Realistic = *realistic || cfg.Realistic
	if *wireframe || cfg.Wireframe {
		style = viewstyle.Wireframe()
	}

	ses, err := inventor.Connect(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ses.Release()

	fmt.Printf("Perspective image export\n")
	fmt.Printf("Assemblies: %s\n", cfg.AssemblyDir)
	fmt.Printf("Output: %s (%s, %dx%d)\n", cfg.OutputDir, imgFormat, cfg.Width, cfg.Height)
	fmt.Println("------------------------------------------------------------")

	results, err := batch.PerspectiveRun(ses, batch.PerspectiveConfig{
		AssemblyDir: cfg.AssemblyDir,
		OutputDir:   cfg.OutputDir,
		Views:       viewList,
		Format:      imgFormat,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Style:       style,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Exported: %d/%d\n", success, len(results))
	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Printf("  %s [%s]: %s\n", r.File, r.View, r.Error)
			}
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func parseViews(flagValue string, configValue []string) ([]viewstyle.View, error) {
	var names []string
	if flagValue != "" {
		names = strings.Split(flagValue, ",")
	} else {
		names = configValue
	}
	if len(names) == 0 {
		return viewstyle.StandardViews(), nil
	}
	views := make([]viewstyle.View, 0, len(names))
	for _, n := range names {
		v, err := viewstyle.Parse(n)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
