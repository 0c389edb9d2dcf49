// Package main provides the generate command for writing synthetic raw user records.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"userclean/internal/config"
	"userclean/internal/formatter"
	"userclean/internal/generator"
	"userclean/internal/logger"
	"userclean/internal/storage"
)

func main() {
	def := config.Default()

	configPath := flag.String("config", config.DefaultPath, "Path to YAML config file")
	count := flag.Int("n", def.Generator.Count, "Number of records to generate")
	outputPath := flag.String("output", def.Pipeline.Input, "Path to the generated JSON file")
	seed := flag.Uint64("seed", def.Generator.Seed, "Random seed (0 uses the current time)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	log := logger.NewLogger("info")

	cfg := def
	if _, err := os.Stat(*configPath); err == nil || set["config"] {
		loaded, err := config.LoadConfig(*configPath)
		switch {
		case err == nil:
			cfg = loaded
		case set["config"]:
			log.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		default:
			log.Warn("ignoring config file, using defaults", "path", *configPath, "error", err)
		}
	}

	if set["n"] {
		cfg.Generator.Count = *count
	}

	if set["output"] {
		cfg.Pipeline.Input = *outputPath
	}

	if set["seed"] {
		cfg.Generator.Seed = *seed
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidCount) {
			fmt.Println("Usage: generate [-n N] [-output PATH] [-seed S]")
			flag.PrintDefaults()
		}

		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.SetLevel(cfg.Logging.Level)
	log.SetTimings(cfg.Logging.Timings)

	stop := log.Timed("generate")
	records := generator.New(cfg.Generator.Seed).Generate(cfg.Generator.Count)
	stop()

	files := storage.New(log)
	if err := files.WriteRaw(context.Background(), cfg.Pipeline.Input, records); err != nil {
		os.Exit(1)
	}

	fmt.Printf("✅ Generated %s records -> %s\n", formatter.FormatCount(len(records)), cfg.Pipeline.Input)
}
