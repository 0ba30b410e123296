package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"boxaug/internal/artifacts"
	"boxaug/internal/config"
	"boxaug/internal/logger"
	"boxaug/internal/pipeline"
)

func main() {
	var (
		mode       string
		configPath string
		inputDir   string
		saveDir    string
		seed       int64
		verbose    bool
	)

	flag.StringVar(&mode, "mode", "", "exec mode: preprocess or preview")
	flag.StringVar(&configPath, "config", "", "path to a JSON config file")
	flag.StringVar(&inputDir, "input", "", "directory of input images")
	flag.StringVar(&saveDir, "save-dir", "", "root directory for run outputs")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 derives one from the clock)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if err := run(mode, configPath, inputDir, saveDir, seed, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "boxaug: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, configPath, inputDir, saveDir string, seed int64, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags override file/env values.
	if mode != "" {
		cfg.Mode = mode
	}
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if saveDir != "" {
		cfg.SaveDir = saveDir
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	issueID := artifacts.IssueID(time.Now())
	runDir := filepath.Join(cfg.SaveDir, issueID)
	if err := artifacts.Prepare(cfg.Mode, cfg, runDir); err != nil {
		return err
	}

	log.Info("Main", "run prepared", map[string]interface{}{
		"issue_id": issueID,
		"mode":     cfg.Mode,
		"run_dir":  runDir,
	})

	if cfg.Mode != config.ModePreview {
		return nil
	}

	runner, err := pipeline.NewRunner(cfg, log)
	if err != nil {
		return err
	}

	count, err := runner.Run(cfg.InputDir, runDir)
	if err != nil {
		return err
	}

	log.Info("Main", "preview run finished", map[string]interface{}{
		"images": count,
		"output": runDir,
	})
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
