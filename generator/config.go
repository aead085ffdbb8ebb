package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"
)

const (
	// Default configuration
	DefaultTotalRecords  = 100_000
	DefaultNumPartitions = 8
	DefaultOutputDir     = "./out"
	DefaultFilePrefix    = "persons"
	DefaultCompression   = "snappy"
	DefaultExchangeName  = "persons-partitions"
)

// Config holds all configuration for the generator
type Config struct {
	TotalRecords  int
	NumPartitions int
	Workers       int
	OutputDir     string
	FilePrefix    string
	Seed          int64
	Compression   string
	ReferenceFile string

	RabbitMQURL    string
	NotifyExchange string
}

// LoadConfig parses command-line flags and environment variables.
// Run parameters come from flags; broker settings come from the environment,
// and notifications stay disabled unless RABBITMQ_URL is set.
func LoadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("generator", flag.ContinueOnError)

	total := fs.Int("total", DefaultTotalRecords, "Total number of records to generate")
	partitions := fs.Int("partitions", DefaultNumPartitions, "Number of output partition files")
	workers := fs.Int("workers", runtime.NumCPU(), "Number of parallel workers")
	outputDir := fs.String("out", DefaultOutputDir, "Output directory")
	prefix := fs.String("prefix", DefaultFilePrefix, "Output file name prefix")
	seed := fs.Int64("seed", 0, "Random seed (0 picks a time-based seed)")
	compression := fs.String("compression", DefaultCompression, "Parquet compression codec: none, snappy, gzip or zstd")
	referenceFile := fs.String("reference", "", "Optional YAML file overriding the built-in reference tables")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		TotalRecords:   *total,
		NumPartitions:  *partitions,
		Workers:        *workers,
		OutputDir:      *outputDir,
		FilePrefix:     *prefix,
		Seed:           *seed,
		Compression:    *compression,
		ReferenceFile:  *referenceFile,
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		NotifyExchange: getEnv("NOTIFY_EXCHANGE", DefaultExchangeName),
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the run parameters.
func (c *Config) Validate() error {
	if c.TotalRecords < 0 {
		return fmt.Errorf("total must not be negative, got %d", c.TotalRecords)
	}
	if c.NumPartitions <= 0 {
		return fmt.Errorf("partitions must be positive, got %d", c.NumPartitions)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
