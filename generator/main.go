package main

import (
	"os"
	"time"

	"github.com/google/uuid"

	"persongen/shared/logging"
	"persongen/shared/middleware"
	"persongen/shared/notify"
	"persongen/shared/partitioner"
	"persongen/shared/reference"
	"persongen/shared/storage"
)

func main() {
	logging.InitLogger()

	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		logging.LogError("Generator", "Invalid configuration: %v", err)
		os.Exit(2)
	}

	store := reference.Default()
	if config.ReferenceFile != "" {
		store, err = reference.LoadFile(config.ReferenceFile)
		if err != nil {
			logging.LogError("Generator", "Failed to load reference tables: %v", err)
			os.Exit(2)
		}
		logging.LogInfo("Generator", "Loaded reference tables from %s", config.ReferenceFile)
	}

	writer, err := storage.NewParquetWriter(config.Compression)
	if err != nil {
		logging.LogError("Generator", "Invalid parquet configuration: %v", err)
		os.Exit(2)
	}

	var notifier notify.Notifier = notify.Nop{}
	if config.RabbitMQURL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(config.NotifyExchange,
			&middleware.ConnectionConfig{URL: config.RabbitMQURL})
		if err != nil {
			logging.LogError("Generator", "Failed to connect to RabbitMQ: %v", err)
			os.Exit(1)
		}
		notifier = amqpNotifier
	}
	defer notifier.Close()

	runID := uuid.New().String()
	logging.LogInfo("Generator", "Run %s: %d records across %d partitions (%d workers, seed %d)",
		runID, config.TotalRecords, config.NumPartitions, config.Workers, config.Seed)

	pw, err := partitioner.New(partitioner.Config{
		TotalRecords:  config.TotalRecords,
		NumPartitions: config.NumPartitions,
		Workers:       config.Workers,
		OutputDir:     config.OutputDir,
		FilePrefix:    config.FilePrefix,
		Seed:          config.Seed,
		RunID:         runID,
	}, store, writer, notifier)
	if err != nil {
		logging.LogError("Generator", "Invalid partition plan: %v", err)
		os.Exit(2)
	}

	start := time.Now()
	results, err := pw.WriteAll()

	written := 0
	rows := 0
	for _, r := range results {
		if r.Err == nil {
			written++
			rows += r.Partition.Rows
		}
	}
	logging.LogInfo("Generator", "Run %s: wrote %d rows to %d/%d files in %v",
		runID, rows, written, len(results), time.Since(start))

	if err != nil {
		logging.LogError("Generator", "Run %s finished with failures: %v", runID, err)
		notifier.Close()
		os.Exit(1)
	}
}
