// Package partitioner splits a total record count across output partitions
// and generates and writes them in parallel.
package partitioner

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"persongen/shared/batch"
	"persongen/shared/fields"
	"persongen/shared/logging"
	"persongen/shared/notify"
	"persongen/shared/reference"
	"persongen/shared/storage"
)

// ErrInvalidPlan is returned for a non-positive partition count or a
// negative record count
var ErrInvalidPlan = errors.New("invalid partition plan")

// Partition is one unit of work: a row count paired with a destination file.
type Partition struct {
	Index int
	Rows  int
	Path  string
}

// Result reports the outcome of one partition.
type Result struct {
	Partition Partition
	Err       error
}

// Config holds the parameters of one generation run.
type Config struct {
	TotalRecords  int
	NumPartitions int
	Workers       int
	OutputDir     string
	FilePrefix    string
	Seed          int64
	RunID         string
}

// PartitionedWriter generates one record batch per partition and serializes
// each to its own file. Partitions are independent: workers share only the
// read-only reference store, and each owns a random generator seeded from
// the base seed and the partition index, so output is reproducible for a
// given seed no matter how work is scheduled.
type PartitionedWriter struct {
	cfg      Config
	store    *reference.Store
	writer   *storage.ParquetWriter
	notifier notify.Notifier
}

// New validates the configuration and creates a writer.
func New(cfg Config, store *reference.Store, writer *storage.ParquetWriter, notifier notify.Notifier) (*PartitionedWriter, error) {
	if cfg.TotalRecords < 0 || cfg.NumPartitions <= 0 {
		return nil, fmt.Errorf("%w: %d records across %d partitions",
			ErrInvalidPlan, cfg.TotalRecords, cfg.NumPartitions)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: %d workers", ErrInvalidPlan, cfg.Workers)
	}
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = "persons"
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &PartitionedWriter{
		cfg:      cfg,
		store:    store,
		writer:   writer,
		notifier: notifier,
	}, nil
}

// Plan splits totalRecords across numPartitions. The split is even; when it
// is not exact, the first totalRecords%numPartitions partitions take one
// extra row, so the row counts always sum to totalRecords. Partition indexes
// in file names are zero-padded to the digit width of numPartitions, which
// keeps lexicographic and numeric ordering in agreement.
func Plan(totalRecords, numPartitions int, outputDir, filePrefix string) ([]Partition, error) {
	if totalRecords < 0 || numPartitions <= 0 {
		return nil, fmt.Errorf("%w: %d records across %d partitions",
			ErrInvalidPlan, totalRecords, numPartitions)
	}

	base := totalRecords / numPartitions
	remainder := totalRecords % numPartitions
	width := len(strconv.Itoa(numPartitions))

	partitions := make([]Partition, numPartitions)
	for i := range partitions {
		rows := base
		if i < remainder {
			rows++
		}
		name := fmt.Sprintf("%s-%0*d.parquet", filePrefix, width, i)
		partitions[i] = Partition{
			Index: i,
			Rows:  rows,
			Path:  filepath.Join(outputDir, name),
		}
	}
	return partitions, nil
}

// WriteAll generates and writes every partition, using the configured number
// of worker goroutines. A failed partition aborts only itself; the others
// run to completion. Results are returned for all partitions in index order,
// and the returned error names the failed partitions, if any.
func (w *PartitionedWriter) WriteAll() ([]Result, error) {
	partitions, err := Plan(w.cfg.TotalRecords, w.cfg.NumPartitions, w.cfg.OutputDir, w.cfg.FilePrefix)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(w.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	workers := w.cfg.Workers
	if workers > len(partitions) {
		workers = len(partitions)
	}

	jobs := make(chan Partition, len(partitions))
	resultCh := make(chan Result, len(partitions))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				resultCh <- Result{Partition: p, Err: w.writePartition(p)}
			}
		}()
	}

	for _, p := range partitions {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	close(resultCh)

	results := make([]Result, 0, len(partitions))
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Partition.Index < results[j].Partition.Index
	})

	var failed []int
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Partition.Index)
			errs = append(errs, r.Err)
		}
	}
	if len(failed) > 0 {
		return results, fmt.Errorf("partitions %v failed: %w", failed, errors.Join(errs...))
	}
	return results, nil
}

// writePartition is the per-worker unit of work: build one batch, serialize
// it, announce it.
func (w *PartitionedWriter) writePartition(p Partition) error {
	rng := rand.New(rand.NewSource(partitionSeed(w.cfg.Seed, p.Index)))

	gen, err := fields.NewGenerator(w.store, rng)
	if err != nil {
		return fmt.Errorf("partition %d: %w", p.Index, err)
	}

	rb, err := batch.NewBuilder(gen).Build(p.Rows)
	if err != nil {
		return fmt.Errorf("partition %d: %w", p.Index, err)
	}

	if err := w.writer.Write(rb, p.Path); err != nil {
		return fmt.Errorf("partition %d: %w", p.Index, err)
	}
	logging.LogDebug("Partitioner", "Partition %d written: %d rows to %s", p.Index, p.Rows, p.Path)

	// The file is already durable; a notification failure is only logged.
	if err := w.notifier.PartitionWritten(w.cfg.RunID, p.Index, int64(p.Rows), p.Path); err != nil {
		logging.LogWarn("Partitioner", "Failed to notify for partition %d: %v", p.Index, err)
	}
	return nil
}

// partitionSeed derives a per-partition seed from the run seed. Workers
// never share a random source, and the derived seed depends only on the
// partition index, not on scheduling order.
func partitionSeed(base int64, index int) int64 {
	x := uint64(base) + uint64(index+1)*0x9E3779B97F4A7C15
	x ^= x >> 31
	return int64(x)
}
