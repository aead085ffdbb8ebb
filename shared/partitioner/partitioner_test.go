package partitioner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persongen/shared/reference"
	"persongen/shared/storage"
)

func TestPlanEvenSplit(t *testing.T) {
	partitions, err := Plan(100, 4, "/data", "persons")
	require.NoError(t, err)
	require.Len(t, partitions, 4)
	for i, p := range partitions {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, 25, p.Rows)
	}
}

func TestPlanRemainder(t *testing.T) {
	partitions, err := Plan(10, 3, "/data", "persons")
	require.NoError(t, err)
	require.Len(t, partitions, 3)

	rows := 0
	for _, p := range partitions {
		rows += p.Rows
	}
	assert.Equal(t, 10, rows)
	// The remainder lands on the first partitions.
	assert.Equal(t, []int{4, 3, 3}, []int{partitions[0].Rows, partitions[1].Rows, partitions[2].Rows})
}

func TestPlanZeroRecords(t *testing.T) {
	partitions, err := Plan(0, 2, "/data", "persons")
	require.NoError(t, err)
	require.Len(t, partitions, 2)
	assert.Equal(t, 0, partitions[0].Rows)
	assert.Equal(t, 0, partitions[1].Rows)
}

func TestPlanZeroPadding(t *testing.T) {
	tests := []struct {
		numPartitions int
		firstName     string
		lastName      string
	}{
		{numPartitions: 2, firstName: "persons-0.parquet", lastName: "persons-1.parquet"},
		{numPartitions: 10, firstName: "persons-00.parquet", lastName: "persons-09.parquet"},
		{numPartitions: 150, firstName: "persons-000.parquet", lastName: "persons-149.parquet"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d partitions", tt.numPartitions), func(t *testing.T) {
			partitions, err := Plan(1000, tt.numPartitions, "/data", "persons")
			require.NoError(t, err)
			assert.Equal(t, tt.firstName, filepath.Base(partitions[0].Path))
			assert.Equal(t, tt.lastName, filepath.Base(partitions[tt.numPartitions-1].Path))
		})
	}
}

func TestPlanInvalidArguments(t *testing.T) {
	_, err := Plan(-1, 2, "/data", "persons")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	_, err = Plan(10, 0, "/data", "persons")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

// recordingNotifier captures every notification for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) PartitionWritten(runID string, index int, rows int64, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, fmt.Sprintf("%s/%d/%d/%s", runID, index, rows, filepath.Base(path)))
	return nil
}

func (n *recordingNotifier) Close() error { return nil }

func newTestWriter(t *testing.T, cfg Config, notifier *recordingNotifier) *PartitionedWriter {
	t.Helper()
	pq, err := storage.NewParquetWriter("snappy")
	require.NoError(t, err)
	pw, err := New(cfg, reference.Default(), pq, notifier)
	require.NoError(t, err)
	return pw
}

func readColumn(t *testing.T, path string, col int) []string {
	t.Helper()
	rdr, err := file.OpenParquetFile(path, false)
	require.NoError(t, err)
	defer rdr.Close()

	arrowRdr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	require.NoError(t, err)
	tbl, err := arrowRdr.ReadTable(context.Background())
	require.NoError(t, err)
	defer tbl.Release()

	var values []string
	for _, chunk := range tbl.Column(col).Data().Chunks() {
		strs := chunk.(*array.String)
		for i := 0; i < strs.Len(); i++ {
			values = append(values, strs.Value(i))
		}
	}
	return values
}

func readNumRows(t *testing.T, path string) int64 {
	t.Helper()
	rdr, err := file.OpenParquetFile(path, false)
	require.NoError(t, err)
	defer rdr.Close()
	return rdr.NumRows()
}

func TestWriteAllEndToEnd(t *testing.T) {
	dir := t.TempDir()
	notifier := &recordingNotifier{}
	pw := newTestWriter(t, Config{
		TotalRecords:  10,
		NumPartitions: 2,
		Workers:       2,
		OutputDir:     dir,
		FilePrefix:    "persons",
		Seed:          42,
		RunID:         "test-run",
	}, notifier)

	results, err := pw.WriteAll()
	require.NoError(t, err)
	require.Len(t, results, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "persons-0.parquet", entries[0].Name())
	assert.Equal(t, "persons-1.parquet", entries[1].Name())

	var totalRows int64
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.EqualValues(t, 5, r.Partition.Rows)
		totalRows += readNumRows(t, r.Partition.Path)

		// Every field of every row is populated, and the email derives
		// from the row's own name.
		firsts := readColumn(t, r.Partition.Path, 1)
		lasts := readColumn(t, r.Partition.Path, 2)
		emails := readColumn(t, r.Partition.Path, 3)
		companies := readColumn(t, r.Partition.Path, 4)
		phones := readColumn(t, r.Partition.Path, 5)
		require.Len(t, emails, 5)
		for i := range emails {
			assert.NotEmpty(t, firsts[i])
			assert.NotEmpty(t, lasts[i])
			assert.NotEmpty(t, companies[i])
			assert.NotEmpty(t, phones[i])
			local := strings.SplitN(emails[i], "@", 2)[0]
			nameInLocal := strings.Contains(local, strings.ToLower(firsts[i])) ||
				strings.Contains(local, strings.ToLower(lasts[i]))
			assert.True(t, nameInLocal, "email %q unrelated to %s %s", emails[i], firsts[i], lasts[i])
		}
	}
	assert.EqualValues(t, 10, totalRows)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.ElementsMatch(t, []string{
		"test-run/0/5/persons-0.parquet",
		"test-run/1/5/persons-1.parquet",
	}, notifier.calls)
}

func TestWriteAllRowCountsWithRemainder(t *testing.T) {
	dir := t.TempDir()
	pw := newTestWriter(t, Config{
		TotalRecords:  11,
		NumPartitions: 4,
		Workers:       3,
		OutputDir:     dir,
		Seed:          7,
	}, &recordingNotifier{})

	results, err := pw.WriteAll()
	require.NoError(t, err)

	var total int64
	for _, r := range results {
		require.NoError(t, r.Err)
		rows := readNumRows(t, r.Partition.Path)
		assert.EqualValues(t, r.Partition.Rows, rows)
		total += rows
	}
	assert.EqualValues(t, 11, total)
}

func TestWriteAllDeterministicAcrossSchedules(t *testing.T) {
	// Same seed, different worker counts: the files must be identical
	// because every partition derives its own generator from the seed and
	// its index, not from scheduling order.
	dirA, dirB := t.TempDir(), t.TempDir()

	runs := []struct {
		dir     string
		workers int
	}{
		{dir: dirA, workers: 1},
		{dir: dirB, workers: 4},
	}
	for _, run := range runs {
		pw := newTestWriter(t, Config{
			TotalRecords:  40,
			NumPartitions: 4,
			Workers:       run.workers,
			OutputDir:     run.dir,
			Seed:          1234,
		}, &recordingNotifier{})
		_, err := pw.WriteAll()
		require.NoError(t, err)
	}

	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("persons-%d.parquet", i)
		emailsA := readColumn(t, filepath.Join(dirA, name), 3)
		emailsB := readColumn(t, filepath.Join(dirB, name), 3)
		assert.Equal(t, emailsA, emailsB, "partition %d differs between runs", i)
	}
}

func TestWriteAllCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	pw := newTestWriter(t, Config{
		TotalRecords:  4,
		NumPartitions: 2,
		Workers:       2,
		OutputDir:     dir,
		Seed:          1,
	}, &recordingNotifier{})

	_, err := pw.WriteAll()
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNewInvalidConfig(t *testing.T) {
	pq, err := storage.NewParquetWriter("none")
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "negative records", cfg: Config{TotalRecords: -1, NumPartitions: 1, Workers: 1}},
		{name: "zero partitions", cfg: Config{TotalRecords: 1, NumPartitions: 0, Workers: 1}},
		{name: "zero workers", cfg: Config{TotalRecords: 1, NumPartitions: 1, Workers: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, reference.Default(), pq, nil)
			assert.ErrorIs(t, err, ErrInvalidPlan)
		})
	}
}
