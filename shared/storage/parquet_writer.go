// Package storage serializes record batches to parquet files.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"persongen/shared/batch"
)

// Schema is the arrow schema of a person record batch.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "first_name", Type: arrow.BinaryTypes.String},
	{Name: "last_name", Type: arrow.BinaryTypes.String},
	{Name: "email", Type: arrow.BinaryTypes.String},
	{Name: "company", Type: arrow.BinaryTypes.String},
	{Name: "phone", Type: arrow.BinaryTypes.String},
}, nil)

// ErrUnknownCompression is returned for an unrecognized codec name
var ErrUnknownCompression = errors.New("unknown compression codec")

// ParquetWriter writes record batches to parquet files. Writes are
// all-or-nothing: data goes to a temp file in the destination directory
// first and is renamed into place only after a successful close, so a
// failed write never leaves a partial file behind.
type ParquetWriter struct {
	mem   memory.Allocator
	props *parquet.WriterProperties
}

// NewParquetWriter creates a writer using the named compression codec:
// "none", "snappy", "gzip" or "zstd".
func NewParquetWriter(compression string) (*ParquetWriter, error) {
	codec, err := compressionCodec(compression)
	if err != nil {
		return nil, err
	}
	return &ParquetWriter{
		mem:   memory.NewGoAllocator(),
		props: parquet.NewWriterProperties(parquet.WithCompression(codec)),
	}, nil
}

func compressionCodec(name string) (compress.Compression, error) {
	switch name {
	case "none", "":
		return compress.Codecs.Uncompressed, nil
	case "snappy":
		return compress.Codecs.Snappy, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	default:
		return compress.Codecs.Uncompressed, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// Write serializes the batch to the given path.
func (w *ParquetWriter) Write(rb *batch.RecordBatch, path string) error {
	if err := rb.Validate(); err != nil {
		return err
	}

	rec := w.toArrowRecord(rb)
	defer rec.Release()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	// The sink hides Close from the parquet writer so the file stays open
	// for the fsync after the footer is flushed.
	writer, err := pqarrow.NewFileWriter(Schema, fileSink{tmp}, w.props,
		pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(w.mem)))
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to create parquet writer for %s: %w", path, err)
	}

	if err := writer.Write(rec); err != nil {
		writer.Close()
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write batch to %s: %w", path, err)
	}

	// Close flushes the parquet footer.
	if err := writer.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	// The rename only publishes data that reached the disk.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s into place: %w", tmpPath, err)
	}
	return nil
}

// fileSink exposes a file to the parquet writer as a plain io.Writer.
// Closing and syncing stay with the caller.
type fileSink struct {
	f *os.File
}

func (s fileSink) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (w *ParquetWriter) toArrowRecord(rb *batch.RecordBatch) arrow.Record {
	bld := array.NewRecordBuilder(w.mem, Schema)
	defer bld.Release()

	bld.Field(0).(*array.Int64Builder).AppendValues(rb.IDs, nil)
	bld.Field(1).(*array.StringBuilder).AppendValues(rb.FirstNames, nil)
	bld.Field(2).(*array.StringBuilder).AppendValues(rb.LastNames, nil)
	bld.Field(3).(*array.StringBuilder).AppendValues(rb.Emails, nil)
	bld.Field(4).(*array.StringBuilder).AppendValues(rb.Companies, nil)
	bld.Field(5).(*array.StringBuilder).AppendValues(rb.Phones, nil)

	return bld.NewRecord()
}
