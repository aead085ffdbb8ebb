// Package batch defines the columnar record batch and its builder.
package batch

import (
	"errors"
	"fmt"
)

// Column names in schema order
var ColumnNames = []string{"id", "first_name", "last_name", "email", "company", "phone"}

// ErrColumnLengthMismatch is returned when batch columns differ in length
var ErrColumnLengthMismatch = errors.New("batch columns differ in length")

// RecordBatch holds one column vector per field. All columns of a valid
// batch have identical length. A batch is written once and then discarded;
// nothing mutates it after construction.
type RecordBatch struct {
	IDs        []int64
	FirstNames []string
	LastNames  []string
	Emails     []string
	Companies  []string
	Phones     []string
}

// NumRows returns the declared row count of the batch.
func (b *RecordBatch) NumRows() int {
	return len(b.IDs)
}

// Validate checks that every column has the same length.
func (b *RecordBatch) Validate() error {
	n := len(b.IDs)
	columns := map[string]int{
		"first_name": len(b.FirstNames),
		"last_name":  len(b.LastNames),
		"email":      len(b.Emails),
		"company":    len(b.Companies),
		"phone":      len(b.Phones),
	}
	for name, length := range columns {
		if length != n {
			return fmt.Errorf("%w: id has %d rows, %s has %d",
				ErrColumnLengthMismatch, n, name, length)
		}
	}
	return nil
}
