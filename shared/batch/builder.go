package batch

import (
	"fmt"

	"persongen/shared/fields"
)

// Builder assembles complete record batches from a field generator.
type Builder struct {
	gen *fields.Generator
}

// NewBuilder creates a builder on top of the given field generator.
func NewBuilder(gen *fields.Generator) *Builder {
	return &Builder{gen: gen}
}

// Build generates all columns for n rows and assembles them into one batch.
// Independent columns are generated first; emails last, since they read the
// first and last name vectors. Either a complete batch is returned or an
// error with no batch.
func (b *Builder) Build(n int) (*RecordBatch, error) {
	ids, err := b.gen.IDs(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ids: %w", err)
	}
	firstNames, err := b.gen.FirstNames(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate first names: %w", err)
	}
	lastNames, err := b.gen.LastNames(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate last names: %w", err)
	}
	companies, err := b.gen.Companies(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate companies: %w", err)
	}
	phones, err := b.gen.Phones(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate phones: %w", err)
	}
	emails, err := b.gen.Emails(firstNames, lastNames)
	if err != nil {
		return nil, fmt.Errorf("failed to generate emails: %w", err)
	}

	rb := &RecordBatch{
		IDs:        ids,
		FirstNames: firstNames,
		LastNames:  lastNames,
		Emails:     emails,
		Companies:  companies,
		Phones:     phones,
	}
	if err := rb.Validate(); err != nil {
		return nil, err
	}
	return rb, nil
}
