package reference

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Table names understood by the store
const (
	TableMaleFirstNames   = "male_first_names"
	TableFemaleFirstNames = "female_first_names"
	TableLastNames        = "last_names"
	TableEmailDomains     = "email_domains"
	TableCompanySuffixes  = "company_suffixes"
	TablePhonePatterns    = "phone_patterns"
)

// ErrUnknownTable is returned when a table name is not present in the store
var ErrUnknownTable = errors.New("unknown reference table")

// ErrEmptyTable is returned when a table is declared with no entries
var ErrEmptyTable = errors.New("empty reference table")

// ErrEmptyEntry is returned when a table contains an empty string
var ErrEmptyEntry = errors.New("empty reference entry")

// Store is an immutable set of named reference tables. It is built once at
// startup and only read afterwards, so it is safe to share across workers
// without locking.
type Store struct {
	tables map[string][]string
}

// NewStore builds a store from the given tables. Every table must be
// non-empty and every entry a non-empty string, so generators never have to
// guard against empty values. The input slices are copied so later mutation
// by the caller cannot leak into the store.
func NewStore(tables map[string][]string) (*Store, error) {
	copied := make(map[string][]string, len(tables))
	for name, values := range tables {
		if len(values) == 0 {
			return nil, fmt.Errorf("table %q: %w", name, ErrEmptyTable)
		}
		cp := make([]string, len(values))
		for i, v := range values {
			if v == "" {
				return nil, fmt.Errorf("table %q, entry %d: %w", name, i, ErrEmptyEntry)
			}
			cp[i] = v
		}
		copied[name] = cp
	}
	return &Store{tables: copied}, nil
}

// Default returns a store holding the built-in reference tables.
func Default() *Store {
	store, err := NewStore(defaultTables())
	if err != nil {
		// Built-in tables are compile-time constants; an empty one is a bug.
		panic(err)
	}
	return store
}

// LoadFile reads a YAML file mapping table names to string lists and returns
// a store where every table found in the file overrides the built-in default.
// Tables absent from the file keep their defaults; a table declared empty in
// the file is an error.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	var overrides map[string][]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse reference file %s: %w", path, err)
	}

	tables := defaultTables()
	for name, values := range overrides {
		if _, ok := tables[name]; !ok {
			return nil, fmt.Errorf("reference file %s: table %q: %w", path, name, ErrUnknownTable)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("reference file %s: table %q: %w", path, name, ErrEmptyTable)
		}
		tables[name] = values
	}
	return NewStore(tables)
}

// Table returns the named table. The returned slice must not be mutated.
func (s *Store) Table(name string) ([]string, error) {
	values, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("table %q: %w", name, ErrUnknownTable)
	}
	return values, nil
}
