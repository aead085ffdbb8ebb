// Package fields produces the per-column value vectors of a person record
// batch. Every operation takes a count n and returns a slice of exactly n
// values; emails are derived from already-generated name vectors.
package fields

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"persongen/shared/reference"
	"persongen/shared/sampler"
)

// ID values are drawn uniformly from this range
const (
	MinID int64 = 1000
	MaxID int64 = 9_999_999_999_999
)

// ErrLengthMismatch is returned when dependent input vectors differ in length
var ErrLengthMismatch = errors.New("input vectors differ in length")

// Generator produces column vectors from a reference store. It holds its own
// random generator, so one Generator must not be shared across goroutines;
// each partition worker builds its own with a partition-derived seed.
type Generator struct {
	rng *rand.Rand

	firstNames      []string
	lastNames       []string
	emailDomains    []string
	companySuffixes []string
	phonePatterns   []string
}

// NewGenerator resolves all tables the generator needs from the store.
// The first-name pool is the concatenation of the male and female tables.
func NewGenerator(store *reference.Store, rng *rand.Rand) (*Generator, error) {
	male, err := store.Table(reference.TableMaleFirstNames)
	if err != nil {
		return nil, err
	}
	female, err := store.Table(reference.TableFemaleFirstNames)
	if err != nil {
		return nil, err
	}
	lastNames, err := store.Table(reference.TableLastNames)
	if err != nil {
		return nil, err
	}
	domains, err := store.Table(reference.TableEmailDomains)
	if err != nil {
		return nil, err
	}
	suffixes, err := store.Table(reference.TableCompanySuffixes)
	if err != nil {
		return nil, err
	}
	patterns, err := store.Table(reference.TablePhonePatterns)
	if err != nil {
		return nil, err
	}

	firstNames := make([]string, 0, len(male)+len(female))
	firstNames = append(firstNames, male...)
	firstNames = append(firstNames, female...)

	return &Generator{
		rng:             rng,
		firstNames:      firstNames,
		lastNames:       lastNames,
		emailDomains:    domains,
		companySuffixes: suffixes,
		phonePatterns:   patterns,
	}, nil
}

// IDs returns n identifiers drawn uniformly from [MinID, MaxID].
func (g *Generator) IDs(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", sampler.ErrNegativeCount, n)
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = MinID + g.rng.Int63n(MaxID-MinID+1)
	}
	return out, nil
}

// FirstNames returns n first names sampled from the combined male and
// female tables.
func (g *Generator) FirstNames(n int) ([]string, error) {
	return sampler.Sample(g.rng, g.firstNames, n)
}

// LastNames returns n last names.
func (g *Generator) LastNames(n int) ([]string, error) {
	return sampler.Sample(g.rng, g.lastNames, n)
}

// Companies returns n company names. Three independent last-name vectors are
// drawn up front; the format variant is chosen per row.
func (g *Generator) Companies(n int) ([]string, error) {
	first, err := sampler.Sample(g.rng, g.lastNames, n)
	if err != nil {
		return nil, err
	}
	second, err := sampler.Sample(g.rng, g.lastNames, n)
	if err != nil {
		return nil, err
	}
	third, err := sampler.Sample(g.rng, g.lastNames, n)
	if err != nil {
		return nil, err
	}
	suffixes, err := sampler.Sample(g.rng, g.companySuffixes, n)
	if err != nil {
		return nil, err
	}

	out := make([]string, n)
	for i := range out {
		format := companyFormat(g.rng.Intn(int(numCompanyFormats)))
		out[i] = formatCompany(format, first[i], second[i], third[i], suffixes[i])
	}
	return out, nil
}

// Phones returns n phone numbers. Each row picks a pattern from the
// phone_patterns table and fills every '#' with a random digit.
func (g *Generator) Phones(n int) ([]string, error) {
	patterns, err := sampler.Sample(g.rng, g.phonePatterns, n)
	if err != nil {
		return nil, err
	}

	out := make([]string, n)
	var b strings.Builder
	for i, pattern := range patterns {
		b.Reset()
		for _, c := range pattern {
			if c == '#' {
				b.WriteByte(byte('0' + g.rng.Intn(10)))
			} else {
				b.WriteRune(c)
			}
		}
		out[i] = b.String()
	}
	return out, nil
}

// Emails derives one email per row from the row's first and last name. Both
// the username format and the domain are chosen independently per row, and
// the result is lowercased.
func (g *Generator) Emails(firstNames, lastNames []string) ([]string, error) {
	if len(firstNames) != len(lastNames) {
		return nil, fmt.Errorf("%w: %d first names, %d last names",
			ErrLengthMismatch, len(firstNames), len(lastNames))
	}

	domains, err := sampler.Sample(g.rng, g.emailDomains, len(firstNames))
	if err != nil {
		return nil, err
	}

	out := make([]string, len(firstNames))
	for i := range out {
		format := emailFormat(g.rng.Intn(int(numEmailFormats)))
		local := formatEmailLocal(format, firstNames[i], lastNames[i], g.rng.Intn(90)+10)
		out[i] = strings.ToLower(local + "@" + domains[i])
	}
	return out, nil
}
