// Package catalog loads the static job-postings table the matcher ranks
// against. The table is read once at startup and is immutable afterwards, so
// it is safe to share across concurrent requests.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Job is one posting from the catalog. Every field is resolved to its
// default at load time; downstream code never checks for missing cells.
type Job struct {
	Company        string
	Description    string
	Role           string
	RequiredSkills string
	Location       string
	DatePosted     string
	Salary         string
	Application    string
}

const salaryDefault = "Not specified"

// Catalog is the read-only set of postings for the process lifetime.
type Catalog struct {
	jobs []Job
}

// Jobs returns the postings in catalog row order.
func (c *Catalog) Jobs() []Job { return c.jobs }

// Len returns the number of postings.
func (c *Catalog) Len() int { return len(c.jobs) }

// Load parses a CSV catalog. Headers are matched case- and space-insensitively
// (trimmed, lowercased, spaces replaced with underscores), so " Required
// Skills " addresses the same column as "required_skills". Missing or empty
// cells default to the empty string, except salary which defaults to
// "Not specified".
func Load(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}

	var jobs []Job
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		job := Job{
			Company:        cell(rec, cols, "company"),
			Description:    cell(rec, cols, "description"),
			Role:           cell(rec, cols, "role"),
			RequiredSkills: cell(rec, cols, "required_skills"),
			Location:       cell(rec, cols, "location"),
			DatePosted:     cell(rec, cols, "date_posted"),
			Salary:         cell(rec, cols, "salary"),
			Application:    cell(rec, cols, "application"),
		}
		if job.Salary == "" {
			job.Salary = salaryDefault
		}
		jobs = append(jobs, job)
	}

	return &Catalog{jobs: jobs}, nil
}

// LoadFile loads the catalog from a local CSV file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func normalizeHeader(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func cell(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
