// Package match scores every catalog posting against one résumé and returns
// the ranked recommendation list.
package match

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/seedhiai/resume-matcher/internal/catalog"
	"github.com/seedhiai/resume-matcher/internal/encoder"
)

// DefaultMinScore is the semantic-similarity threshold below which a job
// needs at least one keyword match to be included.
const DefaultMinScore = 0.35

// Recommendation is one ranked posting in the response payload.
type Recommendation struct {
	Company          string   `json:"company"`
	Description      string   `json:"description"`
	Role             string   `json:"role"`
	RequiredSkills   string   `json:"required_skills"`
	Location         string   `json:"location"`
	DatePosted       string   `json:"date_posted"`
	Salary           string   `json:"salary"`
	ApplicationURL   string   `json:"application_url"`
	ApplicationLabel string   `json:"application_label"`
	SimilarityScore  float64  `json:"similarity_score"`
	KeywordMatches   int      `json:"keyword_matches"`
	MatchedKeywords  []string `json:"matched_keywords"`
}

// Engine ranks the catalog against résumé text. The catalog and encoders are
// shared, read-only collaborators; Match is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	enc      encoder.Encoder
	jobEnc   encoder.Encoder
	minScore float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithMinScore overrides the semantic-similarity inclusion threshold.
func WithMinScore(v float64) Option {
	return func(e *Engine) { e.minScore = v }
}

// WithJobEncoder sets a separate encoder for catalog job texts, typically a
// caching wrapper. Résumé text always goes through the primary encoder.
func WithJobEncoder(enc encoder.Encoder) Option {
	return func(e *Engine) { e.jobEnc = enc }
}

// New creates an Engine over a loaded catalog.
func New(cat *catalog.Catalog, enc encoder.Encoder, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		enc:      enc,
		jobEnc:   enc,
		minScore: DefaultMinScore,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Match scores every posting against resumeText and returns the included
// postings sorted descending by (keyword matches, similarity score). The sort
// is stable, so remaining ties keep catalog row order. An empty résumé still
// flows through with an empty token set and a zero vector; any encode failure
// aborts the whole request so partial-catalog results are never returned.
func (e *Engine) Match(ctx context.Context, resumeText string) ([]Recommendation, error) {
	resumeTokens := Tokenize(resumeText)

	var resumeVec []float32
	if strings.TrimSpace(resumeText) != "" {
		vec, err := e.enc.Encode(ctx, resumeText)
		if err != nil {
			return nil, fmt.Errorf("encode resume: %w", err)
		}
		resumeVec = vec
	}

	recs := make([]Recommendation, 0)
	for _, job := range e.catalog.Jobs() {
		// Semantic matching runs on structured fields, not the free-text
		// description.
		jobText := fmt.Sprintf("%s at %s in %s requiring %s",
			job.Role, job.Company, job.Location, job.RequiredSkills)

		jobVec, err := e.jobEnc.Encode(ctx, jobText)
		if err != nil {
			return nil, fmt.Errorf("encode job %q at %q: %w", job.Role, job.Company, err)
		}
		score := encoder.Cosine(resumeVec, jobVec)

		matched := intersect(resumeTokens, Tokenize(job.RequiredSkills))

		if score < e.minScore && len(matched) == 0 {
			continue
		}

		link := ExtractLink(job.Application)
		recs = append(recs, Recommendation{
			Company:          job.Company,
			Description:      job.Description,
			Role:             job.Role,
			RequiredSkills:   job.RequiredSkills,
			Location:         job.Location,
			DatePosted:       job.DatePosted,
			Salary:           job.Salary,
			ApplicationURL:   link.URL,
			ApplicationLabel: link.Label,
			SimilarityScore:  math.Round(score*1000) / 1000,
			KeywordMatches:   len(matched),
			MatchedKeywords:  matched,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].KeywordMatches != recs[j].KeywordMatches {
			return recs[i].KeywordMatches > recs[j].KeywordMatches
		}
		return recs[i].SimilarityScore > recs[j].SimilarityScore
	})

	return recs, nil
}
