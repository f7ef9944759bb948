package pandemic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"covidcrawl/lib/textutil"

	"github.com/antzucaro/matchr"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ServiceOptions struct {
	// page carrying the cases/deaths table
	SeedUrl string
	// page carrying the population table
	PopulationUrl string
}

type Service struct {
	http          *resty.Client
	seed          *url.URL
	populationUrl string
}

func NewService(opts ServiceOptions) (*Service, error) {
	seed, err := url.Parse(opts.SeedUrl)
	if err != nil {
		return nil, err
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return &Service{
		http:          client,
		seed:          seed,
		populationUrl: opts.PopulationUrl,
	}, nil
}

type Summary struct {
	Name          string
	Population    string
	Cases         string
	Deaths        string
	CasesPer100k  float64
	DeathsPer100k float64
	Paragraph     string
}

// Search fetches both source tables once, then produces a summary for
// every country whose key contains term. Term matching is
// case-sensitive; the empty term matches everything. A failure on one
// country is collected and the rest keep going, so the returned
// summaries can be non-empty even when err is non-nil.
func (s *Service) Search(ctx context.Context, term string) ([]Summary, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(attribute.String("term", term))

	seedDoc, err := s.fetchDocument(ctx, s.seed.String())
	if err != nil {
		span.SetStatus(codes.Error, "fetch cases page")
		return nil, err
	}
	caseRows, err := ExtractTable(seedDoc, CasesTableSignature)
	if err != nil {
		span.SetStatus(codes.Error, "locate cases table")
		return nil, err
	}
	cases := BuildCaseDataset(caseRows)

	popDoc, err := s.fetchDocument(ctx, s.populationUrl)
	if err != nil {
		span.SetStatus(codes.Error, "fetch population page")
		return nil, err
	}
	popRows, err := ExtractTable(popDoc, PopulationTableSignature)
	if err != nil {
		span.SetStatus(codes.Error, "locate population table")
		return nil, err
	}
	populations := BuildPopulationDataset(popRows)

	slog.DebugContext(ctx, "datasets built",
		"case_countries", len(cases.Keys()),
		"population_countries", len(populations.Keys()),
	)

	var result []Summary
	var errList []error
	for _, key := range cases.Keys() {
		if !textutil.ContainsTerm(key, term) {
			continue
		}

		summary, err := s.summarize(ctx, key, cases, populations)
		if err != nil {
			slog.WarnContext(ctx, "skipping country", "country", key, "err", err)
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
			continue
		}
		result = append(result, summary)
	}

	return result, errors.Join(errList...)
}

func (s *Service) summarize(ctx context.Context, key string, cases *CaseDataset, populations *PopulationDataset) (Summary, error) {
	record, _ := cases.Get(key)

	population, ok := populations.Get(key)
	if !ok {
		return Summary{}, &MissingPopulationError{
			Key:        key,
			Suggestion: closestKey(key, populations.Keys()),
		}
	}

	casesPer, deathsPer, err := perCapitaRates(population.Population, record.Cases, record.Deaths)
	if err != nil {
		return Summary{}, err
	}

	paragraph, err := s.fetchParagraph(ctx, record.DetailLink, key)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Name:          key,
		Population:    population.Population,
		Cases:         record.Cases,
		Deaths:        record.Deaths,
		CasesPer100k:  casesPer,
		DeathsPer100k: deathsPer,
		Paragraph:     paragraph,
	}, nil
}

func (s *Service) fetchParagraph(ctx context.Context, detailLink, key string) (string, error) {
	if detailLink == "" {
		return "", fmt.Errorf("%w: no detail link", ErrParagraphNotFound)
	}
	link, err := url.Parse(detailLink)
	if err != nil {
		return "", fmt.Errorf("detail link %q: %w", detailLink, err)
	}

	doc, err := s.fetchDocument(ctx, s.seed.ResolveReference(link).String())
	if err != nil {
		return "", err
	}
	return firstParagraphMentioning(doc, key)
}

func closestKey(key string, candidates []string) string {
	best := ""
	bestSimilarity := 0.0
	for _, candidate := range candidates {
		similarity := matchr.JaroWinkler(key, candidate, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = candidate
		}
	}
	return best
}
