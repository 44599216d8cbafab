// Package loader retrieves the raw CSV text for every configured question
// source and builds the banks. Retrieval runs concurrently across sources;
// the load is all-or-nothing — if any source fails, the whole load fails
// with one aggregated error rather than serving a partial set of banks.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ontapquiz/backend/internal/csvtable"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
	"github.com/ontapquiz/backend/internal/worker"
)

const fetchWorkers = 3

// SourceError reports one failed source retrieval so the aggregated error
// names every source that could not be read.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Loader fetches sources and projects them into question banks.
type Loader struct {
	client  *http.Client // reused across calls
	mapping questionbank.HeaderMapping
	logger  *slog.Logger
}

// New creates a Loader using the given column mapping.
func New(mapping questionbank.HeaderMapping, logger *slog.Logger) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		mapping: mapping,
		logger:  logger,
	}
}

type fetchOutput struct {
	text string
	err  error
}

// LoadAll retrieves every source concurrently and returns the built banks
// keyed by source key. Any retrieval failure fails the whole load; the
// returned error joins one SourceError per failed source.
func (l *Loader) LoadAll(ctx context.Context, sources []source.Source) (map[string]*questionbank.Bank, error) {
	pool := worker.NewPool[fetchOutput](fetchWorkers, len(sources))
	defer pool.Close()

	labels := make(map[string]string, len(sources))
	for _, src := range sources {
		labels[src.Key] = src.Label
		location := src.Location
		pool.Submit(src.Key, func() fetchOutput {
			text, err := l.fetch(ctx, location)
			return fetchOutput{text: text, err: err}
		})
	}

	texts := make(map[string]string, len(sources))
	var errs []error
	for range sources {
		result := <-pool.Results()
		if result.Output.err != nil {
			errs = append(errs, &SourceError{Source: result.JobID, Err: result.Output.err})
			continue
		}
		texts[result.JobID] = result.Output.text
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	banks := make(map[string]*questionbank.Bank, len(sources))
	for key, text := range texts {
		bank := questionbank.FromRows(key, labels[key], csvtable.Parse(text), l.mapping)
		for _, q := range bank.UnmatchedAnswers() {
			// Data-quality warning only; scoring is left as the file dictates.
			l.logger.Warn("correct answer matches no option",
				"bank", key,
				"question_id", string(q.ID),
			)
		}
		banks[key] = bank
		l.logger.Info("bank loaded", "bank", key, "questions", bank.Size())
	}
	return banks, nil
}

// fetch reads one source, over HTTP for http(s) locations and from the
// filesystem otherwise.
func (l *Loader) fetch(ctx context.Context, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return l.fetchHTTP(ctx, location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
