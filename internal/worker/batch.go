package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/tools"
)

// Invoker runs a named tool, always returning an envelope.
type Invoker interface {
	Invoke(ctx context.Context, name string, params tools.Params) *model.ToolResponse
}

// ResearchJob runs one tool invocation for one query.
type ResearchJob struct {
	Query   string
	Tool    string
	Params  tools.Params
	Invoker Invoker
}

// Execute executes the research job. Tool-level failures live inside the
// envelope; Execute itself never fails.
func (j *ResearchJob) Execute(ctx context.Context) Result {
	return &ResearchResult{
		Query:    j.Query,
		Response: j.Invoker.Invoke(ctx, j.Tool, j.Params),
	}
}

// ResearchResult pairs a query with its tool response.
type ResearchResult struct {
	Query    string              `json:"query"`
	Response *model.ToolResponse `json:"response"`
}

// GetError reports the envelope error, if any, so pool summaries can count
// failures.
func (r *ResearchResult) GetError() error {
	if r.Response != nil && r.Response.Error != nil {
		return fmt.Errorf("%s: %s", r.Response.Error.Kind, r.Response.Error.Message)
	}
	return nil
}

// BatchProcessor researches multiple queries concurrently. Concurrency at
// this level is safe: request pacing is enforced inside the API client.
type BatchProcessor struct {
	invoker     Invoker
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(invoker Invoker, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 3
	}
	return &BatchProcessor{invoker: invoker, concurrency: concurrency}
}

// Process runs the search_cases tool for every query and returns results
// in completion order.
func (b *BatchProcessor) Process(queries []string, params tools.Params) []*ResearchResult {
	pool := NewPool(b.concurrency, len(queries))
	pool.Start()

	for _, q := range queries {
		jobParams := tools.Params{"query": q}
		for k, v := range params {
			jobParams[k] = v
		}
		pool.Submit(&ResearchJob{
			Query:   q,
			Tool:    "search_cases",
			Params:  jobParams,
			Invoker: b.invoker,
		})
	}

	var results []*ResearchResult
	for _, res := range pool.Wait() {
		if rr, ok := res.(*ResearchResult); ok {
			results = append(results, rr)
		}
	}
	return results
}

// ReadQueries loads one query per line, skipping blanks and # comments.
func ReadQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open queries file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read queries file: %w", err)
	}
	return queries, nil
}
