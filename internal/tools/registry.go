// Package tools exposes the callable operations of the service. Every tool
// validates its parameters against a declared schema, runs its handler, and
// returns the uniform response envelope; no error or panic crosses the tool
// boundary unwrapped.
package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lexindia/precedent/internal/kanoon"
	"github.com/lexindia/precedent/internal/memo"
	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/rank"
)

// Params is the untyped parameter object a tool is invoked with.
type Params map[string]any

// FieldSpec declares one parameter of a tool schema.
type FieldSpec struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"` // string, int, float, bool
	Required bool     `json:"required"`
	Enum     []string `json:"enum,omitempty"`
	Min      float64  `json:"min,omitempty"`
	Max      float64  `json:"max,omitempty"`
	Bounded  bool     `json:"-"`
	Help     string   `json:"help,omitempty"`
}

// Tool pairs a schema with its handler.
type Tool struct {
	Name        string
	Description string
	Fields      []FieldSpec
	run         func(ctx context.Context, p Params) (any, error)
}

// Registry holds the configured tool set and the shared collaborators the
// handlers use.
type Registry struct {
	cfg     *model.Config
	client  *kanoon.Client
	ranker  *rank.Ranker
	builder *memo.Builder
	tools   map[string]*Tool
}

// NewRegistry wires the full tool set. The memo builder's provider may be
// nil (LLM polish disabled).
func NewRegistry(cfg *model.Config, client *kanoon.Client, provider memo.Provider) *Registry {
	r := &Registry{
		cfg:     cfg,
		client:  client,
		ranker:  rank.NewRanker(),
		builder: memo.NewBuilder(model.CitationStyle(cfg.Search.DefaultStyle), provider, cfg.LLM.MaxTokens),
		tools:   make(map[string]*Tool),
	}
	r.register(r.searchTool())
	r.register(r.documentTool())
	r.register(r.principlesTool())
	r.register(r.formatCitationTool())
	r.register(r.validateCitationTool())
	r.register(r.memoTool())
	return r
}

func (r *Registry) register(t *Tool) {
	r.tools[t.Name] = t
}

// Tools lists the registered tools sorted by name.
func (r *Registry) Tools() []*Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Tool, 0, len(names))
	for _, name := range names {
		out = append(out, r.tools[name])
	}
	return out
}

// Invoke validates params against the tool's schema, runs the handler, and
// always returns an envelope.
func (r *Registry) Invoke(ctx context.Context, name string, params Params) (resp *model.ToolResponse) {
	tool, ok := r.tools[name]
	if !ok {
		return model.Failure(name, model.ErrKindInvalidParams, fmt.Sprintf("unknown tool %q", name), "")
	}

	defer func() {
		if rec := recover(); rec != nil {
			resp = model.Failure(name, model.ErrKindInternal, fmt.Sprintf("internal failure: %v", rec), "")
		}
	}()

	if err := validateParams(tool.Fields, params); err != nil {
		return model.Failure(name, model.ErrKindInvalidParams, err.Error(), "")
	}

	data, err := tool.run(ctx, params)
	if err != nil {
		kind, hint := classifyError(err)
		return model.Failure(name, kind, err.Error(), hint)
	}

	return model.Success(name, data)
}

// classifyError maps client and context errors onto the envelope taxonomy
// with a user-actionable hint.
func classifyError(err error) (model.ErrorKind, string) {
	switch {
	case errors.Is(err, kanoon.ErrAuth):
		return model.ErrKindAuth, "check the configured API token (api.token or IKANOON_API_TOKEN)"
	case errors.Is(err, kanoon.ErrRateLimited):
		return model.ErrKindRateLimited, "the API rate limit was hit repeatedly; retry in a few minutes"
	case errors.Is(err, context.DeadlineExceeded):
		return model.ErrKindTimeout, "the upstream call timed out; try a lower max_results"
	case errors.Is(err, kanoon.ErrNetwork):
		return model.ErrKindNetwork, "check network connectivity to api.indiankanoon.org"
	case errors.Is(err, kanoon.ErrUpstream):
		return model.ErrKindUpstream, ""
	}
	return model.ErrKindInternal, ""
}

// validateParams enforces required fields, types, enums, and numeric
// bounds. Unknown parameters are rejected so typos fail loudly.
func validateParams(fields []FieldSpec, params Params) error {
	known := make(map[string]FieldSpec, len(fields))
	for _, f := range fields {
		known[f.Name] = f
	}

	for name := range params {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown parameter %q", name)
		}
	}

	for _, f := range fields {
		value, present := params[f.Name]
		if !present {
			if f.Required {
				return fmt.Errorf("missing required parameter %q", f.Name)
			}
			continue
		}
		if err := checkField(f, value); err != nil {
			return err
		}
	}
	return nil
}

func checkField(f FieldSpec, value any) error {
	switch f.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("parameter %q must be a string", f.Name)
		}
		if len(f.Enum) > 0 {
			for _, e := range f.Enum {
				if s == e {
					return nil
				}
			}
			return fmt.Errorf("parameter %q must be one of %v, got %q", f.Name, f.Enum, s)
		}
	case "int":
		n, ok := toFloat(value)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("parameter %q must be an integer", f.Name)
		}
		if f.Bounded && (n < f.Min || n > f.Max) {
			return fmt.Errorf("parameter %q must be between %g and %g, got %g", f.Name, f.Min, f.Max, n)
		}
	case "float":
		n, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("parameter %q must be a number", f.Name)
		}
		if f.Bounded && (n < f.Min || n > f.Max) {
			return fmt.Errorf("parameter %q must be between %g and %g, got %g", f.Name, f.Min, f.Max, n)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("parameter %q must be a boolean", f.Name)
		}
	}
	return nil
}

// toFloat accepts the numeric types JSON decoding and direct callers
// produce.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

// Typed accessors with defaults, used by handlers after validation.

func (p Params) str(name, fallback string) string {
	if v, ok := p[name].(string); ok && v != "" {
		return v
	}
	return fallback
}

func (p Params) integer(name string, fallback int) int {
	if v, ok := p[name]; ok {
		if n, ok := toFloat(v); ok {
			return int(n)
		}
	}
	return fallback
}

func (p Params) float(name string, fallback float64) float64 {
	if v, ok := p[name]; ok {
		if n, ok := toFloat(v); ok {
			return n
		}
	}
	return fallback
}

func (p Params) boolean(name string, fallback bool) bool {
	if v, ok := p[name].(bool); ok {
		return v
	}
	return fallback
}
