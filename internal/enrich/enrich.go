// Package enrich optionally rewrites word-problem prose to a user-chosen
// theme ("space", "dinosaurs") using an LLM. The numbers and the answer are
// never touched: the model only restyles the sentence, its output is
// schema-validated, and any failure falls back to the original prose. The
// core generator stays deterministic because enrichment only runs when the
// user opts in with a theme.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/llm"
	"github.com/abhisek/mathsheets/internal/problemgen"
)

// Rewriter themes word-problem prose through an LLM provider.
type Rewriter struct {
	provider llm.Provider
	theme    string
	log      *zap.Logger
}

// New creates a Rewriter for the given theme. A nil logger is replaced
// with a no-op one.
func New(provider llm.Provider, theme string, log *zap.Logger) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rewriter{provider: provider, theme: theme, log: log}
}

// rewriteSchema constrains the model to a single rewritten question string.
var rewriteSchema = &llm.Schema{
	Name:        "themed-question",
	Description: "A restyled word problem question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 10,
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}

type rewriteResult struct {
	Question string `json:"question"`
}

const systemPrompt = `You restyle elementary math word problems to a theme.
Rules:
- Keep every number exactly as written, in the same roles.
- Keep the mathematical operation and the answer unchanged.
- Keep it one short question ending with a question mark.
- Only change the story: characters, objects, setting.`

// Rewrite returns the problem with its prose restyled to the theme.
// Equation problems and any LLM failure return the problem unchanged.
func (r *Rewriter) Rewrite(ctx context.Context, p problemgen.Problem) problemgen.Problem {
	if !strings.HasSuffix(strings.TrimSpace(p.Question), "?") {
		return p
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("Theme: %s\nProblem: %s\nCorrect answer (do not change): %s",
				r.theme, p.Question, p.Answer),
		}},
		Schema:    rewriteSchema,
		MaxTokens: 300,
	}

	resp, err := r.provider.Generate(llm.WithPurpose(ctx, "theme-rewrite"), req)
	if err != nil {
		r.log.Warn("theme rewrite failed, keeping original prose", zap.Error(err))
		return p
	}

	var result rewriteResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		r.log.Warn("theme rewrite returned malformed JSON, keeping original prose", zap.Error(err))
		return p
	}
	if !numbersPreserved(p.Question, result.Question) {
		r.log.Warn("theme rewrite changed the numbers, keeping original prose",
			zap.String("original", p.Question),
			zap.String("rewritten", result.Question))
		return p
	}

	p.Question = result.Question
	return p
}

// numbersPreserved checks that every numeric token of the original appears
// in the rewrite at least as often. Extra numbers in the rewrite are
// allowed ("3 moons" flavor), missing ones are not.
func numbersPreserved(original, rewritten string) bool {
	want := numberCounts(original)
	got := numberCounts(rewritten)
	for n, count := range want {
		if got[n] < count {
			return false
		}
	}
	return true
}

func numberCounts(s string) map[string]int {
	counts := make(map[string]int)
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.'
	}) {
		f = strings.Trim(f, ".")
		if f != "" {
			counts[f]++
		}
	}
	return counts
}
