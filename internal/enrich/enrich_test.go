package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathsheets/internal/llm"
	"github.com/abhisek/mathsheets/internal/problemgen"
)

func wordProblem() problemgen.Problem {
	return problemgen.Problem{
		Question: "Maya has 7 apples and buys 5 more. How many apples does she have?",
		Answer:   "12",
		Kind:     problemgen.KindInteger,
	}
}

func TestRewriteReplacesProse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"An astronaut has 7 moon rocks and collects 5 more. How many moon rocks does she have?"}`),
	})
	r := New(mock, "space", nil)

	out := r.Rewrite(context.Background(), wordProblem())
	if out.Question != "An astronaut has 7 moon rocks and collects 5 more. How many moon rocks does she have?" {
		t.Fatalf("question not rewritten: %q", out.Question)
	}
	if out.Answer != "12" {
		t.Fatalf("answer changed: %q", out.Answer)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestRewriteSendsThemeAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"A dinosaur has 7 eggs and finds 5 more. How many eggs does it have?"}`),
	})
	r := New(mock, "dinosaurs", nil)

	r.Rewrite(context.Background(), wordProblem())

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "themed-question" {
		t.Fatalf("expected themed-question schema, got %+v", req.Schema)
	}
	content := req.Messages[0].Content
	for _, want := range []string{"dinosaurs", "12", "7 apples"} {
		if !strings.Contains(content, want) {
			t.Errorf("prompt missing %q: %s", want, content)
		}
	}
}

func TestRewriteSkipsEquations(t *testing.T) {
	mock := llm.NewMockProvider()
	r := New(mock, "space", nil)

	p := problemgen.Problem{Question: "7 + 5 = ", Answer: "12", Kind: problemgen.KindInteger}
	out := r.Rewrite(context.Background(), p)
	if out.Question != p.Question {
		t.Fatalf("equation question changed: %q", out.Question)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no LLM calls for equations, got %d", mock.CallCount())
	}
}

func TestRewriteFallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("boom"),
	})
	r := New(mock, "space", nil)

	in := wordProblem()
	out := r.Rewrite(context.Background(), in)
	if out.Question != in.Question {
		t.Fatalf("expected original prose on error, got %q", out.Question)
	}
}

func TestRewriteFallsBackOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	r := New(mock, "space", nil)

	in := wordProblem()
	out := r.Rewrite(context.Background(), in)
	if out.Question != in.Question {
		t.Fatalf("expected original prose on malformed JSON, got %q", out.Question)
	}
}

func TestRewriteFallsBackWhenNumbersChange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"An astronaut has 8 moon rocks and collects 5 more. How many moon rocks does she have?"}`),
	})
	r := New(mock, "space", nil)

	in := wordProblem()
	out := r.Rewrite(context.Background(), in)
	if out.Question != in.Question {
		t.Fatalf("expected original prose when numbers change, got %q", out.Question)
	}
}

func TestNumbersPreserved(t *testing.T) {
	cases := []struct {
		original, rewritten string
		want                bool
	}{
		{"7 apples and 5 more", "7 rocks and 5 more", true},
		{"7 apples and 5 more", "5 rocks and 7 more", true},
		{"7 apples and 5 more", "7 rocks", false},
		{"3 bags of 3", "3 crates of 3", true},
		{"3 bags of 3", "one crate of 3", false},
		{"7 apples", "7 apples on 3 trees", true},
		{"1.5 km", "1.5 parsecs", true},
		{"1.5 km", "15 parsecs", false},
	}
	for _, tc := range cases {
		if got := numbersPreserved(tc.original, tc.rewritten); got != tc.want {
			t.Errorf("numbersPreserved(%q, %q) = %v, want %v", tc.original, tc.rewritten, got, tc.want)
		}
	}
}
