package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/mathsheets/internal/problemgen"
)

func sampleProblems() []problemgen.Problem {
	return []problemgen.Problem{
		{Question: "7 + 5 = ", Answer: "12", Kind: problemgen.KindInteger},
		{Question: "24 ÷ 6 = ", Answer: "4", Kind: problemgen.KindInteger},
		{Question: "Emma collected 8 stickers and found 3 more. How many does she have now?", Answer: "11", Kind: problemgen.KindInteger},
	}
}

func TestWriteWorksheetProducesPDF(t *testing.T) {
	r := New(Config{})
	path := filepath.Join(t.TempDir(), "worksheet.pdf")
	if err := r.WriteWorksheet("Grade 5 Math Worksheet (Medium)", sampleProblems(), path); err != nil {
		t.Fatalf("WriteWorksheet: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Fatalf("output is not a PDF (starts %q)", data[:min(8, len(data))])
	}
}

func TestWriteAnswerKey(t *testing.T) {
	r := New(Config{AnswerKey: false})
	path := filepath.Join(t.TempDir(), "key.pdf")
	if err := r.WriteAnswerKey("Grade 5 Math Worksheet (Medium)", sampleProblems(), path); err != nil {
		t.Fatalf("WriteAnswerKey: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("answer key not written: %v", err)
	}
}

func TestTitleCasing(t *testing.T) {
	r := New(Config{})
	got := r.Title("grade 5", "medium")
	want := "Grade 5 Math Worksheet (Medium)"
	if got != want {
		t.Fatalf("Title = %q, want %q", got, want)
	}
}
