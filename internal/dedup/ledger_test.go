package dedup

import "testing"

func TestAcceptExactDuplicate(t *testing.T) {
	l := NewLedger(DefaultThreshold)

	if !l.Accept("What is 7 + 5?") {
		t.Fatal("first occurrence rejected")
	}
	if l.Accept("What is 7 + 5?") {
		t.Error("exact duplicate accepted")
	}
	// Case and whitespace changes still count as exact duplicates.
	if l.Accept("  what is 7 + 5?  ") {
		t.Error("case/whitespace variant accepted")
	}
	if l.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", l.Len())
	}
}

func TestAcceptNearDuplicate(t *testing.T) {
	l := NewLedger(DefaultThreshold)

	// 12 words; the second differs in a single number (1 of 12 ≈ 92% shared).
	a := "Emma collected 14 stickers at the fair and gave away 5 stickers"
	b := "Emma collected 16 stickers at the fair and gave away 5 stickers"
	if !l.Accept(a) {
		t.Fatal("first template instance rejected")
	}
	if l.Accept(b) {
		t.Error("numbers-only variant accepted above the threshold")
	}

	// A differently-worded problem shares few words and must pass.
	if !l.Accept("A baker sold 6 trays of 8 cookies. How many cookies in all?") {
		t.Error("distinct problem rejected")
	}
}

func TestAcceptShortEquations(t *testing.T) {
	l := NewLedger(DefaultThreshold)

	// Short equation strings differ enough token-wise to coexist.
	if !l.Accept("7 + 5 = ?") {
		t.Fatal("first equation rejected")
	}
	if !l.Accept("8 + 3 = ?") {
		t.Error("different operands rejected; overlap should be 2/4")
	}
	if l.Accept("7 + 5 = ?") {
		t.Error("repeat equation accepted")
	}
}

func TestRecordBypassesChecks(t *testing.T) {
	l := NewLedger(DefaultThreshold)
	l.Record("What is 2 + 2?")
	l.Record("What is 2 + 2?")
	if l.Len() != 1 {
		t.Errorf("duplicate Record grew the ledger: len = %d", l.Len())
	}
	if !l.SeenExact("what is 2 + 2?") {
		t.Error("recorded question not found")
	}
}

func TestReset(t *testing.T) {
	l := NewLedger(DefaultThreshold)
	l.Accept("What is 9 - 4?")
	l.Reset()
	if l.Len() != 0 {
		t.Fatalf("ledger length after reset = %d, want 0", l.Len())
	}
	if !l.Accept("What is 9 - 4?") {
		t.Error("question from previous run rejected after reset")
	}
}

func TestOverlapScore(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"a b c d", "a b c d", 1.0},
		{"a b c d", "a b c x", 0.75},
		{"a b", "c d", 0.0},
		{"", "a b", 0.0},
		{"a a a b", "a b", 0.5}, // repeated words count once
	}
	for _, tc := range cases {
		if got := overlap(tc.a, tc.b); got != tc.want {
			t.Errorf("overlap(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
