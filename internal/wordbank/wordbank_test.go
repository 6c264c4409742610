package wordbank

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func testPicker(seed int64) *Picker {
	return NewPicker(Default(), rand.New(rand.NewSource(seed)))
}

func TestPickDeterministic(t *testing.T) {
	a := testPicker(42)
	b := testPicker(42)
	for i := 0; i < 20; i++ {
		if got, want := a.Name(), b.Name(); got != want {
			t.Fatalf("draw %d: %q != %q under same seed", i, got, want)
		}
	}
}

func TestPickNWithoutReplacement(t *testing.T) {
	p := testPicker(1)
	for trial := 0; trial < 50; trial++ {
		names := PickN(p, p.Bank().Names, 5)
		if len(names) != 5 {
			t.Fatalf("PickN returned %d items, want 5", len(names))
		}
		seen := make(map[string]bool, 5)
		for _, n := range names {
			if seen[n] {
				t.Fatalf("PickN returned duplicate %q", n)
			}
			seen[n] = true
		}
	}
}

func TestPickNClampsToPoolSize(t *testing.T) {
	p := testPicker(1)
	pool := []string{"a", "b", "c"}
	got := PickN(p, pool, 10)
	if len(got) != 3 {
		t.Errorf("PickN over-ask returned %d items, want 3", len(got))
	}
}

func TestPickEmptyPool(t *testing.T) {
	p := testPicker(1)
	if got := Pick(p, []string(nil)); got != "" {
		t.Errorf("Pick on empty pool = %q, want empty", got)
	}
}

func TestUnitPair(t *testing.T) {
	p := testPicker(7)
	from, to, ok := p.UnitPair(DimLength)
	if !ok {
		t.Fatal("UnitPair(length) not ok")
	}
	if from.Name == to.Name {
		t.Errorf("UnitPair returned the same unit twice: %q", from.Name)
	}
	if from.ToBase <= 0 || to.ToBase <= 0 {
		t.Errorf("unit conversion factors must be positive: %v %v", from.ToBase, to.ToBase)
	}

	if _, _, ok := p.UnitPair(Dimension("luminosity")); ok {
		t.Error("unknown dimension should not yield a pair")
	}
}

func TestLoadCustomBank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	content := `{
		"names": ["Astrid"],
		"places": ["the space station"],
		"categories": [
			{"name": "moon rocks", "items": ["gray moon rocks"], "container": "crates"}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base := Default()
	merged, err := Load(path, base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(merged.Names) != len(base.Names)+1 {
		t.Errorf("merged names = %d, want %d", len(merged.Names), len(base.Names)+1)
	}
	if merged.Categories[len(merged.Categories)-1].Name != "moon rocks" {
		t.Error("custom category not appended")
	}
	// Base must be untouched.
	if len(base.Categories) == len(merged.Categories) {
		t.Error("Load mutated the base bank")
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"not json", `{{`},
		{"wrong field type", `{"names": "Astrid"}`},
		{"unknown field", `{"colors": ["red"]}`},
		{"category missing container", `{"categories": [{"name": "rocks", "items": ["a"]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, Default()); err == nil {
				t.Errorf("Load accepted invalid file: %s", tc.content)
			}
		})
	}
}
