package problemgen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/wordbank"
)

// Every registered template family must produce problems that pass the full
// validator chain, across repeated draws.
func TestAllTemplateFamiliesValidate(t *testing.T) {
	validators := DefaultValidators()

	check := func(t *testing.T, label string, tmpls []TemplateFn) {
		t.Helper()
		c := newTestContext(t, 211, 200, "college")
		for i, fn := range tmpls {
			for draw := 0; draw < 25; draw++ {
				p := fn(c)
				if err := Validate(&p, validators); err != nil {
					t.Fatalf("%s template %d draw %d: %q = %q: %v", label, i, draw, p.Question, p.Answer, err)
				}
			}
		}
	}

	for subject, tmpls := range subjectEquations {
		check(t, string(subject), tmpls)
	}
	for subject, tmpls := range subjectWord {
		check(t, string(subject)+"-word", tmpls)
	}
	for topic, tmpls := range topicTemplates {
		check(t, string(topic), tmpls)
	}
	for op, tmpls := range wordTemplates {
		check(t, string(op)+"-word", tmpls)
	}
}

func TestTrigIdentityAlwaysOne(t *testing.T) {
	c := newTestContext(t, 223, 100, "grade10")
	for i := 0; i < 20; i++ {
		p := trigIdentitySinCos(c)
		if p.Answer != "1" {
			t.Fatalf("identity answer %q, want 1", p.Answer)
		}
	}
}

func TestStatMeanIsExact(t *testing.T) {
	c := newTestContext(t, 227, 100, "grade8")
	for i := 0; i < 100; i++ {
		p := statMean(c)
		list := strings.TrimPrefix(p.Question, "Find the mean of: ")
		sum, count := 0, 0
		for _, f := range strings.Split(list, ", ") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				t.Fatalf("unparseable data value %q in %q", f, p.Question)
			}
			sum += n
			count++
		}
		want, err := strconv.Atoi(p.Answer)
		if err != nil {
			t.Fatalf("non-integer mean %q", p.Answer)
		}
		if sum != want*count {
			t.Fatalf("mean of %q is not %s", list, p.Answer)
		}
	}
}

func TestMeasurementConversionsAreWhole(t *testing.T) {
	bank := wordbank.Default()
	for dim, units := range bank.Units {
		if dim == wordbank.DimTemperature {
			continue
		}
		pairs := cleanUnitPairs(units, 1000)
		if len(pairs) == 0 {
			t.Errorf("dimension %s has no whole-ratio unit pairs", dim)
		}
		for _, pair := range pairs {
			if pair.ratio < 2 {
				t.Errorf("%s→%s ratio %d below 2", pair.from.Name, pair.to.Name, pair.ratio)
			}
		}
	}
}

func TestFractionAnswersReduced(t *testing.T) {
	c := newTestContext(t, 229, 100, "grade5")
	tmpls := topicTemplates[curriculum.TopicFractions]
	for i := 0; i < 200; i++ {
		p := pickTemplate(c, tmpls)(c)
		if p.Kind != KindFraction {
			continue
		}
		parts := strings.SplitN(strings.TrimPrefix(p.Answer, "-"), "/", 2)
		if len(parts) != 2 {
			continue // reduced to a whole number
		}
		n, err1 := strconv.Atoi(parts[0])
		d, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			t.Fatalf("unparseable fraction answer %q", p.Answer)
		}
		if g := gcd(n, d); g != 1 {
			t.Fatalf("answer %q not in lowest terms (gcd %d) for %q", p.Answer, g, p.Question)
		}
	}
}

func TestPrecalcPowersOfI(t *testing.T) {
	c := newTestContext(t, 233, 100, "grade12")
	for i := 0; i < 50; i++ {
		p := precalcComplexMultiplyI(c)
		exp, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(p.Question, "Simplify i^"), "."))
		if err != nil {
			t.Fatalf("unparseable exponent in %q", p.Question)
		}
		want := []string{"1", "i", "-1", "-i"}[exp%4]
		if p.Answer != want {
			t.Fatalf("i^%d = %q, want %q", exp, p.Answer, want)
		}
	}
}
