package ulocale

import (
	"testing"

	"github.com/coregx/uregex/ucd"
	"github.com/coregx/uregex/ufold"
	"github.com/coregx/uregex/unorm"
	"github.com/coregx/uregex/usegment"
)

func TestInvariant_Fields(t *testing.T) {
	inv := Invariant()
	if inv.Name != "" {
		t.Errorf("Name = %q, want empty", inv.Name)
	}
	if inv.DefaultBase != 10 {
		t.Errorf("DefaultBase = %d, want 10", inv.DefaultBase)
	}
	if inv.NegativeSign != '-' {
		t.Errorf("NegativeSign = %q, want '-'", inv.NegativeSign)
	}
	if inv.Table == nil || inv.Normalizer == nil || inv.CaseFold == nil || inv.Segmenter == nil {
		t.Error("Invariant() left a collaborator nil")
	}
}

func TestCurrent_DefaultsToInvariant(t *testing.T) {
	defer SetCurrent(Invariant())
	cur := Current()
	if cur.Name != "" || cur.DefaultBase != 10 {
		t.Errorf("Current() = %+v, want the invariant locale", cur)
	}
}

func TestSetCurrent_RoundTrips(t *testing.T) {
	defer SetCurrent(Invariant())
	custom := Locale{
		Name:         "x-test",
		Table:        ucd.Std,
		Normalizer:   unorm.Default,
		CaseFold:     ufold.Default,
		Segmenter:    usegment.Default,
		DefaultBase:  10,
		NegativeSign: '-',
	}
	SetCurrent(custom)
	got := Current()
	if got.Name != "x-test" {
		t.Errorf("Current().Name = %q, want %q", got.Name, "x-test")
	}
}

func TestSetCurrent_DoesNotAffectAlreadyCapturedLocale(t *testing.T) {
	defer SetCurrent(Invariant())
	captured := Current()
	SetCurrent(Locale{Name: "changed"})
	if captured.Name != "" {
		t.Errorf("previously captured Locale mutated: Name = %q, want empty", captured.Name)
	}
}
