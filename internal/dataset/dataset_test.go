package dataset

import (
	"testing"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/validation"
)

func TestDefault_PassesSchemaValidation(t *testing.T) {
	rep := validation.New().Collections(Default())
	if !rep.Valid {
		t.Fatalf("expected built-in dataset to validate, got errors: %v", rep.Errors)
	}
}

func TestDefault_SurfacesProfileCounterDrift(t *testing.T) {
	warns := validation.CheckConsistency(Default())

	found := false
	for _, w := range warns {
		if w.Code == validation.WarnProfileTournaments {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s warning, got %v", validation.WarnProfileTournaments, warns)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Skills[0].Name = "changed"

	if Default().Skills[0].Name == "changed" {
		t.Fatalf("Default must not share state between calls")
	}
}
