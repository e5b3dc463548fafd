package catalog

import (
	"testing"

	"vfp/workout-tracker/internal/domain"
)

func TestBuiltInCatalogIsValid(t *testing.T) {
	if err := Validate(Programs()); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
}

func TestProgramForDay(t *testing.T) {
	p, ok := ProgramForDay("Tuesday")
	if !ok {
		t.Fatal("expected a Tuesday program")
	}
	if p.Focus != "Upper Body & Cardio" {
		t.Errorf("unexpected focus %q", p.Focus)
	}
	if len(p.Exercises) != 4 {
		t.Errorf("expected 4 exercises, got %d", len(p.Exercises))
	}

	if _, ok := ProgramForDay("Monday"); ok {
		t.Error("Monday should be a rest day")
	}
}

func TestValidateRejectsEmptyProgram(t *testing.T) {
	bad := []domain.Program{{Day: "Friday"}}
	if err := Validate(bad); err == nil {
		t.Error("expected error for program with no exercises")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	bad := []domain.Program{
		{Day: "Monday", Exercises: []domain.Exercise{
			{ID: "a1", Category: domain.CategoryResistance, Sets: 3},
		}},
		{Day: "Friday", Exercises: []domain.Exercise{
			{ID: "a1", Category: domain.CategoryCardio},
		}},
	}
	if err := Validate(bad); err == nil {
		t.Error("expected error for duplicate exercise id across programs")
	}
}

func TestValidateRejectsZeroSetResistance(t *testing.T) {
	bad := []domain.Program{
		{Day: "Monday", Exercises: []domain.Exercise{
			{ID: "a1", Category: domain.CategoryResistance, Sets: 0},
		}},
	}
	if err := Validate(bad); err == nil {
		t.Error("expected error for resistance exercise with zero sets")
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	bad := []domain.Program{
		{Day: "Monday", Exercises: []domain.Exercise{
			{ID: "a1", Category: "Yoga"},
		}},
	}
	if err := Validate(bad); err == nil {
		t.Error("expected error for unknown category")
	}
}
