// Package catalog holds the static weekly exercise program. The table is
// externally authored reference data; it is validated once at startup and
// read-only afterwards.
package catalog

import (
	"fmt"

	"vfp/workout-tracker/internal/domain"
)

// Programs returns the full weekly schedule in day order.
func Programs() []domain.Program {
	return weeklyProgram
}

// ProgramForDay returns the program scheduled for the given weekday name
// ("Tuesday", "Saturday", ...). The second return is false on rest days.
func ProgramForDay(day string) (domain.Program, bool) {
	for _, p := range weeklyProgram {
		if p.Day == day {
			return p, true
		}
	}
	return domain.Program{}, false
}

// Validate checks the catalog's structural invariants: every program has at
// least one exercise, exercise IDs are globally unique, resistance exercises
// plan at least one set, and rest periods are non-negative. Malformed
// reference data would corrupt the log-building invariant, so it is rejected
// at load time rather than tolerated.
func Validate(programs []domain.Program) error {
	seen := make(map[string]string) // exercise id -> day
	for _, p := range programs {
		if len(p.Exercises) == 0 {
			return fmt.Errorf("program %q has no exercises", p.Day)
		}
		for _, ex := range p.Exercises {
			if ex.ID == "" {
				return fmt.Errorf("program %q: exercise %q has empty id", p.Day, ex.Name)
			}
			if prior, dup := seen[ex.ID]; dup {
				return fmt.Errorf("duplicate exercise id %q (in %q and %q)", ex.ID, prior, p.Day)
			}
			seen[ex.ID] = p.Day
			if ex.DefaultRest < 0 {
				return fmt.Errorf("exercise %q: negative defaultRest", ex.ID)
			}
			switch ex.Category {
			case domain.CategoryResistance:
				if ex.Sets < 1 {
					return fmt.Errorf("exercise %q: resistance exercise needs at least one set", ex.ID)
				}
			case domain.CategoryCardio, domain.CategoryHIIT:
				// single-entry exercises, no set count to check
			default:
				return fmt.Errorf("exercise %q: unknown category %q", ex.ID, ex.Category)
			}
		}
	}
	return nil
}
