package services

import (
	"fmt"
	"strings"
)

const (
	MinChoices = 2
	MaxChoices = 6
)

// ChoiceInput is one proposed answer choice. OrderIndex is optional: leave
// all indices nil and the list's natural order is used, or supply an explicit
// index for every choice.
type ChoiceInput struct {
	ChoiceText string `json:"choice_text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex *int   `json:"order_index,omitempty"`
}

// ValidateChoiceSet checks the structural invariants of a proposed choice set
// and returns a ValidationError enumerating every violation found:
// count outside [2,6], zero or more than one correct choice, blank choice
// text, and duplicate or non-contiguous explicit order indices.
func ValidateChoiceSet(choices []ChoiceInput) error {
	var problems []string

	if len(choices) < MinChoices || len(choices) > MaxChoices {
		problems = append(problems, fmt.Sprintf("choice count must be between %d and %d, got %d", MinChoices, MaxChoices, len(choices)))
	}

	correctCount := 0
	for i, c := range choices {
		if c.IsCorrect {
			correctCount++
		}
		if strings.TrimSpace(c.ChoiceText) == "" {
			problems = append(problems, fmt.Sprintf("choice %d has empty text", i))
		}
	}
	if correctCount == 0 {
		problems = append(problems, "no choice is marked correct")
	} else if correctCount > 1 {
		problems = append(problems, fmt.Sprintf("exactly one choice must be correct, got %d", correctCount))
	}

	if err := validateExplicitIndices(choices); err != "" {
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		return newValidationError(problems...)
	}
	return nil
}

// validateExplicitIndices enforces that explicit indices, when used at all,
// are supplied for every choice and form the contiguous range 0..n-1.
func validateExplicitIndices(choices []ChoiceInput) string {
	explicit := 0
	for _, c := range choices {
		if c.OrderIndex != nil {
			explicit++
		}
	}
	if explicit == 0 {
		return ""
	}
	if explicit != len(choices) {
		return "order indices must be supplied for all choices or none"
	}

	seen := make(map[int]bool, len(choices))
	for _, c := range choices {
		idx := *c.OrderIndex
		if idx < 0 || idx >= len(choices) {
			return fmt.Sprintf("order index %d out of range for %d choices", idx, len(choices))
		}
		if seen[idx] {
			return fmt.Sprintf("duplicate order index %d", idx)
		}
		seen[idx] = true
	}
	return ""
}

// orderIndexFor resolves the effective order index of the i-th choice:
// the explicit index when given, the list position otherwise.
func orderIndexFor(c ChoiceInput, i int) int {
	if c.OrderIndex != nil {
		return *c.OrderIndex
	}
	return i
}
