// Package validation checks catalog data and characters against the
// assembly rules. Validators never stop at the first problem: they
// accumulate every violation so callers can present them all at once.
package validation

import (
	"fmt"

	"github.com/ninthworld/chargen/internal/domain/character"
)

// Severity splits violations into blocking errors and advisory warnings
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ViolationCode is a stable machine-readable identifier for a rule
type ViolationCode string

const (
	// catalog-level codes
	CodeDuplicateEntry      ViolationCode = "duplicate_entry"
	CodeDanglingReference   ViolationCode = "dangling_reference"
	CodeBadLevelFormula     ViolationCode = "bad_level_formula"
	CodeUnknownSuitableType ViolationCode = "unknown_suitable_type"
	CodeNoSuitableFocus     ViolationCode = "no_suitable_focus"
	CodeInsufficientOptions ViolationCode = "insufficient_options"
	CodeEmptyCollection     ViolationCode = "empty_collection"

	// character-level codes
	CodeMissingName          ViolationCode = "missing_name"
	CodeMissingType          ViolationCode = "missing_type"
	CodeMissingOrigin        ViolationCode = "missing_origin"
	CodeConflictingOrigin    ViolationCode = "conflicting_origin"
	CodeMissingFocus         ViolationCode = "missing_focus"
	CodeUnsuitableFocus      ViolationCode = "unsuitable_focus"
	CodeBonusPointMismatch   ViolationCode = "bonus_point_mismatch"
	CodeNonPositivePool      ViolationCode = "non_positive_pool"
	CodeCypherLimitExceeded  ViolationCode = "cypher_limit_exceeded"
	CodeOddityCountMismatch  ViolationCode = "oddity_count_mismatch"
	CodeBudgetExceeded       ViolationCode = "budget_exceeded"
	CodeUnknownReference     ViolationCode = "unknown_reference"
	CodeAbilityCountMismatch ViolationCode = "ability_count_mismatch"
)

// Violation is one broken rule, routed to the assembly step where it
// can be fixed
type Violation struct {
	Severity Severity
	Code     ViolationCode
	Step     character.Step
	Location string
	Message  string
}

func (v Violation) String() string {
	if v.Location != "" {
		return fmt.Sprintf("[%s] %s (%s): %s", v.Severity, v.Code, v.Location, v.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", v.Severity, v.Code, v.Message)
}

// Report collects every violation found in one validation pass
type Report struct {
	Violations []Violation
}

func (r *Report) add(v Violation) {
	r.Violations = append(r.Violations, v)
}

func (r *Report) errorf(code ViolationCode, step character.Step, location, format string, args ...any) {
	r.add(Violation{
		Severity: SeverityError,
		Code:     code,
		Step:     step,
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) warnf(code ViolationCode, step character.Step, location, format string, args ...any) {
	r.add(Violation{
		Severity: SeverityWarning,
		Code:     code,
		Step:     step,
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any violation is blocking
func (r *Report) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the blocking violations
func (r *Report) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns only the advisory violations
func (r *Report) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			out = append(out, v)
		}
	}
	return out
}

// FirstErrorStep returns the earliest assembly step carrying a blocking
// violation, so a caller can send the user straight to it
func (r *Report) FirstErrorStep() (character.Step, bool) {
	best := -1
	var found character.Step
	for _, v := range r.Violations {
		if v.Severity != SeverityError {
			continue
		}
		if i := v.Step.Index(); i >= 0 && (best == -1 || i < best) {
			best = i
			found = v.Step
		}
	}
	return found, best != -1
}
