package dice

import (
	"fmt"
	"strconv"
	"strings"

	cherr "github.com/ninthworld/chargen/internal/errors"
)

// Formula is a parsed dice formula of the form NdS, NdS+M or NdS-M.
// Catalog entries use these for cypher and artifact levels.
type Formula struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseFormula parses a compact dice formula string. The grammar is strict:
// integers only, no whitespace, exactly one 'd', optional single +M or -M tail.
func ParseFormula(s string) (Formula, error) {
	dPos := strings.IndexByte(s, 'd')
	if dPos < 0 || strings.IndexByte(s[dPos+1:], 'd') >= 0 {
		return Formula{}, cherr.Formatf("invalid dice formula %q", s)
	}

	count, err := parseUint(s[:dPos])
	if err != nil {
		return Formula{}, cherr.Formatf("invalid dice count in formula %q", s)
	}

	rest := s[dPos+1:]
	modifier := 0
	if signPos := strings.IndexAny(rest, "+-"); signPos >= 0 {
		mod, modErr := parseUint(rest[signPos+1:])
		if modErr != nil {
			return Formula{}, cherr.Formatf("invalid modifier in formula %q", s)
		}
		if rest[signPos] == '-' {
			mod = -mod
		}
		modifier = mod
		rest = rest[:signPos]
	}

	sides, err := parseUint(rest)
	if err != nil {
		return Formula{}, cherr.Formatf("invalid dice size in formula %q", s)
	}

	if count < 1 || sides < 1 {
		return Formula{}, cherr.Formatf("dice formula %q must have count and size >= 1", s)
	}

	return Formula{Count: count, Sides: sides, Modifier: modifier}, nil
}

// parseUint parses a non-empty, digits-only string. strconv.Atoi alone is too
// permissive here: it accepts leading signs, which the grammar forbids.
func parseUint(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character in %q", s)
		}
	}
	return strconv.Atoi(s)
}

// Min returns the lowest possible result. May be negative for large negative
// modifiers; that is surfaced to the caller, not clamped.
func (f Formula) Min() int {
	return f.Count + f.Modifier
}

// Max returns the highest possible result
func (f Formula) Max() int {
	return f.Count*f.Sides + f.Modifier
}

// Roll evaluates the formula with the given roller
func (f Formula) Roll(roller Roller) (int, error) {
	result, err := roller.Roll(f.Count, f.Sides, f.Modifier)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (f Formula) String() string {
	switch {
	case f.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", f.Count, f.Sides, f.Modifier)
	case f.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", f.Count, f.Sides, -f.Modifier)
	default:
		return fmt.Sprintf("%dd%d", f.Count, f.Sides)
	}
}

// Evaluate parses and rolls a formula string in one call
func Evaluate(formula string, roller Roller) (int, error) {
	f, err := ParseFormula(formula)
	if err != nil {
		return 0, err
	}
	return f.Roll(roller)
}
