package sheets

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

// Encode serializes a sheet to TOML. Decode(Encode(sheet)) reproduces
// a normalized sheet exactly: timestamps are stored at second precision
// and empty slices as nil, which is how the assembly session builds them.
func Encode(sheet *character.Sheet) ([]byte, error) {
	if sheet == nil {
		return nil, cherr.InvalidArgument("sheet is required")
	}

	data, err := toml.Marshal(sheet)
	if err != nil {
		return nil, cherr.Wrap(err, "failed to encode sheet")
	}
	return data, nil
}

// Decode parses a TOML sheet, rejecting documents that parse but do
// not describe a usable character
func Decode(data []byte) (*character.Sheet, error) {
	var sheet character.Sheet
	if err := toml.Unmarshal(data, &sheet); err != nil {
		return nil, cherr.WrapWithCode(err, cherr.CodeCorruptData, "failed to decode sheet")
	}

	// TOML renders nil and empty lists identically, so pick one shape
	sheet.Normalize()

	if err := checkDecoded(&sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// checkDecoded guards against truncated or hand-edited files: a
// document can be valid TOML and still be missing the fields every
// sheet has
func checkDecoded(sheet *character.Sheet) error {
	switch {
	case sheet.ID == "":
		return cherr.CorruptDataf("sheet has no id")
	case sheet.Name == "":
		return cherr.CorruptDataf("sheet %s has no name", sheet.ID)
	case sheet.TypeName == "":
		return cherr.CorruptDataf("sheet %s has no type", sheet.ID)
	case sheet.FocusName == "":
		return cherr.CorruptDataf("sheet %s has no focus", sheet.ID)
	case sheet.Descriptor == "" && sheet.Species == "":
		return cherr.CorruptDataf("sheet %s has no descriptor or species", sheet.ID)
	case !sheet.Pools.Maximum.AllPositive():
		return cherr.CorruptDataf("sheet %s has non-positive pool maxima", sheet.ID)
	case sheet.Oddity.Name == "":
		return cherr.CorruptDataf("sheet %s has no oddity", sheet.ID)
	}

	for _, c := range sheet.Cyphers {
		if c.Level <= 0 {
			return cherr.CorruptDataf("sheet %s cypher %q has level %d", sheet.ID, c.Name, c.Level)
		}
	}

	return nil
}
