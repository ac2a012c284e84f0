package catalog

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	cherr "github.com/ninthworld/chargen/internal/errors"
)

// On-disk layout: one TOML file per entity category under the data dir.
const (
	typesFile       = "types.toml"
	descriptorsFile = "descriptors.toml"
	fociFile        = "foci.toml"
	speciesFile     = "species.toml"
	equipmentFile   = "equipment.toml"
	cyphersFile     = "cyphers.toml"
	artifactsFile   = "artifacts.toml"
	odditiesFile    = "oddities.toml"
)

type typesData struct {
	Types []CharacterType `toml:"types"`
}

type descriptorsData struct {
	Descriptors []Descriptor `toml:"descriptors"`
}

type fociData struct {
	Foci []Focus `toml:"foci"`
}

type speciesData struct {
	Species []Species `toml:"species"`
}

type cyphersData struct {
	Cyphers []Cypher `toml:"cyphers"`
}

type artifactsData struct {
	Artifacts []Artifact `toml:"artifacts"`
}

type odditiesData struct {
	Oddities []Oddity `toml:"oddities"`
}

// Load reads every catalog file from dataDir into an immutable Catalog.
// It only checks that files parse; cross-record consistency is the
// validation package's job and must run before the catalog is used.
func Load(dataDir string) (*Catalog, error) {
	c := &Catalog{}

	var types typesData
	if err := loadFile(dataDir, typesFile, &types); err != nil {
		return nil, err
	}
	c.Types = types.Types

	var descriptors descriptorsData
	if err := loadFile(dataDir, descriptorsFile, &descriptors); err != nil {
		return nil, err
	}
	c.Descriptors = descriptors.Descriptors

	var foci fociData
	if err := loadFile(dataDir, fociFile, &foci); err != nil {
		return nil, err
	}
	c.Foci = foci.Foci

	var species speciesData
	if err := loadFile(dataDir, speciesFile, &species); err != nil {
		return nil, err
	}
	c.Species = species.Species

	if err := loadFile(dataDir, equipmentFile, &c.Equipment); err != nil {
		return nil, err
	}

	var cyphers cyphersData
	if err := loadFile(dataDir, cyphersFile, &cyphers); err != nil {
		return nil, err
	}
	c.Cyphers = cyphers.Cyphers

	var artifacts artifactsData
	if err := loadFile(dataDir, artifactsFile, &artifacts); err != nil {
		return nil, err
	}
	c.Artifacts = artifacts.Artifacts

	var oddities odditiesData
	if err := loadFile(dataDir, odditiesFile, &oddities); err != nil {
		return nil, err
	}
	c.Oddities = oddities.Oddities

	return c, nil
}

func loadFile(dataDir, name string, out any) error {
	path := filepath.Join(dataDir, name)

	content, err := os.ReadFile(path)
	if err != nil {
		return cherr.Wrapf(err, "failed to read %s", path)
	}

	if err := toml.Unmarshal(content, out); err != nil {
		return cherr.WrapWithCode(err, cherr.CodeCorruptData, "failed to parse "+path)
	}

	return nil
}
