package assembly

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/ninthworld/chargen/internal/dice"
	"github.com/ninthworld/chargen/internal/domain/catalog"
	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
	"github.com/ninthworld/chargen/internal/uuid"
)

// speciesChance is how often a random character is a non-human species
// when the catalog offers any
const speciesChance = 0.2

// Generator rolls complete characters. Every generated character
// passes the full rule check: the generator only ever makes choices a
// player could make.
type Generator struct {
	catalog *catalog.Catalog
	idGen   uuid.Generator
	rng     *rand.Rand
}

// GeneratorConfig holds the dependencies for a generator
type GeneratorConfig struct {
	Catalog     *catalog.Catalog
	IDGenerator uuid.Generator

	// Seed makes generation reproducible; zero seeds from entropy
	Seed int64
}

// NewGenerator creates a generator
func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	if cfg == nil {
		return nil, cherr.InvalidArgument("config is required")
	}
	if cfg.Catalog == nil {
		return nil, cherr.InvalidArgument("catalog is required")
	}
	if cfg.IDGenerator == nil {
		return nil, cherr.InvalidArgument("id generator is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	return &Generator{
		catalog: cfg.Catalog,
		idGen:   cfg.IDGenerator,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate rolls one complete character
func (g *Generator) Generate() (*character.Sheet, error) {
	return g.generate(g.rng)
}

// GenerateBatch rolls n characters concurrently. Each worker gets its
// own random source seeded up front, since the generator's source is
// not safe to share.
func (g *Generator) GenerateBatch(ctx context.Context, n int) ([]*character.Sheet, error) {
	if n <= 0 {
		return nil, cherr.InvalidArgumentf("batch size must be positive, got %d", n)
	}

	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = g.rng.Int63()
	}

	sheets := make([]*character.Sheet, n)
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheet, err := g.generate(rand.New(rand.NewSource(seeds[i])))
			if err != nil {
				return err
			}
			sheets[i] = sheet
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return sheets, nil
}

func (g *Generator) generate(rng *rand.Rand) (*character.Sheet, error) {
	session, err := NewSession(&SessionConfig{
		Catalog:     g.catalog,
		Roller:      dice.NewRandomRoller(rand.NewSource(rng.Int63())),
		IDGenerator: g.idGen,
	})
	if err != nil {
		return nil, err
	}

	if err := session.SetName(RandomName(rng)); err != nil {
		return nil, err
	}

	genders := character.Genders()
	if err := session.SetGender(genders[rng.Intn(len(genders))]); err != nil {
		return nil, err
	}

	t := &g.catalog.Types[rng.Intn(len(g.catalog.Types))]
	if err := session.SetType(t.Name); err != nil {
		return nil, err
	}

	if err := g.pickOrigin(session, rng); err != nil {
		return nil, err
	}

	foci := session.SuitableFoci()
	if len(foci) == 0 {
		return nil, cherr.Invariantf("no focus suits a %s", t.Name)
	}
	if err := session.SetFocus(foci[rng.Intn(len(foci))].Name); err != nil {
		return nil, err
	}

	if err := g.allocateStats(session, rng); err != nil {
		return nil, err
	}

	if err := g.pickAbilities(session, rng, t); err != nil {
		return nil, err
	}

	if err := g.pickNumenera(session, rng); err != nil {
		return nil, err
	}

	oddity := g.catalog.Oddities[rng.Intn(len(g.catalog.Oddities))]
	if err := session.ChooseOddity(oddity.Name); err != nil {
		return nil, err
	}

	if err := g.shop(session, rng); err != nil {
		return nil, err
	}

	return session.Finalize()
}

func (g *Generator) pickOrigin(session *Session, rng *rand.Rand) error {
	useSpecies := len(g.catalog.Species) > 0 &&
		(len(g.catalog.Descriptors) == 0 || rng.Float64() < speciesChance)

	if useSpecies {
		sp := g.catalog.Species[rng.Intn(len(g.catalog.Species))]
		return session.SetSpecies(sp.Name)
	}

	d := g.catalog.Descriptors[rng.Intn(len(g.catalog.Descriptors))]
	return session.SetDescriptor(d.Name)
}

// allocateStats spreads bonus points one at a time. Pools that sit at
// zero or below get points first so the final character is viable.
func (g *Generator) allocateStats(session *Session, rng *rand.Rand) error {
	base := session.BasePools()
	remaining := session.BonusAllotment()
	var bonus character.Pools

	needs := func() []*int {
		var out []*int
		if base.Might+bonus.Might <= 0 {
			out = append(out, &bonus.Might)
		}
		if base.Speed+bonus.Speed <= 0 {
			out = append(out, &bonus.Speed)
		}
		if base.Intellect+bonus.Intellect <= 0 {
			out = append(out, &bonus.Intellect)
		}
		return out
	}

	for remaining > 0 {
		targets := needs()
		if len(targets) == 0 {
			targets = []*int{&bonus.Might, &bonus.Speed, &bonus.Intellect}
		}
		*targets[rng.Intn(len(targets))]++
		remaining--
	}

	if len(needs()) > 0 {
		return cherr.Invariantf("bonus allotment cannot lift every pool above zero for a %s %s",
			session.Draft().Descriptor+session.Draft().Species, session.Draft().TypeName)
	}

	return session.AllocateStats(bonus)
}

func (g *Generator) pickAbilities(session *Session, rng *rand.Rand, t *catalog.CharacterType) error {
	tier1 := t.TierOneAbilities()
	if tier1 == nil {
		return session.ChooseAbilities(nil)
	}

	perm := rng.Perm(len(tier1.Abilities))
	names := make([]string, 0, tier1.Count)
	for _, idx := range perm[:tier1.Count] {
		names = append(names, tier1.Abilities[idx].Name)
	}
	return session.ChooseAbilities(names)
}

func (g *Generator) pickNumenera(session *Session, rng *rand.Rand) error {
	avail := session.CypherLimit()
	if avail > len(g.catalog.Cyphers) {
		avail = len(g.catalog.Cyphers)
	}
	count := 1
	if avail > 1 {
		count = 1 + rng.Intn(avail)
	}

	perm := rng.Perm(len(g.catalog.Cyphers))
	cyphers := make([]string, 0, count)
	for _, idx := range perm[:count] {
		cyphers = append(cyphers, g.catalog.Cyphers[idx].Name)
	}

	var artifacts []string
	if len(g.catalog.Artifacts) > 0 {
		// most characters start with none, a few with one or two
		switch roll := rng.Float64(); {
		case roll < 0.05 && len(g.catalog.Artifacts) > 1:
			perm := rng.Perm(len(g.catalog.Artifacts))
			artifacts = []string{
				g.catalog.Artifacts[perm[0]].Name,
				g.catalog.Artifacts[perm[1]].Name,
			}
		case roll < 0.3:
			artifacts = []string{g.catalog.Artifacts[rng.Intn(len(g.catalog.Artifacts))].Name}
		}
	}

	return session.ChooseNumenera(cyphers, artifacts)
}

// shop browses the catalog in random order, buying affordable items
// until boredom or an empty purse wins
func (g *Generator) shop(session *Session, rng *rand.Rand) error {
	items := g.catalog.ShopItems()
	perm := rng.Perm(len(items))

	for _, idx := range perm {
		item := items[idx]
		if item.Cost > session.Ledger().Remaining() {
			continue
		}
		if rng.Float64() > 0.5 {
			continue
		}
		if err := session.Purchase(item.Name); err != nil {
			return err
		}
	}

	return session.FinishShopping()
}
