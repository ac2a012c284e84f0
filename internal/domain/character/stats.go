package character

import "fmt"

// Pools holds the three stat pools: Might, Speed, Intellect
type Pools struct {
	Might     int `toml:"might"`
	Speed     int `toml:"speed"`
	Intellect int `toml:"intellect"`
}

// Add adds another set of pools to this one
func (p *Pools) Add(other Pools) {
	p.Might += other.Might
	p.Speed += other.Speed
	p.Intellect += other.Intellect
}

// Total returns the combined points across all pools
func (p Pools) Total() int {
	return p.Might + p.Speed + p.Intellect
}

// AllPositive reports whether every pool is strictly greater than zero
func (p Pools) AllPositive() bool {
	return p.Might > 0 && p.Speed > 0 && p.Intellect > 0
}

// NonNegative reports whether no pool is negative
func (p Pools) NonNegative() bool {
	return p.Might >= 0 && p.Speed >= 0 && p.Intellect >= 0
}

func (p Pools) String() string {
	return fmt.Sprintf("Might: %d, Speed: %d, Intellect: %d", p.Might, p.Speed, p.Intellect)
}

// PoolPair tracks current and maximum values for the stat pools.
// A fresh character starts with current equal to maximum.
type PoolPair struct {
	Current Pools `toml:"current"`
	Maximum Pools `toml:"maximum"`
}

// NewPoolPair creates a pool pair with both sides set to the same values
func NewPoolPair(pools Pools) PoolPair {
	return PoolPair{Current: pools, Maximum: pools}
}

// Edge holds per-attribute edge values
type Edge struct {
	Might     int `toml:"might"`
	Speed     int `toml:"speed"`
	Intellect int `toml:"intellect"`
}

// DamageTrack is the character's health state, derived from how many
// current pools sit at zero
type DamageTrack string

const (
	DamageTrackHale        DamageTrack = "hale"
	DamageTrackImpaired    DamageTrack = "impaired"
	DamageTrackDebilitated DamageTrack = "debilitated"
	DamageTrackDead        DamageTrack = "dead"
)

// DetermineDamageTrack derives the damage track from current pool values
func DetermineDamageTrack(current Pools) DamageTrack {
	zeros := 0
	for _, v := range []int{current.Might, current.Speed, current.Intellect} {
		if v <= 0 {
			zeros++
		}
	}

	switch zeros {
	case 0:
		return DamageTrackHale
	case 1:
		return DamageTrackImpaired
	case 2:
		return DamageTrackDebilitated
	default:
		return DamageTrackDead
	}
}
