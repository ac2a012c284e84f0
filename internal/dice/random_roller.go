package dice

import (
	"math/rand"
	"sync"

	cherr "github.com/ninthworld/chargen/internal/errors"
)

// randomRoller implements Roller with an injected random source.
// The source is explicit so batch generation and tests control their own
// sequences instead of sharing a hidden process-wide generator.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a Roller backed by the given random source
func NewRandomRoller(src rand.Source) Roller {
	return &randomRoller{rng: rand.New(src)}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, cherr.InvalidArgumentf("invalid dice count %d", count)
	}

	if sides < 1 {
		return nil, cherr.InvalidArgumentf("invalid dice size %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	total := 0
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total:    total + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: total,
	}, nil
}
