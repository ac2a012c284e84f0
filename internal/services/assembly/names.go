package assembly

import (
	"math/rand"
	"strings"
)

// Ninth World names are built from syllables rather than drawn from a
// fixed list, so generated characters rarely collide.
var (
	nameOnsets = []string{
		"a", "be", "ca", "da", "el", "fa", "ga", "ha", "i", "ja",
		"ka", "la", "ma", "na", "o", "pe", "qui", "ra", "sa", "ta",
		"u", "ve", "wy", "xa", "ya", "za",
	}
	nameMiddles = []string{
		"la", "ri", "no", "ve", "th", "ss", "mi", "dra", "li", "ro",
		"na", "sh", "ka", "lu", "re",
	}
	nameEndings = []string{
		"n", "ra", "th", "lis", "dor", "mai", "s", "ne", "va", "x",
		"on", "ia", "el", "us", "a",
	}
)

// twoPartNameChance is how often a generated character gets a family
// name as well
const twoPartNameChance = 0.7

// RandomName assembles a name from syllables, usually two parts
func RandomName(rng *rand.Rand) string {
	name := randomNamePart(rng)
	if rng.Float64() < twoPartNameChance {
		name += " " + randomNamePart(rng)
	}
	return name
}

func randomNamePart(rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString(nameOnsets[rng.Intn(len(nameOnsets))])
	if rng.Intn(2) == 0 {
		b.WriteString(nameMiddles[rng.Intn(len(nameMiddles))])
	}
	b.WriteString(nameEndings[rng.Intn(len(nameEndings))])

	part := b.String()
	return strings.ToUpper(part[:1]) + part[1:]
}
