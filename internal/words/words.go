// Package words holds the static drawing corpus and the random picker
// the word stage draws candidates with.
package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
)

//go:embed words.json
var builtin []byte

// Builtin returns the cleaned embedded corpus.
func Builtin() ([]string, error) {
	var raw []string
	if err := json.Unmarshal(builtin, &raw); err != nil {
		return nil, fmt.Errorf("decode builtin words: %w", err)
	}
	return Clean(raw), nil
}

// Clean trims and lowercases entries, dropping blanks and repeats.
func Clean(raw []string) []string {
	normalized := lo.Map(raw, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	return lo.Uniq(lo.Filter(normalized, func(w string, _ int) bool {
		return w != ""
	}))
}

// Picker draws words uniformly at random, with replacement.
type Picker struct {
	words []string
	rng   *rand.Rand
}

// NewPicker copies words. A nil rng uses a randomly seeded PCG source.
func NewPicker(words []string, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{words: append([]string(nil), words...), rng: rng}
}

// Pick returns one word, or "" for an empty corpus.
func (p *Picker) Pick() string {
	if len(p.words) == 0 {
		return ""
	}
	return p.words[p.rng.IntN(len(p.words))]
}

// Len is the corpus size.
func (p *Picker) Len() int { return len(p.words) }
