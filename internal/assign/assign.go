package assign

import (
	"fmt"
	"math/rand/v2"

	kerrors "github.com/PolarWolf314/secretsanta/internal/errors"
	"github.com/PolarWolf314/secretsanta/internal/participants"
)

// MinParticipants is the smallest list that admits a derangement.
const MinParticipants = 2

// Assignment pairs a Secret Santa with the person they buy a gift for.
// Giver is the one who gets notified.
type Assignment struct {
	Giver     participants.Participant `json:"giver"`
	Recipient participants.Participant `json:"recipient"`
}

// Engine draws assignments from a shuffled participant list.
type Engine struct {
	rng  *rand.Rand
	seed uint64
}

// New returns an Engine seeded with seed. A zero seed is replaced by a
// time-based one; Seed reports the value actually used.
func New(seed uint64) *Engine {
	rng, used := NewSeededRNG(seed)
	return &Engine{rng: rng, seed: used}
}

// Seed returns the seed driving the shuffle.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Assign shuffles a copy of people and pairs each position with the one before
// it, wrapping around, so the result is a single cycle through everyone.
//
// Every participant appears exactly once as giver and once as recipient and no
// position is paired with itself. Only single N-cycles are produced, so this is
// not a uniform sample over all derangements.
//
// The input slice is not modified. Returns ErrTooFewParticipants when fewer
// than MinParticipants are given.
func (e *Engine) Assign(people []participants.Participant) ([]Assignment, error) {
	if len(people) < MinParticipants {
		return nil, fmt.Errorf("%w: got %d", kerrors.ErrTooFewParticipants, len(people))
	}

	shuffled := make([]participants.Participant, len(people))
	copy(shuffled, people)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	pairs := make([]Assignment, n)
	for i := range shuffled {
		pairs[i] = Assignment{
			Giver:     shuffled[i],
			Recipient: shuffled[(i-1+n)%n],
		}
	}
	return pairs, nil
}
