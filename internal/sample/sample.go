package sample

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ybotman/NameThatTangoTune/internal/model"
)

// InsufficientDataError is returned when the requested subset size exceeds
// the number of available catalog records.
type InsufficientDataError struct {
	Requested int
	Available int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("cannot draw %d songs from a catalog of %d", e.Requested, e.Available)
}

// Sampler draws uniform random subsets from a catalog.
//
// The randomness source is injectable so callers can fix a seed for
// reproducible draws:
//
//	s := sample.New(rand.New(rand.NewSource(42)))
//	round, err := s.Pick(songs, 100)
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler using rng as its randomness source.
// A nil rng yields a time-seeded source, so draws differ between runs.
func New(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// FromSeed creates a Sampler from a seed value.
// A zero seed yields a time-seeded, non-reproducible source.
func FromSeed(seed int64) *Sampler {
	if seed == 0 {
		return New(nil)
	}
	return New(rand.New(rand.NewSource(seed)))
}

// Pick returns n distinct records chosen uniformly at random without
// replacement. The result order is the draw order and bears no relation to
// catalog order. Each call draws independently.
//
// Returns *InsufficientDataError when n exceeds len(songs). n == 0 yields
// an empty, non-nil subset.
func (s *Sampler) Pick(songs []model.Song, n int) ([]model.Song, error) {
	if n < 0 {
		return nil, &InsufficientDataError{Requested: n, Available: len(songs)}
	}
	if n > len(songs) {
		return nil, &InsufficientDataError{Requested: n, Available: len(songs)}
	}

	subset := make([]model.Song, 0, n)
	for _, i := range s.rng.Perm(len(songs))[:n] {
		subset = append(subset, songs[i])
	}
	return subset, nil
}
