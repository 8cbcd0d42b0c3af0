package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdevlin/squadup/go/internal/club/generator"
	"github.com/mdevlin/squadup/go/internal/models"
)

// seededSource makes squad generation deterministic in tests.
type seededSource struct {
	r *rand.Rand
}

func newSeededSource(seed int64) *seededSource {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) IntN(n int) int {
	return s.r.Intn(n)
}

func TestNewSquadPositionQuota(t *testing.T) {
	squad := generator.NewSquad(newSeededSource(1))
	require.Len(t, squad, generator.SquadSize)

	counts := map[models.Position]int{}
	for _, p := range squad {
		counts[p.Position]++
	}

	assert.Equal(t, 3, counts[models.PositionGoalkeeper])
	assert.Equal(t, 6, counts[models.PositionDefender])
	assert.Equal(t, 6, counts[models.PositionMidfielder])
	assert.Equal(t, 5, counts[models.PositionForward])
}

func TestNewSquadAttributesInRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		squad := generator.NewSquad(newSeededSource(seed))
		for _, p := range squad {
			for _, attr := range []int{p.Skill, p.Tactic, p.Physical} {
				assert.GreaterOrEqual(t, attr, 50)
				assert.LessOrEqual(t, attr, 99)
			}
		}
	}
}

func TestNewSquadNamesUniqueWithinRoster(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		squad := generator.NewSquad(newSeededSource(seed))
		seen := map[string]struct{}{}
		for _, p := range squad {
			_, dup := seen[p.Name]
			require.False(t, dup, "duplicate name %q with seed %d", p.Name, seed)
			seen[p.Name] = struct{}{}
		}
	}
}

func TestNewSquadRedrawsOnNameCollision(t *testing.T) {
	// A source that always returns 0 would produce the same name forever, so
	// force a collision on the second player's first draw and check it redraws.
	src := &scriptedSource{values: []int{
		0, 0, 0, 0, 0, // player 1: name(0,0) + three attributes
		0, 0, 1, 1, 0, 0, 0, // player 2: collides, redraws name(1,1)
	}}

	squad := generator.NewSquad(paddedSource{src})
	require.NotEqual(t, squad[0].Name, squad[1].Name)
}

func TestNewSquadDeterministicForSameSource(t *testing.T) {
	a := generator.NewSquad(newSeededSource(42))
	b := generator.NewSquad(newSeededSource(42))
	assert.Equal(t, a, b)
}

func TestCryptoSourceBounds(t *testing.T) {
	var src generator.CryptoSource
	for i := 0; i < 1000; i++ {
		v := src.IntN(50)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 50)
	}
}

type scriptedSource struct {
	values []int
	idx    int
}

func (s *scriptedSource) IntN(n int) int {
	if s.idx >= len(s.values) {
		return -1
	}
	v := s.values[s.idx]
	s.idx++
	return v % n
}

// paddedSource falls back to varied values once the script runs out so the
// remaining 18 players still get unique names.
type paddedSource struct {
	inner *scriptedSource
}

func (p paddedSource) IntN(n int) int {
	if v := p.inner.IntN(n); v >= 0 {
		return v
	}
	p.inner.idx++
	return p.inner.idx % n
}
