// Package generator produces the starting squad for a newly created team.
// It is pure: callers persist the returned specs in the same transaction that
// creates the team row.
package generator

import (
	"github.com/mdevlin/squadup/go/internal/models"
)

const (
	// SquadSize is the number of players generated per team.
	SquadSize = 20

	attrMin = 50
	attrMax = 99
)

// quota fixes the positional makeup of every generated squad.
var quota = []struct {
	position models.Position
	count    int
}{
	{models.PositionGoalkeeper, 3},
	{models.PositionDefender, 6},
	{models.PositionMidfielder, 6},
	{models.PositionForward, 5},
}

// PlayerSpec is one generated player, ready to be persisted.
type PlayerSpec struct {
	Name     string
	Position models.Position
	Skill    int
	Tactic   int
	Physical int
}

// NewSquad generates exactly 20 player specs: 3 GK, 6 DF, 6 MD, 5 FW.
// Names are drawn from the fixed pools and redrawn on collision, so a roster
// never contains duplicate names; uniqueness across squads is not guaranteed.
// Attributes are independently uniform in [50,99].
func NewSquad(src Source) []PlayerSpec {
	used := make(map[string]struct{}, SquadSize)
	specs := make([]PlayerSpec, 0, SquadSize)

	for _, q := range quota {
		for i := 0; i < q.count; i++ {
			specs = append(specs, PlayerSpec{
				Name:     drawName(src, used),
				Position: q.position,
				Skill:    attribute(src),
				Tactic:   attribute(src),
				Physical: attribute(src),
			})
		}
	}
	return specs
}

func attribute(src Source) int {
	return attrMin + src.IntN(attrMax-attrMin+1)
}

func drawName(src Source, used map[string]struct{}) string {
	for {
		name := firstNames[src.IntN(len(firstNames))] + " " + lastNames[src.IntN(len(lastNames))]
		if _, taken := used[name]; taken {
			continue
		}
		used[name] = struct{}{}
		return name
	}
}
