package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func earnedIDs(ms []Milestone) []string {
	var ids []string
	for _, m := range ms {
		if m.Earned {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func TestMilestones(t *testing.T) {
	assert.Empty(t, earnedIDs(Milestones(Summary{Targets: 12})))

	ms := Milestones(Summary{Total: 12, Completed: 12, Targets: 12, AllDone: true})
	assert.Equal(t, []string{"first_vote", "full_day", "sweep"}, earnedIDs(ms))
	assert.Equal(t, 3, CountEarned(ms))

	ms = Milestones(Summary{Total: 1000, Completed: 3, Targets: 12})
	assert.Equal(t, 5, CountEarned(ms))
}
