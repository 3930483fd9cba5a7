package tracker

// Milestone is a badge derived from the lifetime total and today's sweep.
type Milestone struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// Milestones returns every milestone with its earned status for s.
func Milestones(s Summary) []Milestone {
	return []Milestone{
		totalMilestone(s, "first_vote", "First Vote", "Cast 1 vote", "🌱", 1),
		totalMilestone(s, "full_day", "Dozen", "Cast 12 votes", "🗳️", 12),
		totalMilestone(s, "regular", "Regular", "Cast 100 votes", "⭐", 100),
		totalMilestone(s, "devoted", "Devoted", "Cast 500 votes", "🌟", 500),
		totalMilestone(s, "legend", "Legend", "Cast 1,000 votes", "🏆", 1000),
		{ID: "sweep", Name: "Clean Sweep", Description: "Vote on every site today", Icon: "🧹", Earned: s.AllDone},
	}
}

// CountEarned returns how many of ms are earned.
func CountEarned(ms []Milestone) int {
	n := 0
	for _, m := range ms {
		if m.Earned {
			n++
		}
	}
	return n
}

func totalMilestone(s Summary, id, name, desc, icon string, total int) Milestone {
	return Milestone{ID: id, Name: name, Description: desc, Icon: icon, Earned: s.Total >= total}
}
