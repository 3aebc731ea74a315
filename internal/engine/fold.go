package engine

// Economy constants.
const (
	// LevelStepXP is the XP width of one level: thresholds sit at
	// 500, 1000, 1500, …
	LevelStepXP = 500

	// CreditXPDivisor and CreditRPDivisor convert per-event rewards
	// into credits: floor(xp/10) + floor(rp/5), summed per event.
	CreditXPDivisor = 10
	CreditRPDivisor = 5
)

// rankTable maps XP thresholds to titles. Rank is the title of the
// highest threshold not exceeding total XP. Ordered ascending.
var rankTable = []struct {
	Threshold int
	Title     string
}{
	{0, "Intern"},
	{250, "Analyst"},
	{500, "Associate"},
	{1000, "Manager"},
	{2000, "Director"},
	{3500, "Vice President"},
	{5000, "Chief Executive"},
	{8000, "Chairman"},
}

// CreditsForEvent computes the credits one event contributes. Credits
// are derived per event and summed, never floor-of-grand-total, so an
// incremental recompute and a full replay always agree.
func CreditsForEvent(e CompletionEvent) int {
	return e.RewardXP/CreditXPDivisor + e.RewardRP/CreditRPDivisor
}

// LevelForTotalXP returns the smallest level L >= 1 such that
// totalXP < L * LevelStepXP.
func LevelForTotalXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/LevelStepXP + 1
}

// XPRequiredForLevel returns the total XP threshold at which the given
// level is left behind (i.e. level+1 begins).
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * LevelStepXP
}

// RankForTotalXP returns the title of the highest rank threshold not
// exceeding totalXP.
func RankForTotalXP(totalXP int) string {
	rank := rankTable[0].Title
	for _, r := range rankTable {
		if totalXP >= r.Threshold {
			rank = r.Title
		}
	}
	return rank
}

// Fold replays the full ordered log into a ProgressionState. It is a
// pure function of the events: same log in, bit-identical state out.
// Reward values come from the events themselves (captured at commit),
// never from the current catalog, so the fold is stable across catalog
// versions.
func Fold(events []CompletionEvent) ProgressionState {
	var xp, rp, credits int
	for _, e := range events {
		xp += e.RewardXP
		rp += e.RewardRP
		credits += CreditsForEvent(e)
	}
	return ProgressionState{
		TotalXP: xp,
		TotalRP: rp,
		Credits: credits,
		Level:   LevelForTotalXP(xp),
		Rank:    RankForTotalXP(xp),
	}
}
