package catalog

// Baseline returns the built-in catalog. It is the degraded-mode seed
// when no catalog file is configured or the store is unreachable, and
// doubles as the default quest set for a fresh install.
func Baseline() *Catalog {
	defs := []QuestDefinition{
		// Ops (daily routine)
		{ID: "skincare", Name: "Skincare Routine", Group: "ops", RewardXP: 10, Recurrence: RecurrenceDaily,
			Advisor: "Chief of Staff", Message: "Executive presence is maintained daily."},
		{ID: "supplements", Name: "Supplement Stack", Group: "ops", RewardXP: 10, Recurrence: RecurrenceDaily,
			Advisor: "Performance Coach", Message: "Recovery is vital. Magnesium and zinc tonight."},
		{ID: "post_football_stretch", Name: "Post-Football Stretch", Group: "ops", RewardXP: 20, Recurrence: RecurrenceDaily,
			Advisor: "Performance Coach", Message: "Flush the lactic acid before the first tee tomorrow."},
		{ID: "deep_work_block", Name: "Deep Work Block", Group: "ops", RewardXP: 30, RewardRP: 10, Recurrence: RecurrenceDaily,
			Advisor: "Chief of Staff", Message: "Ninety minutes, door closed, phone away."},

		// Maintenance
		{ID: "clean_kitchen", Name: "Clean Kitchen", Group: "maintenance", RewardXP: 25, Recurrence: RecurrencePermanent,
			Advisor: "Diary Secretary", Message: "Reset the engine room before the return to work."},
		{ID: "kit_laundry", Name: "Laundry: Sports Kit Cycle", Group: "maintenance", RewardXP: 20, Recurrence: RecurrencePermanent,
			Advisor: "Diary Secretary", Message: "Football gear out, golf gear ready."},

		// Capital
		{ID: "dd_audit", Name: "Direct Debit Audit", Group: "capital", RewardXP: 60, RewardRP: 20, Recurrence: RecurrencePermanent,
			Advisor: "Portfolio Manager", Message: "Scour the statement. Identify what moves."},
		{ID: "ccj_readiness", Name: "CCJ: Readiness Check", Group: "capital", RewardXP: 50, Recurrence: RecurrencePermanent,
			Advisor: "Portfolio Manager", Message: "Verify the creditor's opening hours. Strike at open."},
		{ID: "inbox_audit", Name: "Readiness: Inbox Audit", Group: "capital", RewardXP: 75, RewardRP: 25, Recurrence: RecurrencePermanent,
			Advisor: "Chief of Staff", Message: "Thirty minutes of recon to remove Friday-morning anxiety."},

		// M&A
		{ID: "photo_audit", Name: "Visual Asset Audit", Group: "ma", RewardXP: 100, Recurrence: RecurrencePermanent,
			Advisor: "Head of M&A", Message: "No shortcuts. The best version, nothing less."},
		{ID: "active_networking", Name: "Active Networking", Group: "ma", RewardXP: 30, Recurrence: RecurrenceDaily,
			Advisor: "Head of M&A", Message: "The market is active. Stay visible."},

		// Stakeholders
		// Score-rule quest: XP is computed from the round score at
		// commit time, so it carries no flat reward.
		{ID: "golf_engagement", Name: "Golf Engagement Round", Group: "stakeholders", Recurrence: RecurrenceDaily,
			Advisor: "Performance Coach", Message: "Focus on the pendulum putt. Stakeholder equity plus fitness XP.",
			Score: &ScoreRule{BaseXP: 40, Cap: 100}},
		{ID: "book_wedding_hotel", Name: "Book Wedding Hotel", Group: "stakeholders", RewardXP: 50, Recurrence: RecurrencePermanent, Urgent: true,
			Advisor: "Diary Secretary", Message: "Deadline approaching. Secure the room."},
		{ID: "match_engagement", Name: "Match Day Engagement", Group: "stakeholders", RewardXP: 25, Recurrence: RecurrenceDaily,
			Advisor: "Diary Secretary", Message: "Logged. Enjoy the game."},
		{ID: "visit_hungerford", Name: "Visit Hungerford", Group: "stakeholders", RewardXP: 150, RewardRP: 50, Recurrence: RecurrencePermanent,
			Advisor: "Chief of Staff", Message: "High-value deployment. Plan it for the weekend."},
	}

	c, err := New(1, defs)
	if err != nil {
		// The baseline is compiled in; a validation failure is a bug.
		panic(err)
	}
	return c
}
