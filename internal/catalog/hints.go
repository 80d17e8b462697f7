package catalog

// Hint tier numbering. Tiers are assigned once at catalog load time and
// are globally unique within a step: question n's tiers start after the
// sum of hint counts of questions 0..n-1, 1-based. The UI presents hints
// per sub-question, but the ledger stores the global tier, so reveal
// ordering stays stable even if the UI regroups questions.

// HintTier pairs a global tier number with its text and the question it
// belongs to.
type HintTier struct {
	Tier          int
	QuestionIndex int
	Text          string
}

// assignTierOffsets computes each question's running tier offset.
func assignTierOffsets(questions []Question) {
	offset := 0
	for i := range questions {
		questions[i].tierOffset = offset
		offset += len(questions[i].Hints)
	}
}

// TierOffset returns the number of tiers consumed by questions preceding
// this one within the same step.
func (q *Question) TierOffset() int { return q.tierOffset }

// Tiers returns the question's hint tiers in reveal order.
func (q *Question) Tiers(questionIndex int) []HintTier {
	tiers := make([]HintTier, 0, len(q.Hints))
	for i, h := range q.Hints {
		tiers = append(tiers, HintTier{
			Tier:          q.tierOffset + i + 1,
			QuestionIndex: questionIndex,
			Text:          h,
		})
	}
	return tiers
}

// HintTiers returns every hint tier of the step in ascending tier order.
// Message steps have no hints.
func HintTiers(s Step) []HintTier {
	ws, ok := s.(*WebsiteStep)
	if !ok {
		return nil
	}
	var tiers []HintTier
	for i := range ws.Questions {
		tiers = append(tiers, ws.Questions[i].Tiers(i)...)
	}
	return tiers
}

// HintByTier returns the hint with the given global tier, or nil.
func HintByTier(s Step, tier int) *HintTier {
	for _, t := range HintTiers(s) {
		if t.Tier == tier {
			return &t
		}
	}
	return nil
}

// TierCount returns the total number of hint tiers on the step.
func TierCount(s Step) int {
	return len(HintTiers(s))
}
