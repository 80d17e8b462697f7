package catalog

import "testing"

// twoQuestionStep has sub-questions with 2 and 3 hints; the second
// question's tiers must start after the first question's.
func twoQuestionStep() *WebsiteStep {
	ws := &WebsiteStep{
		StepMeta:  StepMeta{ID: "puzzle", Order: 0},
		Condition: QuizCondition{},
		Questions: []Question{
			{Text: "q1", Options: []string{"a", "b"}, Answer: 0, Hints: []string{"h1", "h2"}},
			{Text: "q2", Options: []string{"a", "b"}, Answer: 1, Hints: []string{"h3", "h4", "h5"}},
		},
	}
	assignTierOffsets(ws.Questions)
	return ws
}

func TestHintTierOffsets(t *testing.T) {
	ws := twoQuestionStep()

	q1 := ws.Questions[0].Tiers(0)
	q2 := ws.Questions[1].Tiers(1)

	wantQ1 := []int{1, 2}
	wantQ2 := []int{3, 4, 5}
	for i, tier := range q1 {
		if tier.Tier != wantQ1[i] {
			t.Errorf("q1 tier[%d] = %d, want %d", i, tier.Tier, wantQ1[i])
		}
	}
	for i, tier := range q2 {
		if tier.Tier != wantQ2[i] {
			t.Errorf("q2 tier[%d] = %d, want %d", i, tier.Tier, wantQ2[i])
		}
		if tier.QuestionIndex != 1 {
			t.Errorf("q2 tier[%d].QuestionIndex = %d, want 1", i, tier.QuestionIndex)
		}
	}
}

func TestHintTiersAscendingAndComplete(t *testing.T) {
	ws := twoQuestionStep()
	tiers := HintTiers(ws)
	if len(tiers) != 5 {
		t.Fatalf("tier count = %d, want 5", len(tiers))
	}
	for i, tier := range tiers {
		if tier.Tier != i+1 {
			t.Errorf("tiers[%d].Tier = %d, want %d", i, tier.Tier, i+1)
		}
	}
	if TierCount(ws) != 5 {
		t.Errorf("TierCount = %d, want 5", TierCount(ws))
	}
}

func TestHintByTier(t *testing.T) {
	ws := twoQuestionStep()
	h := HintByTier(ws, 4)
	if h == nil {
		t.Fatal("tier 4 not found")
	}
	if h.Text != "h4" {
		t.Errorf("tier 4 text = %q, want h4", h.Text)
	}
	if HintByTier(ws, 6) != nil {
		t.Error("tier 6 should not exist")
	}
}

func TestMessageStepsHaveNoHints(t *testing.T) {
	if got := HintTiers(msgStep("m", 0)); got != nil {
		t.Errorf("message step tiers = %v, want nil", got)
	}
}
