package catalog

import "testing"

func msgStep(id string, order int) Step {
	return &MessageStep{
		StepMeta:  StepMeta{ID: id, Order: order},
		Channel:   ChannelSMS,
		Recipient: "+47",
		Trigger:   ManualTrigger{},
	}
}

func TestValidateOrdering(t *testing.T) {
	tests := []struct {
		name    string
		steps   []Step
		wantErr bool
	}{
		{"ascending", []Step{msgStep("a", 0), msgStep("b", 1), msgStep("c", 2)}, false},
		{"gaps are fine", []Step{msgStep("a", 0), msgStep("b", 5)}, false},
		{"duplicate order", []Step{msgStep("a", 1), msgStep("b", 1)}, true},
		{"descending", []Step{msgStep("a", 2), msgStep("b", 1)}, true},
		{"empty chapter", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]*Chapter{{ID: "c", Steps: tt.steps}})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWaitingStepMustExist(t *testing.T) {
	ch := &Chapter{ID: "c", WaitingStepID: "ghost", Steps: []Step{msgStep("a", 0)}}
	if err := Validate([]*Chapter{ch}); err == nil {
		t.Error("unknown waiting step accepted")
	}
}

func TestValidateQuestCompleteNeedsWaitingStep(t *testing.T) {
	ch := &Chapter{ID: "c", Steps: []Step{
		msgStep("a", 0),
		&MessageStep{
			StepMeta:  StepMeta{ID: "b", Order: 1},
			Channel:   ChannelEmail,
			Recipient: "x@y.z",
			Trigger:   QuestCompleteTrigger{},
		},
	}}
	if err := Validate([]*Chapter{ch}); err == nil {
		t.Error("quest_complete trigger without waiting step accepted")
	}
}

func TestValidateQuizNeedsSaneQuestions(t *testing.T) {
	quiz := func(qs []Question) *Chapter {
		return &Chapter{ID: "c", Steps: []Step{
			&WebsiteStep{
				StepMeta:  StepMeta{ID: "q", Order: 0},
				Condition: QuizCondition{},
				Questions: qs,
			},
		}}
	}

	if err := Validate([]*Chapter{quiz(nil)}); err == nil {
		t.Error("quiz without questions accepted")
	}
	if err := Validate([]*Chapter{quiz([]Question{
		{Text: "pick", Options: []string{"a", "b"}, Answer: 2},
	})}); err == nil {
		t.Error("answer index out of range accepted")
	}
	if err := Validate([]*Chapter{quiz([]Question{
		{Text: "pick", Options: []string{"a", "b"}, Answer: 1},
	})}); err != nil {
		t.Errorf("valid quiz rejected: %v", err)
	}
}

func TestValidateConditionBounds(t *testing.T) {
	web := func(cond AdvanceCondition) *Chapter {
		return &Chapter{ID: "c", Steps: []Step{
			&WebsiteStep{StepMeta: StepMeta{ID: "w", Order: 0}, Condition: cond},
		}}
	}

	if err := Validate([]*Chapter{web(GeofenceCondition{RadiusMeters: 0})}); err == nil {
		t.Error("zero geofence radius accepted")
	}
	if err := Validate([]*Chapter{web(CompassCondition{ToleranceDeg: 0})}); err == nil {
		t.Error("zero compass tolerance accepted")
	}
	if err := Validate([]*Chapter{web(PassphraseCondition{})}); err == nil {
		t.Error("empty passphrase accepted")
	}
}
