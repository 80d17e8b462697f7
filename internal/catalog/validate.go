package catalog

import "fmt"

// Validate checks cross-step invariants the JSON Schema cannot express.
// It is called once by Parse; malformed catalogs never reach the engine.
func Validate(chapters []*Chapter) error {
	for _, ch := range chapters {
		if err := validateChapter(ch); err != nil {
			return fmt.Errorf("chapter %q: %w", ch.ID, err)
		}
	}
	return nil
}

func validateChapter(ch *Chapter) error {
	if len(ch.Steps) == 0 {
		return fmt.Errorf("no steps")
	}

	prev := -1
	for _, s := range ch.Steps {
		meta := s.Meta()
		if meta.Order <= prev {
			return fmt.Errorf("step %q: order %d not strictly increasing (previous %d)", meta.ID, meta.Order, prev)
		}
		prev = meta.Order
		if err := validateStep(s); err != nil {
			return fmt.Errorf("step %q: %w", meta.ID, err)
		}
	}

	if ch.WaitingStepID != "" && ch.IndexOf(ch.WaitingStepID) < 0 {
		return fmt.Errorf("waiting step %q not in chapter", ch.WaitingStepID)
	}

	// Auto triggers need their firing step to exist.
	for _, s := range ch.Steps {
		ms, ok := s.(*MessageStep)
		if !ok {
			continue
		}
		switch ms.Trigger.(type) {
		case QuestCompleteTrigger:
			if ch.WaitingStepID == "" {
				return fmt.Errorf("step %q: quest_complete trigger but chapter has no waiting step", ms.ID)
			}
		case PassphraseTrigger:
			if !hasPassphraseStep(ch) {
				return fmt.Errorf("step %q: passphrase_entered trigger but chapter has no passphrase step", ms.ID)
			}
		}
	}
	return nil
}

func validateStep(s Step) error {
	switch st := s.(type) {
	case *MessageStep:
		if st.Recipient == "" {
			return fmt.Errorf("message step needs a recipient")
		}
	case *WebsiteStep:
		switch cond := st.Condition.(type) {
		case GeofenceCondition:
			if cond.RadiusMeters <= 0 {
				return fmt.Errorf("geofence radius must be positive")
			}
		case CompassCondition:
			if cond.ToleranceDeg <= 0 {
				return fmt.Errorf("compass tolerance must be positive")
			}
		case QuizCondition:
			if len(st.Questions) == 0 {
				return fmt.Errorf("quiz step needs questions")
			}
			for qi, q := range st.Questions {
				if len(q.Options) == 0 {
					return fmt.Errorf("question %d: quiz question needs options", qi)
				}
				if q.Answer < 0 || q.Answer >= len(q.Options) {
					return fmt.Errorf("question %d: answer index %d out of range", qi, q.Answer)
				}
			}
		case PassphraseCondition:
			if cond.Phrase == "" {
				return fmt.Errorf("passphrase step needs a phrase")
			}
		}
	}
	return nil
}

func hasPassphraseStep(ch *Chapter) bool {
	for _, s := range ch.Steps {
		if ws, ok := s.(*WebsiteStep); ok {
			if _, ok := ws.Condition.(PassphraseCondition); ok {
				return true
			}
		}
	}
	return false
}
