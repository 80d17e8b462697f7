package catalog

import "time"

// Channel identifies how a message step reaches its recipient.
type Channel string

const (
	ChannelLetter Channel = "letter"
	ChannelEmail  Channel = "email"
	ChannelSMS    Channel = "sms"
	ChannelMMS    Channel = "mms"
)

// Valid reports whether c is a known message channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelLetter, ChannelEmail, ChannelSMS, ChannelMMS:
		return true
	}
	return false
}

// StepMeta holds the fields common to every step variant.
type StepMeta struct {
	ID    string
	Order int
	Name  string
}

// Step is the tagged union over message and website steps. The two
// concrete types are MessageStep and WebsiteStep; consumers type-switch
// and the compiler keeps the switch exhaustive via the sealed marker.
type Step interface {
	Meta() StepMeta
	step()
}

// MessageStep is a physical or electronic message the game sends to the
// player (or a companion recipient) when its trigger resolves.
type MessageStep struct {
	StepMeta
	Channel   Channel
	Recipient string
	Body      string
	MediaURL  string
	Trigger   Trigger
	Companion *Companion
}

func (s *MessageStep) Meta() StepMeta { return s.StepMeta }
func (s *MessageStep) step()          {}

// Companion is a secondary message fanned out alongside a message step.
// It shares the step's trigger but is tracked as its own attempt and may
// fail independently.
type Companion struct {
	Channel   Channel
	Recipient string
	Body      string
	MediaURL  string
}

// WebsiteStep is an in-app puzzle screen the player completes by
// satisfying its advance condition.
type WebsiteStep struct {
	StepMeta
	Component string
	Condition AdvanceCondition
	Questions []Question
}

func (s *WebsiteStep) Meta() StepMeta { return s.StepMeta }
func (s *WebsiteStep) step()          {}

// Question is one sub-question of a website step. Options and Answer are
// only meaningful for quiz steps; Hints feed the hint ledger.
type Question struct {
	Text    string
	Options []string
	Answer  int
	Hints   []string

	// tierOffset is assigned at catalog load time: the sum of hint
	// counts of all preceding questions in the same step.
	tierOffset int
}

// Trigger governs when a message step becomes eligible to send.
// Concrete types: ManualTrigger, ScheduledTrigger, QuestCompleteTrigger,
// PassphraseTrigger.
type Trigger interface {
	trigger()
}

// ManualTrigger requires an explicit admin send. RequiresLocation marks
// steps the admin should only send once the player is physically in place.
type ManualTrigger struct {
	RequiresLocation bool
}

func (ManualTrigger) trigger() {}

// ScheduledTrigger requires the admin to pick a morning offset; the
// dispatcher then computes the concrete send-eligible time.
type ScheduledTrigger struct{}

func (ScheduledTrigger) trigger() {}

// QuestCompleteTrigger fires when progression reaches the chapter's
// waiting step.
type QuestCompleteTrigger struct{}

func (QuestCompleteTrigger) trigger() {}

// PassphraseTrigger fires when the chapter's passphrase step is
// completed, after Delay has been applied to the attempt's eligible time.
type PassphraseTrigger struct {
	Delay time.Duration
}

func (PassphraseTrigger) trigger() {}

// AdvanceCondition is the proof a player must supply to complete a
// website step. Concrete types: GeofenceCondition, TapCondition,
// QuizCondition, CompassCondition, PassphraseCondition, AdminCondition.
type AdvanceCondition interface {
	condition()
}

// GeofenceCondition requires the player to be within RadiusMeters of the
// target coordinate.
type GeofenceCondition struct {
	Lat          float64
	Lng          float64
	RadiusMeters float64
}

func (GeofenceCondition) condition() {}

// TapCondition advances on any player confirmation.
type TapCondition struct{}

func (TapCondition) condition() {}

// QuizCondition advances once the client reports the step's questions
// answered; answers are audited but correctness is evaluated client-side
// against the catalog.
type QuizCondition struct{}

func (QuizCondition) condition() {}

// CompassCondition requires the device heading to align with BearingDeg
// within ToleranceDeg.
type CompassCondition struct {
	BearingDeg   float64
	ToleranceDeg float64
}

func (CompassCondition) condition() {}

// PassphraseCondition requires the player to enter Phrase (compared
// case-insensitively, whitespace-trimmed).
type PassphraseCondition struct {
	Phrase string
}

func (PassphraseCondition) condition() {}

// AdminCondition means only an admin advance moves past the step.
type AdminCondition struct{}

func (AdminCondition) condition() {}
