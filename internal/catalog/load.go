package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedVersion is the catalog document major version this build
// understands. Documents with a different major version are rejected.
const SupportedVersion = "v1"

// Raw document shapes. Kind-tagged variants are resolved in the convert
// step after schema validation has pinned the structure down.

type rawDocument struct {
	Version  string       `json:"version"`
	Chapters []rawChapter `json:"chapters"`
}

type rawChapter struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	WaitingStep string    `json:"waiting_step"`
	Steps       []rawStep `json:"steps"`
}

type rawStep struct {
	ID        string         `json:"id"`
	Order     int            `json:"order"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Recipient string         `json:"recipient"`
	Body      string         `json:"body"`
	MediaURL  string         `json:"media_url"`
	Trigger   *rawTrigger    `json:"trigger"`
	Companion *rawCompanion  `json:"companion"`
	Component string         `json:"component"`
	Advance   *rawCondition  `json:"advance"`
	Questions []rawQuestion  `json:"questions"`
}

type rawTrigger struct {
	Kind             string `json:"kind"`
	RequiresLocation bool   `json:"requires_location"`
	DelayMinutes     int    `json:"delay_minutes"`
}

type rawCompanion struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
	MediaURL  string `json:"media_url"`
}

type rawCondition struct {
	Kind         string  `json:"kind"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusM      float64 `json:"radius_m"`
	BearingDeg   float64 `json:"bearing_deg"`
	ToleranceDeg float64 `json:"tolerance_deg"`
	Phrase       string  `json:"phrase"`
}

type rawQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
	Hints   []string `json:"hints"`
}

// Load reads, validates, and builds the catalog from a document file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse validates the document against DocumentSchema, checks the
// version gate, and builds the catalog with hint tiers assigned.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("catalog version %q is not valid semver", doc.Version)
	}
	if semver.Major(doc.Version) != SupportedVersion {
		return nil, fmt.Errorf("catalog version %s: this build supports %s.x", doc.Version, SupportedVersion)
	}

	chapters := make([]*Chapter, 0, len(doc.Chapters))
	for _, rc := range doc.Chapters {
		ch, err := convertChapter(rc)
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", rc.ID, err)
		}
		chapters = append(chapters, ch)
	}

	if err := Validate(chapters); err != nil {
		return nil, err
	}
	return build(doc.Version, chapters)
}

func convertChapter(rc rawChapter) (*Chapter, error) {
	ch := &Chapter{
		ID:            rc.ID,
		Name:          rc.Name,
		WaitingStepID: rc.WaitingStep,
		Steps:         make([]Step, 0, len(rc.Steps)),
	}
	for _, rs := range rc.Steps {
		s, err := convertStep(rs)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", rs.ID, err)
		}
		ch.Steps = append(ch.Steps, s)
	}
	return ch, nil
}

func convertStep(rs rawStep) (Step, error) {
	meta := StepMeta{ID: rs.ID, Order: rs.Order, Name: rs.Name}

	if rs.Kind == "website" {
		if rs.Advance == nil {
			return nil, fmt.Errorf("website step needs an advance condition")
		}
		cond, err := convertCondition(rs.Advance)
		if err != nil {
			return nil, err
		}
		questions := make([]Question, 0, len(rs.Questions))
		for _, rq := range rs.Questions {
			questions = append(questions, Question{
				Text:    rq.Text,
				Options: rq.Options,
				Answer:  rq.Answer,
				Hints:   rq.Hints,
			})
		}
		assignTierOffsets(questions)
		return &WebsiteStep{
			StepMeta:  meta,
			Component: rs.Component,
			Condition: cond,
			Questions: questions,
		}, nil
	}

	ch := Channel(rs.Kind)
	if !ch.Valid() {
		return nil, fmt.Errorf("unknown step kind %q", rs.Kind)
	}
	if rs.Trigger == nil {
		return nil, fmt.Errorf("message step needs a trigger")
	}
	trig, err := convertTrigger(rs.Trigger)
	if err != nil {
		return nil, err
	}
	var comp *Companion
	if rs.Companion != nil {
		cch := Channel(rs.Companion.Channel)
		if !cch.Valid() {
			return nil, fmt.Errorf("unknown companion channel %q", rs.Companion.Channel)
		}
		comp = &Companion{
			Channel:   cch,
			Recipient: rs.Companion.Recipient,
			Body:      rs.Companion.Body,
			MediaURL:  rs.Companion.MediaURL,
		}
	}
	return &MessageStep{
		StepMeta:  meta,
		Channel:   ch,
		Recipient: rs.Recipient,
		Body:      rs.Body,
		MediaURL:  rs.MediaURL,
		Trigger:   trig,
		Companion: comp,
	}, nil
}

func convertTrigger(rt *rawTrigger) (Trigger, error) {
	switch rt.Kind {
	case "manual":
		return ManualTrigger{RequiresLocation: rt.RequiresLocation}, nil
	case "scheduled":
		return ScheduledTrigger{}, nil
	case "quest_complete":
		return QuestCompleteTrigger{}, nil
	case "passphrase_entered":
		return PassphraseTrigger{Delay: time.Duration(rt.DelayMinutes) * time.Minute}, nil
	}
	return nil, fmt.Errorf("unknown trigger kind %q", rt.Kind)
}

func convertCondition(rc *rawCondition) (AdvanceCondition, error) {
	switch rc.Kind {
	case "geofence":
		return GeofenceCondition{Lat: rc.Lat, Lng: rc.Lng, RadiusMeters: rc.RadiusM}, nil
	case "tap":
		return TapCondition{}, nil
	case "quiz":
		return QuizCondition{}, nil
	case "compass":
		return CompassCondition{BearingDeg: rc.BearingDeg, ToleranceDeg: rc.ToleranceDeg}, nil
	case "passphrase":
		return PassphraseCondition{Phrase: rc.Phrase}, nil
	case "admin":
		return AdminCondition{}, nil
	}
	return nil, fmt.Errorf("unknown advance condition %q", rc.Kind)
}

// compiledDocumentSchema caches the compiled DocumentSchema.
var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateDocument checks raw against DocumentSchema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal for a clean form.
		defBytes, err := json.Marshal(DocumentSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://step-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	if schemaErr != nil {
		return fmt.Errorf("compile catalog schema: %w", schemaErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog document invalid: %w", err)
	}
	return nil
}
