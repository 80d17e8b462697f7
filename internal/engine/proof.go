package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// Proof is the player-supplied evidence for a website step's advance
// condition. Concrete types: GeofenceProof, TapProof, QuizProof,
// CompassProof, PassphraseProof, AdminProof.
type Proof interface {
	proof()
}

// GeofenceProof is the player's reported position.
type GeofenceProof struct {
	Lat float64
	Lng float64
}

func (GeofenceProof) proof() {}

// TapProof is a bare confirmation.
type TapProof struct{}

func (TapProof) proof() {}

// QuizProof carries one selected option index per sub-question, in
// question order.
type QuizProof struct {
	Selections []int
}

func (QuizProof) proof() {}

// CompassProof is the device heading in degrees.
type CompassProof struct {
	HeadingDeg float64
}

func (CompassProof) proof() {}

// PassphraseProof is the entered phrase.
type PassphraseProof struct {
	Phrase string
}

func (PassphraseProof) proof() {}

// AdminProof marks an operator-forced advance.
type AdminProof struct{}

func (AdminProof) proof() {}

// SubmitAdvanceCondition verifies the proof against the current website
// step's condition and, on success, commits the advance. Quiz answers
// are appended to the audit log whether or not they are correct;
// correctness never gates the advance.
func (e *Engine) SubmitAdvanceCondition(ctx context.Context, track store.Track, chapterID string, expectedIndex int, proof Proof) (*Result, error) {
	run, ch, err := e.activeChapter(ctx, track, chapterID)
	if err != nil {
		return nil, err
	}

	step := ch.StepAt(expectedIndex)
	if step == nil {
		return nil, ErrChapterComplete
	}
	ws, ok := step.(*catalog.WebsiteStep)
	if !ok {
		return nil, fmt.Errorf("step %s: not a website step", step.Meta().ID)
	}

	if err := verifyProof(ws, proof); err != nil {
		return nil, err
	}

	if qp, ok := proof.(QuizProof); ok {
		e.auditQuizAnswers(ctx, track, run.ID, ws, qp)
	}

	return e.Advance(ctx, track, chapterID, expectedIndex)
}

// auditQuizAnswers appends one row per answered question. Audit only;
// failures here do not block the advance.
func (e *Engine) auditQuizAnswers(ctx context.Context, track store.Track, runID string, ws *catalog.WebsiteStep, qp QuizProof) {
	for i, sel := range qp.Selections {
		if i >= len(ws.Questions) {
			break
		}
		_ = e.quiz.Append(ctx, track, store.QuizAnswerRecord{
			ChapterRunID:   runID,
			StepID:         ws.ID,
			QuestionIndex:  i,
			SelectedOption: sel,
			Correct:        sel == ws.Questions[i].Answer,
		})
	}
}

func verifyProof(ws *catalog.WebsiteStep, proof Proof) error {
	stepID := ws.ID
	switch cond := ws.Condition.(type) {
	case catalog.GeofenceCondition:
		p, ok := proof.(GeofenceProof)
		if !ok {
			return wrongProof(stepID, "geofence")
		}
		dist := haversineMeters(cond.Lat, cond.Lng, p.Lat, p.Lng)
		if dist > cond.RadiusMeters {
			return &ConditionError{StepID: stepID, Reason: fmt.Sprintf("%.0fm from target, need within %.0fm", dist, cond.RadiusMeters)}
		}
	case catalog.TapCondition:
		if _, ok := proof.(TapProof); !ok {
			return wrongProof(stepID, "tap")
		}
	case catalog.QuizCondition:
		p, ok := proof.(QuizProof)
		if !ok {
			return wrongProof(stepID, "quiz")
		}
		if len(p.Selections) != len(ws.Questions) {
			return &ConditionError{StepID: stepID, Reason: fmt.Sprintf("%d answers for %d questions", len(p.Selections), len(ws.Questions))}
		}
	case catalog.CompassCondition:
		p, ok := proof.(CompassProof)
		if !ok {
			return wrongProof(stepID, "compass")
		}
		diff := angularDiff(p.HeadingDeg, cond.BearingDeg)
		if diff > cond.ToleranceDeg {
			return &ConditionError{StepID: stepID, Reason: fmt.Sprintf("heading off by %.0f°, tolerance %.0f°", diff, cond.ToleranceDeg)}
		}
	case catalog.PassphraseCondition:
		p, ok := proof.(PassphraseProof)
		if !ok {
			return wrongProof(stepID, "passphrase")
		}
		if normalizePhrase(p.Phrase) != normalizePhrase(cond.Phrase) {
			return &ConditionError{StepID: stepID, Reason: "wrong passphrase"}
		}
	case catalog.AdminCondition:
		if _, ok := proof.(AdminProof); !ok {
			return wrongProof(stepID, "admin")
		}
	default:
		return fmt.Errorf("step %s: unknown advance condition %T", stepID, cond)
	}
	return nil
}

func wrongProof(stepID, want string) error {
	return &ConditionError{StepID: stepID, Reason: "proof does not match " + want + " condition"}
}

// normalizePhrase lowercases, trims, and collapses inner whitespace so
// players are not punished for typing style.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// angularDiff returns the smallest absolute difference between two
// headings in degrees, in [0, 180].
func angularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

const earthRadiusMeters = 6371000

// haversineMeters computes the great-circle distance between two
// coordinates.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const rad = math.Pi / 180
	phi1, phi2 := lat1*rad, lat2*rad
	dPhi := (lat2 - lat1) * rad
	dLambda := (lng2 - lng1) * rad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
