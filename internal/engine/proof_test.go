package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/halvard/paperchase/internal/catalog"
)

func websiteStep(cond catalog.AdvanceCondition) *catalog.WebsiteStep {
	return &catalog.WebsiteStep{
		StepMeta:  catalog.StepMeta{ID: "w", Order: 0, Name: "step"},
		Condition: cond,
	}
}

func TestVerifyProofGeofence(t *testing.T) {
	// Frogner Park, Oslo. ~111m per 0.001° latitude.
	cond := catalog.GeofenceCondition{Lat: 59.9270, Lng: 10.7003, RadiusMeters: 50}
	ws := websiteStep(cond)

	if err := verifyProof(ws, GeofenceProof{Lat: 59.9270, Lng: 10.7003}); err != nil {
		t.Errorf("exact position rejected: %v", err)
	}
	if err := verifyProof(ws, GeofenceProof{Lat: 59.9272, Lng: 10.7003}); err != nil {
		t.Errorf("~22m away rejected: %v", err)
	}

	err := verifyProof(ws, GeofenceProof{Lat: 59.9290, Lng: 10.7003})
	var ce *ConditionError
	if !errors.As(err, &ce) {
		t.Fatalf("~220m away: err = %v, want ConditionError", err)
	}
}

func TestVerifyProofCompass(t *testing.T) {
	ws := websiteStep(catalog.CompassCondition{BearingDeg: 350, ToleranceDeg: 15})

	// Wraparound: 5° is 15° from 350.
	if err := verifyProof(ws, CompassProof{HeadingDeg: 5}); err != nil {
		t.Errorf("heading 5 rejected: %v", err)
	}
	if err := verifyProof(ws, CompassProof{HeadingDeg: 340}); err != nil {
		t.Errorf("heading 340 rejected: %v", err)
	}
	if err := verifyProof(ws, CompassProof{HeadingDeg: 170}); err == nil {
		t.Error("opposite heading accepted")
	}
}

func TestVerifyProofPassphrase(t *testing.T) {
	ws := websiteStep(catalog.PassphraseCondition{Phrase: "Hollow Oak"})

	ok := []string{"hollow oak", "HOLLOW OAK", "  hollow   oak  ", "Hollow\tOak"}
	for _, phrase := range ok {
		if err := verifyProof(ws, PassphraseProof{Phrase: phrase}); err != nil {
			t.Errorf("phrase %q rejected: %v", phrase, err)
		}
	}
	if err := verifyProof(ws, PassphraseProof{Phrase: "hollowoak"}); err == nil {
		t.Error("joined phrase accepted")
	}
}

func TestVerifyProofTapAndAdmin(t *testing.T) {
	if err := verifyProof(websiteStep(catalog.TapCondition{}), TapProof{}); err != nil {
		t.Errorf("tap rejected: %v", err)
	}
	if err := verifyProof(websiteStep(catalog.AdminCondition{}), AdminProof{}); err != nil {
		t.Errorf("admin rejected: %v", err)
	}
	// An admin-gated step does not yield to a player tap.
	if err := verifyProof(websiteStep(catalog.AdminCondition{}), TapProof{}); err == nil {
		t.Error("tap accepted for admin condition")
	}
}

func TestVerifyProofKindMismatch(t *testing.T) {
	tests := []struct {
		name  string
		cond  catalog.AdvanceCondition
		proof Proof
	}{
		{"tap for geofence", catalog.GeofenceCondition{RadiusMeters: 10}, TapProof{}},
		{"geofence for tap", catalog.TapCondition{}, GeofenceProof{}},
		{"tap for quiz", catalog.QuizCondition{}, TapProof{}},
		{"quiz for compass", catalog.CompassCondition{ToleranceDeg: 5}, QuizProof{}},
		{"tap for passphrase", catalog.PassphraseCondition{Phrase: "x"}, TapProof{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyProof(websiteStep(tt.cond), tt.proof)
			var ce *ConditionError
			if !errors.As(err, &ce) {
				t.Errorf("err = %v, want ConditionError", err)
			}
		})
	}
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hollow Oak", "hollow oak"},
		{"  hollow   oak  ", "hollow oak"},
		{"HOLLOW\tOAK", "hollow oak"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizePhrase(tt.in); got != tt.want {
			t.Errorf("normalizePhrase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAngularDiff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{90, 270, 180},
		{359, 1, 2},
	}
	for _, tt := range tests {
		if got := angularDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("angularDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHaversineMeters(t *testing.T) {
	// One degree of latitude is ~111.2km.
	d := haversineMeters(59.0, 10.0, 60.0, 10.0)
	if d < 110000 || d > 112500 {
		t.Errorf("1° latitude = %.0fm, want ~111200m", d)
	}
	if d := haversineMeters(59.9270, 10.7003, 59.9270, 10.7003); d != 0 {
		t.Errorf("zero distance = %v", d)
	}
}
