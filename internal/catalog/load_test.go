package catalog

import (
	"strings"
	"testing"
)

const minimalDoc = `{
  "version": "v1.0.0",
  "chapters": [
    {
      "id": "ch1",
      "name": "The First Letter",
      "steps": [
        {"id": "s0", "order": 0, "name": "Opening letter", "kind": "letter",
         "recipient": "+4791000000", "body": "It begins.",
         "trigger": {"kind": "manual"}},
        {"id": "s1", "order": 1, "name": "Find the bench", "kind": "website",
         "component": "map",
         "advance": {"kind": "geofence", "lat": 59.91, "lng": 10.75, "radius_m": 50}}
      ]
    }
  ]
}`

func TestParseMinimalDocument(t *testing.T) {
	cat, err := Parse([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ch := cat.Chapter("ch1")
	if ch == nil {
		t.Fatal("chapter ch1 not found")
	}
	if len(ch.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(ch.Steps))
	}

	ms, ok := ch.Steps[0].(*MessageStep)
	if !ok {
		t.Fatalf("step 0 = %T, want *MessageStep", ch.Steps[0])
	}
	if ms.Channel != ChannelLetter {
		t.Errorf("channel = %q, want letter", ms.Channel)
	}
	if _, ok := ms.Trigger.(ManualTrigger); !ok {
		t.Errorf("trigger = %T, want ManualTrigger", ms.Trigger)
	}

	ws, ok := ch.Steps[1].(*WebsiteStep)
	if !ok {
		t.Fatalf("step 1 = %T, want *WebsiteStep", ch.Steps[1])
	}
	geo, ok := ws.Condition.(GeofenceCondition)
	if !ok {
		t.Fatalf("condition = %T, want GeofenceCondition", ws.Condition)
	}
	if geo.RadiusMeters != 50 {
		t.Errorf("radius = %v, want 50", geo.RadiusMeters)
	}
}

func TestParseIndexesSteps(t *testing.T) {
	cat, err := Parse([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cat.Step("s1") == nil {
		t.Error("step s1 not indexed")
	}
	if got := cat.ChapterOf("s1"); got == nil || got.ID != "ch1" {
		t.Errorf("ChapterOf(s1) = %v, want ch1", got)
	}
	if cat.Step("nope") != nil {
		t.Error("unknown step id should return nil")
	}
}

func TestParseRejectsBadVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"not semver", "1.0"},
		{"missing v prefix", "1.0.0"},
		{"wrong major", "v2.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimalDoc, "v1.0.0", tt.version, 1)
			if _, err := Parse([]byte(doc)); err == nil {
				t.Errorf("version %q accepted, want error", tt.version)
			}
		})
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"version":`},
		{"missing chapters", `{"version": "v1.0.0"}`},
		{"unknown step kind", `{
			"version": "v1.0.0",
			"chapters": [{"id": "c", "steps": [
				{"id": "s", "order": 0, "kind": "carrier_pigeon"}
			]}]
		}`},
		{"unknown trigger kind", `{
			"version": "v1.0.0",
			"chapters": [{"id": "c", "steps": [
				{"id": "s", "order": 0, "kind": "sms", "recipient": "x",
				 "trigger": {"kind": "whenever"}}
			]}]
		}`},
		{"stray field", `{
			"version": "v1.0.0",
			"surprise": true,
			"chapters": [{"id": "c", "steps": [
				{"id": "s", "order": 0, "kind": "sms", "recipient": "x",
				 "trigger": {"kind": "manual"}}
			]}]
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("document accepted, want error")
			}
		})
	}
}

func TestParseCompanion(t *testing.T) {
	doc := `{
	  "version": "v1.0.0",
	  "chapters": [{"id": "c", "steps": [
	    {"id": "s", "order": 0, "kind": "mms", "recipient": "+471",
	     "trigger": {"kind": "manual", "requires_location": true},
	     "companion": {"channel": "sms", "recipient": "+472", "body": "heads up"}}
	  ]}]
	}`
	cat, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ms := cat.Step("s").(*MessageStep)
	if ms.Companion == nil {
		t.Fatal("companion not decoded")
	}
	if ms.Companion.Channel != ChannelSMS || ms.Companion.Recipient != "+472" {
		t.Errorf("companion = %+v", ms.Companion)
	}
	trig := ms.Trigger.(ManualTrigger)
	if !trig.RequiresLocation {
		t.Error("requires_location lost in decode")
	}
}
