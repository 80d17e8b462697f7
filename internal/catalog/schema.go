package catalog

// DocumentSchema is the JSON Schema every catalog document must satisfy
// before decoding. Structural rules only; cross-step invariants (order
// uniqueness, waiting-step references) live in Validate.
var DocumentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Catalog document version (semver, v-prefixed)",
		},
		"chapters": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":           map[string]any{"type": "string", "minLength": 1},
					"name":         map[string]any{"type": "string"},
					"waiting_step": map[string]any{"type": "string"},
					"steps": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    stepSchema,
					},
				},
				"required":             []any{"id", "steps"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "chapters"},
	"additionalProperties": false,
}

var stepSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"order": map[string]any{"type": "integer", "minimum": 0},
		"name":  map[string]any{"type": "string"},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"letter", "email", "sms", "mms", "website"},
		},
		"recipient": map[string]any{"type": "string"},
		"body":      map[string]any{"type": "string"},
		"media_url": map[string]any{"type": "string"},
		"trigger": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type": "string",
					"enum": []any{"manual", "scheduled", "quest_complete", "passphrase_entered"},
				},
				"requires_location": map[string]any{"type": "boolean"},
				"delay_minutes":     map[string]any{"type": "integer", "minimum": 0},
			},
			"required":             []any{"kind"},
			"additionalProperties": false,
		},
		"companion": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"channel": map[string]any{
					"type": "string",
					"enum": []any{"letter", "email", "sms", "mms"},
				},
				"recipient": map[string]any{"type": "string", "minLength": 1},
				"body":      map[string]any{"type": "string"},
				"media_url": map[string]any{"type": "string"},
			},
			"required":             []any{"channel", "recipient"},
			"additionalProperties": false,
		},
		"component": map[string]any{"type": "string"},
		"advance": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type": "string",
					"enum": []any{"geofence", "tap", "quiz", "compass", "passphrase", "admin"},
				},
				"lat":           map[string]any{"type": "number"},
				"lng":           map[string]any{"type": "number"},
				"radius_m":      map[string]any{"type": "number", "minimum": 0},
				"bearing_deg":   map[string]any{"type": "number"},
				"tolerance_deg": map[string]any{"type": "number", "minimum": 0},
				"phrase":        map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"kind"},
			"additionalProperties": false,
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text":    map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"answer":  map[string]any{"type": "integer", "minimum": 0},
					"hints":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required":             []any{"text"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "order", "kind"},
	"additionalProperties": false,
}
