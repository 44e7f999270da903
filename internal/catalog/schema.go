package catalog

// moduleSchema validates the embedded catalog content at load time. Each
// variant pins one canonical collection field (options, items, ...) so that
// authoring drift between "choices"/"options"/"answers" fails fast instead
// of being coerced at render time.
var moduleSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":                 "object",
		"required":             []any{"type", "id", "title"},
		"properties":           baseProperties(),
		"additionalProperties": true,
		"oneOf": []any{
			variantSchema("poll", []any{"prompt", "options", "points"}, map[string]any{
				"prompt":  map[string]any{"type": "string"},
				"options": optionArray(),
				"points": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
				},
			}),
			variantSchema("quiz", []any{"items"}, map[string]any{
				"items": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"id", "question", "choices", "answerId"},
						"properties": map[string]any{
							"id":       map[string]any{"type": "string"},
							"question": map[string]any{"type": "string"},
							"choices": map[string]any{
								"type":     "array",
								"minItems": 2,
								"items": map[string]any{
									"type":     "object",
									"required": []any{"id", "text"},
								},
							},
							"answerId": map[string]any{"type": "string"},
							"points":   map[string]any{"type": "integer", "minimum": 0},
						},
					},
				},
			}),
			variantSchema("promptTriage", []any{"casefile", "badPrompt", "goldPrompt"}, map[string]any{
				"badPrompt":  map[string]any{"type": "string"},
				"goldPrompt": map[string]any{"type": "string"},
				"casefile":   map[string]any{"type": "object"},
			}),
			variantSchema("securitySim", []any{"scenario", "options", "pointsCorrect"}, map[string]any{
				"scenario": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"id", "label", "isCorrect"},
					},
				},
				"pointsCorrect": map[string]any{"type": "integer", "minimum": 0},
			}),
			variantSchema("info", nil, map[string]any{
				"bullets": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"prompt":  map[string]any{"type": "string"},
				"options": optionArray(),
			}),
			variantSchema("booth", []any{"intro", "principles", "analogies", "closings"}, map[string]any{
				"intro":      map[string]any{"type": "string"},
				"principles": partArray(),
				"analogies":  partArray(),
				"closings":   partArray(),
			}),
		},
	},
}

func baseProperties() map[string]any {
	return map[string]any{
		"type":  map[string]any{"enum": []any{"poll", "quiz", "promptTriage", "securitySim", "info", "booth"}},
		"id":    map[string]any{"type": "string", "minLength": 1},
		"slug":  map[string]any{"type": "string"},
		"title": map[string]any{"type": "string", "minLength": 1},
		"park":  map[string]any{"type": "object"},
	}
}

func variantSchema(kind string, required []any, props map[string]any) map[string]any {
	return map[string]any{
		"properties": mergeProps(map[string]any{
			"type": map[string]any{"const": kind},
		}, props),
		"required": append([]any{"type"}, required...),
	}
}

func optionArray() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 2,
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "label"},
		},
	}
}

func partArray() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 2,
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "label", "text"},
		},
	}
}

func mergeProps(dst map[string]any, src map[string]any) map[string]any {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
