package llm

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is embedded in the prompt and used locally to surface shape
// drift in logs; violations on optional fields never fail the call; the
// normalizer owns field-level enforcement.
func BuildResumeJSONSchema() map[string]any {
	dateProp := map[string]any{"type": "string"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":      map[string]any{"type": "string"},
			"location":     map[string]any{"type": "string"},
			"phoneNumber":  map[string]any{"type": "string"},
			"linkedinUrl":  map[string]any{"type": "string"},
			"portfolioUrl": map[string]any{"type": "string"},
			"skills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"experience": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"company":     map[string]any{"type": "string", "minLength": 1},
						"position":    map[string]any{"type": "string", "minLength": 1},
						"startDate":   dateProp,
						"endDate":     dateProp,
						"description": map[string]any{"type": "string"},
					},
					"required": []string{"company", "position", "startDate"},
				},
			},
			"education": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"institution": map[string]any{"type": "string", "minLength": 1},
						"degree":      map[string]any{"type": "string", "minLength": 1},
						"field":       map[string]any{"type": "string", "minLength": 1},
						"startDate":   dateProp,
						"endDate":     dateProp,
					},
					"required": []string{"institution", "degree", "field"},
				},
			},
			"certifications": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":      map[string]any{"type": "string", "minLength": 1},
						"issuer":    map[string]any{"type": "string", "minLength": 1},
						"issueDate": dateProp,
					},
					"required": []string{"name", "issuer", "issueDate"},
				},
			},
			"projects": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":         map[string]any{"type": "string", "minLength": 1},
						"description":  map[string]any{"type": "string"},
						"technologies": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []string{"name"},
				},
			},
		},
	}
}

// BuildJobJSONSchema returns the schema for job-description extraction.
// Title and description are the only hard requirements.
func BuildJobJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":           map[string]any{"type": "string", "minLength": 1},
			"description":     map[string]any{"type": "string", "minLength": 1},
			"location":        map[string]any{"type": "string"},
			"jobType":         map[string]any{"type": "string"},
			"workArrangement": map[string]any{"type": "string"},
			"salary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min":      map[string]any{"type": "number"},
					"max":      map[string]any{"type": "number"},
					"currency": map[string]any{"type": "string"},
				},
			},
			"requirements": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"skills":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"minExperienceYears": map[string]any{"type": "number"},
					"maxExperienceYears": map[string]any{"type": "number"},
					"education":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"certifications":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
			"benefits": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"openings": map[string]any{"type": "number"},
			"deadline": map[string]any{"type": "string"},
			"duration": map[string]any{"type": "string"},
		},
		"required": []string{"title", "description"},
	}
}
