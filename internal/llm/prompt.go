package llm

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Raw text beyond this is cut from the prompt; resumes and postings that long
// carry no additional signal worth the tokens.
const maxPromptChars = 12000

// BuildResumeSystemPrompt enumerates every allowed field so the response
// shape is deterministic across calls.
func BuildResumeSystemPrompt() string {
	parts := []string{
		"You are a resume parser. Return ONLY a single JSON object that matches the provided JSON Schema, with no prose and no markdown.",
		"Fields: summary (string), location (string), phoneNumber (E.164, e.g. +14155550123), linkedinUrl, portfolioUrl,",
		"skills (array of strings),",
		"experience (array of {company, position, startDate, endDate, description}),",
		"education (array of {institution, degree, field, startDate, endDate}),",
		"certifications (array of {name, issuer, issueDate}),",
		"projects (array of {name, description, technologies}).",
		"Use YYYY-MM for dates; use the literal \"present\" for ongoing roles.",
		"Never output null. If a field is not present in the resume, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildJobSystemPrompt is the job-description counterpart. Title and
// description are mandatory.
func BuildJobSystemPrompt() string {
	parts := []string{
		"You are a job-posting parser. Return ONLY a single JSON object that matches the provided JSON Schema, with no prose and no markdown.",
		"Fields: title (string, REQUIRED), description (string, REQUIRED), location,",
		"jobType (one of: full-time, part-time, contract, internship, temporary),",
		"workArrangement (one of: remote, hybrid, onsite),",
		"salary ({min, max, currency}), requirements ({skills, minExperienceYears, maxExperienceYears, education, certifications}),",
		"benefits (array of strings), openings (number), deadline (YYYY-MM-DD), duration (string).",
		"Currency must be a 3-letter ISO 4217 code.",
		"Never output null. If a field is not present in the posting, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the raw document text with the schema the reply
// must match.
func BuildUserPrompt(rawText string, schema map[string]any) string {
	text := strings.TrimSpace(rawText)

	var b strings.Builder
	b.WriteString("Document text")
	if utf8.RuneCountInString(text) > maxPromptChars {
		text = string([]rune(text)[:maxPromptChars])
		b.WriteString(" (truncated)")
	}
	b.WriteString(":\n")
	b.WriteString(text)
	b.WriteString("\n\nJSON Schema:\n")
	b.WriteString(mustJSON(schema))
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// StripCodeFence removes a surrounding markdown fence (```json ... ```) from
// model output. Models wrap JSON this way constantly even when told not to.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(strings.TrimSpace(s), "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
