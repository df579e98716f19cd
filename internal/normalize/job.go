package normalize

import (
	"strings"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/entity"
)

// DefaultCurrency is used when the posting names no currency.
const DefaultCurrency = "USD"

// Job normalizes the model's JSON payload into a bounded JobDescription.
// Unlike resumes, a posting with no title or description is a hard failure:
// there is nothing meaningful to return without them.
func Job(raw map[string]any) (entity.JobDescription, error) {
	title := stringField(raw, "title")
	description := stringField(raw, "description")
	if title == "" || description == "" {
		return entity.JobDescription{}, common.NewAppError(common.ErrMissingRequiredFields,
			"job description requires title and description", nil)
	}

	jd := entity.JobDescription{
		Title:           title,
		Description:     description,
		Location:        truncateString(stringField(raw, "location"), MaxLocationLen),
		JobType:         jobType(stringField(raw, "jobType")),
		WorkArrangement: workArrangement(raw),
		Salary:          salaryRange(mapField(raw, "salary")),
		Requirements:    jobRequirements(mapField(raw, "requirements")),
		Benefits:        stringSlice(raw["benefits"], 0),
		Openings:        1,
		Duration:        stringField(raw, "duration"),
	}

	if n, ok := intField(raw, "openings"); ok && n > 0 {
		jd.Openings = n
	}
	if d := stringField(raw, "deadline"); d != "" {
		jd.Deadline = d
	}
	return jd, nil
}

// jobType normalizes the employment type by case-insensitive substring match
// against a small fixed vocabulary. Full-time is the deterministic default.
func jobType(s string) string {
	v := strings.ToLower(s)
	switch {
	case strings.Contains(v, "part"):
		return entity.JobTypePartTime
	case strings.Contains(v, "contract"):
		return entity.JobTypeContract
	case strings.Contains(v, "intern"):
		return entity.JobTypeInternship
	case strings.Contains(v, "temp"):
		return entity.JobTypeTemporary
	default:
		return entity.JobTypeFullTime
	}
}

// workArrangement is inferred from the declared field first, then from the
// location free text. Onsite is the deterministic default.
func workArrangement(raw map[string]any) string {
	for _, v := range []string{stringField(raw, "workArrangement"), stringField(raw, "location")} {
		v = strings.ToLower(v)
		switch {
		case strings.Contains(v, "remote"):
			return entity.ArrangementRemote
		case strings.Contains(v, "hybrid"):
			return entity.ArrangementHybrid
		case strings.Contains(v, "on-site") || strings.Contains(v, "onsite") || strings.Contains(v, "on site"):
			return entity.ArrangementOnsite
		}
	}
	return entity.ArrangementOnsite
}

func salaryRange(m map[string]any) entity.SalaryRange {
	sr := entity.SalaryRange{Currency: DefaultCurrency}
	if m == nil {
		return sr
	}
	if v, ok := intField(m, "min"); ok && v >= 0 {
		sr.Min = v
	}
	if v, ok := intField(m, "max"); ok && v >= sr.Min {
		sr.Max = v
	}
	if c := strings.ToUpper(stringField(m, "currency")); len(c) == 3 {
		sr.Currency = c
	}
	return sr
}

func jobRequirements(m map[string]any) entity.JobRequirements {
	req := entity.JobRequirements{
		Skills:         []string{},
		Education:      []string{},
		Certifications: []string{},
	}
	if m == nil {
		return req
	}
	req.Skills = stringSlice(m["skills"], MaxSkills)
	req.Education = stringSlice(m["education"], MaxEducation)
	req.Certifications = stringSlice(m["certifications"], MaxCertifications)
	if v, ok := intField(m, "minExperienceYears"); ok && v >= 0 {
		req.MinExperienceYears = v
	}
	if v, ok := intField(m, "maxExperienceYears"); ok && v >= req.MinExperienceYears {
		req.MaxExperienceYears = v
	}
	return req
}
