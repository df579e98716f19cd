package normalize

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/entity"
)

// Collection and string bounds for candidate profiles.
const (
	MaxSkills         = 50
	MaxExperience     = 20
	MaxEducation      = 10
	MaxCertifications = 20
	MaxProjects       = 20
	MaxDescriptionLen = 2000
	MaxSummaryLen     = 1000
	MaxLocationLen    = 200
)

var (
	fieldValidator = validator.New()
	reLinkedin     = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[A-Za-z0-9%_-]+/?`)
	rePortfolio    = regexp.MustCompile(`^https?://\S+$`)
)

// Profile is a total function from the model's untrusted JSON payload to a
// bounded CandidateProfile. Malformed field data is dropped or truncated,
// never an error: partial high-quality data beats all-or-nothing failure.
func Profile(raw map[string]any) entity.CandidateProfile {
	p := entity.CandidateProfile{
		Skills:         stringSlice(raw["skills"], MaxSkills),
		Experience:     experienceEntries(raw["experience"]),
		Education:      educationEntries(raw["education"]),
		Certifications: certificationEntries(raw["certifications"]),
		Projects:       projectEntries(raw["projects"]),
		Summary:        truncateString(stringField(raw, "summary"), MaxSummaryLen),
		Location:       truncateString(stringField(raw, "location"), MaxLocationLen),
	}

	if phone := stringField(raw, "phoneNumber"); phone != "" {
		if fieldValidator.Var(phone, "e164") == nil {
			p.PhoneNumber = phone
		}
	}
	if u := stringField(raw, "linkedinUrl"); reLinkedin.MatchString(u) {
		p.LinkedinURL = u
	}
	if u := stringField(raw, "portfolioUrl"); rePortfolio.MatchString(u) {
		p.PortfolioURL = u
	}
	return p
}

func experienceEntries(v any) []entity.ExperienceEntry {
	out := []entity.ExperienceEntry{}
	for _, m := range objectSlice(v) {
		company := stringField(m, "company")
		position := stringField(m, "position")
		if position == "" {
			position = stringField(m, "title")
		}
		startDate := stringField(m, "startDate")
		if company == "" || position == "" || startDate == "" {
			continue
		}
		endDate := stringField(m, "endDate")
		e := entity.ExperienceEntry{
			Company:     company,
			Position:    position,
			StartDate:   startDate,
			Current:     endDate == "" || IsPresent(endDate),
			Description: truncateString(stringField(m, "description"), MaxDescriptionLen),
		}
		if !e.Current {
			e.EndDate = endDate
		}
		out = append(out, e)
		if len(out) == MaxExperience {
			break
		}
	}
	return out
}

func educationEntries(v any) []entity.EducationEntry {
	out := []entity.EducationEntry{}
	for _, m := range objectSlice(v) {
		institution := stringField(m, "institution")
		degree := stringField(m, "degree")
		field := stringField(m, "field")
		if institution == "" || degree == "" || field == "" {
			continue
		}
		out = append(out, entity.EducationEntry{
			Institution:    institution,
			Degree:         degree,
			Field:          field,
			GraduationYear: graduationYear(m),
		})
		if len(out) == MaxEducation {
			break
		}
	}
	return out
}

// graduationYear prefers an explicit value, then the end year, then the start
// year, then the current year.
func graduationYear(m map[string]any) int {
	if y, ok := intField(m, "graduationYear"); ok && y > 0 {
		return y
	}
	if y, ok := YearOf(stringField(m, "endDate")); ok {
		return y
	}
	if y, ok := YearOf(stringField(m, "startDate")); ok {
		return y
	}
	return time.Now().Year()
}

func certificationEntries(v any) []entity.Certification {
	out := []entity.Certification{}
	for _, m := range objectSlice(v) {
		name := stringField(m, "name")
		issuer := stringField(m, "issuer")
		issueDate := stringField(m, "issueDate")
		// A certification without a parseable issue date is dropped entirely,
		// not kept incomplete.
		if name == "" || issuer == "" {
			continue
		}
		if _, ok := ParseFlexibleDate(issueDate); !ok || IsPresent(issueDate) {
			continue
		}
		out = append(out, entity.Certification{Name: name, Issuer: issuer, IssueDate: issueDate})
		if len(out) == MaxCertifications {
			break
		}
	}
	return out
}

func projectEntries(v any) []entity.Project {
	out := []entity.Project{}
	for _, m := range objectSlice(v) {
		name := stringField(m, "name")
		if name == "" {
			continue
		}
		out = append(out, entity.Project{
			Name:         name,
			Description:  truncateString(stringField(m, "description"), MaxDescriptionLen),
			Technologies: stringSlice(m["technologies"], 0),
		})
		if len(out) == MaxProjects {
			break
		}
	}
	return out
}
