package entity

// Employment types, normalized by substring match.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeTemporary  = "temporary"
)

// Work arrangements, inferred from free text.
const (
	ArrangementRemote = "remote"
	ArrangementHybrid = "hybrid"
	ArrangementOnsite = "onsite"
)

// JobDescription is the bounded record produced from a parsed job posting.
// Title and description are required; everything else is optional or
// defaulted.
type JobDescription struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Location        string          `json:"location,omitempty"`
	JobType         string          `json:"jobType"`
	WorkArrangement string          `json:"workArrangement"`
	Salary          SalaryRange     `json:"salary"`
	Requirements    JobRequirements `json:"requirements"`
	Benefits        []string        `json:"benefits"`
	Openings        int             `json:"openings"`
	Deadline        string          `json:"deadline,omitempty"`
	Duration        string          `json:"duration,omitempty"`
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type JobRequirements struct {
	Skills             []string `json:"skills"`
	MinExperienceYears int      `json:"minExperienceYears"`
	MaxExperienceYears int      `json:"maxExperienceYears"`
	Education          []string `json:"education"`
	Certifications     []string `json:"certifications"`
}
