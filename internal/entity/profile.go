package entity

// CandidateProfile is the bounded record produced from a parsed resume.
// Every collection is truncated to its maximum and every scalar validated by
// the normalizer; nothing here is trusted model output.
type CandidateProfile struct {
	Summary        string            `json:"summary,omitempty"`
	Location       string            `json:"location,omitempty"`
	PhoneNumber    string            `json:"phoneNumber,omitempty"`
	LinkedinURL    string            `json:"linkedinUrl,omitempty"`
	PortfolioURL   string            `json:"portfolioUrl,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []Certification   `json:"certifications"`
	Projects       []Project         `json:"projects"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationYear int    `json:"graduationYear"`
}

type Certification struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer"`
	IssueDate string `json:"issueDate"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}
