// Package types provides type definitions for the resume record and its section entries.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeType selects guidance text and which optional fields are exposed.
type ResumeType string

// Supported resume types
const (
	ResumeTypeJob        ResumeType = "job"
	ResumeTypeInternship ResumeType = "internship"
	ResumeTypeHackathon  ResumeType = "hackathon"
)

// DefaultResumeType is the type a freshly created resume starts with.
const DefaultResumeType = ResumeTypeInternship

// ResumeTypes lists every resume type in selector order.
var ResumeTypes = []ResumeType{ResumeTypeJob, ResumeTypeInternship, ResumeTypeHackathon}

// IsValid reports whether t is one of the supported resume types.
func (t ResumeType) IsValid() bool {
	switch t {
	case ResumeTypeJob, ResumeTypeInternship, ResumeTypeHackathon:
		return true
	}
	return false
}

// AchievementCategory is the fixed classification of an achievement entry.
type AchievementCategory string

// Achievement categories
const (
	CategoryAcademic    AchievementCategory = "academic"
	CategoryCompetition AchievementCategory = "competition"
	CategoryLeadership  AchievementCategory = "leadership"
	CategoryVolunteer   AchievementCategory = "volunteer"
	CategoryOther       AchievementCategory = "other"
)

// DefaultAchievementCategory is assigned to newly added achievements.
const DefaultAchievementCategory = CategoryAcademic

// AchievementCategories lists every category in display order.
var AchievementCategories = []AchievementCategory{
	CategoryAcademic,
	CategoryCompetition,
	CategoryLeadership,
	CategoryVolunteer,
	CategoryOther,
}

// IsValid reports whether c is one of the fixed categories.
func (c AchievementCategory) IsValid() bool {
	for _, known := range AchievementCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the capitalized display label, e.g. "Leadership".
func (c AchievementCategory) Label() string {
	if c == "" {
		return ""
	}
	s := string(c)
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// PersonalInfo holds the contact header of the resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// WorkExperience is one position held. Dates are "YYYY-MM" strings.
type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one degree or program.
type Education struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// Certification is one professional certification.
type Certification struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	IssueDate      string `json:"issueDate"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"`
	URL            string `json:"url,omitempty"`
}

// Project is one project entry. Technologies never contain duplicates.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	Achievements string   `json:"achievements,omitempty"` // surfaced for hackathon resumes only
}

// Achievement is an award, honor or other accomplishment.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        string              `json:"date"`
	Category    AchievementCategory `json:"category"`
}

// ResumeData is the aggregate resume record.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Skills         []string         `json:"skills"`
	Projects       []Project        `json:"projects"`
	Achievements   []Achievement    `json:"achievements"`
	ResumeType     ResumeType       `json:"resumeType"`
}

// GetID returns the entry id.
func (w WorkExperience) GetID() string { return w.ID }

// GetID returns the entry id.
func (e Education) GetID() string { return e.ID }

// GetID returns the entry id.
func (c Certification) GetID() string { return c.ID }

// GetID returns the entry id.
func (p Project) GetID() string { return p.ID }

// GetID returns the entry id.
func (a Achievement) GetID() string { return a.ID }

// NewResumeData returns the empty record a builder starts from.
func NewResumeData() ResumeData {
	return ResumeData{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Certifications: []Certification{},
		Skills:         []string{},
		Projects:       []Project{},
		Achievements:   []Achievement{},
		ResumeType:     DefaultResumeType,
	}
}

// Clone returns a deep copy of the record. Nil lists come back empty.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.WorkExperience = append([]WorkExperience{}, d.WorkExperience...)
	out.Education = append([]Education{}, d.Education...)
	out.Certifications = append([]Certification{}, d.Certifications...)
	out.Skills = append([]string{}, d.Skills...)
	out.Achievements = append([]Achievement{}, d.Achievements...)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string{}, p.Technologies...)
		out.Projects[i] = p
	}
	return out
}

// Normalize replaces nil lists with empty ones, defaults an empty resume type
// and drops repeated skills and technologies, keeping the first occurrence.
// Used after decoding externally supplied records.
func (d ResumeData) Normalize() ResumeData {
	out := d.Clone()
	if out.ResumeType == "" {
		out.ResumeType = DefaultResumeType
	}
	out.Skills = uniqueStrings(out.Skills)
	for i := range out.Projects {
		out.Projects[i].Technologies = uniqueStrings(out.Projects[i].Technologies)
	}
	return out
}

func uniqueStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
