package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// NamePlaceholder is shown when the full name is empty.
const NamePlaceholder = "Your Name"

// PreviewView is the display projection of a resume record. Empty sections
// are left nil so templates can skip them.
type PreviewView struct {
	Name           string
	Email          string
	Phone          string
	Location       string
	Website        string
	LinkedIn       string
	Summary        string
	Experience     []ExperienceRow
	Education      []EducationRow
	Projects       []ProjectRow
	Certifications []CertificationRow
	Skills         []string
	Achievements   []AchievementRow
}

// ExperienceRow is one rendered work experience entry.
type ExperienceRow struct {
	ID          string
	Position    string
	Company     string
	Location    string
	Duration    string
	Description string
}

// EducationRow is one rendered education entry.
type EducationRow struct {
	ID          string
	Heading     string // "{degree} in {field}"
	Institution string
	Graduation  string
	GPA         string
}

// ProjectRow is one rendered project entry.
type ProjectRow struct {
	ID           string
	Name         string
	GitHubURL    string
	LiveURL      string
	Technologies string
	Duration     string
	Description  string
	Achievements string // only set for hackathon resumes
}

// CertificationRow is one rendered certification entry.
type CertificationRow struct {
	ID           string
	Name         string
	URL          string
	Issuer       string
	CredentialID string
	Issued       string
	Expires      string
}

// AchievementRow is one rendered achievement entry.
type AchievementRow struct {
	ID          string
	Title       string
	Category    string
	Description string
	Date        string
}

// BuildView projects d into a PreviewView. It depends on nothing but d.
func BuildView(d types.ResumeData) PreviewView {
	v := PreviewView{
		Name:     d.PersonalInfo.FullName,
		Email:    d.PersonalInfo.Email,
		Phone:    d.PersonalInfo.Phone,
		Location: d.PersonalInfo.Location,
		Website:  d.PersonalInfo.Website,
		LinkedIn: d.PersonalInfo.LinkedIn,
		Summary:  d.Summary,
	}
	if v.Name == "" {
		v.Name = NamePlaceholder
	}

	for _, w := range d.WorkExperience {
		v.Experience = append(v.Experience, ExperienceRow{
			ID:          w.ID,
			Position:    w.Position,
			Company:     w.Company,
			Location:    w.Location,
			Duration:    FormatDuration(w.StartDate, w.EndDate, w.Current),
			Description: w.Description,
		})
	}

	for _, e := range d.Education {
		heading := e.Degree
		if e.Field != "" {
			heading = strings.TrimSpace(e.Degree + " in " + e.Field)
		}
		v.Education = append(v.Education, EducationRow{
			ID:          e.ID,
			Heading:     heading,
			Institution: e.Institution,
			Graduation:  FormatDate(e.GraduationDate),
			GPA:         e.GPA,
		})
	}

	showAchievements := d.ResumeType == types.ResumeTypeHackathon
	for _, p := range d.Projects {
		row := ProjectRow{
			ID:           p.ID,
			Name:         p.Name,
			GitHubURL:    p.GitHubURL,
			LiveURL:      p.LiveURL,
			Technologies: strings.Join(p.Technologies, ", "),
			Duration:     FormatDuration(p.StartDate, p.EndDate, p.Current),
			Description:  p.Description,
		}
		if showAchievements {
			row.Achievements = p.Achievements
		}
		v.Projects = append(v.Projects, row)
	}

	for _, c := range d.Certifications {
		v.Certifications = append(v.Certifications, CertificationRow{
			ID:           c.ID,
			Name:         c.Name,
			URL:          c.URL,
			Issuer:       c.Issuer,
			CredentialID: c.CredentialID,
			Issued:       FormatDate(c.IssueDate),
			Expires:      FormatDate(c.ExpirationDate),
		})
	}

	if len(d.Skills) > 0 {
		v.Skills = append([]string{}, d.Skills...)
	}

	for _, a := range d.Achievements {
		v.Achievements = append(v.Achievements, AchievementRow{
			ID:          a.ID,
			Title:       a.Title,
			Category:    a.Category.Label(),
			Description: a.Description,
			Date:        FormatDate(a.Date),
		})
	}

	return v
}
