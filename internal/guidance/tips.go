package guidance

import "github.com/jonathan/resume-builder/internal/types"

var projectsTips = map[types.ResumeType]string{
	types.ResumeTypeHackathon:  "Focus on innovative projects, technical challenges solved, and technologies used. Include hackathon projects, personal coding projects, and open-source contributions.",
	types.ResumeTypeInternship: "Include academic projects, personal projects, and any collaborative work. Emphasize learning outcomes and technologies explored.",
	types.ResumeTypeJob:        "Highlight professional projects, significant personal projects, and contributions to real-world applications. Focus on impact and results.",
}

var achievementsTips = map[types.ResumeType]string{
	types.ResumeTypeHackathon:  "Include hackathon wins, coding competition rankings, open-source contributions, and technical achievements.",
	types.ResumeTypeInternship: "Highlight academic achievements, scholarships, leadership roles, volunteer work, and relevant competitions.",
	types.ResumeTypeJob:        "Focus on professional achievements, awards, leadership experiences, and measurable accomplishments.",
}

// ProjectsTip returns the projects section hint for t, or "" for an unknown type.
func ProjectsTip(t types.ResumeType) string {
	return projectsTips[t]
}

// AchievementsTip returns the achievements section hint for t, or "" for an unknown type.
func AchievementsTip(t types.ResumeType) string {
	return achievementsTips[t]
}

// Tips returns every section hint for t keyed by section name.
func Tips(t types.ResumeType) map[string]string {
	return map[string]string{
		"projects":     ProjectsTip(t),
		"achievements": AchievementsTip(t),
	}
}

// TypeOption describes a resume type in the selector.
type TypeOption struct {
	Type        types.ResumeType
	Title       string
	Description string
}

// ResumeTypeOptions returns the selector entries in display order.
func ResumeTypeOptions() []TypeOption {
	return []TypeOption{
		{Type: types.ResumeTypeJob, Title: "Job Application", Description: "Professional resume for full-time positions"},
		{Type: types.ResumeTypeInternship, Title: "Internship", Description: "Student-focused resume for internship opportunities"},
		{Type: types.ResumeTypeHackathon, Title: "Hackathon", Description: "Project-focused resume for competitions and events"},
	}
}
