// Package builder holds the aggregate resume record and replaces one slice of it at a time.
package builder

import "github.com/jonathan/resume-builder/internal/types"

// Each With* function returns a record equal to d except for one field.
// The input record is never written to.

// WithPersonalInfo replaces the personal info header.
func WithPersonalInfo(d types.ResumeData, v types.PersonalInfo) types.ResumeData {
	d.PersonalInfo = v
	return d
}

// WithSummary replaces the professional summary.
func WithSummary(d types.ResumeData, v string) types.ResumeData {
	d.Summary = v
	return d
}

// WithWorkExperience replaces the work experience list.
func WithWorkExperience(d types.ResumeData, v []types.WorkExperience) types.ResumeData {
	d.WorkExperience = v
	return d
}

// WithEducation replaces the education list.
func WithEducation(d types.ResumeData, v []types.Education) types.ResumeData {
	d.Education = v
	return d
}

// WithCertifications replaces the certification list.
func WithCertifications(d types.ResumeData, v []types.Certification) types.ResumeData {
	d.Certifications = v
	return d
}

// WithSkills replaces the skills list.
func WithSkills(d types.ResumeData, v []string) types.ResumeData {
	d.Skills = v
	return d
}

// WithProjects replaces the project list.
func WithProjects(d types.ResumeData, v []types.Project) types.ResumeData {
	d.Projects = v
	return d
}

// WithAchievements replaces the achievement list.
func WithAchievements(d types.ResumeData, v []types.Achievement) types.ResumeData {
	d.Achievements = v
	return d
}

// WithResumeType replaces the resume type. No other section is touched, so
// fields hidden by the new type keep their values.
func WithResumeType(d types.ResumeData, v types.ResumeType) types.ResumeData {
	d.ResumeType = v
	return d
}
