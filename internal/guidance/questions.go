// Package guidance provides the static hints and guided questions shown next to the builder forms.
package guidance

import "github.com/jonathan/resume-builder/internal/types"

// SectionKey identifies a guided-questions section.
type SectionKey string

// Guided-questions sections
const (
	SectionPersonal   SectionKey = "personal"
	SectionSummary    SectionKey = "summary"
	SectionExperience SectionKey = "experience"
	SectionProjects   SectionKey = "projects"
	SectionSkills     SectionKey = "skills"
)

// Section is a guided-questions section with its display title.
type Section struct {
	Key   SectionKey
	Title string
}

var sections = []Section{
	{Key: SectionPersonal, Title: "Personal Information"},
	{Key: SectionSummary, Title: "Professional Summary"},
	{Key: SectionExperience, Title: "Experience"},
	{Key: SectionProjects, Title: "Projects"},
	{Key: SectionSkills, Title: "Skills"},
}

// Sections returns the guided-questions sections in display order.
func Sections() []Section {
	return append([]Section{}, sections...)
}

// IsValid reports whether k names a guided-questions section.
func (k SectionKey) IsValid() bool {
	for _, s := range sections {
		if s.Key == k {
			return true
		}
	}
	return false
}

var commonQuestions = map[SectionKey][]string{
	SectionPersonal: {
		"What's your full name and current contact information?",
		"What's your current location (city, state)?",
		"Do you have a professional website or portfolio?",
		"What's your LinkedIn profile URL?",
	},
	SectionSummary: {
		"What are you passionate about in your field?",
		"What are your key strengths and skills?",
		"What type of role are you seeking?",
		"What makes you unique as a candidate?",
	},
	SectionSkills: {
		"What programming languages do you know?",
		"What frameworks and tools have you used?",
		"What soft skills do you possess?",
		"What technical skills are you currently learning?",
	},
}

var typeQuestions = map[types.ResumeType]map[SectionKey][]string{
	types.ResumeTypeJob: {
		SectionExperience: {
			"What companies have you worked for?",
			"What were your key responsibilities in each role?",
			"What achievements or results can you quantify?",
			"How did you add value to your previous employers?",
		},
		SectionProjects: {
			"What professional projects have you worked on?",
			"What personal projects demonstrate your skills?",
			"What technologies did you use in each project?",
			"What was the impact or outcome of your projects?",
		},
	},
	types.ResumeTypeInternship: {
		SectionExperience: {
			"What internships or part-time jobs have you had?",
			"What volunteer work or leadership roles have you taken?",
			"What coursework is relevant to your target role?",
			"What extracurricular activities show your interests?",
		},
		SectionProjects: {
			"What academic projects have you completed?",
			"What personal coding projects have you built?",
			"What group projects have you contributed to?",
			"What technologies have you learned through projects?",
		},
	},
	types.ResumeTypeHackathon: {
		SectionExperience: {
			"What hackathons have you participated in?",
			"What coding competitions have you entered?",
			"What open-source projects have you contributed to?",
			"What technical communities are you part of?",
		},
		SectionProjects: {
			"What innovative projects have you built?",
			"What problems have your projects solved?",
			"What creative solutions have you developed?",
			"What technical challenges have you overcome?",
		},
	},
}

// QuestionsFor returns the prompts per section for the resume type. Experience
// and projects prompts depend on the type; an unknown type has none for them.
// The returned map is a fresh copy.
func QuestionsFor(t types.ResumeType) map[SectionKey][]string {
	out := make(map[SectionKey][]string, len(sections))
	for k, qs := range commonQuestions {
		out[k] = append([]string{}, qs...)
	}
	for k, qs := range typeQuestions[t] {
		out[k] = append([]string{}, qs...)
	}
	return out
}
