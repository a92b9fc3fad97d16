package builder

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
)

// UnknownSectionError is returned when an operation names a section that does not exist.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// AddEntry appends a blank entry to section and returns its id.
func (b *Builder) AddEntry(section editor.Section) (string, error) {
	var id string
	_, err := b.ApplyErr(func(d types.ResumeData) (types.ResumeData, error) {
		switch section {
		case editor.SectionWorkExperience:
			list, entry := b.editors.WorkExperience.Add(d.WorkExperience)
			id = entry.ID
			return WithWorkExperience(d, list), nil
		case editor.SectionEducation:
			list, entry := b.editors.Education.Add(d.Education)
			id = entry.ID
			return WithEducation(d, list), nil
		case editor.SectionCertifications:
			list, entry := b.editors.Certifications.Add(d.Certifications)
			id = entry.ID
			return WithCertifications(d, list), nil
		case editor.SectionProjects:
			list, entry := b.editors.Projects.Add(d.Projects)
			id = entry.ID
			return WithProjects(d, list), nil
		case editor.SectionAchievements:
			list, entry := b.editors.Achievements.Add(d.Achievements)
			id = entry.ID
			return WithAchievements(d, list), nil
		}
		return d, &UnknownSectionError{Section: string(section)}
	})
	return id, err
}

// UpdateEntry sets one field of the entry id in section. A missing id is a no-op.
func (b *Builder) UpdateEntry(section editor.Section, id, field string, v editor.Value) (types.ResumeData, error) {
	return b.ApplyErr(func(d types.ResumeData) (types.ResumeData, error) {
		return b.updateEntry(d, section, id, field, v)
	})
}

// FieldUpdate is one field assignment of a multi-field update.
type FieldUpdate struct {
	Field string
	Value editor.Value
}

// UpdateEntryFields applies several field updates to one entry as a single
// change. If any update is rejected none of them is applied.
func (b *Builder) UpdateEntryFields(section editor.Section, id string, updates []FieldUpdate) (types.ResumeData, error) {
	return b.ApplyErr(func(d types.ResumeData) (types.ResumeData, error) {
		var err error
		for _, u := range updates {
			if d, err = b.updateEntry(d, section, id, u.Field, u.Value); err != nil {
				return d, err
			}
		}
		return d, nil
	})
}

func (b *Builder) updateEntry(d types.ResumeData, section editor.Section, id, field string, v editor.Value) (types.ResumeData, error) {
	switch section {
	case editor.SectionWorkExperience:
		list, err := b.editors.WorkExperience.Update(d.WorkExperience, id, editor.WorkField(field), v)
		return WithWorkExperience(d, list), err
	case editor.SectionEducation:
		list, err := b.editors.Education.Update(d.Education, id, editor.EducationField(field), v)
		return WithEducation(d, list), err
	case editor.SectionCertifications:
		list, err := b.editors.Certifications.Update(d.Certifications, id, editor.CertificationField(field), v)
		return WithCertifications(d, list), err
	case editor.SectionProjects:
		list, err := b.editors.Projects.Update(d.Projects, id, editor.ProjectField(field), v)
		return WithProjects(d, list), err
	case editor.SectionAchievements:
		list, err := b.editors.Achievements.Update(d.Achievements, id, editor.AchievementField(field), v)
		return WithAchievements(d, list), err
	}
	return d, &UnknownSectionError{Section: string(section)}
}

// RemoveEntry drops the entry id from section. A missing id is a no-op.
func (b *Builder) RemoveEntry(section editor.Section, id string) (types.ResumeData, error) {
	return b.ApplyErr(func(d types.ResumeData) (types.ResumeData, error) {
		switch section {
		case editor.SectionWorkExperience:
			return WithWorkExperience(d, b.editors.WorkExperience.Remove(d.WorkExperience, id)), nil
		case editor.SectionEducation:
			return WithEducation(d, b.editors.Education.Remove(d.Education, id)), nil
		case editor.SectionCertifications:
			return WithCertifications(d, b.editors.Certifications.Remove(d.Certifications, id)), nil
		case editor.SectionProjects:
			return WithProjects(d, b.editors.Projects.Remove(d.Projects, id)), nil
		case editor.SectionAchievements:
			return WithAchievements(d, b.editors.Achievements.Remove(d.Achievements, id)), nil
		}
		return d, &UnknownSectionError{Section: string(section)}
	})
}

// UpdatePersonal sets one personal info field.
func (b *Builder) UpdatePersonal(field editor.PersonalField, v editor.Value) (types.ResumeData, error) {
	return b.ApplyErr(func(d types.ResumeData) (types.ResumeData, error) {
		info, err := editor.UpdatePersonal(d.PersonalInfo, field, v)
		return WithPersonalInfo(d, info), err
	})
}

// AddSkill appends a trimmed, not yet present skill.
func (b *Builder) AddSkill(skill string) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData {
		return WithSkills(d, editor.AddItem(d.Skills, skill))
	})
}

// RemoveSkill removes a skill by exact match.
func (b *Builder) RemoveSkill(skill string) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData {
		return WithSkills(d, editor.RemoveItem(d.Skills, skill))
	})
}

// AddTechnology appends a technology to the project id.
func (b *Builder) AddTechnology(projectID, tech string) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData {
		return WithProjects(d, b.editors.Projects.AddTechnology(d.Projects, projectID, tech))
	})
}

// RemoveTechnology removes a technology from the project id.
func (b *Builder) RemoveTechnology(projectID, tech string) types.ResumeData {
	return b.Apply(func(d types.ResumeData) types.ResumeData {
		return WithProjects(d, b.editors.Projects.RemoveTechnology(d.Projects, projectID, tech))
	})
}
