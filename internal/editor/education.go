package editor

import "github.com/jonathan/resume-builder/internal/types"

// EducationField names an editable field of an education entry.
type EducationField string

// Education fields
const (
	EducationInstitution    EducationField = "institution"
	EducationDegree         EducationField = "degree"
	EducationStudyField     EducationField = "field"
	EducationGraduationDate EducationField = "graduationDate"
	EducationGPA            EducationField = "gpa"
)

const educationEntity = "education"

// Kind returns the value kind the field accepts.
func (f EducationField) Kind() Kind { return KindText }

func setEducationField(ed types.Education, f EducationField, v Value) (types.Education, error) {
	var target *string
	switch f {
	case EducationInstitution:
		target = &ed.Institution
	case EducationDegree:
		target = &ed.Degree
	case EducationStudyField:
		target = &ed.Field
	case EducationGraduationDate:
		target = &ed.GraduationDate
	case EducationGPA:
		target = &ed.GPA
	default:
		return ed, unknownField(educationEntity, string(f))
	}
	s, err := v.asText(educationEntity, string(f))
	if err != nil {
		return ed, err
	}
	*target = s
	return ed, nil
}

// EducationEditor edits the education list.
type EducationEditor struct {
	ids IDGenerator
}

// Add appends a blank entry with a fresh id and returns the new list and entry.
func (e *EducationEditor) Add(list []types.Education) ([]types.Education, types.Education) {
	entry := types.Education{ID: freshID(e.ids, list)}
	return appendEntry(list, entry), entry
}

// Update sets one field of the entry with the given id.
func (e *EducationEditor) Update(list []types.Education, id string, f EducationField, v Value) ([]types.Education, error) {
	if _, err := setEducationField(types.Education{}, f, v); err != nil {
		return list, err
	}
	return updateEntry(list, id, func(ed types.Education) (types.Education, error) {
		return setEducationField(ed, f, v)
	})
}

// Remove drops the entry with the given id.
func (e *EducationEditor) Remove(list []types.Education, id string) []types.Education {
	return removeEntry(list, id)
}
