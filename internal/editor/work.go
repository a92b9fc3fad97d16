package editor

import "github.com/jonathan/resume-builder/internal/types"

// WorkField names an editable field of a work experience entry.
type WorkField string

// Work experience fields
const (
	WorkCompany     WorkField = "company"
	WorkPosition    WorkField = "position"
	WorkLocation    WorkField = "location"
	WorkStartDate   WorkField = "startDate"
	WorkEndDate     WorkField = "endDate"
	WorkCurrent     WorkField = "current"
	WorkDescription WorkField = "description"
)

const workEntity = "workExperience"

// Kind returns the value kind the field accepts.
func (f WorkField) Kind() Kind {
	if f == WorkCurrent {
		return KindFlag
	}
	return KindText
}

func setWorkField(w types.WorkExperience, f WorkField, v Value) (types.WorkExperience, error) {
	if f == WorkCurrent {
		b, err := v.asFlag(workEntity, string(f))
		if err != nil {
			return w, err
		}
		w.Current = b
		return w, nil
	}
	var target *string
	switch f {
	case WorkCompany:
		target = &w.Company
	case WorkPosition:
		target = &w.Position
	case WorkLocation:
		target = &w.Location
	case WorkStartDate:
		target = &w.StartDate
	case WorkEndDate:
		target = &w.EndDate
	case WorkDescription:
		target = &w.Description
	default:
		return w, unknownField(workEntity, string(f))
	}
	s, err := v.asText(workEntity, string(f))
	if err != nil {
		return w, err
	}
	*target = s
	return w, nil
}

// WorkExperienceEditor edits the work experience list.
type WorkExperienceEditor struct {
	ids IDGenerator
}

// Add appends a blank entry with a fresh id and returns the new list and entry.
func (e *WorkExperienceEditor) Add(list []types.WorkExperience) ([]types.WorkExperience, types.WorkExperience) {
	entry := types.WorkExperience{ID: freshID(e.ids, list)}
	return appendEntry(list, entry), entry
}

// Update sets one field of the entry with the given id.
func (e *WorkExperienceEditor) Update(list []types.WorkExperience, id string, f WorkField, v Value) ([]types.WorkExperience, error) {
	if _, err := setWorkField(types.WorkExperience{}, f, v); err != nil {
		return list, err
	}
	return updateEntry(list, id, func(w types.WorkExperience) (types.WorkExperience, error) {
		return setWorkField(w, f, v)
	})
}

// Remove drops the entry with the given id.
func (e *WorkExperienceEditor) Remove(list []types.WorkExperience, id string) []types.WorkExperience {
	return removeEntry(list, id)
}
