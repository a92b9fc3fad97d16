package editor

import "github.com/jonathan/resume-builder/internal/types"

// ProjectField names an editable field of a project entry.
// Technologies are edited through AddTechnology and RemoveTechnology.
type ProjectField string

// Project fields
const (
	ProjectName         ProjectField = "name"
	ProjectDescription  ProjectField = "description"
	ProjectStartDate    ProjectField = "startDate"
	ProjectEndDate      ProjectField = "endDate"
	ProjectCurrent      ProjectField = "current"
	ProjectGitHubURL    ProjectField = "githubUrl"
	ProjectLiveURL      ProjectField = "liveUrl"
	ProjectAchievements ProjectField = "achievements"
)

const projectEntity = "projects"

// Kind returns the value kind the field accepts.
func (f ProjectField) Kind() Kind {
	if f == ProjectCurrent {
		return KindFlag
	}
	return KindText
}

func setProjectField(p types.Project, f ProjectField, v Value) (types.Project, error) {
	if f == ProjectCurrent {
		b, err := v.asFlag(projectEntity, string(f))
		if err != nil {
			return p, err
		}
		p.Current = b
		return p, nil
	}
	var target *string
	switch f {
	case ProjectName:
		target = &p.Name
	case ProjectDescription:
		target = &p.Description
	case ProjectStartDate:
		target = &p.StartDate
	case ProjectEndDate:
		target = &p.EndDate
	case ProjectGitHubURL:
		target = &p.GitHubURL
	case ProjectLiveURL:
		target = &p.LiveURL
	case ProjectAchievements:
		target = &p.Achievements
	default:
		return p, unknownField(projectEntity, string(f))
	}
	s, err := v.asText(projectEntity, string(f))
	if err != nil {
		return p, err
	}
	*target = s
	return p, nil
}

// ProjectEditor edits the project list and each project's technologies.
type ProjectEditor struct {
	ids IDGenerator
}

// Add appends a blank entry with a fresh id and returns the new list and entry.
func (e *ProjectEditor) Add(list []types.Project) ([]types.Project, types.Project) {
	entry := types.Project{ID: freshID(e.ids, list), Technologies: []string{}}
	return appendEntry(list, entry), entry
}

// Update sets one field of the entry with the given id.
func (e *ProjectEditor) Update(list []types.Project, id string, f ProjectField, v Value) ([]types.Project, error) {
	if _, err := setProjectField(types.Project{}, f, v); err != nil {
		return list, err
	}
	return updateEntry(list, id, func(p types.Project) (types.Project, error) {
		return setProjectField(p, f, v)
	})
}

// Remove drops the entry with the given id.
func (e *ProjectEditor) Remove(list []types.Project, id string) []types.Project {
	return removeEntry(list, id)
}

// AddTechnology appends tech to the project's technologies, trimmed and deduplicated.
func (e *ProjectEditor) AddTechnology(list []types.Project, id, tech string) []types.Project {
	out, _ := updateEntry(list, id, func(p types.Project) (types.Project, error) {
		p.Technologies = AddItem(p.Technologies, tech)
		return p, nil
	})
	return out
}

// RemoveTechnology removes tech from the project's technologies.
func (e *ProjectEditor) RemoveTechnology(list []types.Project, id, tech string) []types.Project {
	out, _ := updateEntry(list, id, func(p types.Project) (types.Project, error) {
		p.Technologies = RemoveItem(p.Technologies, tech)
		return p, nil
	})
	return out
}
