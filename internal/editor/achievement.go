package editor

import "github.com/jonathan/resume-builder/internal/types"

// AchievementField names an editable field of an achievement entry.
type AchievementField string

// Achievement fields
const (
	AchievementTitle       AchievementField = "title"
	AchievementDescription AchievementField = "description"
	AchievementDate        AchievementField = "date"
	AchievementCategory    AchievementField = "category"
)

const achievementEntity = "achievements"

// Kind returns the value kind the field accepts.
func (f AchievementField) Kind() Kind { return KindText }

func setAchievementField(a types.Achievement, f AchievementField, v Value) (types.Achievement, error) {
	s, err := v.asText(achievementEntity, string(f))
	switch f {
	case AchievementTitle:
		a.Title = s
	case AchievementDescription:
		a.Description = s
	case AchievementDate:
		a.Date = s
	case AchievementCategory:
		if err == nil && !types.AchievementCategory(s).IsValid() {
			err = &FieldError{Entity: achievementEntity, Field: string(f), Message: "unknown category " + s}
		}
		a.Category = types.AchievementCategory(s)
	default:
		return a, unknownField(achievementEntity, string(f))
	}
	return a, err
}

// AchievementEditor edits the achievement list.
type AchievementEditor struct {
	ids IDGenerator
}

// Add appends a blank entry with a fresh id and the default category.
func (e *AchievementEditor) Add(list []types.Achievement) ([]types.Achievement, types.Achievement) {
	entry := types.Achievement{ID: freshID(e.ids, list), Category: types.DefaultAchievementCategory}
	return appendEntry(list, entry), entry
}

// Update sets one field of the entry with the given id.
func (e *AchievementEditor) Update(list []types.Achievement, id string, f AchievementField, v Value) ([]types.Achievement, error) {
	if _, err := setAchievementField(types.Achievement{}, f, v); err != nil {
		return list, err
	}
	return updateEntry(list, id, func(a types.Achievement) (types.Achievement, error) {
		return setAchievementField(a, f, v)
	})
}

// Remove drops the entry with the given id.
func (e *AchievementEditor) Remove(list []types.Achievement, id string) []types.Achievement {
	return removeEntry(list, id)
}
