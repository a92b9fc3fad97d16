package editor

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditors() *Editors {
	return New(NewSequenceGenerator("id"))
}

func TestWorkExperience_AddAppendsBlankEntry(t *testing.T) {
	e := newTestEditors()

	list, first := e.WorkExperience.Add(nil)
	list, second := e.WorkExperience.Add(list)

	require.Len(t, list, 2)
	assert.Equal(t, first, list[0])
	assert.Equal(t, second, list[1])
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.Current)
	assert.Empty(t, second.Company)
}

func TestAdd_DoesNotModifyInput(t *testing.T) {
	e := newTestEditors()
	list, _ := e.Education.Add(nil)
	list, _ = e.Education.Add(list)
	before := append([]types.Education{}, list...)

	grown, _ := e.Education.Add(list[:1])

	assert.Equal(t, before, list, "appending to a prefix must not clobber the original backing array")
	assert.Len(t, grown, 2)
	assert.Equal(t, before[0], grown[0])
}

type fixedIDs struct {
	ids []string
	i   int
}

func (f *fixedIDs) NewID() string {
	id := f.ids[f.i]
	f.i++
	return id
}

func TestAdd_SkipsCollidingIDs(t *testing.T) {
	gen := &fixedIDs{ids: []string{"a", "a", "", "b"}}
	e := New(gen)

	list, _ := e.Certifications.Add(nil)
	list, entry := e.Certifications.Add(list)

	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", entry.ID)
}

func TestWorkExperience_UpdateChangesOnlyNamedField(t *testing.T) {
	e := newTestEditors()
	list, a := e.WorkExperience.Add(nil)
	list, b := e.WorkExperience.Add(list)

	updated, err := e.WorkExperience.Update(list, b.ID, WorkCompany, Text("Acme"))
	require.NoError(t, err)

	assert.Equal(t, a, updated[0])
	assert.Equal(t, "Acme", updated[1].Company)
	assert.Equal(t, b.ID, updated[1].ID)
	assert.Empty(t, list[1].Company, "input list must be left untouched")
}

func TestWorkExperience_UpdateCurrentFlag(t *testing.T) {
	e := newTestEditors()
	list, w := e.WorkExperience.Add(nil)

	list, err := e.WorkExperience.Update(list, w.ID, WorkCurrent, Flag(true))
	require.NoError(t, err)
	assert.True(t, list[0].Current)
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	e := newTestEditors()
	list, _ := e.Projects.Add(nil)

	updated, err := e.Projects.Update(list, "missing", ProjectName, Text("x"))
	require.NoError(t, err)
	assert.Equal(t, list, updated)

	removed := e.Projects.Remove(list, "missing")
	assert.Equal(t, list, removed)
}

func TestUpdate_UnknownFieldIsFieldError(t *testing.T) {
	e := newTestEditors()
	list, w := e.WorkExperience.Add(nil)

	_, err := e.WorkExperience.Update(list, w.ID, WorkField("salary"), Text("1"))
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "salary", fe.Field)
}

func TestUpdate_WrongValueKind(t *testing.T) {
	e := newTestEditors()
	list, p := e.Projects.Add(nil)

	_, err := e.Projects.Update(list, p.ID, ProjectCurrent, Text("yes"))
	assert.Error(t, err)

	_, err = e.Projects.Update(list, p.ID, ProjectName, Flag(true))
	assert.Error(t, err)
}

func TestRemove_PreservesOrder(t *testing.T) {
	e := newTestEditors()
	var list []types.Achievement
	var ids []string
	for range 4 {
		var a types.Achievement
		list, a = e.Achievements.Add(list)
		ids = append(ids, a.ID)
	}

	out := e.Achievements.Remove(list, ids[1])

	require.Len(t, out, 3)
	assert.Equal(t, []string{ids[0], ids[2], ids[3]}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Len(t, list, 4)
}

func TestRemove_DropsEveryEntryWithID(t *testing.T) {
	e := newTestEditors()
	list := []types.WorkExperience{{ID: "x", Company: "A"}, {ID: "y"}, {ID: "x", Company: "B"}}

	out := e.WorkExperience.Remove(list, "x")

	require.Len(t, out, 1)
	assert.Equal(t, "y", out[0].ID)
	assert.Len(t, list, 3)
	assert.Equal(t, "B", list[2].Company)
}

func TestAchievement_DefaultsAndCategory(t *testing.T) {
	e := newTestEditors()
	list, a := e.Achievements.Add(nil)
	assert.Equal(t, types.CategoryAcademic, a.Category)

	list, err := e.Achievements.Update(list, a.ID, AchievementCategory, Text("leadership"))
	require.NoError(t, err)
	assert.Equal(t, types.CategoryLeadership, list[0].Category)

	_, err = e.Achievements.Update(list, a.ID, AchievementCategory, Text("sports"))
	assert.Error(t, err)
}

func TestEducation_AcceptsAnyContent(t *testing.T) {
	e := newTestEditors()
	list, ed := e.Education.Add(nil)

	list, err := e.Education.Update(list, ed.ID, EducationGPA, Text("not a number"))
	require.NoError(t, err)
	list, err = e.Education.Update(list, ed.ID, EducationGraduationDate, Text("someday"))
	require.NoError(t, err)
	list, err = e.Education.Update(list, ed.ID, EducationStudyField, Text("Physics"))
	require.NoError(t, err)

	assert.Equal(t, "not a number", list[0].GPA)
	assert.Equal(t, "someday", list[0].GraduationDate)
	assert.Equal(t, "Physics", list[0].Field)
}

func TestCertification_UpdateOptionalFields(t *testing.T) {
	e := newTestEditors()
	list, c := e.Certifications.Add(nil)

	list, err := e.Certifications.Update(list, c.ID, CertificationCredentialID, Text("ABC123"))
	require.NoError(t, err)
	list, err = e.Certifications.Update(list, c.ID, CertificationURL, Text("https://verify.example.com"))
	require.NoError(t, err)

	assert.Equal(t, "ABC123", list[0].CredentialID)
	assert.Equal(t, "https://verify.example.com", list[0].URL)
}

func TestUpdatePersonal(t *testing.T) {
	info, err := UpdatePersonal(types.PersonalInfo{Email: "a@b.c"}, PersonalFullName, Text("Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", info.FullName)
	assert.Equal(t, "a@b.c", info.Email)

	_, err = UpdatePersonal(info, PersonalField("age"), Text("30"))
	assert.Error(t, err)
}

func TestSection_FieldKind(t *testing.T) {
	assert.Equal(t, KindFlag, SectionWorkExperience.FieldKind("current"))
	assert.Equal(t, KindFlag, SectionProjects.FieldKind("current"))
	assert.Equal(t, KindText, SectionEducation.FieldKind("current"))
	assert.True(t, SectionAchievements.IsValid())
	assert.False(t, Section("skills").IsValid())
}

func TestSection_Fields(t *testing.T) {
	assert.Equal(t, []string{"company", "position", "location", "startDate", "endDate", "current", "description"},
		SectionWorkExperience.Fields())
	assert.Contains(t, SectionProjects.Fields(), "achievements")
	assert.Contains(t, SectionAchievements.Fields(), "category")
	assert.Empty(t, Section("skills").Fields())

	fields := SectionEducation.Fields()
	fields[0] = "changed"
	assert.Equal(t, "institution", SectionEducation.Fields()[0])
}
