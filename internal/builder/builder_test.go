package builder

import (
	"sync"
	"testing"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *Builder {
	return New(editor.New(editor.NewSequenceGenerator("id")))
}

func sampleResume() types.ResumeData {
	d := types.NewResumeData()
	d.PersonalInfo = types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"}
	d.Summary = "Engineer"
	d.WorkExperience = []types.WorkExperience{{ID: "w1", Company: "Acme"}}
	d.Education = []types.Education{{ID: "e1", Institution: "State U"}}
	d.Certifications = []types.Certification{{ID: "c1", Name: "CKA"}}
	d.Skills = []string{"Go"}
	d.Projects = []types.Project{{ID: "p1", Name: "Tool", Technologies: []string{"Go"}}}
	d.Achievements = []types.Achievement{{ID: "a1", Title: "Award", Category: types.CategoryOther}}
	return d
}

func TestNew_EmptyRecord(t *testing.T) {
	b := newTestBuilder()
	d, version := b.Snapshot()

	assert.Equal(t, uint64(0), version)
	assert.Equal(t, types.ResumeTypeInternship, d.ResumeType)
	assert.Empty(t, d.WorkExperience)
	assert.NotNil(t, d.Skills)
	assert.Empty(t, d.Summary)
}

func TestWith_ChangesOnlyNamedField(t *testing.T) {
	base := sampleResume()

	tests := []struct {
		name  string
		apply func(types.ResumeData) types.ResumeData
		want  func(types.ResumeData) types.ResumeData
	}{
		{
			name:  "summary",
			apply: func(d types.ResumeData) types.ResumeData { return WithSummary(d, "new") },
			want:  func(d types.ResumeData) types.ResumeData { d.Summary = "new"; return d },
		},
		{
			name:  "skills",
			apply: func(d types.ResumeData) types.ResumeData { return WithSkills(d, []string{"Rust"}) },
			want:  func(d types.ResumeData) types.ResumeData { d.Skills = []string{"Rust"}; return d },
		},
		{
			name:  "resume type",
			apply: func(d types.ResumeData) types.ResumeData { return WithResumeType(d, types.ResumeTypeHackathon) },
			want:  func(d types.ResumeData) types.ResumeData { d.ResumeType = types.ResumeTypeHackathon; return d },
		},
		{
			name:  "personal info",
			apply: func(d types.ResumeData) types.ResumeData { return WithPersonalInfo(d, types.PersonalInfo{FullName: "X"}) },
			want:  func(d types.ResumeData) types.ResumeData { d.PersonalInfo = types.PersonalInfo{FullName: "X"}; return d },
		},
		{
			name:  "education",
			apply: func(d types.ResumeData) types.ResumeData { return WithEducation(d, nil) },
			want:  func(d types.ResumeData) types.ResumeData { d.Education = nil; return d },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base.Clone()
			got := tt.apply(input)
			assert.Equal(t, tt.want(base.Clone()), got)
			assert.Equal(t, base, input, "input record must not change")
		})
	}
}

func TestSnapshot_IsolatedFromLaterEdits(t *testing.T) {
	b := NewFrom(sampleResume(), editor.New(editor.NewSequenceGenerator("id")))
	before, _ := b.Snapshot()

	b.AddTechnology("p1", "Docker")
	b.AddSkill("SQL")
	_, err := b.UpdateEntry(editor.SectionWorkExperience, "w1", "company", editor.Text("Globex"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Go"}, before.Projects[0].Technologies)
	assert.Equal(t, []string{"Go"}, before.Skills)
	assert.Equal(t, "Acme", before.WorkExperience[0].Company)

	// Writing into a snapshot must not leak back into the builder.
	before.Skills[0] = "mutated"
	after, _ := b.Snapshot()
	assert.Equal(t, []string{"Go", "SQL"}, after.Skills)
}

func TestAddEntry_AllSections(t *testing.T) {
	b := newTestBuilder()

	for _, section := range editor.Sections {
		id, err := b.AddEntry(section)
		require.NoError(t, err, section)
		assert.NotEmpty(t, id)
	}

	d, version := b.Snapshot()
	assert.Equal(t, uint64(len(editor.Sections)), version)
	assert.Len(t, d.WorkExperience, 1)
	assert.Len(t, d.Education, 1)
	assert.Len(t, d.Certifications, 1)
	assert.Len(t, d.Projects, 1)
	assert.Len(t, d.Achievements, 1)
	assert.Equal(t, types.CategoryAcademic, d.Achievements[0].Category)
}

func TestAddEntry_UnknownSection(t *testing.T) {
	b := newTestBuilder()
	_, err := b.AddEntry(editor.Section("hobbies"))

	var unknown *UnknownSectionError
	require.ErrorAs(t, err, &unknown)
	_, version := b.Snapshot()
	assert.Equal(t, uint64(0), version, "failed operations do not bump the version")
}

func TestUpdateAndRemoveEntry(t *testing.T) {
	b := newTestBuilder()
	id, err := b.AddEntry(editor.SectionEducation)
	require.NoError(t, err)

	d, err := b.UpdateEntry(editor.SectionEducation, id, "degree", editor.Text("BSc"))
	require.NoError(t, err)
	assert.Equal(t, "BSc", d.Education[0].Degree)

	d, err = b.UpdateEntry(editor.SectionEducation, "gone", "degree", editor.Text("MSc"))
	require.NoError(t, err)
	assert.Equal(t, "BSc", d.Education[0].Degree)

	_, err = b.UpdateEntry(editor.SectionEducation, id, "major", editor.Text("CS"))
	assert.Error(t, err)

	d, err = b.RemoveEntry(editor.SectionEducation, id)
	require.NoError(t, err)
	assert.Empty(t, d.Education)

	d, err = b.RemoveEntry(editor.SectionEducation, id)
	require.NoError(t, err)
	assert.Empty(t, d.Education)
}

func TestResumeTypeSwitch_KeepsData(t *testing.T) {
	b := newTestBuilder()
	b.SetResumeType(types.ResumeTypeHackathon)
	id, err := b.AddEntry(editor.SectionProjects)
	require.NoError(t, err)
	_, err = b.UpdateEntry(editor.SectionProjects, id, "achievements", editor.Text("Won 1st place"))
	require.NoError(t, err)

	d := b.SetResumeType(types.ResumeTypeJob)
	assert.Equal(t, "Won 1st place", d.Projects[0].Achievements)

	d = b.SetResumeType(types.ResumeTypeHackathon)
	assert.Equal(t, "Won 1st place", d.Projects[0].Achievements)
}

func TestSkillsAndPersonal(t *testing.T) {
	b := newTestBuilder()
	b.AddSkill("Go")
	b.AddSkill(" Go ")
	d := b.AddSkill("")
	assert.Equal(t, []string{"Go"}, d.Skills)

	d = b.RemoveSkill("Go")
	assert.Empty(t, d.Skills)

	d, err := b.UpdatePersonal(editor.PersonalEmail, editor.Text("not-an-email"))
	require.NoError(t, err)
	assert.Equal(t, "not-an-email", d.PersonalInfo.Email)
}

func TestSubscribe_ReceivesLatestChange(t *testing.T) {
	b := newTestBuilder()
	ch, unsubscribe := b.Subscribe()
	defer unsubscribe()

	b.SetSummary("one")
	b.SetSummary("two")

	change := <-ch
	assert.Equal(t, uint64(2), change.Version)
	assert.Equal(t, "two", change.Data.Summary)

	select {
	case c := <-ch:
		t.Fatalf("unexpected extra change %d", c.Version)
	default:
	}
}

func TestSubscribe_UnsubscribeClosesChannel(t *testing.T) {
	b := newTestBuilder()
	ch, unsubscribe := b.Subscribe()
	unsubscribe()
	unsubscribe()

	b.SetSummary("after")
	_, ok := <-ch
	assert.False(t, ok)
}

func TestApply_SerializesConcurrentEdits(t *testing.T) {
	b := newTestBuilder()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.AddEntry(editor.SectionWorkExperience)
		}()
	}
	wg.Wait()

	d, version := b.Snapshot()
	assert.Len(t, d.WorkExperience, 50)
	assert.Equal(t, uint64(50), version)

	seen := make(map[string]bool)
	for _, w := range d.WorkExperience {
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}
}

func TestReplace_NormalizesRecord(t *testing.T) {
	b := newTestBuilder()
	d := b.Replace(types.ResumeData{Summary: "imported"})

	assert.Equal(t, "imported", d.Summary)
	assert.Equal(t, types.DefaultResumeType, d.ResumeType)
	assert.NotNil(t, d.Projects)
}

func TestReplace_DropsRepeatedStrings(t *testing.T) {
	b := newTestBuilder()
	d := types.NewResumeData()
	d.Skills = []string{"Go", "Go", "SQL"}
	d.Projects = []types.Project{{ID: "p", Technologies: []string{"React", "React"}}}

	got := b.Replace(d)
	assert.Equal(t, []string{"Go", "SQL"}, got.Skills)
	assert.Equal(t, []string{"React"}, got.Projects[0].Technologies)

	got = b.AddTechnology("p", "React")
	assert.Equal(t, []string{"React"}, got.Projects[0].Technologies)
}

func TestRemoveEntry_AfterReplaceWithRepeatedIDs(t *testing.T) {
	b := newTestBuilder()
	d := types.NewResumeData()
	d.WorkExperience = []types.WorkExperience{{ID: "x"}, {ID: "x"}, {ID: "w"}}
	b.Replace(d)

	got, err := b.RemoveEntry(editor.SectionWorkExperience, "x")
	require.NoError(t, err)
	require.Len(t, got.WorkExperience, 1)
	assert.Equal(t, "w", got.WorkExperience[0].ID)
}

func TestUpdateEntryFields_EveryFieldAccepted(t *testing.T) {
	b := newTestBuilder()
	for _, section := range editor.Sections {
		id, err := b.AddEntry(section)
		require.NoError(t, err)

		var updates []FieldUpdate
		for _, f := range section.Fields() {
			v := editor.Text("x")
			if section.FieldKind(f) == editor.KindFlag {
				v = editor.Flag(true)
			}
			if section == editor.SectionAchievements && f == "category" {
				v = editor.Text(string(types.CategoryLeadership))
			}
			updates = append(updates, FieldUpdate{Field: f, Value: v})
		}
		_, err = b.UpdateEntryFields(section, id, updates)
		assert.NoError(t, err, section)
	}
}

func TestUpdateEntryFields_SingleChangeAndAtomic(t *testing.T) {
	b := newTestBuilder()
	id, err := b.AddEntry(editor.SectionWorkExperience)
	require.NoError(t, err)
	_, before := b.Snapshot()

	d, err := b.UpdateEntryFields(editor.SectionWorkExperience, id, []FieldUpdate{
		{Field: "company", Value: editor.Text("Acme Corp")},
		{Field: "current", Value: editor.Flag(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", d.WorkExperience[0].Company)
	assert.True(t, d.WorkExperience[0].Current)
	_, after := b.Snapshot()
	assert.Equal(t, before+1, after)

	_, err = b.UpdateEntryFields(editor.SectionWorkExperience, id, []FieldUpdate{
		{Field: "position", Value: editor.Text("Intern")},
		{Field: "salary", Value: editor.Text("lots")},
	})
	require.Error(t, err)

	d, version := b.Snapshot()
	assert.Empty(t, d.WorkExperience[0].Position)
	assert.Equal(t, after, version)
}
