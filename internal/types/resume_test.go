package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeType_IsValid(t *testing.T) {
	for _, rt := range ResumeTypes {
		assert.True(t, rt.IsValid(), rt)
	}
	assert.False(t, ResumeType("freelance").IsValid())
	assert.False(t, ResumeType("").IsValid())
}

func TestAchievementCategory_Label(t *testing.T) {
	tests := []struct {
		category AchievementCategory
		want     string
	}{
		{CategoryAcademic, "Academic"},
		{CategoryCompetition, "Competition"},
		{CategoryLeadership, "Leadership"},
		{CategoryVolunteer, "Volunteer"},
		{CategoryOther, "Other"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.Label())
	}
	assert.False(t, AchievementCategory("sports").IsValid())
}

func TestNewResumeData(t *testing.T) {
	d := NewResumeData()
	assert.Equal(t, ResumeTypeInternship, d.ResumeType)
	assert.NotNil(t, d.WorkExperience)
	assert.NotNil(t, d.Skills)
	assert.NotNil(t, d.Achievements)
	assert.Empty(t, d.Projects)
}

func TestResumeData_CloneIsDeep(t *testing.T) {
	d := NewResumeData()
	d.Skills = []string{"Go"}
	d.Projects = []Project{{ID: "p1", Technologies: []string{"Go"}}}

	c := d.Clone()
	c.Skills[0] = "Rust"
	c.Projects[0].Technologies[0] = "Rust"
	c.Projects[0].Name = "Changed"

	assert.Equal(t, "Go", d.Skills[0])
	assert.Equal(t, "Go", d.Projects[0].Technologies[0])
	assert.Empty(t, d.Projects[0].Name)
}

func TestResumeData_Normalize(t *testing.T) {
	var d ResumeData
	n := d.Normalize()

	assert.Equal(t, DefaultResumeType, n.ResumeType)
	assert.NotNil(t, n.Education)
	assert.NotNil(t, n.Certifications)

	d.ResumeType = ResumeTypeJob
	assert.Equal(t, ResumeTypeJob, d.Normalize().ResumeType)
}

func TestResumeData_NormalizeDropsRepeatedStrings(t *testing.T) {
	d := ResumeData{
		Skills:   []string{"Go", "SQL", "Go"},
		Projects: []Project{{ID: "p", Technologies: []string{"React", "Vue", "React"}}},
	}

	n := d.Normalize()
	assert.Equal(t, []string{"Go", "SQL"}, n.Skills)
	assert.Equal(t, []string{"React", "Vue"}, n.Projects[0].Technologies)
	assert.Equal(t, []string{"Go", "SQL", "Go"}, d.Skills)
}

func TestSetResumeTypeRequest_Validate(t *testing.T) {
	ok := SetResumeTypeRequest{ResumeType: ResumeTypeHackathon}
	assert.NoError(t, ok.Validate())

	bad := SetResumeTypeRequest{ResumeType: "freelance"}
	err := bad.Validate()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "oneof", verrs[0].Tag())

	empty := SetResumeTypeRequest{}
	assert.Error(t, empty.Validate())
}

func TestUpdateFieldRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateFieldRequest{Field: "company", Value: "Acme"}).Validate())
	assert.Error(t, (&UpdateFieldRequest{Value: "Acme"}).Validate())
}
