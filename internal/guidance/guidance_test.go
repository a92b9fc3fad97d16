package guidance

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsFor_AllTypesHaveFiveSections(t *testing.T) {
	for _, rt := range types.ResumeTypes {
		t.Run(string(rt), func(t *testing.T) {
			qs := QuestionsFor(rt)
			require.Len(t, qs, 5)
			for _, s := range Sections() {
				assert.Len(t, qs[s.Key], 4, s.Key)
			}
		})
	}
}

func TestQuestionsFor_TypeSpecificSections(t *testing.T) {
	job := QuestionsFor(types.ResumeTypeJob)
	hack := QuestionsFor(types.ResumeTypeHackathon)
	intern := QuestionsFor(types.ResumeTypeInternship)

	assert.Equal(t, "What companies have you worked for?", job[SectionExperience][0])
	assert.Equal(t, "What hackathons have you participated in?", hack[SectionExperience][0])
	assert.Equal(t, "What academic projects have you completed?", intern[SectionProjects][0])

	assert.NotEqual(t, job[SectionProjects], hack[SectionProjects])
	assert.Equal(t, job[SectionPersonal], hack[SectionPersonal])
	assert.Equal(t, job[SectionSkills], intern[SectionSkills])
	assert.Equal(t, job[SectionSummary], intern[SectionSummary])
}

func TestQuestionsFor_ReturnsCopy(t *testing.T) {
	qs := QuestionsFor(types.ResumeTypeJob)
	qs[SectionPersonal][0] = "changed"

	again := QuestionsFor(types.ResumeTypeJob)
	assert.Equal(t, "What's your full name and current contact information?", again[SectionPersonal][0])
}

func TestSections_Order(t *testing.T) {
	var keys []SectionKey
	for _, s := range Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []SectionKey{SectionPersonal, SectionSummary, SectionExperience, SectionProjects, SectionSkills}, keys)
}

func TestTips(t *testing.T) {
	for _, rt := range types.ResumeTypes {
		assert.NotEmpty(t, ProjectsTip(rt))
		assert.NotEmpty(t, AchievementsTip(rt))
	}
	assert.Contains(t, ProjectsTip(types.ResumeTypeHackathon), "hackathon projects")
	assert.Contains(t, AchievementsTip(types.ResumeTypeInternship), "scholarships")
	assert.Empty(t, ProjectsTip(types.ResumeType("freelance")))
	assert.Equal(t, AchievementsTip(types.ResumeTypeJob), Tips(types.ResumeTypeJob)["achievements"])
}

func TestResumeTypeOptions(t *testing.T) {
	opts := ResumeTypeOptions()
	require.Len(t, opts, 3)
	for i, rt := range types.ResumeTypes {
		assert.Equal(t, rt, opts[i].Type)
		assert.NotEmpty(t, opts[i].Title)
	}
}

func TestAccordion(t *testing.T) {
	var a Accordion
	assert.Equal(t, SectionKey(""), a.Expanded())

	a = a.Toggle(SectionSkills)
	assert.True(t, a.IsExpanded(SectionSkills))

	a = a.Toggle(SectionSummary)
	assert.True(t, a.IsExpanded(SectionSummary))
	assert.False(t, a.IsExpanded(SectionSkills))

	a = a.Toggle(SectionSummary)
	assert.Equal(t, SectionKey(""), a.Expanded())

	assert.Equal(t, Accordion{}, NewAccordion("bogus"))
	assert.False(t, Accordion{}.IsExpanded(""))
}
