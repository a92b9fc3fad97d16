package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/guidance"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

// mountBuilder posts the landing form and returns the new session.
func mountBuilder(t *testing.T, ts *testServer, form url.Values) *session.Session {
	t.Helper()
	w := ts.postForm(t, "/builder", form)
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/builder/"), loc)

	sess, err := ts.store.Get(strings.TrimPrefix(loc, "/builder/"))
	require.NoError(t, err)
	return sess
}

func getBuilder(t *testing.T, ts *testServer, path string) *goquery.Document {
	t.Helper()
	w := ts.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return parseDoc(t, w)
}

func TestLandingPage(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := parseDoc(t, w)

	assert.Equal(t, "Smart resume builder for students", doc.Find(".tagline").Text())
	assert.Equal(t, 3, doc.Find(".features h3").Length())
	assert.Equal(t, 3, doc.Find(`input[name="resumeType"]`).Length())
	checked, _ := doc.Find(`input[name="resumeType"][checked]`).Attr("value")
	assert.Equal(t, "internship", checked)
	assert.Equal(t, 0, doc.Find("#drafts").Length())
}

func TestLandingPage_UnknownPath(t *testing.T) {
	ts := setupTestServer(t)
	w := ts.do(t, http.MethodGet, "/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMountAndUnmountBuilder(t *testing.T) {
	ts := setupTestServer(t)

	sess := mountBuilder(t, ts, url.Values{"resumeType": {"hackathon"}})
	data, _ := sess.Builder.Snapshot()
	assert.Equal(t, types.ResumeTypeHackathon, data.ResumeType)
	assert.Equal(t, 1, ts.store.Len())

	w := ts.postForm(t, "/builder/"+sess.ID+"/back", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, 0, ts.store.Len())

	w = ts.do(t, http.MethodGet, "/builder/"+sess.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuilderPage_EmptyState(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)

	doc := getBuilder(t, ts, "/builder/"+sess.ID)

	empty := doc.Find("p.empty").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Contains(t, empty, `No work experience added yet. Click "Add Experience" to get started.`)
	assert.Contains(t, empty, "No skills added yet. Add your first skill above.")
	assert.Len(t, empty, 6)

	assert.Equal(t, "Your Name", doc.Find("#preview-pane h1").Text())
	assert.Equal(t, 0, doc.Find("#draft").Length())
	assert.Contains(t, doc.Find("#projects-form .tip").Text(), guidance.ProjectsTip(types.ResumeTypeInternship))
}

func TestBuilderPage_QuestionsAccordion(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	doc := getBuilder(t, ts, base)
	assert.Equal(t, 5, doc.Find(".question-section").Length())
	assert.Equal(t, 0, doc.Find(".question-section li").Length())
	href, _ := doc.Find(`.question-section[data-section="projects"] a.toggle`).Attr("href")
	assert.Equal(t, base+"?expanded=projects", href)

	doc = getBuilder(t, ts, base+"?expanded=projects")
	expanded := doc.Find(".question-section.expanded")
	require.Equal(t, 1, expanded.Length())
	assert.Equal(t, "projects", expanded.AttrOr("data-section", ""))
	assert.Equal(t, 4, expanded.Find("li").Length())

	// Toggling the open section collapses it; another section replaces it.
	href, _ = expanded.Find("a.toggle").Attr("href")
	assert.Equal(t, base, href)
	href, _ = doc.Find(`.question-section[data-section="skills"] a.toggle`).Attr("href")
	assert.Equal(t, base+"?expanded=skills", href)

	doc = getBuilder(t, ts, base+"?expanded=bogus")
	assert.Equal(t, 0, doc.Find(".question-section.expanded").Length())
}

func TestBuilderForms_RedirectKeepsAccordion(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)

	w := ts.postForm(t, "/builder/"+sess.ID+"/skills", url.Values{"value": {"Go"}, "expanded": {"skills"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/builder/"+sess.ID+"?expanded=skills", w.Header().Get("Location"))

	data, _ := sess.Builder.Snapshot()
	assert.Equal(t, []string{"Go"}, data.Skills)
}

func TestBuilderForms_PersonalAndSummary(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	ts.postForm(t, base+"/personal", url.Values{"fullName": {"Jane Doe"}, "email": {"jane@example.com"}})
	ts.postForm(t, base+"/personal", url.Values{"phone": {"555-0100"}})
	ts.postForm(t, base+"/summary", url.Values{"summary": {"CS student"}})

	data, _ := sess.Builder.Snapshot()
	assert.Equal(t, "Jane Doe", data.PersonalInfo.FullName)
	assert.Equal(t, "jane@example.com", data.PersonalInfo.Email)
	assert.Equal(t, "555-0100", data.PersonalInfo.Phone)
	assert.Equal(t, "CS student", data.Summary)

	doc := getBuilder(t, ts, base)
	assert.Equal(t, "Jane Doe", doc.Find("#fullName").AttrOr("value", ""))
	assert.Equal(t, "Jane Doe", doc.Find("#preview-pane h1").Text())
}

func TestBuilderForms_EntryCard(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	w := ts.postForm(t, base+"/sections/workExperience", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	ts.postForm(t, base+"/sections/workExperience/e-1", url.Values{
		"company": {"Acme"}, "position": {"Intern"}, "startDate": {"2024-06"}, "current": {"on"},
	})
	data, _ := sess.Builder.Snapshot()
	require.Len(t, data.WorkExperience, 1)
	assert.Equal(t, "Acme", data.WorkExperience[0].Company)
	assert.True(t, data.WorkExperience[0].Current)

	doc := getBuilder(t, ts, base)
	card := doc.Find(`#work-experience-form .entry-card[data-entry="e-1"]`)
	require.Equal(t, 1, card.Length())
	_, disabled := card.Find(`input[name="endDate"]`).Attr("disabled")
	assert.True(t, disabled)

	// An unchecked box is not posted; omitted text fields keep their values.
	ts.postForm(t, base+"/sections/workExperience/e-1", url.Values{"endDate": {"2024-09"}})
	data, _ = sess.Builder.Snapshot()
	assert.False(t, data.WorkExperience[0].Current)
	assert.Equal(t, "2024-09", data.WorkExperience[0].EndDate)
	assert.Equal(t, "Acme", data.WorkExperience[0].Company)

	w = ts.postForm(t, base+"/sections/workExperience/e-1/remove", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	data, _ = sess.Builder.Snapshot()
	assert.Empty(t, data.WorkExperience)
}

func TestBuilderForms_UnknownSection(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)

	w := ts.postForm(t, "/builder/"+sess.ID+"/sections/hobbies", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown section: hobbies")
}

func TestBuilderForms_TypeSwitch(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	ts.postForm(t, base+"/sections/projects", nil)
	doc := getBuilder(t, ts, base)
	assert.Equal(t, 0, doc.Find(`textarea[name="achievements"]`).Length())

	w := ts.postForm(t, base+"/type", url.Values{"resumeType": {"hackathon"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	doc = getBuilder(t, ts, base)
	assert.Equal(t, 1, doc.Find(`textarea[name="achievements"]`).Length())
	assert.Equal(t, "hackathon", doc.Find(`input[name="resumeType"][checked]`).AttrOr("value", ""))
	assert.Contains(t, doc.Find("#achievements-form .tip").Text(), guidance.AchievementsTip(types.ResumeTypeHackathon))

	w = ts.postForm(t, base+"/type", url.Values{"resumeType": {"freelance"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuilderForms_Technologies(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	ts.postForm(t, base+"/sections/projects", nil)
	ts.postForm(t, base+"/projects/e-1/technologies", url.Values{"value": {"Go"}})
	ts.postForm(t, base+"/projects/e-1/technologies", url.Values{"value": {"htmx"}})
	ts.postForm(t, base+"/projects/e-1/technologies/remove", url.Values{"value": {"Go"}})

	data, _ := sess.Builder.Snapshot()
	assert.Equal(t, []string{"htmx"}, data.Projects[0].Technologies)

	doc := getBuilder(t, ts, base)
	assert.Equal(t, 1, doc.Find(`.entry-card[data-entry="e-1"] .technologies li`).Length())
}

func TestBuilderForms_AchievementCategory(t *testing.T) {
	ts := setupTestServer(t)
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	ts.postForm(t, base+"/sections/achievements", nil)
	doc := getBuilder(t, ts, base)
	options := doc.Find(`select[name="category"] option`)
	assert.Equal(t, 5, options.Length())
	assert.Equal(t, "academic", doc.Find(`select[name="category"] option[selected]`).AttrOr("value", ""))

	ts.postForm(t, base+"/sections/achievements/e-1", url.Values{"title": {"Team Lead"}, "category": {"leadership"}})
	doc = getBuilder(t, ts, base)
	assert.Equal(t, "Leadership", doc.Find(`select[name="category"] option[selected]`).Text())
}

func TestBuilderForms_SaveDraft(t *testing.T) {
	drafts := newFakeDrafts()
	ts := setupTestServer(t, withDrafts(drafts))
	sess := mountBuilder(t, ts, nil)
	base := "/builder/" + sess.ID

	w := ts.postForm(t, base+"/draft", url.Values{"expanded": {"summary"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	draftID := loc.Query().Get("draft")
	require.NotEmpty(t, draftID)
	assert.Equal(t, "summary", loc.Query().Get("expanded"))
	assert.Equal(t, "saved", loc.Fragment)

	doc := getBuilder(t, ts, base+"?draft="+draftID)
	assert.Equal(t, draftID, doc.Find(`#draft input[name="draftId"]`).AttrOr("value", ""))

	// Saving again from the same page overwrites the draft.
	ts.postForm(t, base+"/draft", url.Values{"draftId": {draftID}})
	list, err := drafts.ListDrafts(t.Context(), 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLandingPage_OpenDraft(t *testing.T) {
	drafts := newFakeDrafts()
	ts := setupTestServer(t, withDrafts(drafts))

	data := types.NewResumeData()
	data.PersonalInfo.FullName = "Jane Doe"
	saved, err := drafts.SaveDraft(t.Context(), uuid.Nil, data)
	require.NoError(t, err)

	doc := getBuilder(t, ts, "/")
	assert.Contains(t, doc.Find("#drafts").Text(), "Jane Doe")

	w := ts.postForm(t, "/drafts/"+saved.ID.String()+"/open", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "draft="+saved.ID.String())
	assert.Equal(t, 1, ts.store.Len())

	w = ts.postForm(t, "/drafts/not-a-uuid/open", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
