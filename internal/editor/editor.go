package editor

// Section names a repeatable section of the resume record.
type Section string

// Repeatable sections
const (
	SectionWorkExperience Section = "workExperience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionAchievements   Section = "achievements"
)

// Sections lists the repeatable sections in form order.
var Sections = []Section{
	SectionWorkExperience,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
	SectionAchievements,
}

// IsValid reports whether s names a repeatable section.
func (s Section) IsValid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// FieldKind returns the value kind of field in section. Unknown fields are
// reported as text; the update itself rejects them.
func (s Section) FieldKind(field string) Kind {
	switch s {
	case SectionWorkExperience:
		return WorkField(field).Kind()
	case SectionProjects:
		return ProjectField(field).Kind()
	}
	return KindText
}

var sectionFields = map[Section][]string{
	SectionWorkExperience: {
		string(WorkCompany), string(WorkPosition), string(WorkLocation), string(WorkStartDate),
		string(WorkEndDate), string(WorkCurrent), string(WorkDescription),
	},
	SectionEducation: {
		string(EducationInstitution), string(EducationDegree), string(EducationStudyField),
		string(EducationGraduationDate), string(EducationGPA),
	},
	SectionCertifications: {
		string(CertificationName), string(CertificationIssuer), string(CertificationIssueDate),
		string(CertificationExpirationDate), string(CertificationCredentialID), string(CertificationURL),
	},
	SectionProjects: {
		string(ProjectName), string(ProjectDescription), string(ProjectStartDate), string(ProjectEndDate),
		string(ProjectCurrent), string(ProjectGitHubURL), string(ProjectLiveURL), string(ProjectAchievements),
	},
	SectionAchievements: {
		string(AchievementTitle), string(AchievementDescription), string(AchievementDate), string(AchievementCategory),
	},
}

// Fields returns the editable field tags of the section in form order.
func (s Section) Fields() []string {
	return append([]string(nil), sectionFields[s]...)
}

// Editors bundles the editor of every repeatable section, sharing one id source.
type Editors struct {
	WorkExperience *WorkExperienceEditor
	Education      *EducationEditor
	Certifications *CertificationEditor
	Projects       *ProjectEditor
	Achievements   *AchievementEditor
}

// New creates the section editors. A nil generator defaults to UUIDGenerator.
func New(ids IDGenerator) *Editors {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Editors{
		WorkExperience: &WorkExperienceEditor{ids: ids},
		Education:      &EducationEditor{ids: ids},
		Certifications: &CertificationEditor{ids: ids},
		Projects:       &ProjectEditor{ids: ids},
		Achievements:   &AchievementEditor{ids: ids},
	}
}
