package editor

import "github.com/jonathan/resume-builder/internal/types"

// CertificationField names an editable field of a certification entry.
type CertificationField string

// Certification fields
const (
	CertificationName           CertificationField = "name"
	CertificationIssuer         CertificationField = "issuer"
	CertificationIssueDate      CertificationField = "issueDate"
	CertificationExpirationDate CertificationField = "expirationDate"
	CertificationCredentialID   CertificationField = "credentialId"
	CertificationURL            CertificationField = "url"
)

const certificationEntity = "certifications"

// Kind returns the value kind the field accepts.
func (f CertificationField) Kind() Kind { return KindText }

func setCertificationField(c types.Certification, f CertificationField, v Value) (types.Certification, error) {
	var target *string
	switch f {
	case CertificationName:
		target = &c.Name
	case CertificationIssuer:
		target = &c.Issuer
	case CertificationIssueDate:
		target = &c.IssueDate
	case CertificationExpirationDate:
		target = &c.ExpirationDate
	case CertificationCredentialID:
		target = &c.CredentialID
	case CertificationURL:
		target = &c.URL
	default:
		return c, unknownField(certificationEntity, string(f))
	}
	s, err := v.asText(certificationEntity, string(f))
	if err != nil {
		return c, err
	}
	*target = s
	return c, nil
}

// CertificationEditor edits the certification list.
type CertificationEditor struct {
	ids IDGenerator
}

// Add appends a blank entry with a fresh id and returns the new list and entry.
func (e *CertificationEditor) Add(list []types.Certification) ([]types.Certification, types.Certification) {
	entry := types.Certification{ID: freshID(e.ids, list)}
	return appendEntry(list, entry), entry
}

// Update sets one field of the entry with the given id.
func (e *CertificationEditor) Update(list []types.Certification, id string, f CertificationField, v Value) ([]types.Certification, error) {
	if _, err := setCertificationField(types.Certification{}, f, v); err != nil {
		return list, err
	}
	return updateEntry(list, id, func(c types.Certification) (types.Certification, error) {
		return setCertificationField(c, f, v)
	})
}

// Remove drops the entry with the given id.
func (e *CertificationEditor) Remove(list []types.Certification, id string) []types.Certification {
	return removeEntry(list, id)
}
