package editor

import "github.com/jonathan/resume-builder/internal/types"

// PersonalField names a field of the personal info header.
type PersonalField string

// Personal info fields
const (
	PersonalFullName PersonalField = "fullName"
	PersonalEmail    PersonalField = "email"
	PersonalPhone    PersonalField = "phone"
	PersonalLocation PersonalField = "location"
	PersonalWebsite  PersonalField = "website"
	PersonalLinkedIn PersonalField = "linkedin"
)

// PersonalFields lists the personal info fields in form order.
var PersonalFields = []PersonalField{
	PersonalFullName, PersonalEmail, PersonalPhone, PersonalLocation, PersonalWebsite, PersonalLinkedIn,
}

// UpdatePersonal returns info with one field replaced.
func UpdatePersonal(info types.PersonalInfo, f PersonalField, v Value) (types.PersonalInfo, error) {
	var target *string
	switch f {
	case PersonalFullName:
		target = &info.FullName
	case PersonalEmail:
		target = &info.Email
	case PersonalPhone:
		target = &info.Phone
	case PersonalLocation:
		target = &info.Location
	case PersonalWebsite:
		target = &info.Website
	case PersonalLinkedIn:
		target = &info.LinkedIn
	default:
		return info, unknownField("personalInfo", string(f))
	}
	s, err := v.asText("personalInfo", string(f))
	if err != nil {
		return info, err
	}
	*target = s
	return info, nil
}
