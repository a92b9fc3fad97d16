package guidance

// Accordion tracks which guided-questions section is expanded. At most one
// is expanded at a time. It is view state and is never stored with the resume.
type Accordion struct {
	expanded SectionKey
}

// NewAccordion returns an accordion with key expanded, or none if key is unknown.
func NewAccordion(key SectionKey) Accordion {
	if !key.IsValid() {
		return Accordion{}
	}
	return Accordion{expanded: key}
}

// Expanded returns the expanded section, or "" when all are collapsed.
func (a Accordion) Expanded() SectionKey {
	return a.expanded
}

// IsExpanded reports whether key is the expanded section.
func (a Accordion) IsExpanded(key SectionKey) bool {
	return a.expanded != "" && a.expanded == key
}

// Toggle collapses key if it is expanded, otherwise expands it.
func (a Accordion) Toggle(key SectionKey) Accordion {
	if a.expanded == key {
		return Accordion{}
	}
	return NewAccordion(key)
}
