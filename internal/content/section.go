package content

import (
	"fmt"
	"strings"
)

// Section names one of the independently loaded content files.
type Section string

const (
	SectionSite       Section = "site"
	SectionProjects   Section = "projects"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
)

// Sections lists every section in page order.
var Sections = []Section{SectionSite, SectionProjects, SectionSkills, SectionExperience}

// File returns the JSON file name the section is published under.
func (s Section) File() string {
	return string(s) + ".json"
}

// ParseSection maps a user-supplied name to a Section.
func ParseSection(name string) (Section, error) {
	n := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Sections {
		if s == n {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// target returns a pointer to the field of c that holds s.
func (c *Content) target(s Section) any {
	switch s {
	case SectionSite:
		return &c.Site
	case SectionProjects:
		return &c.Projects
	case SectionSkills:
		return &c.Skills
	case SectionExperience:
		return &c.Experience
	}
	return nil
}

// Get returns the value of section s.
func (c *Content) Get(s Section) any {
	switch s {
	case SectionSite:
		return c.Site
	case SectionProjects:
		return c.Projects
	case SectionSkills:
		return c.Skills
	case SectionExperience:
		return c.Experience
	}
	return nil
}
