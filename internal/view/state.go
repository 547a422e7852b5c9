// Package view turns the static catalog plus a per-interaction State into the
// content of one page section. Render is a pure function: the same catalog
// and state always produce the same Page.
package view

import (
	"strings"

	"github.com/Zachkp/portfolio/internal/catalog"
)

type Section string

const (
	SectionAbout      Section = "about"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionPortfolio  Section = "portfolio"
	SectionContact    Section = "contact"
)

// Sections lists the navigation entries in sidebar order.
var Sections = []Section{
	SectionAbout,
	SectionEducation,
	SectionSkills,
	SectionExperience,
	SectionPortfolio,
	SectionContact,
}

var sectionMeta = map[Section]struct {
	label   string
	heading string
	icon    string
}{
	SectionAbout:      {"About", "About Me", "house"},
	SectionEducation:  {"Education", "Education & Certifications", "book"},
	SectionSkills:     {"Skills", "Skills", "bar-chart-line"},
	SectionExperience: {"Experience", "Professional Experience", "briefcase"},
	SectionPortfolio:  {"Portfolio", "Portfolio", "collection"},
	SectionContact:    {"Contact", "Contact Information", "envelope"},
}

// ParseSection maps a section name, case-insensitively, to a Section.
func ParseSection(name string) (Section, bool) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	_, ok := sectionMeta[s]
	return s, ok
}

func (s Section) Valid() bool {
	_, ok := sectionMeta[s]
	return ok
}

// Label is the sidebar text.
func (s Section) Label() string { return sectionMeta[s].label }

func (s Section) Heading() string { return sectionMeta[s].heading }

// Icon is a Bootstrap Icons name.
func (s Section) Icon() string { return sectionMeta[s].icon }

// Skill levels accepted by the skills filter. NoSkills is one past the top of
// the scale and matches nothing.
const (
	MinLevel = 0
	MaxLevel = 100
	NoSkills = MaxLevel + 1
)

// ClampLevel bounds a requested minimum skill level to [MinLevel, NoSkills].
func ClampLevel(n int) int {
	switch {
	case n < MinLevel:
		return MinLevel
	case n > NoSkills:
		return NoSkills
	default:
		return n
	}
}

type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// State is the complete input of one render. It is a value: the With methods
// return modified copies and never touch the receiver.
type State struct {
	Section    Section
	MinLevel   int
	Technology string
	Contact    *ContactSubmission
}

func NewState(section Section) State {
	return State{Section: section, Technology: catalog.All}
}

func (s State) WithMinLevel(n int) State {
	s.MinLevel = ClampLevel(n)
	return s
}

func (s State) WithTechnology(tech string) State {
	s.Technology = tech
	return s
}

func (s State) WithContact(sub ContactSubmission) State {
	s.Contact = &sub
	return s
}
