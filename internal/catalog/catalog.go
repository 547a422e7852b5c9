// Package catalog holds the static portfolio content: profile text, education,
// skills, experience and projects. A Catalog is loaded once at startup and is
// read-only afterwards, so it can be shared by every request.
package catalog

// All is the wildcard technology that selects every project.
const All = "All"

type Profile struct {
	Name   string   `yaml:"name" validate:"required"`
	Title  string   `yaml:"title" validate:"required"`
	Email  string   `yaml:"email" validate:"required,email"`
	Footer string   `yaml:"footer"`
	About  []string `yaml:"about"`
}

type Certification struct {
	Name  string   `yaml:"name" validate:"required"`
	Items []string `yaml:"items,omitempty"`
}

type Education struct {
	Institution    string          `yaml:"institution" validate:"required"`
	Standing       string          `yaml:"standing"`
	Certifications []Certification `yaml:"certifications,omitempty" validate:"dive"`
}

// Skill pairs a skill name with a proficiency percentage.
type Skill struct {
	Name        string `yaml:"name" validate:"required"`
	Proficiency int    `yaml:"proficiency" validate:"min=0,max=100"`
}

type Experience struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Project is one gallery entry. LiveURL is only set for deployed projects.
type Project struct {
	Title         string   `yaml:"title" validate:"required"`
	Description   string   `yaml:"description"`
	Technologies  []string `yaml:"technologies" validate:"unique,dive,required"`
	RepositoryURL string   `yaml:"repository_url" validate:"required,url"`
	LiveURL       string   `yaml:"live_url,omitempty" validate:"omitempty,url"`
}

// Uses reports whether the project is tagged with tech. The wildcard matches
// every project.
func (p Project) Uses(tech string) bool {
	if tech == All {
		return true
	}
	for _, t := range p.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

func (p Project) Deployed() bool {
	return p.LiveURL != ""
}

type Catalog struct {
	Profile    Profile      `yaml:"profile"`
	Education  []Education  `yaml:"education" validate:"dive"`
	Skills     []Skill      `yaml:"skills" validate:"dive"`
	Experience []Experience `yaml:"experience" validate:"dive"`
	Projects   []Project    `yaml:"projects" validate:"dive"`

	// Technologies is the closed list offered by the portfolio filter,
	// without the wildcard.
	Technologies []string `yaml:"technologies,omitempty"`

	// Intro holds the lead paragraph shown under a section heading, keyed by
	// section name.
	Intro map[string]string `yaml:"intro,omitempty"`
}

// TechnologyOptions returns the portfolio filter choices, wildcard first.
func (c *Catalog) TechnologyOptions() []string {
	opts := make([]string, 0, len(c.Technologies)+1)
	opts = append(opts, All)
	return append(opts, c.Technologies...)
}

// HasTechnology reports whether tech is one of the filter choices.
func (c *Catalog) HasTechnology(tech string) bool {
	if tech == All {
		return true
	}
	for _, t := range c.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

// deriveTechnologies collects project technologies in first-seen order.
func deriveTechnologies(projects []Project) []string {
	seen := make(map[string]bool)
	var techs []string
	for _, p := range projects {
		for _, t := range p.Technologies {
			if seen[t] {
				continue
			}
			seen[t] = true
			techs = append(techs, t)
		}
	}
	return techs
}
