package view

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/catalog"
)

type NavItem struct {
	Section Section
	Label   string
	Icon    string
	Active  bool
}

// Page is everything needed to draw the visible section. Only the field that
// belongs to Section is populated; the others stay nil.
type Page struct {
	Title   string
	Owner   string
	Footer  string
	Nav     []NavItem
	Section Section
	Heading string
	Intro   string

	About      []string
	Education  []catalog.Education
	Skills     *SkillsView
	Experience []catalog.Experience
	Portfolio  *PortfolioView
	Contact    *ContactView
}

type SkillsView struct {
	MinLevel int
	Total    int
	Count    int
	Left     []catalog.Skill
	Right    []catalog.Skill
	Chart    []Bar
}

func (v SkillsView) Empty() bool { return v.Count == 0 }

type Option struct {
	Value    string
	Selected bool
}

type PortfolioView struct {
	Technology string
	Options    []Option
	Count      int
	Columns    [][]catalog.Project
}

func (v PortfolioView) Empty() bool { return v.Count == 0 }

type ContactView struct {
	Email          string
	Submitted      *ContactSubmission
	Acknowledgment string
}

// Acknowledgment is the echo shown after the contact form is submitted.
func Acknowledgment(name string) string {
	return fmt.Sprintf("Thank you, %s! Your message has been received.", name)
}

// Render builds the page for st. An unknown section renders About.
func Render(c *catalog.Catalog, st State) Page {
	section := st.Section
	if !section.Valid() {
		section = SectionAbout
	}

	p := Page{
		Title:   c.Profile.Title,
		Owner:   c.Profile.Name,
		Footer:  c.Profile.Footer,
		Nav:     navigation(section),
		Section: section,
		Heading: section.Heading(),
		Intro:   c.Intro[string(section)],
	}

	switch section {
	case SectionAbout:
		p.About = c.Profile.About
	case SectionEducation:
		p.Education = c.Education
	case SectionSkills:
		p.Skills = renderSkills(c.Skills, st.MinLevel)
	case SectionExperience:
		p.Experience = c.Experience
	case SectionPortfolio:
		p.Portfolio = renderPortfolio(c, st.Technology)
	case SectionContact:
		p.Contact = renderContact(c.Profile, st.Contact)
	}
	return p
}

func navigation(active Section) []NavItem {
	items := make([]NavItem, 0, len(Sections))
	for _, s := range Sections {
		items = append(items, NavItem{
			Section: s,
			Label:   s.Label(),
			Icon:    s.Icon(),
			Active:  s == active,
		})
	}
	return items
}

func renderSkills(skills []catalog.Skill, minLevel int) *SkillsView {
	minLevel = ClampLevel(minLevel)
	matched := FilterSkills(skills, minLevel)
	left, right := SplitHalves(matched)

	return &SkillsView{
		MinLevel: minLevel,
		Total:    len(skills),
		Count:    len(matched),
		Left:     left,
		Right:    right,
		Chart:    Chart(matched),
	}
}

func renderPortfolio(c *catalog.Catalog, tech string) *PortfolioView {
	if !c.HasTechnology(tech) {
		tech = catalog.All
	}
	matched := FilterProjects(c.Projects, tech)

	opts := c.TechnologyOptions()
	options := make([]Option, 0, len(opts))
	for _, o := range opts {
		options = append(options, Option{Value: o, Selected: o == tech})
	}

	v := &PortfolioView{
		Technology: tech,
		Options:    options,
		Count:      len(matched),
	}
	if len(matched) > 0 {
		v.Columns = Columns(matched, PortfolioColumns)
	}
	return v
}

func renderContact(profile catalog.Profile, sub *ContactSubmission) *ContactView {
	v := &ContactView{Email: profile.Email}
	if sub != nil {
		v.Submitted = sub
		v.Acknowledgment = Acknowledgment(sub.Name)
	}
	return v
}
