package view

import "github.com/Zachkp/portfolio/internal/catalog"

// PortfolioColumns is the number of columns in the project gallery.
const PortfolioColumns = 3

// FilterSkills returns the skills at or above minLevel, in catalog order.
func FilterSkills(skills []catalog.Skill, minLevel int) []catalog.Skill {
	out := make([]catalog.Skill, 0, len(skills))
	for _, s := range skills {
		if s.Proficiency >= minLevel {
			out = append(out, s)
		}
	}
	return out
}

// FilterProjects returns the projects tagged with tech, in catalog order.
// catalog.All returns every project.
func FilterProjects(projects []catalog.Project, tech string) []catalog.Project {
	out := make([]catalog.Project, 0, len(projects))
	for _, p := range projects {
		if p.Uses(tech) {
			out = append(out, p)
		}
	}
	return out
}

// Columns deals items round-robin into n columns: item i lands in column
// i mod n. Every column is present even when it ends up empty.
func Columns[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	cols := make([][]T, n)
	for i, item := range items {
		cols[i%n] = append(cols[i%n], item)
	}
	return cols
}

// SplitHalves cuts items at len/2; the second half gets the odd item.
func SplitHalves[T any](items []T) (first, second []T) {
	half := len(items) / 2
	return items[:half], items[half:]
}

// Bar is one row of the proficiency chart. Percent is the bar width relative
// to the full chart width.
type Bar struct {
	Label   string
	Value   int
	Percent int
}

// Chart scales each skill to a bar on the 0-100 proficiency axis.
func Chart(skills []catalog.Skill) []Bar {
	bars := make([]Bar, 0, len(skills))
	for _, s := range skills {
		bars = append(bars, Bar{
			Label:   s.Name,
			Value:   s.Proficiency,
			Percent: s.Proficiency * 100 / MaxLevel,
		})
	}
	return bars
}
