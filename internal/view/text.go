package view

import (
	"io"
	"strings"
	"text/template"
)

// chartWidth is the number of characters in a full-scale text bar.
const chartWidth = 20

const textTemplate = `{{.Owner}} / {{.Heading}}
{{rule .Heading}}
{{with .Intro}}{{.}}

{{end}}{{range .About}}{{.}}

{{end}}{{range .Education}}{{.Institution}}
{{.Standing}}
{{if .Certifications}}Certifications:
{{range .Certifications}}  - {{.Name}}
{{range .Items}}      - {{.}}
{{end}}{{end}}{{end}}
{{end}}{{with .Skills}}Minimum level: {{.MinLevel}} ({{.Count}} of {{.Total}} skills)
{{range .Chart}}{{pad .Label}} {{bar .Percent}} {{.Value}}
{{end}}
{{end}}{{range .Experience}}{{.Title}}
  {{.Description}}

{{end}}{{with .Portfolio}}Technology: {{.Technology}}
{{if .Empty}}No projects match this technology.
{{else}}{{range $i, $col := .Columns}}[column {{inc $i}}]
{{range $col}}  {{.Title}}: {{.Description}}
    Technologies: {{join .Technologies}}
    GitHub Repo: {{.RepositoryURL}}
{{if .LiveURL}}    Live Preview: {{.LiveURL}}
{{end}}{{end}}{{end}}{{end}}
{{end}}{{with .Contact}}Email: {{.Email}}
{{with .Acknowledgment}}{{.}}
{{end}}
{{end}}{{.Footer}}
`

var textFuncs = template.FuncMap{
	"rule": func(s string) string { return strings.Repeat("=", len(s)) },
	"bar": func(percent int) string {
		n := percent * chartWidth / 100
		return strings.Repeat("#", n) + strings.Repeat(".", chartWidth-n)
	},
	"pad":  func(s string) string { return s + strings.Repeat(" ", max(0, 32-len(s))) },
	"join": func(s []string) string { return strings.Join(s, ", ") },
	"inc":  func(i int) int { return i + 1 },
}

var pageText = template.Must(template.New("page").Funcs(textFuncs).Parse(textTemplate))

// WriteText prints p as plain text, drawing the skills chart with '#'.
func WriteText(w io.Writer, p Page) error {
	return pageText.Execute(w, p)
}
