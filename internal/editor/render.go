package editor

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var printTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Placeholder}}Resume{{else}}{{.FullName}} - Resume{{end}}</title>
<style>
body { font-family: Georgia, serif; color: #1f2937; max-width: 800px; margin: 2rem auto; padding: 0 1.5rem; }
header { text-align: center; border-bottom: 2px solid #d1d5db; padding-bottom: 1rem; margin-bottom: 1.5rem; }
header h1 { font-size: 1.875rem; margin: 0 0 .5rem; }
.contact { font-size: .875rem; color: #4b5563; }
section { margin-bottom: 1.5rem; }
section h2 { font-size: 1.125rem; border-bottom: 1px solid #d1d5db; padding-bottom: .25rem; }
.entry { margin-bottom: .75rem; }
.row { display: flex; justify-content: space-between; }
.title { font-weight: 600; }
.muted { font-size: .875rem; color: #4b5563; }
.tech { font-size: .875rem; color: #4b5563; font-style: italic; }
.placeholder { text-align: center; padding: 5rem 0; color: #6b7280; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
{{- if .Placeholder}}
<div class="placeholder">
<h3>{{.PlaceholderTitle}}</h3>
<p>{{.PlaceholderSubtitle}}</p>
</div>
{{- else}}
<header>
<h1>{{.FullName}}</h1>
{{- range .Contacts}}
<div class="contact">{{.Value}}</div>
{{- end}}
</header>
{{- if .HasEducation}}
<section>
<h2>EDUCATION</h2>
{{- range .Education}}
<div class="entry">
<div class="row"><span class="title">{{.Degree}}</span><span class="muted">{{.Year}}</span></div>
<div class="muted">{{.Institution}}</div>
{{- if .Grade}}
<div class="muted">{{.Grade}}</div>
{{- end}}
</div>
{{- end}}
</section>
{{- end}}
{{- if .HasExperience}}
<section>
<h2>EXPERIENCE</h2>
{{- range .Experience}}
<div class="entry">
<div class="row"><span class="title">{{.Title}}</span><span class="muted">{{.Duration}}</span></div>
<div class="muted">{{.Company}}</div>
<div class="muted">{{.Description}}</div>
</div>
{{- end}}
</section>
{{- end}}
{{- if .HasSkills}}
<section>
<h2>SKILLS</h2>
<div class="muted">{{.Skills}}</div>
</section>
{{- end}}
{{- if .HasProjects}}
<section>
<h2>PROJECTS</h2>
{{- range .Projects}}
<div class="entry">
<div class="title">{{.Name}}</div>
<div class="muted">{{.Description}}</div>
{{- if .Technologies}}
<div class="tech">Technologies: {{.Technologies}}</div>
{{- end}}
</div>
{{- end}}
</section>
{{- end}}
{{- end}}
</body>
</html>
`))

type printView struct {
	Preview
	PlaceholderTitle    string
	PlaceholderSubtitle string
}

// RenderHTML writes a standalone document suitable for a browser's print
// dialog. All values are HTML-escaped.
func RenderHTML(w io.Writer, p Preview) error {
	return printTemplate.Execute(w, printView{
		Preview:             p,
		PlaceholderTitle:    PlaceholderTitle,
		PlaceholderSubtitle: PlaceholderSubtitle,
	})
}

// RenderText writes the preview as plain text for terminals.
func RenderText(w io.Writer, p Preview) error {
	var b strings.Builder
	if p.Placeholder {
		fmt.Fprintf(&b, "%s\n%s\n", PlaceholderTitle, PlaceholderSubtitle)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s\n", p.FullName)
	for _, c := range p.Contacts {
		fmt.Fprintf(&b, "  %s\n", c.Value)
	}

	if p.HasEducation() {
		b.WriteString("\nEDUCATION\n")
		for _, e := range p.Education {
			fmt.Fprintf(&b, "  %s", e.Degree)
			if e.Year != "" {
				fmt.Fprintf(&b, " (%s)", e.Year)
			}
			b.WriteString("\n")
			if e.Institution != "" {
				fmt.Fprintf(&b, "    %s\n", e.Institution)
			}
			if e.Grade != "" {
				fmt.Fprintf(&b, "    %s\n", e.Grade)
			}
		}
	}
	if p.HasExperience() {
		b.WriteString("\nEXPERIENCE\n")
		for _, e := range p.Experience {
			fmt.Fprintf(&b, "  %s", e.Title)
			if e.Duration != "" {
				fmt.Fprintf(&b, " (%s)", e.Duration)
			}
			b.WriteString("\n")
			if e.Company != "" {
				fmt.Fprintf(&b, "    %s\n", e.Company)
			}
			if e.Description != "" {
				fmt.Fprintf(&b, "    %s\n", e.Description)
			}
		}
	}
	if p.HasSkills() {
		fmt.Fprintf(&b, "\nSKILLS\n  %s\n", p.Skills)
	}
	if p.HasProjects() {
		b.WriteString("\nPROJECTS\n")
		for _, pr := range p.Projects {
			fmt.Fprintf(&b, "  %s\n", pr.Name)
			if pr.Description != "" {
				fmt.Fprintf(&b, "    %s\n", pr.Description)
			}
			if pr.Technologies != "" {
				fmt.Fprintf(&b, "    Technologies: %s\n", pr.Technologies)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
