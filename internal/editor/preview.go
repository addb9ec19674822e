package editor

import (
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

const (
	PlaceholderTitle    = "Begin Creating Your Resume"
	PlaceholderSubtitle = "Fill out the form to see your resume come to life"
)

type ContactLine struct {
	Label string
	Value string
}

// Preview is what a reader of the printed resume sees. A nil section slice
// means the section is omitted.
type Preview struct {
	Placeholder bool
	FullName    string
	Contacts    []ContactLine
	Education   []resume.Education
	Experience  []resume.Experience
	Skills      string
	Projects    []resume.Project
}

func (p Preview) HasEducation() bool  { return len(p.Education) > 0 }
func (p Preview) HasExperience() bool { return len(p.Experience) > 0 }
func (p Preview) HasSkills() bool     { return p.Skills != "" }
func (p Preview) HasProjects() bool   { return len(p.Projects) > 0 }

// DerivePreview filters a draft down to the parts worth printing. It has no
// side effects.
func DerivePreview(d Draft) Preview {
	if d.FullName == "" {
		return Preview{Placeholder: true}
	}

	p := Preview{FullName: d.FullName, Skills: d.Skills}

	for _, line := range []ContactLine{
		{Label: "Email", Value: d.Email},
		{Label: "Phone", Value: d.Phone},
		{Label: "Location", Value: d.Location},
		{Label: "LinkedIn", Value: d.LinkedIn},
		{Label: "GitHub", Value: d.GitHub},
	} {
		if line.Value != "" {
			p.Contacts = append(p.Contacts, line)
		}
	}

	for _, e := range d.Education {
		if e.Degree != "" || e.Institution != "" {
			p.Education = append(p.Education, e)
		}
	}

	if d.ResumeType == resume.TypeExperienced {
		for _, e := range d.Experience {
			if e.Title != "" || e.Company != "" {
				p.Experience = append(p.Experience, e)
			}
		}
	}

	for _, pr := range d.Projects {
		if pr.Name != "" || pr.Description != "" {
			p.Projects = append(p.Projects, pr)
		}
	}

	return p
}
