package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

type State int

const (
	StateEmpty State = iota
	StateEditing
	StatePersistedBound
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StatePersistedBound:
		return "persisted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Field names a scalar of the draft, using the wire names.
type Field string

const (
	FieldFullName   Field = "fullName"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldLocation   Field = "location"
	FieldLinkedIn   Field = "linkedin"
	FieldGitHub     Field = "github"
	FieldSkills     Field = "skills"
	FieldResumeType Field = "resumeType"
)

// Section names a repeatable group of entries.
type Section string

const (
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownSection = errors.New("unknown section")
)

// Draft is the working copy edited by the user. ID is uuid.Nil until the
// draft has been saved or loaded.
type Draft struct {
	ID uuid.UUID
	resume.Candidate
	edited bool
}

// NewDraft returns a blank draft with one blank entry in every section.
func NewDraft() Draft {
	return Draft{
		Candidate: resume.Candidate{
			ResumeType: resume.TypeFresher,
			Education:  []resume.Education{{}},
			Experience: []resume.Experience{{}},
			Projects:   []resume.Project{{}},
		},
	}
}

// DraftFromResume copies a stored resume into a bound draft. Empty sections
// get a single blank entry so the form always has something to fill in.
func DraftFromResume(r *resume.Resume) Draft {
	return boundDraft(r.ID, r.Candidate())
}

func boundDraft(id uuid.UUID, c resume.Candidate) Draft {
	d := Draft{ID: id, Candidate: c}
	d.Education = append([]resume.Education(nil), c.Education...)
	d.Experience = append([]resume.Experience(nil), c.Experience...)
	d.Projects = append([]resume.Project(nil), c.Projects...)
	if d.ResumeType == "" {
		d.ResumeType = resume.TypeFresher
	}
	if len(d.Education) == 0 {
		d.Education = []resume.Education{{}}
	}
	if len(d.Experience) == 0 {
		d.Experience = []resume.Experience{{}}
	}
	if len(d.Projects) == 0 {
		d.Projects = []resume.Project{{}}
	}
	return d
}

func (d Draft) Bound() bool { return d.ID != uuid.Nil }

// State reports Editing after any unsaved edit, bound or not.
func (d Draft) State() State {
	switch {
	case d.edited:
		return StateEditing
	case d.Bound():
		return StatePersistedBound
	default:
		return StateEmpty
	}
}

// clone returns a copy that shares no slices with d.
func (d Draft) clone() Draft {
	c := d
	c.Education = append([]resume.Education(nil), d.Education...)
	c.Experience = append([]resume.Experience(nil), d.Experience...)
	c.Projects = append([]resume.Project(nil), d.Projects...)
	return c
}

func (d *Draft) set(field Field, value string) error {
	switch field {
	case FieldFullName:
		d.FullName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldLocation:
		d.Location = value
	case FieldLinkedIn:
		d.LinkedIn = value
	case FieldGitHub:
		d.GitHub = value
	case FieldSkills:
		d.Skills = value
	case FieldResumeType:
		d.ResumeType = resume.ResumeType(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	d.edited = true
	return nil
}

func (d *Draft) setEntry(section Section, index int, field, value string) error {
	switch section {
	case SectionEducation:
		if index < 0 || index >= len(d.Education) {
			return nil
		}
		e := &d.Education[index]
		switch field {
		case "degree":
			e.Degree = value
		case "institution":
			e.Institution = value
		case "year":
			e.Year = value
		case "grade":
			e.Grade = value
		default:
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
		}
	case SectionExperience:
		if index < 0 || index >= len(d.Experience) {
			return nil
		}
		e := &d.Experience[index]
		switch field {
		case "title":
			e.Title = value
		case "company":
			e.Company = value
		case "duration":
			e.Duration = value
		case "description":
			e.Description = value
		default:
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
		}
	case SectionProjects:
		if index < 0 || index >= len(d.Projects) {
			return nil
		}
		p := &d.Projects[index]
		switch field {
		case "name":
			p.Name = value
		case "description":
			p.Description = value
		case "technologies":
			p.Technologies = value
		default:
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	d.edited = true
	return nil
}

func (d *Draft) addEntry(section Section) error {
	switch section {
	case SectionEducation:
		d.Education = append(d.Education, resume.Education{})
	case SectionExperience:
		d.Experience = append(d.Experience, resume.Experience{})
	case SectionProjects:
		d.Projects = append(d.Projects, resume.Project{})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	d.edited = true
	return nil
}

// removeEntry drops one entry. The last remaining entry of a section is never
// removed, and an out-of-range index changes nothing.
func (d *Draft) removeEntry(section Section, index int) (bool, error) {
	var removed bool
	switch section {
	case SectionEducation:
		d.Education, removed = removeAt(d.Education, index)
	case SectionExperience:
		d.Experience, removed = removeAt(d.Experience, index)
	case SectionProjects:
		d.Projects, removed = removeAt(d.Projects, index)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if removed {
		d.edited = true
	}
	return removed, nil
}

func removeAt[T any](entries []T, index int) ([]T, bool) {
	if len(entries) <= 1 || index < 0 || index >= len(entries) {
		return entries, false
	}
	out := make([]T, 0, len(entries)-1)
	out = append(out, entries[:index]...)
	out = append(out, entries[index+1:]...)
	return out, true
}
