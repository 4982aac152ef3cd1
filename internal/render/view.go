package render

import (
	"strings"

	"resume-builder/internal/model"
)

// The view model carries everything the variants share: omitted sections
// are empty slices, dates are already formatted and descriptions already
// split. Templates only decide layout.

type view struct {
	Template TemplateID
	Labels   Labels
	Person   personView
	Summary  string

	Experience     []experienceView
	Education      []educationView
	Skills         []skillView
	Projects       []projectView
	Certifications []certificationView
}

type personView struct {
	FullName string
	Initials string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	Website  string
}

type experienceView struct {
	Position string
	Company  string
	Start    string
	End      string
	Period   string
	Current  bool
	Bullets  []string
}

type educationView struct {
	Degree      string
	Field       string
	Title       string
	Institution string
	GPA         string
	Period      string
}

type skillView struct {
	Category string
	Items    []string
}

type projectView struct {
	Name         string
	Link         string
	Technologies string
	Bullets      []string
}

type certificationView struct {
	Name   string
	Issuer string
	Date   string
	Link   string
}

const presentLabel = "Present"

func newView(rec model.Resume, id TemplateID) view {
	p := rec.PersonalInfo
	v := view{
		Template: id,
		Labels:   LabelsFor(id),
		Person: personView{
			FullName: p.FullName,
			Initials: initials(p.FullName),
			Email:    p.Email,
			Phone:    p.Phone,
			Location: p.Location,
			LinkedIn: p.LinkedIn,
			Website:  p.Website,
		},
		Summary: strings.TrimSpace(p.Summary),
	}

	for _, e := range rec.Experience {
		end := model.FormatMonth(e.EndDate)
		if e.Current {
			end = presentLabel
		}
		start := model.FormatMonth(e.StartDate)
		v.Experience = append(v.Experience, experienceView{
			Position: e.Position,
			Company:  e.Company,
			Start:    start,
			End:      end,
			Period:   period(start, end),
			Current:  e.Current,
			Bullets:  Lines(e.Description),
		})
	}

	for _, e := range rec.Education {
		v.Education = append(v.Education, educationView{
			Degree:      e.Degree,
			Field:       e.Field,
			Title:       joinNonEmpty(" in ", e.Degree, e.Field),
			Institution: e.Institution,
			GPA:         strings.TrimSpace(e.GPA),
			Period:      period(model.FormatMonth(e.StartDate), model.FormatMonth(e.EndDate)),
		})
	}

	for _, s := range rec.Skills {
		v.Skills = append(v.Skills, skillView{
			Category: s.Category,
			Items:    FilterItems(s.Items),
		})
	}

	for _, pr := range rec.Projects {
		v.Projects = append(v.Projects, projectView{
			Name:         pr.Name,
			Link:         strings.TrimSpace(pr.Link),
			Technologies: strings.TrimSpace(pr.Technologies),
			Bullets:      Lines(pr.Description),
		})
	}

	for _, c := range rec.Certifications {
		v.Certifications = append(v.Certifications, certificationView{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   model.FormatMonth(c.Date),
			Link:   strings.TrimSpace(c.Link),
		})
	}
	return v
}

// Lines splits a description into bullet lines, dropping blank ones.
func Lines(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// FilterItems drops empty and whitespace-only skill items.
func FilterItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

func period(start, end string) string {
	return joinNonEmpty(" - ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
