package editor

import (
	"strings"

	"resume-builder/internal/model"
)

// Section names a list-valued part of the record.
type Section string

const (
	Experience     Section = "experience"
	Education      Section = "education"
	Skills         Section = "skills"
	Projects       Section = "projects"
	Certifications Section = "certifications"
)

// Sections lists the list-valued sections in form order.
var Sections = []Section{Experience, Education, Skills, Projects, Certifications}

// ParseSection resolves a section name as used in URLs and commands.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	return "", unknownSection(name)
}

// PersonalFields lists the editable personal info fields in form order.
var PersonalFields = []string{"fullName", "email", "phone", "location", "linkedIn", "website", "summary"}

// Fields lists the editable fields of a section's entries in form order.
// "current" precedes "endDate" so a form that clears the flag can set the
// end date in the same submission.
func Fields(s Section) []string {
	switch s {
	case Experience:
		return []string{"company", "position", "startDate", "current", "endDate", "description"}
	case Education:
		return []string{"institution", "degree", "field", "gpa", "startDate", "endDate"}
	case Skills:
		return []string{"category", "items"}
	case Projects:
		return []string{"name", "link", "technologies", "description"}
	case Certifications:
		return []string{"name", "issuer", "date", "link"}
	}
	return nil
}

func setPersonal(p model.PersonalInfo, field, value string) (model.PersonalInfo, error) {
	switch field {
	case "fullName":
		p.FullName = value
	case "email":
		p.Email = strings.TrimSpace(value)
	case "phone":
		p.Phone = sanitizePhone(value)
	case "location":
		p.Location = value
	case "linkedIn":
		p.LinkedIn = strings.TrimSpace(value)
	case "website":
		p.Website = strings.TrimSpace(value)
	case "summary":
		p.Summary = value
	default:
		return p, unknownField("personalInfo", field)
	}
	return p, nil
}

func setExperience(e model.Experience, field, value string) (model.Experience, error) {
	switch field {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "startDate":
		e.StartDate = strings.TrimSpace(value)
	case "endDate":
		// the end date is locked while the position is current
		if !e.Current {
			e.EndDate = strings.TrimSpace(value)
		}
	case "current":
		e.Current = parseBool(value)
	case "description":
		e.Description = value
	default:
		return e, unknownField(string(Experience), field)
	}
	return e, nil
}

func setEducation(e model.Education, field, value string) (model.Education, error) {
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "field":
		e.Field = value
	case "startDate":
		e.StartDate = strings.TrimSpace(value)
	case "endDate":
		e.EndDate = strings.TrimSpace(value)
	case "gpa":
		e.GPA = strings.TrimSpace(value)
	default:
		return e, unknownField(string(Education), field)
	}
	return e, nil
}

func setSkill(s model.SkillCategory, field, value string) (model.SkillCategory, error) {
	switch field {
	case "category":
		s.Category = value
	case "items":
		s.Items = ParseItems(value)
	default:
		return s, unknownField(string(Skills), field)
	}
	return s, nil
}

func setProject(p model.Project, field, value string) (model.Project, error) {
	switch field {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "technologies":
		p.Technologies = value
	case "link":
		p.Link = strings.TrimSpace(value)
	default:
		return p, unknownField(string(Projects), field)
	}
	return p, nil
}

func setCertification(c model.Certification, field, value string) (model.Certification, error) {
	switch field {
	case "name":
		c.Name = value
	case "issuer":
		c.Issuer = value
	case "date":
		c.Date = strings.TrimSpace(value)
	case "link":
		c.Link = strings.TrimSpace(value)
	default:
		return c, unknownField(string(Certifications), field)
	}
	return c, nil
}
