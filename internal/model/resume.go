package model

// Go models that match resume.schema.json, used for validation, editing and rendering.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedIn"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
}

type SkillCategory struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link,omitempty"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

// Resume is one resume record. Values are treated as immutable: editors
// return a new Resume instead of mutating slices in place.
type Resume struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// New returns the empty record a session starts with.
func New() Resume {
	return Resume{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []SkillCategory{},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// Normalize replaces nil sections with empty slices so the record encodes
// as [] rather than null.
func (r Resume) Normalize() Resume {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []SkillCategory{}
	}
	for i := range r.Skills {
		if r.Skills[i].Items != nil {
			continue
		}
		// copy before patching so the caller's slice is left alone
		skills := make([]SkillCategory, len(r.Skills))
		copy(skills, r.Skills)
		for j := range skills {
			if skills[j].Items == nil {
				skills[j].Items = []string{}
			}
		}
		r.Skills = skills
		break
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	return r
}
