package render

// Labels holds the section headings a variant prints.
type Labels struct {
	Summary        string
	Experience     string
	Education      string
	Skills         string
	Projects       string
	Certifications string
}

var variantLabels = map[TemplateID]Labels{
	Classic: {
		Summary:        "PROFESSIONAL SUMMARY",
		Experience:     "PROFESSIONAL EXPERIENCE",
		Education:      "EDUCATION",
		Skills:         "TECHNICAL SKILLS",
		Projects:       "PROJECTS",
		Certifications: "CERTIFICATIONS",
	},
	Modern: {
		Summary:        "About Me",
		Experience:     "Experience",
		Education:      "Education",
		Skills:         "Skills",
		Projects:       "Projects",
		Certifications: "Certifications",
	},
	Elegant: {
		Summary:        "Profile",
		Experience:     "Professional Experience",
		Education:      "Education",
		Skills:         "Technical Skills",
		Projects:       "Projects",
		Certifications: "Certifications",
	},
	Minimal: {
		Summary:        "SUMMARY",
		Experience:     "EXPERIENCE",
		Education:      "EDUCATION",
		Skills:         "SKILLS",
		Projects:       "PROJECTS",
		Certifications: "CERTIFICATIONS",
	},
	Colorful: {
		Summary:        "Professional Summary",
		Experience:     "Professional Experience",
		Education:      "Education",
		Skills:         "Technical Skills",
		Projects:       "Projects",
		Certifications: "Certifications",
	},
	Creative: {
		Summary:        "About Me",
		Experience:     "Experience Journey",
		Education:      "Learning Path",
		Skills:         "Skill Arsenal",
		Projects:       "Project Showcase",
		Certifications: "Achievements",
	},
	Business: {
		Summary:        "Executive Summary",
		Experience:     "Professional Experience",
		Education:      "Education",
		Skills:         "Core Competencies",
		Projects:       "Key Projects",
		Certifications: "Professional Certifications",
	},
}

// LabelsFor returns the headings of a variant, falling back to classic.
func LabelsFor(id TemplateID) Labels {
	if l, ok := variantLabels[id]; ok {
		return l
	}
	return variantLabels[DefaultTemplate]
}
