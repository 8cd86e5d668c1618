package services

// CourseGroup is a named group of predefined subjects
type CourseGroup struct {
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
}

var courseCatalog = []CourseGroup{
	{
		Name: "STEM Subjects",
		Subjects: []string{
			"Mathematics", "Calculus", "Linear Algebra", "Statistics", "Physics",
			"Chemistry", "Biology", "Computer Science", "Programming", "Data Structures",
			"Algorithms", "Database Systems", "Software Engineering", "Machine Learning",
			"Artificial Intelligence",
		},
	},
	{
		Name: "Engineering",
		Subjects: []string{
			"Mechanical Engineering", "Electrical Engineering", "Civil Engineering",
			"Chemical Engineering", "Computer Engineering", "Materials Science",
			"Thermodynamics", "Circuit Analysis", "Structural Analysis",
		},
	},
	{
		Name: "Business & Economics",
		Subjects: []string{
			"Economics", "Microeconomics", "Macroeconomics", "Business Administration",
			"Accounting", "Finance", "Marketing", "Management", "Statistics for Business",
		},
	},
	{
		Name: "Liberal Arts",
		Subjects: []string{
			"English Literature", "Creative Writing", "History", "Political Science",
			"Psychology", "Sociology", "Philosophy", "Art History", "Foreign Languages",
		},
	},
	{
		Name: "Health Sciences",
		Subjects: []string{
			"Medicine", "Nursing", "Anatomy", "Physiology", "Pharmacology",
			"Pathology", "Biochemistry", "Public Health",
		},
	},
}

// CourseCatalog returns a copy of the predefined course groups
func CourseCatalog() []CourseGroup {
	groups := make([]CourseGroup, len(courseCatalog))
	for i, g := range courseCatalog {
		groups[i] = CourseGroup{Name: g.Name, Subjects: append([]string(nil), g.Subjects...)}
	}
	return groups
}

// CatalogSubjects flattens the catalog into subject names in group order
func CatalogSubjects() []string {
	var names []string
	for _, g := range courseCatalog {
		names = append(names, g.Subjects...)
	}
	return names
}
