// Package filter narrows an already loaded list of mistakes in memory.
//
// Filtering never touches the store: the result depends only on the
// snapshot and the query, and keeps the snapshot's order.
package filter

import (
	"strings"

	"mistake-tracker/models"
)

// AllSubjects is the subject filter value that disables subject matching
const AllSubjects = "All Subjects"

// Query holds the two filter inputs
type Query struct {
	Subject string
	Search  string
}

// Apply returns the mistakes matching q, in snapshot order
func Apply(snapshot []models.Mistake, q Query) []models.Mistake {
	search := strings.ToLower(q.Search)

	matches := make([]models.Mistake, 0, len(snapshot))
	for _, m := range snapshot {
		if matchesSubject(m, q.Subject) && matchesSearch(m, search) {
			matches = append(matches, m)
		}
	}
	return matches
}

// Matches reports whether a single mistake passes q
func Matches(m models.Mistake, q Query) bool {
	return matchesSubject(m, q.Subject) && matchesSearch(m, strings.ToLower(q.Search))
}

func matchesSubject(m models.Mistake, subject string) bool {
	if subject == "" || subject == AllSubjects {
		return true
	}
	return m.SubjectName == subject
}

// matchesSearch expects search already lower-cased
func matchesSearch(m models.Mistake, search string) bool {
	if search == "" {
		return true
	}
	if contains(m.Title, search) || contains(m.Description, search) || contains(m.SubjectName, search) {
		return true
	}
	return m.CategoryName != nil && contains(*m.CategoryName, search)
}

func contains(field, search string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), search)
}
