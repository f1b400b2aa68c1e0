// Package validation holds the pure domain rules applied before any write
// reaches the store, plus the request-binding setup. The client mirrors these
// rules for UX; the server-side checks here are the authoritative ones.
package validation

import (
	"errors"
	"strings"
)

// MaxCoursesPerStudent caps the courses a student may enroll in.
const MaxCoursesPerStudent = 3

var (
	ErrInvalidGrade   = errors.New("grade must be one of the following: A, A+, A-, B, B+, B-, C, C+, C-, D, D+, D-, E, E+, E-, F, F+, F-")
	ErrTooManyCourses = errors.New("you can only select up to 3 courses")
)

// validGrades is every letter A–F with an optional + or - modifier.
var validGrades = func() map[string]struct{} {
	set := make(map[string]struct{}, 18)
	for _, letter := range []string{"A", "B", "C", "D", "E", "F"} {
		set[letter] = struct{}{}
		set[letter+"+"] = struct{}{}
		set[letter+"-"] = struct{}{}
	}
	return set
}()

// NormalizeGrade uppercases the input and checks it against the valid grade
// set. Returns the normalized grade, or ErrInvalidGrade.
func NormalizeGrade(grade string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(grade))
	if _, ok := validGrades[normalized]; !ok {
		return "", ErrInvalidGrade
	}
	return normalized, nil
}

// CheckCourseSelection rejects selections above the per-student cap.
// An empty selection is allowed.
func CheckCourseSelection(courses []string) error {
	if len(courses) > MaxCoursesPerStudent {
		return ErrTooManyCourses
	}
	return nil
}

// UniqueName reports whether candidate collides with no existing course name,
// comparing case-insensitively and skipping the record identified by excludeID
// (pass "" on create).
func UniqueName(candidate string, existing map[string]string, excludeID string) bool {
	for id, name := range existing {
		if id == excludeID {
			continue
		}
		if strings.EqualFold(name, candidate) {
			return false
		}
	}
	return true
}

// UniqueEmail reports whether candidate collides with none of the existing
// emails, case-insensitively.
func UniqueEmail(candidate string, existing []string) bool {
	for _, email := range existing {
		if strings.EqualFold(email, candidate) {
			return false
		}
	}
	return true
}
