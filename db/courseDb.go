package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
)

// ErrDataUnavailable reports that the courses dataset is missing or does not
// match the expected shape. Loading is atomic: it either yields a fully
// validated document or this error, never a partial document.
var ErrDataUnavailable = errors.New("course data unavailable")

type CourseRepository interface {
	LoadDocument() (*models.CoursesDocument, error)
}

// FileCourseRepository reads the courses dataset from a JSON file. The
// document is read entirely into memory on first load and cached for the
// lifetime of the process; callers must treat it as read-only.
type FileCourseRepository struct {
	path string
	doc  *models.CoursesDocument
}

func NewFileCourseRepository(path string) *FileCourseRepository {
	return &FileCourseRepository{path: path}
}

func (r *FileCourseRepository) LoadDocument() (*models.CoursesDocument, error) {
	if r.doc != nil {
		return r.doc, nil
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrDataUnavailable, r.path, err)
	}

	var doc models.CoursesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrDataUnavailable, r.path, err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	r.doc = &doc
	return r.doc, nil
}

func validateDocument(doc *models.CoursesDocument) error {
	if len(doc.Courses) == 0 {
		return fmt.Errorf("dataset contains no courses")
	}

	for i, course := range doc.Courses {
		if course.Name == "" {
			return fmt.Errorf("course at index %d has no name", i)
		}
		for j, assignment := range course.Assignments {
			if assignment.Title == "" || assignment.Due == "" {
				return fmt.Errorf("course %q assignment at index %d is missing title or due date", course.Name, j)
			}
		}
		for j, entry := range course.Schedule {
			if entry.Day == "" || entry.Time == "" {
				return fmt.Errorf("course %q schedule entry at index %d is missing day or time", course.Name, j)
			}
		}
	}

	return nil
}
