package services

import (
	"log"
	"strings"

	"github.com/Bamise-gif/Camanda-lms-AI/db"
	"github.com/Bamise-gif/Camanda-lms-AI/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// CourseService exposes read-only queries over the loaded courses document.
type CourseService struct {
	doc *models.CoursesDocument
}

func NewCourseService(repo db.CourseRepository) (*CourseService, error) {
	doc, err := repo.LoadDocument()
	if err != nil {
		log.Printf("[ERROR] Failed to load courses document: %v", err)
		return nil, err
	}

	log.Printf("[INFO] Loaded courses document with %d courses", len(doc.Courses))
	return &CourseService{doc: doc}, nil
}

func (s *CourseService) Document() *models.CoursesDocument {
	return s.doc
}

func (s *CourseService) OnboardingSteps() []string {
	return s.doc.Onboarding.Steps
}

func (s *CourseService) Courses() []models.Course {
	return s.doc.Courses
}

func (s *CourseService) Assignments() []models.CourseAssignment {
	return lo.FlatMap(s.doc.Courses, func(course models.Course, _ int) []models.CourseAssignment {
		return lo.Map(course.Assignments, func(a models.Assignment, _ int) models.CourseAssignment {
			return models.CourseAssignment{Course: course.Name, Title: a.Title, Due: a.Due}
		})
	})
}

func (s *CourseService) Schedule() []models.CourseSchedule {
	return lo.FlatMap(s.doc.Courses, func(course models.Course, _ int) []models.CourseSchedule {
		return lo.Map(course.Schedule, func(e models.ScheduleEntry, _ int) models.CourseSchedule {
			return models.CourseSchedule{Course: course.Name, Day: e.Day, Time: e.Time}
		})
	})
}

// SearchCourses matches query terms against course names, topics, and
// instructors with typo tolerance.
func (s *CourseService) SearchCourses(query string) []models.Course {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return s.doc.Courses
	}

	matches := lo.Filter(s.doc.Courses, func(course models.Course, _ int) bool {
		return courseMatchesSearch(course, terms)
	})

	log.Printf("[INFO] Course search for %q matched %d courses", query, len(matches))
	return matches
}

func courseMatchesSearch(course models.Course, terms []string) bool {
	words := strings.Fields(strings.ToLower(course.Name))
	for _, topic := range course.Topics {
		words = append(words, strings.Fields(strings.ToLower(topic))...)
	}
	if course.Instructor != "" {
		words = append(words, strings.Fields(strings.ToLower(course.Instructor))...)
	}

	haystack := strings.Join(words, " ")

	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
		if len(fuzzy.Find(term, words)) > 0 {
			return true
		}
	}

	return false
}
