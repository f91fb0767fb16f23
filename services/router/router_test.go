package router

import (
	"strings"
	"testing"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
)

func testDocument() *models.CoursesDocument {
	return &models.CoursesDocument{
		Onboarding: models.Onboarding{Steps: []string{"Create a profile"}},
		Courses: []models.Course{
			{
				Name:   "Math",
				Topics: []string{"Algebra", "Geometry"},
				Assignments: []models.Assignment{
					{Title: "HW1", Due: "2024-01-10"},
				},
				Schedule: []models.ScheduleEntry{
					{Day: "Monday", Time: "10:00 AM"},
				},
				Enrollment: &models.Enrollment{Steps: []string{"Register online", "Get the textbook"}},
			},
			{
				Name:   "Bio",
				Topics: []string{"Cells", "DNA"},
				Assignments: []models.Assignment{
					{Title: "Lab Report", Due: "2024-01-17"},
				},
				Schedule: []models.ScheduleEntry{
					{Day: "Tuesday", Time: "9:00 AM"},
				},
			},
		},
	}
}

func TestRouteKeywordRules(t *testing.T) {
	doc := testDocument()

	tests := []struct {
		name         string
		persona      models.Persona
		message      string
		wantKind     RouteKind
		wantContains []string
	}{
		{
			name:         "tutor assignment trigger",
			persona:      models.PersonaTutor,
			message:      "What are my assignments?",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math: HW1 (Due 2024-01-10)", "Bio: Lab Report (Due 2024-01-17)"},
		},
		{
			name:         "tutor trigger is case insensitive",
			persona:      models.PersonaTutor,
			message:      "ANY ASSIGNMENT DUE SOON?",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math: HW1 (Due 2024-01-10)"},
		},
		{
			name:         "tutor schedule trigger",
			persona:      models.PersonaTutor,
			message:      "show me the schedule",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math: Monday at 10:00 AM", "Bio: Tuesday at 9:00 AM"},
		},
		{
			name:         "class trigger matches as substring",
			persona:      models.PersonaTutor,
			message:      "where is my classroom",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math: Monday at 10:00 AM"},
		},
		{
			name:         "first matching rule wins",
			persona:      models.PersonaTutor,
			message:      "assignment and schedule please",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math: HW1 (Due 2024-01-10)"},
		},
		{
			name:     "tutor falls back to delegation",
			persona:  models.PersonaTutor,
			message:  "explain photosynthesis",
			wantKind: RouteDelegate,
		},
		{
			name:         "study buddy quiz trigger",
			persona:      models.PersonaStudyBuddy,
			message:      "Quiz me!",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"What do you know about Cells?", "What do you know about DNA?"},
		},
		{
			name:     "study buddy falls back to delegation",
			persona:  models.PersonaStudyBuddy,
			message:  "I need some motivation",
			wantKind: RouteDelegate,
		},
		{
			name:     "admin helper always delegates",
			persona:  models.PersonaAdminHelper,
			message:  "assignment schedule quiz",
			wantKind: RouteDelegate,
		},
		{
			name:     "ai mode always delegates",
			persona:  models.PersonaAIMode,
			message:  "quiz me on my assignments",
			wantKind: RouteDelegate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Route(tt.persona, tt.message, doc)

			if result.Kind != tt.wantKind {
				t.Fatalf("Route() kind = %v, expected %v for message %q", result.Kind, tt.wantKind, tt.message)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(result.Answer, want) {
					t.Errorf("Route() answer missing %q, got:\n%s", want, result.Answer)
				}
			}
		})
	}
}

func TestRouteCareerCoach(t *testing.T) {
	doc := testDocument()

	tests := []struct {
		name         string
		message      string
		wantKind     RouteKind
		wantContains []string
	}{
		{
			name:         "topic token matches a course",
			message:      "I want to learn Algebra",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math (topics: Algebra, Geometry)", "Start by: Register online"},
		},
		{
			name:         "course name token matches case insensitively",
			message:      "is BIO a good fit for me?",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Bio (topics: Cells, DNA)"},
		},
		{
			name:         "partial token matches as substring",
			message:      "something with geo",
			wantKind:     RouteDirectAnswer,
			wantContains: []string{"Math (topics: Algebra, Geometry)"},
		},
		{
			name:     "no token overlap delegates",
			message:  "suggest something for law school",
			wantKind: RouteDelegate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Route(models.PersonaCareerCoach, tt.message, doc)

			if result.Kind != tt.wantKind {
				t.Fatalf("Route() kind = %v, expected %v for message %q", result.Kind, tt.wantKind, tt.message)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(result.Answer, want) {
					t.Errorf("Route() answer missing %q, got:\n%s", want, result.Answer)
				}
			}
		})
	}
}

func TestRouteCareerCoachSkipsCourseWithoutEnrollment(t *testing.T) {
	doc := testDocument()

	result := Route(models.PersonaCareerCoach, "DNA", doc)

	if result.Kind != RouteDirectAnswer {
		t.Fatalf("Route() kind = %v, expected direct answer", result.Kind)
	}
	if strings.Contains(result.Answer, "Start by:") {
		t.Errorf("Route() answer should have no enrollment hint for Bio, got:\n%s", result.Answer)
	}
}
