package chat

import (
	"strings"
	"testing"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
	"github.com/Bamise-gif/Camanda-lms-AI/services/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *models.CoursesDocument {
	return &models.CoursesDocument{
		Onboarding: models.Onboarding{Steps: []string{"Create a profile"}},
		Courses: []models.Course{
			{
				Name:       "Math",
				Topics:     []string{"Algebra", "Geometry"},
				Instructor: "Dr. Okafor",
				Assignments: []models.Assignment{
					{Title: "HW1", Due: "2024-01-10"},
				},
				Schedule: []models.ScheduleEntry{
					{Day: "Monday", Time: "10:00 AM"},
				},
				Enrollment: &models.Enrollment{Steps: []string{"Register online"}},
			},
		},
	}
}

func TestBuildDigest(t *testing.T) {
	digest := BuildDigest(testDocument())

	assert.Contains(t, digest, "Course: Math")
	assert.Contains(t, digest, "Instructor: Dr. Okafor")
	assert.Contains(t, digest, "Topics: Algebra, Geometry")
	assert.Contains(t, digest, "HW1 (Due 2024-01-10)")
	assert.Contains(t, digest, "Monday at 10:00 AM")
	assert.Contains(t, digest, "Register online")
}

func TestAssembleOrdering(t *testing.T) {
	doc := testDocument()
	history := []models.Message{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "hello!"},
	}

	messages := Assemble(models.PersonaTutor, history, "what should I study?", doc)

	require.Len(t, messages, 5)
	assert.Equal(t, models.RoleSystem, messages[0].Role)
	assert.Equal(t, router.Instruction(models.PersonaTutor), messages[0].Content)
	assert.Equal(t, models.RoleSystem, messages[1].Role)
	assert.True(t, strings.Contains(messages[1].Content, "Course: Math"), "second message should carry the dataset digest")
	assert.Equal(t, history[0], messages[2])
	assert.Equal(t, history[1], messages[3])
	assert.Equal(t, models.Message{Role: models.RoleUser, Content: "what should I study?"}, messages[4])
}

func TestAssembleWithoutDigest(t *testing.T) {
	messages := Assemble(models.PersonaAdminHelper, nil, "add a new course", testDocument())

	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleSystem, messages[0].Role)
	assert.Equal(t, models.RoleUser, messages[1].Role)
	assert.Equal(t, "add a new course", messages[1].Content)
}

func TestAssembleSkipsDuplicateUserMessage(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUser, Content: "what should I study?"},
	}

	messages := Assemble(models.PersonaAdminHelper, history, "what should I study?", testDocument())

	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleUser, messages[1].Role)
	assert.Equal(t, "what should I study?", messages[1].Content)
}

func TestAssembleEveryPersonaStartsWithInstruction(t *testing.T) {
	doc := testDocument()

	for _, persona := range models.AllPersonas {
		messages := Assemble(persona, nil, "hello", doc)

		require.NotEmpty(t, messages, "persona %s", persona)
		assert.Equal(t, models.RoleSystem, messages[0].Role, "persona %s", persona)
		assert.Equal(t, router.Instruction(persona), messages[0].Content, "persona %s", persona)
		assert.Equal(t, models.RoleUser, messages[len(messages)-1].Role, "persona %s", persona)
		assert.Equal(t, "hello", messages[len(messages)-1].Content, "persona %s", persona)
	}
}
