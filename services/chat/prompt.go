package chat

import (
	"fmt"
	"strings"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
	"github.com/Bamise-gif/Camanda-lms-AI/services/router"
)

// BuildDigest renders the full courses document into a human-readable
// block used as background context for dataset-aware personas.
func BuildDigest(doc *models.CoursesDocument) string {
	var digest strings.Builder
	digest.WriteString("Course catalog for Camanda LMS:\n")

	for _, course := range doc.Courses {
		digest.WriteString(fmt.Sprintf("\nCourse: %s\n", course.Name))
		if course.Instructor != "" {
			digest.WriteString(fmt.Sprintf("Instructor: %s\n", course.Instructor))
		}
		if len(course.Topics) > 0 {
			digest.WriteString(fmt.Sprintf("Topics: %s\n", strings.Join(course.Topics, ", ")))
		}
		if len(course.Assignments) > 0 {
			digest.WriteString("Assignments:\n")
			for _, assignment := range course.Assignments {
				digest.WriteString(fmt.Sprintf("- %s (Due %s)\n", assignment.Title, assignment.Due))
			}
		}
		if len(course.Schedule) > 0 {
			digest.WriteString("Schedule:\n")
			for _, entry := range course.Schedule {
				digest.WriteString(fmt.Sprintf("- %s at %s\n", entry.Day, entry.Time))
			}
		}
		if course.Enrollment != nil && len(course.Enrollment.Steps) > 0 {
			digest.WriteString("Enrollment steps:\n")
			for _, step := range course.Enrollment.Steps {
				digest.WriteString(fmt.Sprintf("- %s\n", step))
			}
		}
	}

	return digest.String()
}

// Assemble builds the ordered message list for a delegated turn: persona
// instruction first, optional dataset digest, prior history in order, then
// the new user message unless it is already the last element of history.
func Assemble(persona models.Persona, history []models.Message, newMessage string, doc *models.CoursesDocument) []models.Message {
	messages := []models.Message{
		{Role: models.RoleSystem, Content: router.Instruction(persona)},
	}

	if router.DatasetAware(persona) {
		messages = append(messages, models.Message{Role: models.RoleSystem, Content: BuildDigest(doc)})
	}

	messages = append(messages, history...)

	if n := len(history); n == 0 || history[n-1].Role != models.RoleUser || history[n-1].Content != newMessage {
		messages = append(messages, models.Message{Role: models.RoleUser, Content: newMessage})
	}

	return messages
}
