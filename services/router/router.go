package router

import (
	"fmt"
	"log"
	"strings"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
)

type RouteKind int

const (
	// RouteDirectAnswer means the message was answered deterministically
	// from the dataset.
	RouteDirectAnswer RouteKind = iota
	// RouteDelegate means the caller should hand the message to the model
	// gateway.
	RouteDelegate
)

type RouteResult struct {
	Kind   RouteKind
	Answer string
}

func DirectAnswer(text string) RouteResult {
	return RouteResult{Kind: RouteDirectAnswer, Answer: text}
}

func Delegate() RouteResult {
	return RouteResult{Kind: RouteDelegate}
}

type keywordRule struct {
	triggers []string
	build    func(doc *models.CoursesDocument) string
}

// keywordRules maps each persona to its ordered rule set. Matching is a
// case-insensitive substring check on the raw message; the first rule with a
// matching trigger wins. Personas absent from this map always delegate.
var keywordRules = map[models.Persona][]keywordRule{
	models.PersonaTutor: {
		{triggers: []string{"assignment"}, build: buildAssignmentList},
		{triggers: []string{"schedule", "class"}, build: buildScheduleList},
	},
	models.PersonaStudyBuddy: {
		{triggers: []string{"quiz"}, build: buildQuizPrompts},
	},
}

// Route decides whether a message is answered from the dataset or delegated
// to the model. CareerCoach has no fixed triggers; it matches message tokens
// against course names and topics and only delegates when nothing matches.
func Route(persona models.Persona, message string, doc *models.CoursesDocument) RouteResult {
	lower := strings.ToLower(message)

	for _, rule := range keywordRules[persona] {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				log.Printf("[INFO] Persona %s matched trigger %q, answering from dataset", persona, trigger)
				return DirectAnswer(rule.build(doc))
			}
		}
	}

	if persona == models.PersonaCareerCoach {
		if answer, ok := buildRecommendations(lower, doc); ok {
			log.Printf("[INFO] Career coach matched courses for message, answering from dataset")
			return DirectAnswer(answer)
		}
	}

	return Delegate()
}

func buildAssignmentList(doc *models.CoursesDocument) string {
	lines := []string{"Here are your assignments:"}
	for _, course := range doc.Courses {
		for _, assignment := range course.Assignments {
			lines = append(lines, fmt.Sprintf("%s: %s (Due %s)", course.Name, assignment.Title, assignment.Due))
		}
	}
	return strings.Join(lines, "\n")
}

func buildScheduleList(doc *models.CoursesDocument) string {
	lines := []string{"Here is your schedule:"}
	for _, course := range doc.Courses {
		for _, entry := range course.Schedule {
			lines = append(lines, fmt.Sprintf("%s: %s at %s", course.Name, entry.Day, entry.Time))
		}
	}
	return strings.Join(lines, "\n")
}

func buildQuizPrompts(doc *models.CoursesDocument) string {
	lines := []string{"Here's a quiz for you:"}
	for _, course := range doc.Courses {
		lines = append(lines, fmt.Sprintf("%s:", course.Name))
		for _, topic := range course.Topics {
			lines = append(lines, fmt.Sprintf("- What do you know about %s?", topic))
		}
	}
	return strings.Join(lines, "\n")
}

// buildRecommendations matches lower-cased whitespace tokens of the message
// as substrings of each course's name and topics. It reports ok=false when
// no course matches so the caller can fall through to delegation.
func buildRecommendations(lowerMessage string, doc *models.CoursesDocument) (string, bool) {
	tokens := strings.Fields(lowerMessage)
	if len(tokens) == 0 {
		return "", false
	}

	lines := []string{"Based on your goals, you might like these courses:"}
	matched := false

	for _, course := range doc.Courses {
		haystack := strings.ToLower(course.Name + " " + strings.Join(course.Topics, " "))

		for _, token := range tokens {
			if !strings.Contains(haystack, token) {
				continue
			}

			line := fmt.Sprintf("%s (topics: %s)", course.Name, strings.Join(course.Topics, ", "))
			if course.Enrollment != nil && len(course.Enrollment.Steps) > 0 {
				line += fmt.Sprintf(" Start by: %s", course.Enrollment.Steps[0])
			}
			lines = append(lines, line)
			matched = true
			break
		}
	}

	if !matched {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}
