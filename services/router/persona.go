package router

import (
	"github.com/Bamise-gif/Camanda-lms-AI/models"
)

type personaProfile struct {
	displayName  string
	instruction  string
	datasetAware bool
}

// profiles is the closed persona configuration: fixed instruction text plus
// whether the dataset digest is injected into delegated conversations.
var profiles = map[models.Persona]personaProfile{
	models.PersonaTutor: {
		displayName:  "Tutor Assistant",
		instruction:  "You are a helpful Tutor Assistant in Camanda LMS. Answer questions about assignments, schedules, and study materials.",
		datasetAware: true,
	},
	models.PersonaStudyBuddy: {
		displayName:  "Study Buddy",
		instruction:  "You are a friendly Study Buddy. Motivate learners and quiz them.",
		datasetAware: true,
	},
	models.PersonaAdminHelper: {
		displayName:  "Admin Helper",
		instruction:  "You are the LMS Admin Helper. Give clear, structured answers.",
		datasetAware: false,
	},
	models.PersonaCareerCoach: {
		displayName:  "Career Coach",
		instruction:  "You are a Career Coach. Give practical, encouraging advice and recommend courses and skills based on the learner's goals.",
		datasetAware: true,
	},
	models.PersonaAIMode: {
		displayName:  "AI Assistant",
		instruction:  "You are a general-purpose assistant for Camanda LMS learners. Use the provided course catalog to ground your answers.",
		datasetAware: true,
	},
}

// Instruction returns the fixed system prompt for a persona.
func Instruction(persona models.Persona) string {
	return profiles[persona].instruction
}

func DisplayName(persona models.Persona) string {
	return profiles[persona].displayName
}

// DatasetAware reports whether delegated conversations for this persona
// carry the course catalog digest as background context.
func DatasetAware(persona models.Persona) bool {
	return profiles[persona].datasetAware
}
