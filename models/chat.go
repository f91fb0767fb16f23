package models

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Persona identifies one of the fixed conversational agents. Each persona
// keeps its own chat history and its own routing rules.
type Persona string

const (
	PersonaTutor       Persona = "tutor"
	PersonaStudyBuddy  Persona = "study_buddy"
	PersonaAdminHelper Persona = "admin_helper"
	PersonaCareerCoach Persona = "career_coach"
	PersonaAIMode      Persona = "ai_mode"
)

// AllPersonas lists every persona in presentation order.
var AllPersonas = []Persona{
	PersonaTutor,
	PersonaStudyBuddy,
	PersonaAdminHelper,
	PersonaCareerCoach,
	PersonaAIMode,
}

func (p Persona) Valid() bool {
	for _, known := range AllPersonas {
		if p == known {
			return true
		}
	}
	return false
}

const (
	ReplySourceDataset = "dataset"
	ReplySourceModel   = "model"
)

type ChatRequest struct {
	SessionID string  `json:"session_id"`
	Persona   Persona `json:"persona"`
	Message   string  `json:"message"`
}

type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
