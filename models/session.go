package models

import "time"

// Session holds all per-user conversational state for one UI session:
// one append-only history per persona plus the onboarding flag. Nothing
// here survives a restart.
type Session struct {
	ID        string                `json:"id"`
	Onboarded bool                  `json:"onboarded"`
	Histories map[Persona][]Message `json:"histories"`
	CreatedAt time.Time             `json:"created_at"`
}

type SessionSnapshot struct {
	ID        string    `json:"id"`
	Onboarded bool      `json:"onboarded"`
	Personas  []Persona `json:"personas"`
	CreatedAt time.Time `json:"created_at"`
}
