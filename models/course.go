package models

// CoursesDocument is the root of the LMS dataset. It is loaded once at
// startup and never mutated afterwards; all services share the same view.
type CoursesDocument struct {
	Onboarding Onboarding `json:"onboarding"`
	Courses    []Course   `json:"courses"`
}

type Onboarding struct {
	Steps []string `json:"steps"`
}

type Course struct {
	Name        string          `json:"name"`
	Topics      []string        `json:"topics"`
	Instructor  string          `json:"instructor,omitempty"`
	Assignments []Assignment    `json:"assignments"`
	Schedule    []ScheduleEntry `json:"schedule"`
	Enrollment  *Enrollment     `json:"enrollment,omitempty"`
}

type Assignment struct {
	Title string `json:"title"`
	Due   string `json:"due"`
}

type ScheduleEntry struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type Enrollment struct {
	Steps []string `json:"steps"`
}

// CourseAssignment is the flattened dashboard view of one assignment.
type CourseAssignment struct {
	Course string `json:"course"`
	Title  string `json:"title"`
	Due    string `json:"due"`
}

// CourseSchedule is the flattened dashboard view of one schedule entry.
type CourseSchedule struct {
	Course string `json:"course"`
	Day    string `json:"day"`
	Time   string `json:"time"`
}
