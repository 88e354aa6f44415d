package models

import "time"

// Internship defines the internship posting model based on the 'internships' table
type Internship struct {
	ID             int64          `json:"id" db:"id" example:"1"`
	Title          string         `json:"title" db:"title" example:"Backend Engineering Intern"`
	Company        string         `json:"company" db:"company" example:"Acme Corp"`
	Description    string         `json:"description" db:"description"`
	Mode           InternshipMode `json:"mode" db:"mode" example:"REMOTE"`
	SkillsRequired []string       `json:"skillsRequired" db:"skills_required"`
	SDGGoals       []string       `json:"sdgGoals" db:"sdg_goals"`
	Stipend        int            `json:"stipend" db:"stipend" example:"15000"`
	Deadline       time.Time      `json:"deadline" db:"deadline"`
	IsOpen         bool           `json:"isOpen" db:"is_open"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}
