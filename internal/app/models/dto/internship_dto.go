package dto

// CreateInternshipRequest represents an internship posting creation request
type CreateInternshipRequest struct {
	Title          string   `json:"title" binding:"required" example:"Backend Engineering Intern"`
	Company        string   `json:"company" binding:"required" example:"Acme Corp"`
	Description    string   `json:"description" example:"Work on the billing platform"`
	Mode           string   `json:"mode" binding:"required,oneof=REMOTE ONSITE HYBRID" example:"REMOTE"`
	SkillsRequired []string `json:"skillsRequired,omitempty"`
	SDGGoals       []string `json:"sdgGoals,omitempty"`
	Stipend        int      `json:"stipend" binding:"gte=0" example:"15000"`
	Deadline       string   `json:"deadline" binding:"required" example:"2026-10-01"` // YYYY-MM-DD
}

// UpdateInternshipRequest represents a partial internship update
type UpdateInternshipRequest struct {
	Title          *string  `json:"title,omitempty"`
	Company        *string  `json:"company,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Mode           *string  `json:"mode,omitempty" binding:"omitempty,oneof=REMOTE ONSITE HYBRID"`
	SkillsRequired []string `json:"skillsRequired,omitempty"`
	SDGGoals       []string `json:"sdgGoals,omitempty"`
	Stipend        *int     `json:"stipend,omitempty" binding:"omitempty,gte=0"`
	Deadline       *string  `json:"deadline,omitempty"`
	IsOpen         *bool    `json:"isOpen,omitempty"`
}
