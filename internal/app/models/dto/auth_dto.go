package dto

// RegisterRequest represents a registration request. Role-specific fields
// are required depending on the requested role.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane@university.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"s3cr3tpass"`
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	RoleType  string `json:"roleType" binding:"required,oneof=STUDENT FACULTY ADMIN MANAGEMENT VIEWER" example:"STUDENT"`

	// Student fields
	Department   *string  `json:"department,omitempty" example:"Computer Engineering"`
	CGPA         *float64 `json:"cgpa,omitempty" binding:"omitempty,gte=0,lte=10" example:"8.4"`
	Availability *string  `json:"availability,omitempty" example:"FULL_TIME"`
	Skills       []string `json:"skills,omitempty"`
	Interests    []string `json:"interests,omitempty"`

	// Faculty fields
	Expertise         []string `json:"expertise,omitempty"`
	ResearchInterests []string `json:"researchInterests,omitempty"`
	MentoringCapacity *int     `json:"mentoringCapacity,omitempty" binding:"omitempty,gte=0" example:"5"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@university.edu"`
	Password string `json:"password" binding:"required" example:"s3cr3tpass"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// AuthResponse bundles the authenticated user with its tokens
type AuthResponse struct {
	UserID   int64         `json:"userId" example:"1"`
	Email    string        `json:"email" example:"jane@university.edu"`
	RoleType string        `json:"roleType" example:"STUDENT"`
	Tokens   TokenResponse `json:"tokens"`
}
