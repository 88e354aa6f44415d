package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleFaculty    RoleType = "FACULTY"
	RoleAdmin      RoleType = "ADMIN"
	RoleManagement RoleType = "MANAGEMENT"
	RoleViewer     RoleType = "VIEWER"
)

// ApplicationStatus represents the state of an internship application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Availability represents a student's availability for internships
type Availability string

const (
	AvailabilityFullTime    Availability = "FULL_TIME"
	AvailabilityPartTime    Availability = "PART_TIME"
	AvailabilityUnavailable Availability = "UNAVAILABLE"
)

// InternshipMode represents how an internship is carried out
type InternshipMode string

const (
	ModeRemote InternshipMode = "REMOTE"
	ModeOnsite InternshipMode = "ONSITE"
	ModeHybrid InternshipMode = "HYBRID"
)

// NotificationType categorizes mentor notifications emitted on student profile changes
type NotificationType string

const (
	NotificationInternshipStatus   NotificationType = "internship_status"
	NotificationSkillAdded         NotificationType = "skill_added"
	NotificationCertificationAdded NotificationType = "certification_added"
	NotificationAchievementAdded   NotificationType = "achievement_added"
	NotificationProfileUpdate      NotificationType = "profile_update"
)
