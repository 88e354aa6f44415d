package dto

// OverviewStats is the aggregate read model consumed by dashboards and
// serialized into the narrative-report prompt.
type OverviewStats struct {
	Students             int64            `json:"students" example:"120"`
	Mentors              int64            `json:"mentors" example:"14"`
	Viewers              int64            `json:"viewers" example:"6"`
	OpenInternships      int64            `json:"openInternships" example:"18"`
	ClosedInternships    int64            `json:"closedInternships" example:"7"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	ByCompany            map[string]int64 `json:"byCompany"`
	BySDGGoal            map[string]int64 `json:"bySdgGoal"`
	BySkill              map[string]int64 `json:"bySkill"`
	ByDepartment         map[string]int64 `json:"byDepartment"`
	ByMode               map[string]int64 `json:"byMode"`
}

// NarrativeReportResponse wraps the free-text report produced by the
// external generative-text service.
type NarrativeReportResponse struct {
	Report string `json:"report"`
}
