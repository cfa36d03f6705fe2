package dto

type ProgrammePresenter struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ProgrammeSegment struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Position int    `json:"position"`
}

type ProgrammeShow struct {
	Id         string               `json:"id"`
	Title      string               `json:"title"`
	Emission   string               `json:"emission"`
	Date       string               `json:"date"`
	Status     string               `json:"status"`
	Presenters []ProgrammePresenter `json:"presenters"`
	Segments   []ProgrammeSegment   `json:"segments"`
}

// DashboardResponse is the shape returned by the backend's /dashbord route
// (the misspelling is the deployed path).
type DashboardResponse struct {
	DailyShowCount  int             `json:"daily_show_count"`
	TeamMemberCount int             `json:"team_member_count"`
	ProgrammeDuJour []ProgrammeShow `json:"programme_du_jour"`
}
