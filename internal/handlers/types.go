package handlers

// LeaderboardEntry is a single row of the public leaderboard.
type LeaderboardEntry struct {
	Country     string `doc:"Country display name" example:"Argentina" json:"country"`
	TotalClicks int64  `doc:"Total clicks recorded" example:"42"       json:"total_clicks"`
}

// RegisterClickRequest is the request body for registering a click.
type RegisterClickRequest struct {
	Body struct {
		Country string `doc:"Country credited with the click" example:"Argentina" json:"country" required:"false"`
	}
}

// RegisterClickResponse is the response for a successfully registered click.
type RegisterClickResponse struct {
	Body struct {
		Success     bool               `doc:"Always true on success"                      json:"success"`
		TotalClicks int64              `doc:"Post-increment total for the clicked country" json:"total_clicks"`
		Leaderboard []LeaderboardEntry `doc:"Refreshed top 20, clicks descending"          json:"leaderboard"`
	}
}

// LeaderboardResponse is the response for a read-only leaderboard fetch.
type LeaderboardResponse struct {
	Body struct {
		Success     bool               `doc:"Always true on success"              json:"success"`
		Leaderboard []LeaderboardEntry `doc:"Top 20 countries, clicks descending" json:"leaderboard"`
	}
}
