package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the click API routes.
func RegisterRoutes(api huma.API, clickHandler *ClickHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/api/click",
		Summary:     "Register a click",
		Description: "Adds one click to the given country and returns the refreshed leaderboard.",
		Tags:        []string{"Clicks"},
	}, clickHandler.RegisterClick)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/leaderboard",
		Summary:     "Get leaderboard",
		Description: "Returns the top 20 countries ordered by total clicks descending.",
		Tags:        []string{"Clicks"},
	}, clickHandler.GetLeaderboard)
}
