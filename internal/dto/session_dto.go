package dto

import (
	"deal-insights-be/pkg/filter"
	"deal-insights-be/pkg/panel"
)

type ToggleFilterRequest struct {
	Facet string `json:"facet" validate:"required,oneof=client industry year status"`
	Value string `json:"value" validate:"required"`
}

type SetSearchRequest struct {
	Text string `json:"text"`
}

type ViewResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Stats    StatsResponse     `json:"stats"`
}

type SessionResponse struct {
	Id         string           `json:"id"`
	Filters    filter.Selection `json:"filters"`
	SearchText string           `json:"search_text"`
	View       ViewResponse     `json:"view"`
	Panel      panel.Snapshot   `json:"panel"`
}

type ViewportRequest struct {
	Width  int `json:"width" validate:"gte=0"`
	Height int `json:"height" validate:"gte=0"`
}

type PointerRequest struct {
	Type   string `json:"type" validate:"required,oneof=down move up"`
	Target string `json:"target"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type SetInputRequest struct {
	Text string `json:"text"`
}

type SubmitMessageRequest struct {
	Text *string `json:"text"`
}

// PanelActionResponse reports whether an action changed anything along with
// the resulting panel state.
type PanelActionResponse struct {
	Applied bool           `json:"applied"`
	Panel   panel.Snapshot `json:"panel"`
}

type SessionEventResponse struct {
	SessionId string         `json:"session_id"`
	Type      string         `json:"type"`
	Message   *panel.Message `json:"message,omitempty"`
	Panel     panel.Snapshot `json:"panel"`
}
