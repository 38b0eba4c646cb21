package dto

type ChatHistoryItem struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string            `json:"message" validate:"required"`
	History []ChatHistoryItem `json:"history" validate:"dive"`
}

type ChatCitation struct {
	ProjectId int    `json:"projectId"`
	Client    string `json:"client"`
	Reason    string `json:"reason"`
}

type ChatResponse struct {
	Answer     string         `json:"answer"`
	Citations  []ChatCitation `json:"citations"`
	Confidence *float64       `json:"confidence"`
}
