package dto

// Remote contract bodies use the dashboard's camelCase field names.

type ProductOwnerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MetricsResponse struct {
	CostEfficiency string `json:"costEfficiency"`
	TimeSaved      string `json:"timeSaved"`
	Satisfaction   string `json:"satisfaction"`
}

type ProjectResponse struct {
	Id            int                   `json:"id"`
	Client        string                `json:"client"`
	ClientInitial string                `json:"clientInitial"`
	ClientColor   string                `json:"clientColor"`
	Industry      string                `json:"industry"`
	Year          int                   `json:"year"`
	Status        string                `json:"status"`
	ProductOwner  *ProductOwnerResponse `json:"productOwner"`
	Objectives    string                `json:"objectives"`
	Strategies    []string              `json:"strategies"`
	KeyOutcomes   string                `json:"keyOutcomes"`
	Metrics       *MetricsResponse      `json:"metrics"`
}

type StatsResponse struct {
	TotalProjects int `json:"totalProjects"`
	WonProjects   int `json:"wonProjects"`
	LostProjects  int `json:"lostProjects"`
	WinRate       int `json:"winRate"`
	ActiveClients int `json:"activeClients"`
}

type FilterOptionsResponse struct {
	Clients    []string `json:"clients"`
	Industries []string `json:"industries"`
	Years      []int    `json:"years"`
	Statuses   []string `json:"statuses"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type SimilarProjectsRequest struct {
	Limit int `query:"limit" validate:"gte=0,lte=20"`
}

type DashboardResponse struct {
	Projects []ProjectResponse     `json:"projects"`
	Stats    StatsResponse         `json:"stats"`
	Filters  FilterOptionsResponse `json:"filters"`
}
