// FILE: internal/entity/project_entity.go
package entity

import (
	"fmt"
	"strings"
)

type Industry string
type Status string

const (
	IndustryTechnology Industry = "Technology"
	IndustryFinance    Industry = "Finance"
	IndustryRetail     Industry = "Retail"
	IndustryHealthcare Industry = "Healthcare"

	StatusWon  Status = "Won"
	StatusLost Status = "Lost"
)

// Industries lists every industry in display order.
var Industries = []Industry{IndustryTechnology, IndustryFinance, IndustryRetail, IndustryHealthcare}

// Statuses lists every engagement outcome in display order.
var Statuses = []Status{StatusWon, StatusLost}

func (i Industry) Valid() bool {
	for _, known := range Industries {
		if i == known {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	return s == StatusWon || s == StatusLost
}

// ParseIndustry matches case-insensitively against the closed industry set.
func ParseIndustry(raw string) (Industry, error) {
	raw = strings.TrimSpace(raw)
	for _, known := range Industries {
		if strings.EqualFold(raw, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown industry %q", raw)
}

// ParseStatus matches case-insensitively against the closed status set.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for _, known := range Statuses {
		if strings.EqualFold(raw, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

type ProductOwner struct {
	Name  string
	Email string
}

// Metrics is only captured for delivered engagements; lost deals carry none.
type Metrics struct {
	CostEfficiency string
	TimeSaved      string
	Satisfaction   string
}

type Project struct {
	Id            int
	Client        string
	ClientInitial string
	ClientColor   string
	Industry      Industry
	Year          int
	Status        Status
	ProductOwner  *ProductOwner
	Objectives    string
	Strategies    []string
	KeyOutcomes   string
	Metrics       *Metrics
}

func (p *Project) IsWon() bool {
	return p.Status == StatusWon
}

// FacetOptions enumerates the selectable values of every facet.
type FacetOptions struct {
	Clients    []string
	Industries []Industry
	Years      []int
	Statuses   []Status
}
