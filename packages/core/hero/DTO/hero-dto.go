package herodto

import (
	"hobbes/packages/core/filter"
	"time"
)

type Payload struct {
	Name       string `json:"name" example:"Deadpond"`
	SecretName string `json:"secret_name" example:"Dive Wilson"`
	Age        *int   `json:"age,omitempty" example:"30"`
}

type Full struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	SecretName string    `json:"secret_name"`
	Age        *int      `json:"age"`
	TeamID     int64     `json:"team_id"`
	CreatedAt  time.Time `json:"create_datetimestamp"`
}

// Hero with the name of it's team
type WithTeam struct {
	Full
	TeamName string `json:"team_name"`
}

func (h *Full) Row() filter.Row {
	row := filter.Row{
		"id":                   h.ID,
		"name":                 h.Name,
		"secret_name":          h.SecretName,
		"team_id":              h.TeamID,
		"create_datetimestamp": h.CreatedAt,
	}
	if h.Age != nil {
		row["age"] = *h.Age
	}
	return row
}
