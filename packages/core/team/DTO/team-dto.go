package teamdto

import (
	"hobbes/packages/core/filter"
	"time"
)

type Payload struct {
	Name         string `json:"name" example:"Preventers"`
	Headquarters string `json:"headquarters" example:"Sharp Tower"`
}

type Full struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Headquarters string    `json:"headquarters"`
	CreatedAt    time.Time `json:"create_datetimestamp"`
}

func (t *Full) Row() filter.Row {
	return filter.Row{
		"id":                   t.ID,
		"name":                 t.Name,
		"headquarters":         t.Headquarters,
		"create_datetimestamp": t.CreatedAt,
	}
}
