package bookdto

import (
	"hobbes/packages/core/filter"
	"time"
)

type Payload struct {
	Title     string `json:"title" example:"The Hound of the Baskervilles"`
	ISBN      string `json:"isbn" example:"978-0-14-043786-7"`
	Genre     string `json:"genre" example:"mystery"`
	Condition string `json:"condition" example:"good"`
}

type Full struct {
	ID        string    `json:"book_id"`
	Title     string    `json:"title"`
	ISBN      string    `json:"isbn"`
	Genre     string    `json:"genre"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"create_datetimestamp"`
}

func (b *Full) Row() filter.Row {
	return filter.Row{
		"book_id":              b.ID,
		"title":                b.Title,
		"isbn":                 b.ISBN,
		"genre":                b.Genre,
		"condition":            b.Condition,
		"create_datetimestamp": b.CreatedAt,
	}
}
