package team

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/validation"
	"hobbes/packages/core"
	"hobbes/packages/core/filter"
	TeamDTO "hobbes/packages/core/team/DTO"
	"net/http"
)

const Entity = "team"

type Property core.EntityProperty

const (
	IdProperty           Property = "id"
	NameProperty         Property = "name"
	HeadquartersProperty Property = "headquarters"
	CreatedAtProperty    Property = "create_datetimestamp"
)

var Schema = filter.NewSchema(Entity,
	filter.ColumnDescriptor{Name: string(IdProperty), Kind: filter.Integer},
	filter.ColumnDescriptor{Name: string(NameProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(HeadquartersProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(CreatedAtProperty), Kind: filter.Timestamp},
)

var ErrTeamExists = Error.NewStatusError(
	"Team with this name already exists",
	http.StatusConflict,
)

var ErrTeamNotFound = Error.NewStatusError(
	"Team wasn't found",
	http.StatusNotFound,
)

func ValidatePayload(p *TeamDTO.Payload) *Error.Status {
	if err := validation.NotBlank(p.Name); err != nil {
		return err.ToStatus(string(NameProperty), "non-empty string")
	}
	if err := validation.NotBlank(p.Headquarters); err != nil {
		return err.ToStatus(string(HeadquartersProperty), "non-empty string")
	}
	return nil
}
