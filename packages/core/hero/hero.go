package hero

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/validation"
	"hobbes/packages/core"
	"hobbes/packages/core/filter"
	HeroDTO "hobbes/packages/core/hero/DTO"
	"net/http"
)

const Entity = "hero"

type Property core.EntityProperty

const (
	IdProperty         Property = "id"
	NameProperty       Property = "name"
	SecretNameProperty Property = "secret_name"
	AgeProperty        Property = "age"
	TeamIdProperty     Property = "team_id"
	CreatedAtProperty  Property = "create_datetimestamp"
)

var Schema = filter.NewSchema(Entity,
	filter.ColumnDescriptor{Name: string(IdProperty), Kind: filter.Integer},
	filter.ColumnDescriptor{Name: string(NameProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(SecretNameProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(AgeProperty), Kind: filter.Integer},
	filter.ColumnDescriptor{Name: string(TeamIdProperty), Kind: filter.Integer},
	filter.ColumnDescriptor{Name: string(CreatedAtProperty), Kind: filter.Timestamp},
)

// Default amount of heroes returned by recent heroes lookup
const DefaultRecentLimit = 10

var ErrInvalidAge = Error.NewStatusError(
	"age can't be negative",
	http.StatusBadRequest,
)

func ValidatePayload(p *HeroDTO.Payload) *Error.Status {
	if err := validation.NotBlank(p.Name); err != nil {
		return err.ToStatus(string(NameProperty), "non-empty string")
	}
	if err := validation.NotBlank(p.SecretName); err != nil {
		return err.ToStatus(string(SecretNameProperty), "non-empty string")
	}
	if p.Age != nil && *p.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}
