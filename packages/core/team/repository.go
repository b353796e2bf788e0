package team

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/core"
	TeamDTO "hobbes/packages/core/team/DTO"
)

type Repository interface {
	core.Searcher[*TeamDTO.Full]

	// Returns ErrTeamExists if name is already taken
	Insert(ctx context.Context, payload *TeamDTO.Payload) (*TeamDTO.Full, *Error.Status)

	// Returns ErrTeamNotFound if there are no such team
	GetByName(ctx context.Context, name string) (*TeamDTO.Full, *Error.Status)
}
