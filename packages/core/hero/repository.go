package hero

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/core"
	HeroDTO "hobbes/packages/core/hero/DTO"
)

type Repository interface {
	core.Searcher[*HeroDTO.Full]

	// Inserts hero into the team with specified name.
	// Returns team.ErrTeamNotFound if there are no such team.
	Insert(ctx context.Context, teamName string, payload *HeroDTO.Payload) (*HeroDTO.Full, *Error.Status)

	// Most recently created heroes with their teams, newest first
	Recent(ctx context.Context, limit int) ([]*HeroDTO.WithTeam, *Error.Status)
}
