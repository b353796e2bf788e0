package teamtable

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/common/util"
	"hobbes/packages/core/filter"
	"hobbes/packages/core/team"
	TeamDTO "hobbes/packages/core/team/DTO"
	"hobbes/packages/infrastructure/DB/postgres/executor"
	"hobbes/packages/infrastructure/DB/postgres/query"

	"github.com/jackc/pgx/v5"
)

var teamLogger = logger.NewSource("TEAM TABLE", logger.Default)

const table = "team"

var columns = []string{
	string(team.IdProperty),
	string(team.NameProperty),
	string(team.HeadquartersProperty),
	string(team.CreatedAtProperty),
}

// Satisfies team.Repository interface
type Table struct {
	executor *executor.Executor
}

func New(e *executor.Executor) *Table {
	return &Table{executor: e}
}

func scan(row pgx.CollectableRow) (*TeamDTO.Full, error) {
	dto := new(TeamDTO.Full)

	if err := row.Scan(&dto.ID, &dto.Name, &dto.Headquarters, &dto.CreatedAt); err != nil {
		return nil, err
	}

	dto.CreatedAt = dto.CreatedAt.UTC()

	return dto, nil
}

func (t *Table) Insert(ctx context.Context, payload *TeamDTO.Payload) (*TeamDTO.Full, *Error.Status) {
	dto := &TeamDTO.Full{
		Name:         payload.Name,
		Headquarters: payload.Headquarters,
		CreatedAt:    util.NowUTC(),
	}

	teamLogger.Trace("Inserting team "+dto.Name+"...", nil)

	q := query.New(
		`INSERT INTO "team" (name, headquarters, create_datetimestamp) VALUES ($1, $2, $3) RETURNING id;`,
		dto.Name, dto.Headquarters, dto.CreatedAt,
	)

	if err := t.executor.Row(ctx, q, &dto.ID); err != nil {
		if err == query.StatusConflict {
			return nil, team.ErrTeamExists
		}
		teamLogger.Error("Failed to insert team", err.Error(), nil)
		return nil, err
	}

	teamLogger.Trace("Inserting team "+dto.Name+": OK", nil)

	return dto, nil
}

func (t *Table) GetByName(ctx context.Context, name string) (*TeamDTO.Full, *Error.Status) {
	column, _ := team.Schema.Column(string(team.NameProperty))

	teams, err := t.Search(ctx, filter.Conjunction{{
		Column: column,
		Cond:   filter.Equal,
		Values: []any{name},
	}})
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, team.ErrTeamNotFound
	}

	return teams[0], nil
}

func (t *Table) Search(ctx context.Context, conjunction filter.Conjunction) ([]*TeamDTO.Full, *Error.Status) {
	q := query.Select(table, columns, conjunction, string(team.CreatedAtProperty))

	return executor.Collect(ctx, t.executor, q, scan)
}
