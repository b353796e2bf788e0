package herotable

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/common/util"
	"hobbes/packages/core/filter"
	"hobbes/packages/core/hero"
	HeroDTO "hobbes/packages/core/hero/DTO"
	"hobbes/packages/core/team"
	"hobbes/packages/infrastructure/DB/postgres/executor"
	"hobbes/packages/infrastructure/DB/postgres/query"
	"hobbes/packages/infrastructure/DB/postgres/transaction"

	"github.com/jackc/pgx/v5"
)

var heroLogger = logger.NewSource("HERO TABLE", logger.Default)

const table = "hero"

var columns = []string{
	string(hero.IdProperty),
	string(hero.NameProperty),
	string(hero.SecretNameProperty),
	string(hero.AgeProperty),
	string(hero.TeamIdProperty),
	string(hero.CreatedAtProperty),
}

// Satisfies hero.Repository interface
type Table struct {
	db       transaction.Beginner
	executor *executor.Executor
}

func New(db transaction.Beginner, e *executor.Executor) *Table {
	return &Table{db: db, executor: e}
}

func scan(row pgx.CollectableRow) (*HeroDTO.Full, error) {
	dto := new(HeroDTO.Full)

	if err := row.Scan(
		&dto.ID,
		&dto.Name,
		&dto.SecretName,
		&dto.Age,
		&dto.TeamID,
		&dto.CreatedAt,
	); err != nil {
		return nil, err
	}

	dto.CreatedAt = dto.CreatedAt.UTC()

	return dto, nil
}

func (t *Table) Insert(ctx context.Context, teamName string, payload *HeroDTO.Payload) (*HeroDTO.Full, *Error.Status) {
	dto := &HeroDTO.Full{
		Name:       payload.Name,
		SecretName: payload.SecretName,
		Age:        payload.Age,
		CreatedAt:  util.NowUTC(),
	}

	heroLogger.Trace("Inserting hero "+dto.Name+" into team "+teamName+"...", nil)

	err := transaction.Run(ctx, t.db, t.executor, func(tx *executor.Executor) *Error.Status {
		// lock team, so it can't be deleted till hero is inserted
		selectTeam := query.New(`SELECT id FROM "team" WHERE name = $1 FOR SHARE;`, teamName)

		if err := tx.Row(ctx, selectTeam, &dto.TeamID); err != nil {
			if err == Error.StatusNotFound {
				return team.ErrTeamNotFound
			}
			return err
		}

		insertHero := query.New(
			`INSERT INTO "hero" (name, secret_name, age, team_id, create_datetimestamp)
			VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
			dto.Name, dto.SecretName, dto.Age, dto.TeamID, dto.CreatedAt,
		)

		return tx.Row(ctx, insertHero, &dto.ID)
	})
	if err != nil {
		heroLogger.Error("Failed to insert hero", err.Error(), nil)
		return nil, err
	}

	heroLogger.Trace("Inserting hero "+dto.Name+" into team "+teamName+": OK", nil)

	return dto, nil
}

func (t *Table) Recent(ctx context.Context, limit int) ([]*HeroDTO.WithTeam, *Error.Status) {
	if limit <= 0 {
		limit = hero.DefaultRecentLimit
	}

	q := query.New(
		`SELECT h.id, h.name, h.secret_name, h.age, h.team_id, h.create_datetimestamp, t.name
		FROM "hero" h JOIN "team" t ON t.id = h.team_id
		ORDER BY h.create_datetimestamp DESC
		LIMIT $1;`,
		limit,
	)

	return executor.Collect(ctx, t.executor, q, func(row pgx.CollectableRow) (*HeroDTO.WithTeam, error) {
		dto := new(HeroDTO.WithTeam)

		if err := row.Scan(
			&dto.ID,
			&dto.Name,
			&dto.SecretName,
			&dto.Age,
			&dto.TeamID,
			&dto.CreatedAt,
			&dto.TeamName,
		); err != nil {
			return nil, err
		}

		dto.CreatedAt = dto.CreatedAt.UTC()

		return dto, nil
	})
}

func (t *Table) Search(ctx context.Context, conjunction filter.Conjunction) ([]*HeroDTO.Full, *Error.Status) {
	q := query.Select(table, columns, conjunction, string(hero.CreatedAtProperty))

	return executor.Collect(ctx, t.executor, q, scan)
}
