package router

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/core/book"
	BookDTO "hobbes/packages/core/book/DTO"
	"hobbes/packages/core/filter"
	HeroDTO "hobbes/packages/core/hero/DTO"
	"hobbes/packages/core/team"
	TeamDTO "hobbes/packages/core/team/DTO"
	"hobbes/packages/infrastructure/tasks"
	"slices"
	"strconv"
	"sync"
	"time"
)

// In-memory repositories, filters are evaluated via Conjunction.Match.

type memBooks struct {
	mu    sync.Mutex
	books []*BookDTO.Full
	now   time.Time
}

func (r *memBooks) Insert(ctx context.Context, p *BookDTO.Payload) (*BookDTO.Full, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.now = r.now.Add(time.Minute)
	b := &BookDTO.Full{
		ID:        "00000000-0000-0000-0000-" + strconv.Itoa(100000000000+len(r.books)),
		Title:     p.Title,
		ISBN:      p.ISBN,
		Genre:     p.Genre,
		Condition: p.Condition,
		CreatedAt: r.now,
	}
	r.books = append(r.books, b)
	return b, nil
}

func (r *memBooks) newestFirst(keep func(b *BookDTO.Full) bool) []*BookDTO.Full {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*BookDTO.Full{}
	for _, b := range slices.Backward(r.books) {
		if keep(b) {
			result = append(result, b)
		}
	}
	return result
}

func (r *memBooks) All(ctx context.Context) ([]*BookDTO.Full, *Error.Status) {
	return r.newestFirst(func(*BookDTO.Full) bool { return true }), nil
}

func (r *memBooks) ByDate(ctx context.Context, date time.Time, compare book.Compare) ([]*BookDTO.Full, *Error.Status) {
	return r.newestFirst(func(b *BookDTO.Full) bool {
		if compare == book.CompareGreater {
			return b.CreatedAt.After(date)
		}
		return b.CreatedAt.Before(date)
	}), nil
}

func (r *memBooks) Search(ctx context.Context, c filter.Conjunction) ([]*BookDTO.Full, *Error.Status) {
	return r.newestFirst(func(b *BookDTO.Full) bool { return c.Match(b.Row()) }), nil
}

type memTeams struct {
	mu     sync.Mutex
	teams  []*TeamDTO.Full
	heroes []*HeroDTO.Full
	now    time.Time
}

func (r *memTeams) Insert(ctx context.Context, p *TeamDTO.Payload) (*TeamDTO.Full, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.teams {
		if t.Name == p.Name {
			return nil, team.ErrTeamExists
		}
	}

	r.now = r.now.Add(time.Minute)
	t := &TeamDTO.Full{
		ID:           int64(len(r.teams) + 1),
		Name:         p.Name,
		Headquarters: p.Headquarters,
		CreatedAt:    r.now,
	}
	r.teams = append(r.teams, t)
	return t, nil
}

func (r *memTeams) getByName(name string) (*TeamDTO.Full, *Error.Status) {
	for _, t := range r.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, team.ErrTeamNotFound
}

func (r *memTeams) GetByName(ctx context.Context, name string) (*TeamDTO.Full, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getByName(name)
}

func (r *memTeams) Search(ctx context.Context, c filter.Conjunction) ([]*TeamDTO.Full, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*TeamDTO.Full{}
	for _, t := range slices.Backward(r.teams) {
		if c.Match(t.Row()) {
			result = append(result, t)
		}
	}
	return result, nil
}

// Hero side of memTeams.
type memHeroes struct {
	*memTeams
}

func (r memHeroes) Insert(ctx context.Context, teamName string, p *HeroDTO.Payload) (*HeroDTO.Full, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.getByName(teamName)
	if err != nil {
		return nil, err
	}

	r.now = r.now.Add(time.Minute)
	h := &HeroDTO.Full{
		ID:         int64(len(r.heroes) + 1),
		Name:       p.Name,
		SecretName: p.SecretName,
		Age:        p.Age,
		TeamID:     t.ID,
		CreatedAt:  r.now,
	}
	r.heroes = append(r.heroes, h)
	return h, nil
}

func (r memHeroes) Recent(ctx context.Context, limit int) ([]*HeroDTO.WithTeam, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*HeroDTO.WithTeam{}
	for _, h := range slices.Backward(r.heroes) {
		if len(result) == limit {
			break
		}
		result = append(result, &HeroDTO.WithTeam{Full: *h, TeamName: r.teams[h.TeamID-1].Name})
	}
	return result, nil
}

func (r memHeroes) Search(ctx context.Context, c filter.Conjunction) ([]*HeroDTO.Full, *Error.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*HeroDTO.Full{}
	for _, h := range slices.Backward(r.heroes) {
		if c.Match(h.Row()) {
			result = append(result, h)
		}
	}
	return result, nil
}

type fakeQueue struct {
	mu    sync.Mutex
	tasks map[string]*tasks.Meta
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{tasks: map[string]*tasks.Meta{}}
}

func (q *fakeQueue) Enqueue(ctx context.Context, name string, args any) (*tasks.Meta, *Error.Status) {
	q.mu.Lock()
	defer q.mu.Unlock()

	meta := &tasks.Meta{
		ID:    "task-" + strconv.Itoa(len(q.tasks)+1),
		Name:  name,
		State: tasks.StatePending,
	}
	q.tasks[meta.ID] = meta
	return meta, nil
}

func (q *fakeQueue) Meta(ctx context.Context, id string) (*tasks.Meta, *Error.Status) {
	q.mu.Lock()
	defer q.mu.Unlock()

	meta, ok := q.tasks[id]
	if !ok {
		return nil, tasks.ErrTaskNotFound
	}
	return meta, nil
}

func (q *fakeQueue) Replay(ctx context.Context, id string) (*tasks.Meta, *Error.Status) {
	meta, err := q.Meta(ctx, id)
	if err != nil {
		return nil, err
	}
	if !meta.State.IsFinal() {
		return nil, tasks.ErrTaskNotFinished
	}
	return q.Enqueue(ctx, meta.Name, nil)
}

func (q *fakeQueue) byName(name string) []*tasks.Meta {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := []*tasks.Meta{}
	for _, m := range q.tasks {
		if m.Name == name {
			result = append(result, m)
		}
	}
	return result
}
