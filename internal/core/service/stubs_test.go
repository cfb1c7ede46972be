package service

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stores. Every read and write copies the vote slices so the
// services cannot mutate stored state without calling Save.
// ---------------------------------------------------------------------------

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Votes != nil {
		clone.Votes = make([]domain.UserVote, len(u.Votes))
		copy(clone.Votes, u.Votes)
	}
	return &clone
}

func cloneParticipant(p *domain.Participant) *domain.Participant {
	clone := *p
	if p.Votes != nil {
		clone.Votes = make([]domain.ParticipantVote, len(p.Votes))
		copy(clone.Votes, p.Votes)
	}
	return &clone
}

type stubUserRepo struct {
	users     map[string]*domain.User
	seq       int
	saveErr   error
	deleteErr error
	saves     int
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByVotedParticipant(_ context.Context, participantID string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if _, ok := u.VoteFor(participantID); ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = "user-" + strconv.Itoa(r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.saves++
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubParticipantRepo struct {
	items        map[string]*domain.Participant
	seq          int
	saveErr      error
	afterFind    func()
	beforeDelete func()
}

func newStubParticipantRepo(items ...*domain.Participant) *stubParticipantRepo {
	r := &stubParticipantRepo{items: make(map[string]*domain.Participant)}
	for _, p := range items {
		r.items[p.ID] = cloneParticipant(p)
	}
	return r
}

func (r *stubParticipantRepo) FindByID(_ context.Context, id string) (*domain.Participant, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	out := cloneParticipant(p)
	runOnce(&r.afterFind)
	return out, nil
}

func (r *stubParticipantRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			out = append(out, cloneParticipant(p))
		}
	}
	return out, nil
}

func (r *stubParticipantRepo) Find(_ context.Context, f domain.ParticipantFilter) ([]*domain.Participant, error) {
	out := []*domain.Participant{}
	for _, p := range r.items {
		if f.Year != nil && p.Year != *f.Year {
			continue
		}
		if f.VotedBy != "" {
			voted := false
			for _, v := range p.Votes {
				if v.UserID == f.VotedBy {
					voted = true
				}
			}
			if !voted {
				continue
			}
		}
		out = append(out, cloneParticipant(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out, nil
}

func (r *stubParticipantRepo) Create(_ context.Context, p *domain.Participant) (*domain.Participant, error) {
	r.seq++
	created := cloneParticipant(p)
	created.ID = "participant-" + strconv.Itoa(r.seq)
	r.items[created.ID] = cloneParticipant(created)
	return created, nil
}

func (r *stubParticipantRepo) Update(_ context.Context, p *domain.Participant) (*domain.Participant, error) {
	stored, ok := r.items[p.ID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	updated := cloneParticipant(p)
	updated.Votes = cloneParticipant(stored).Votes
	r.items[p.ID] = updated
	return cloneParticipant(updated), nil
}

func (r *stubParticipantRepo) Save(_ context.Context, p *domain.Participant) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	r.items[p.ID] = cloneParticipant(p)
	return nil
}

func (r *stubParticipantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	runOnce(&r.beforeDelete)
	delete(r.items, id)
	return nil
}

// runOnce calls and clears *hook, letting a test slip another operation in
// between a read and what the caller does with it.
func runOnce(hook *func()) {
	if h := *hook; h != nil {
		*hook = nil
		h()
	}
}

type stubCountryRepo struct {
	items map[string]*domain.Country
	seq   int
}

func newStubCountryRepo(items ...*domain.Country) *stubCountryRepo {
	r := &stubCountryRepo{items: make(map[string]*domain.Country)}
	for _, c := range items {
		clone := *c
		r.items[c.ID] = &clone
	}
	return r
}

func (r *stubCountryRepo) FindByID(_ context.Context, id string) (*domain.Country, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCountryRepo) FindByName(_ context.Context, name string) (*domain.Country, error) {
	for _, c := range r.items {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCountryNotFound
}

func (r *stubCountryRepo) List(_ context.Context) ([]*domain.Country, error) {
	out := []*domain.Country{}
	for _, c := range r.items {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCountryRepo) Create(_ context.Context, c *domain.Country) (*domain.Country, error) {
	r.seq++
	clone := *c
	clone.ID = "country-" + strconv.Itoa(r.seq)
	stored := clone
	r.items[clone.ID] = &stored
	return &clone, nil
}

func (r *stubCountryRepo) Update(_ context.Context, c *domain.Country) (*domain.Country, error) {
	if _, ok := r.items[c.ID]; !ok {
		return nil, domain.ErrCountryNotFound
	}
	clone := *c
	r.items[c.ID] = &clone
	return c, nil
}

func (r *stubCountryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrCountryNotFound
	}
	delete(r.items, id)
	return nil
}

type stubCompetitionRepo struct {
	items map[string]*domain.Competition
	seq   int
}

func newStubCompetitionRepo() *stubCompetitionRepo {
	return &stubCompetitionRepo{items: make(map[string]*domain.Competition)}
}

func (r *stubCompetitionRepo) FindByID(_ context.Context, id string) (*domain.Competition, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrCompetitionNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCompetitionRepo) FindByYear(_ context.Context, year int) (*domain.Competition, error) {
	for _, c := range r.items {
		if c.Year == year {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCompetitionNotFound
}

func (r *stubCompetitionRepo) List(_ context.Context) ([]*domain.Competition, error) {
	out := []*domain.Competition{}
	for _, c := range r.items {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}

func (r *stubCompetitionRepo) Create(_ context.Context, c *domain.Competition) (*domain.Competition, error) {
	r.seq++
	clone := *c
	clone.ID = "competition-" + strconv.Itoa(r.seq)
	stored := clone
	r.items[clone.ID] = &stored
	return &clone, nil
}

func (r *stubCompetitionRepo) Update(_ context.Context, c *domain.Competition) (*domain.Competition, error) {
	if _, ok := r.items[c.ID]; !ok {
		return nil, domain.ErrCompetitionNotFound
	}
	clone := *c
	r.items[c.ID] = &clone
	return c, nil
}

func (r *stubCompetitionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrCompetitionNotFound
	}
	delete(r.items, id)
	return nil
}

// ---------------------------------------------------------------------------
// Transactor, cache and publisher doubles
// ---------------------------------------------------------------------------

// stubTx behaves like a real transaction around commit hooks: they run
// when fn succeeds and are dropped when it fails.
type stubTx struct {
	calls   int
	aborted int
}

func (t *stubTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if ports.InUnitOfWork(ctx) {
		return fn(ctx)
	}
	txCtx, hooks := ports.WithCommitHooks(ctx)
	if err := fn(txCtx); err != nil {
		t.aborted++
		return err
	}
	hooks.Run(ctx)
	return nil
}

type stubTallyCache struct {
	items       map[string]domain.Tally
	generations map[string]int64
	getErr      error
	setErr      error
	invalidated []string
}

func newStubTallyCache() *stubTallyCache {
	return &stubTallyCache{items: make(map[string]domain.Tally), generations: make(map[string]int64)}
}

func (c *stubTallyCache) Get(_ context.Context, participantID string) (*domain.Tally, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	t, ok := c.items[participantID]
	if !ok {
		return nil, false, nil
	}
	return &t, true, nil
}

func (c *stubTallyCache) Generation(_ context.Context, participantID string) (int64, error) {
	return c.generations[participantID], nil
}

func (c *stubTallyCache) Set(_ context.Context, t *domain.Tally, generation int64) (bool, error) {
	if c.setErr != nil {
		return false, c.setErr
	}
	if c.generations[t.ParticipantID] != generation {
		return false, nil
	}
	c.items[t.ParticipantID] = *t
	return true, nil
}

func (c *stubTallyCache) Invalidate(_ context.Context, participantIDs ...string) error {
	for _, id := range participantIDs {
		c.generations[id]++
		delete(c.items, id)
		c.invalidated = append(c.invalidated, id)
	}
	return nil
}

type stubPublisher struct {
	events []domain.VoteEvent
}

func (p *stubPublisher) Publish(e domain.VoteEvent) {
	p.events = append(p.events, e)
}

var errStoreDown = errors.New("store down")
