package impl

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"

	"github.com/google/uuid"
)

// memoryStore implements the narrow store interfaces with copy-on-write
// snapshots so a failing transaction rolls back, mirroring Store.WithTx.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
	pending  []*domain.PendingRegistration
	items    map[uuid.UUID]*domain.Item
	votes    map[string]*domain.Vote // key: accountID|itemID
	comments map[uuid.UUID]*domain.Comment
	slides   map[uuid.UUID]*domain.CarouselSlide
	contents map[string]*domain.SiteContent
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[uuid.UUID]*domain.Account),
		items:    make(map[uuid.UUID]*domain.Item),
		votes:    make(map[string]*domain.Vote),
		comments: make(map[uuid.UUID]*domain.Comment),
		slides:   make(map[uuid.UUID]*domain.CarouselSlide),
		contents: make(map[string]*domain.SiteContent),
	}
}

func voteKey(accountID, itemID uuid.UUID) string {
	return accountID.String() + "|" + itemID.String()
}

func (m *memoryStore) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.snapshot()
	if err := fn(memoryTx{store: m}); err != nil {
		m.restore(snapshot)
		return err
	}
	return nil
}

type memorySnapshot struct {
	accounts map[uuid.UUID]*domain.Account
	pending  []*domain.PendingRegistration
	items    map[uuid.UUID]*domain.Item
	votes    map[string]*domain.Vote
	comments map[uuid.UUID]*domain.Comment
	slides   map[uuid.UUID]*domain.CarouselSlide
	contents map[string]*domain.SiteContent
}

func (m *memoryStore) snapshot() memorySnapshot {
	s := memorySnapshot{
		accounts: make(map[uuid.UUID]*domain.Account, len(m.accounts)),
		pending:  make([]*domain.PendingRegistration, 0, len(m.pending)),
		items:    make(map[uuid.UUID]*domain.Item, len(m.items)),
		votes:    make(map[string]*domain.Vote, len(m.votes)),
		comments: make(map[uuid.UUID]*domain.Comment, len(m.comments)),
		slides:   make(map[uuid.UUID]*domain.CarouselSlide, len(m.slides)),
		contents: make(map[string]*domain.SiteContent, len(m.contents)),
	}
	for k, v := range m.accounts {
		cp := *v
		s.accounts[k] = &cp
	}
	for _, v := range m.pending {
		cp := *v
		s.pending = append(s.pending, &cp)
	}
	for k, v := range m.items {
		cp := *v
		s.items[k] = &cp
	}
	for k, v := range m.votes {
		cp := *v
		s.votes[k] = &cp
	}
	for k, v := range m.comments {
		cp := *v
		s.comments[k] = &cp
	}
	for k, v := range m.slides {
		cp := *v
		s.slides[k] = &cp
	}
	for k, v := range m.contents {
		cp := *v
		s.contents[k] = &cp
	}
	return s
}

func (m *memoryStore) restore(s memorySnapshot) {
	m.accounts = s.accounts
	m.pending = s.pending
	m.items = s.items
	m.votes = s.votes
	m.comments = s.comments
	m.slides = s.slides
	m.contents = s.contents
}

// Read helpers for assertions outside transactions.

func (m *memoryStore) accountByEmail(email string) (*domain.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, acc := range m.accounts {
		if strings.EqualFold(acc.Email, email) {
			cp := *acc
			return &cp, true
		}
	}
	return nil, false
}

func (m *memoryStore) pendingCount(email string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, reg := range m.pending {
		if strings.EqualFold(reg.Email, email) {
			n++
		}
	}
	return n
}

func (m *memoryStore) voteRows(itemID uuid.UUID) []domain.Vote {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Vote
	for _, v := range m.votes {
		if v.ItemID == itemID {
			out = append(out, *v)
		}
	}
	return out
}

func (m *memoryStore) item(id uuid.UUID) (*domain.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, false
	}
	cp := *it
	return &cp, true
}

type memoryTx struct{ store *memoryStore }

func (t memoryTx) Accounts() accountStore { return memoryAccounts{t.store} }
func (t memoryTx) Pending() pendingStore  { return memoryPending{t.store} }
func (t memoryTx) Items() itemStore       { return memoryItems{t.store} }
func (t memoryTx) Votes() voteStore       { return memoryVotes{t.store} }
func (t memoryTx) Comments() commentStore { return memoryComments{t.store} }
func (t memoryTx) Content() contentStore  { return memoryContent{t.store} }

type memoryAccounts struct{ s *memoryStore }

func (a memoryAccounts) Create(ctx context.Context, acc *domain.Account) error {
	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	cp := *acc
	a.s.accounts[acc.ID] = &cp
	return nil
}

func (a memoryAccounts) GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	acc, ok := a.s.accounts[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *acc
	return &cp, nil
}

func (a memoryAccounts) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	for _, acc := range a.s.accounts {
		if strings.EqualFold(acc.Email, email) {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, store.ErrRecordNotFound
}

type memoryPending struct{ s *memoryStore }

func (p memoryPending) Create(ctx context.Context, reg *domain.PendingRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	cp := *reg
	p.s.pending = append(p.s.pending, &cp)
	return nil
}

func (p memoryPending) LatestByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	var latest *domain.PendingRegistration
	for _, reg := range p.s.pending {
		if !strings.EqualFold(reg.Email, email) {
			continue
		}
		if latest == nil || reg.CreatedAt.After(latest.CreatedAt) {
			latest = reg
		}
	}
	if latest == nil {
		return nil, store.ErrRecordNotFound
	}
	cp := *latest
	return &cp, nil
}

func (p memoryPending) DeleteByEmail(ctx context.Context, email string) error {
	kept := p.s.pending[:0]
	for _, reg := range p.s.pending {
		if !strings.EqualFold(reg.Email, email) {
			kept = append(kept, reg)
		}
	}
	p.s.pending = kept
	return nil
}

type memoryItems struct{ s *memoryStore }

func (i memoryItems) Create(ctx context.Context, item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	i.s.items[item.ID] = &cp
	return nil
}

func (i memoryItems) GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	item, ok := i.s.items[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (i memoryItems) List(ctx context.Context, q store.ItemQuery) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range i.s.items {
		if q.Category != "" && item.Category != q.Category {
			continue
		}
		if !q.DateFrom.IsZero() && item.Date.Before(q.DateFrom) {
			continue
		}
		if !q.DateTo.IsZero() && item.Date.After(q.DateTo) {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Likes != out[b].Likes {
			return out[a].Likes > out[b].Likes
		}
		return out[a].Date.After(out[b].Date)
	})
	return out, nil
}

func (i memoryItems) Update(ctx context.Context, item *domain.Item) error {
	cp := *item
	i.s.items[item.ID] = &cp
	return nil
}

func (i memoryItems) SetCounters(ctx context.Context, id domain.ItemID, likes, dislikes int) error {
	item, ok := i.s.items[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	item.Likes = likes
	item.Dislikes = dislikes
	return nil
}

func (i memoryItems) Delete(ctx context.Context, id domain.ItemID) error {
	delete(i.s.items, id)
	for k, v := range i.s.votes {
		if v.ItemID == id {
			delete(i.s.votes, k)
		}
	}
	for k, c := range i.s.comments {
		if c.ItemID == id {
			delete(i.s.comments, k)
		}
	}
	return nil
}

type memoryVotes struct{ s *memoryStore }

func (v memoryVotes) Get(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (*domain.Vote, error) {
	vote, ok := v.s.votes[voteKey(accountID, itemID)]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *vote
	return &cp, nil
}

func (v memoryVotes) Create(ctx context.Context, vote *domain.Vote) error {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	cp := *vote
	v.s.votes[voteKey(vote.AccountID, vote.ItemID)] = &cp
	return nil
}

func (v memoryVotes) SetType(ctx context.Context, id uuid.UUID, t domain.VoteType) error {
	for _, vote := range v.s.votes {
		if vote.ID == id {
			vote.Type = t
			return nil
		}
	}
	return store.ErrRecordNotFound
}

func (v memoryVotes) CountByType(ctx context.Context, itemID domain.ItemID, t domain.VoteType) (int64, error) {
	var n int64
	for _, vote := range v.s.votes {
		if vote.ItemID == itemID && vote.Type == t {
			n++
		}
	}
	return n, nil
}

type memoryComments struct{ s *memoryStore }

func (c memoryComments) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	cp := *comment
	c.s.comments[comment.ID] = &cp
	return nil
}

func (c memoryComments) GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	comment, ok := c.s.comments[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *comment
	return &cp, nil
}

func (c memoryComments) ListByItem(ctx context.Context, itemID domain.ItemID) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, comment := range c.s.comments {
		if comment.ItemID == itemID {
			out = append(out, *comment)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}

func (c memoryComments) Delete(ctx context.Context, id domain.CommentID) error {
	delete(c.s.comments, id)
	return nil
}

type memoryContent struct{ s *memoryStore }

func (c memoryContent) ListSlides(ctx context.Context) ([]domain.CarouselSlide, error) {
	var out []domain.CarouselSlide
	for _, slide := range c.s.slides {
		out = append(out, *slide)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Position < out[b].Position })
	return out, nil
}

func (c memoryContent) GetSlide(ctx context.Context, id uuid.UUID) (*domain.CarouselSlide, error) {
	slide, ok := c.s.slides[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *slide
	return &cp, nil
}

func (c memoryContent) SaveSlide(ctx context.Context, slide *domain.CarouselSlide) error {
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	cp := *slide
	c.s.slides[slide.ID] = &cp
	return nil
}

func (c memoryContent) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	delete(c.s.slides, id)
	return nil
}

func (c memoryContent) GetContent(ctx context.Context, key string) (*domain.SiteContent, error) {
	content, ok := c.s.contents[key]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	cp := *content
	return &cp, nil
}

func (c memoryContent) UpsertContent(ctx context.Context, content *domain.SiteContent) error {
	cp := *content
	c.s.contents[content.Key] = &cp
	return nil
}
