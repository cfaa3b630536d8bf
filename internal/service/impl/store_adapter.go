package impl

import (
	"context"
	"errors"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/store"

	"github.com/google/uuid"
)

// Services depend on these narrow interfaces instead of *store.Store so unit
// tests can substitute in-memory fakes with transactional rollback.

type dataStore interface {
	WithTx(ctx context.Context, fn func(tx storeTx) error) error
}

type storeTx interface {
	Accounts() accountStore
	Pending() pendingStore
	Items() itemStore
	Votes() voteStore
	Comments() commentStore
	Content() contentStore
}

type accountStore interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type pendingStore interface {
	Create(ctx context.Context, reg *domain.PendingRegistration) error
	LatestByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type itemStore interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	List(ctx context.Context, q store.ItemQuery) ([]domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	SetCounters(ctx context.Context, id domain.ItemID, likes, dislikes int) error
	Delete(ctx context.Context, id domain.ItemID) error
}

type voteStore interface {
	Get(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (*domain.Vote, error)
	Create(ctx context.Context, vote *domain.Vote) error
	SetType(ctx context.Context, id uuid.UUID, t domain.VoteType) error
	CountByType(ctx context.Context, itemID domain.ItemID, t domain.VoteType) (int64, error)
}

type commentStore interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error)
	ListByItem(ctx context.Context, itemID domain.ItemID) ([]domain.Comment, error)
	Delete(ctx context.Context, id domain.CommentID) error
}

type contentStore interface {
	ListSlides(ctx context.Context) ([]domain.CarouselSlide, error)
	GetSlide(ctx context.Context, id uuid.UUID) (*domain.CarouselSlide, error)
	SaveSlide(ctx context.Context, slide *domain.CarouselSlide) error
	DeleteSlide(ctx context.Context, id uuid.UUID) error
	GetContent(ctx context.Context, key string) (*domain.SiteContent, error)
	UpsertContent(ctx context.Context, content *domain.SiteContent) error
}

type gormStoreAdapter struct {
	store *store.Store
}

func newGormStoreAdapter(st *store.Store) gormStoreAdapter { return gormStoreAdapter{store: st} }

func (g gormStoreAdapter) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	if g.store == nil {
		return errors.New("nil store")
	}
	return g.store.WithTx(ctx, func(tx *store.Store) error {
		return fn(gormTxAdapter{tx: tx})
	})
}

type gormTxAdapter struct {
	tx *store.Store
}

func (g gormTxAdapter) Accounts() accountStore { return g.tx.Accounts() }
func (g gormTxAdapter) Pending() pendingStore  { return g.tx.Pending() }
func (g gormTxAdapter) Items() itemStore       { return g.tx.Items() }
func (g gormTxAdapter) Votes() voteStore       { return g.tx.Votes() }
func (g gormTxAdapter) Comments() commentStore { return g.tx.Comments() }
func (g gormTxAdapter) Content() contentStore  { return g.tx.Content() }

func notFound(err error) bool { return errors.Is(err, store.ErrRecordNotFound) }
