package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
	"github.com/proyectocucea9-hash/proyectocucea/internal/observability/metrics"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	// The metrics middleware requires the curried service label.
	metrics.MustRegister("portal-test")
	os.Exit(m.Run())
}

var errStub = errors.New("stub not configured")

type stubAuth struct {
	loginFn   func(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	accountFn func(ctx context.Context, token string) (*domain.Account, error)
}

func (s stubAuth) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.loginFn == nil {
		return nil, errStub
	}
	return s.loginFn(ctx, req)
}

func (s stubAuth) AccountFromToken(ctx context.Context, token string) (*domain.Account, error) {
	if s.accountFn == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.accountFn(ctx, token)
}

type stubRegistration struct {
	submitFn func(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	verifyFn func(ctx context.Context, email, code string) (*domain.Account, error)
}

func (s stubRegistration) Submit(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if s.submitFn == nil {
		return nil, errStub
	}
	return s.submitFn(ctx, req)
}

func (s stubRegistration) Verify(ctx context.Context, email, code string) (*domain.Account, error) {
	if s.verifyFn == nil {
		return nil, errStub
	}
	return s.verifyFn(ctx, email, code)
}

type stubVotes struct {
	castFn    func(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID, t domain.VoteType) (dto.VoteCounts, error)
	currentFn func(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (domain.VoteType, error)
}

func (s stubVotes) Cast(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID, t domain.VoteType) (dto.VoteCounts, error) {
	if s.castFn == nil {
		return dto.VoteCounts{}, errStub
	}
	return s.castFn(ctx, accountID, itemID, t)
}

func (s stubVotes) Current(ctx context.Context, accountID domain.AccountID, itemID domain.ItemID) (domain.VoteType, error) {
	if s.currentFn == nil {
		return "", errStub
	}
	return s.currentFn(ctx, accountID, itemID)
}

type stubCatalog struct {
	listFn   func(ctx context.Context, filter dto.ItemFilter) ([]domain.Item, error)
	getFn    func(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	createFn func(ctx context.Context, actor *domain.Account, in dto.ItemInput) (*domain.Item, error)
}

func (s stubCatalog) List(ctx context.Context, filter dto.ItemFilter) ([]domain.Item, error) {
	if s.listFn == nil {
		return nil, errStub
	}
	return s.listFn(ctx, filter)
}

func (s stubCatalog) Get(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	if s.getFn == nil {
		return nil, errStub
	}
	return s.getFn(ctx, id)
}

func (s stubCatalog) Create(ctx context.Context, actor *domain.Account, in dto.ItemInput) (*domain.Item, error) {
	if s.createFn == nil {
		return nil, errStub
	}
	return s.createFn(ctx, actor, in)
}

func (s stubCatalog) Update(ctx context.Context, actor *domain.Account, id domain.ItemID, in dto.ItemInput) (*domain.Item, error) {
	return nil, errStub
}

func (s stubCatalog) Delete(ctx context.Context, actor *domain.Account, id domain.ItemID) error {
	return errStub
}

type stubComments struct{}

func (stubComments) ListByItem(ctx context.Context, itemID domain.ItemID) ([]domain.Comment, error) {
	return nil, errStub
}

func (stubComments) Create(ctx context.Context, itemID domain.ItemID, in dto.CommentInput) (*domain.Comment, error) {
	return nil, errStub
}

func (stubComments) Delete(ctx context.Context, actor *domain.Account, id domain.CommentID) error {
	return errStub
}

type stubContent struct{}

func (stubContent) ListSlides(ctx context.Context) ([]domain.CarouselSlide, error) {
	return nil, errStub
}

func (stubContent) CreateSlide(ctx context.Context, actor *domain.Account, in dto.SlideInput) (*domain.CarouselSlide, error) {
	return nil, errStub
}

func (stubContent) UpdateSlide(ctx context.Context, actor *domain.Account, id uuid.UUID, in dto.SlideInput) (*domain.CarouselSlide, error) {
	return nil, errStub
}

func (stubContent) DeleteSlide(ctx context.Context, actor *domain.Account, id uuid.UUID) error {
	return errStub
}

func (stubContent) GetContent(ctx context.Context, key string) (*domain.SiteContent, error) {
	return nil, errStub
}

func (stubContent) SetContent(ctx context.Context, actor *domain.Account, key, value string) (*domain.SiteContent, error) {
	return nil, errStub
}

func defaultServices() Services {
	return Services{
		Auth:         stubAuth{},
		Registration: stubRegistration{},
		Votes:        stubVotes{},
		Catalog:      stubCatalog{},
		Comments:     stubComments{},
		Content:      stubContent{},
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := NewRouter(defaultServices(), Options{})
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRegisterAccepted(t *testing.T) {
	svcs := defaultServices()
	svcs.Registration = stubRegistration{
		submitFn: func(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
			return &dto.RegisterResponse{Email: req.Email, RequiresVerification: true}, nil
		},
	}
	h := NewRouter(svcs, Options{})

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
		Email:    "ana@alumnos.udg.mx",
		Name:     "Ana",
		Password: "correcthorse",
	}, nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202, body %s", rec.Code, rec.Body)
	}
	var res dto.RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.RequiresVerification {
		t.Fatalf("unexpected body %+v", res)
	}
}

func TestRegisterBadJSON(t *testing.T) {
	h := NewRouter(defaultServices(), Options{})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidDomain, http.StatusBadRequest},
		{domain.ErrWeakPassword, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusConflict},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		svcs := defaultServices()
		svcs.Registration = stubRegistration{
			submitFn: func(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
				return nil, c.err
			},
		}
		h := NewRouter(svcs, Options{})
		rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", dto.RegisterRequest{}, nil)
		if rec.Code != c.want {
			t.Errorf("err %v: status = %d, want %d", c.err, rec.Code, c.want)
		}
	}
}

func TestVerifyCreated(t *testing.T) {
	acc := &domain.Account{ID: uuid.New(), Email: "ana@alumnos.udg.mx", Name: "Ana"}
	svcs := defaultServices()
	svcs.Registration = stubRegistration{
		verifyFn: func(ctx context.Context, email, code string) (*domain.Account, error) {
			if code != "042531" {
				return nil, domain.ErrCodeMismatch
			}
			return acc, nil
		},
	}
	h := NewRouter(svcs, Options{})

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/verify", dto.VerifyRequest{
		Email: "ana@alumnos.udg.mx",
		Code:  "042531",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/auth/verify", dto.VerifyRequest{
		Email: "ana@alumnos.udg.mx",
		Code:  "000000",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("mismatch status = %d, want 400", rec.Code)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	svcs := defaultServices()
	svcs.Auth = stubAuth{
		loginFn: func(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewRouter(svcs, Options{})

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", dto.LoginRequest{Email: "a@alumnos.udg.mx", Password: "x"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestVoteRequiresBearer(t *testing.T) {
	h := NewRouter(defaultServices(), Options{})
	itemID := uuid.New().String()

	rec := doJSON(t, h, http.MethodPut, "/v1/items/"+itemID+"/vote", dto.CastVoteRequest{Type: "like"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status = %d, want 401", rec.Code)
	}

	hdr := http.Header{"Authorization": []string{"Bearer bogus"}}
	rec = doJSON(t, h, http.MethodPut, "/v1/items/"+itemID+"/vote", dto.CastVoteRequest{Type: "like"}, hdr)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bogus token: status = %d, want 401", rec.Code)
	}
}

func TestCastVote(t *testing.T) {
	acc := &domain.Account{ID: uuid.New(), Email: "ana@alumnos.udg.mx"}
	itemID := uuid.New()

	svcs := defaultServices()
	svcs.Auth = stubAuth{
		accountFn: func(ctx context.Context, token string) (*domain.Account, error) {
			if token != "good-token" {
				return nil, domain.ErrInvalidCredentials
			}
			return acc, nil
		},
	}
	svcs.Votes = stubVotes{
		castFn: func(ctx context.Context, accountID domain.AccountID, gotItem domain.ItemID, typ domain.VoteType) (dto.VoteCounts, error) {
			if accountID != acc.ID || gotItem != itemID || typ != domain.VoteLike {
				t.Errorf("cast called with %v %v %v", accountID, gotItem, typ)
			}
			return dto.VoteCounts{Likes: 3, Dislikes: 1}, nil
		},
	}
	h := NewRouter(svcs, Options{})

	hdr := http.Header{"Authorization": []string{"Bearer good-token"}}
	rec := doJSON(t, h, http.MethodPut, "/v1/items/"+itemID.String()+"/vote", dto.CastVoteRequest{Type: "like"}, hdr)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}
	var counts dto.VoteCounts
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatal(err)
	}
	if counts.Likes != 3 || counts.Dislikes != 1 {
		t.Fatalf("counts = %+v", counts)
	}
}

func TestCreateItemForbidden(t *testing.T) {
	svcs := defaultServices()
	svcs.Auth = stubAuth{
		accountFn: func(ctx context.Context, token string) (*domain.Account, error) {
			return &domain.Account{ID: uuid.New(), Privileged: false}, nil
		},
	}
	svcs.Catalog = stubCatalog{
		createFn: func(ctx context.Context, actor *domain.Account, in dto.ItemInput) (*domain.Item, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewRouter(svcs, Options{})

	hdr := http.Header{"Authorization": []string{"Bearer whatever"}}
	rec := doJSON(t, h, http.MethodPost, "/v1/items", dto.ItemInput{}, hdr)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestListItemsParsesFilters(t *testing.T) {
	var got dto.ItemFilter
	svcs := defaultServices()
	svcs.Catalog = stubCatalog{
		listFn: func(ctx context.Context, filter dto.ItemFilter) ([]domain.Item, error) {
			got = filter
			return []domain.Item{}, nil
		},
	}
	h := NewRouter(svcs, Options{})

	rec := doJSON(t, h, http.MethodGet, "/v1/items?category=Servicios&year=2025", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.Category == nil || *got.Category != "Servicios" {
		t.Fatalf("category filter = %v", got.Category)
	}
	if got.Year == nil || *got.Year != 2025 {
		t.Fatalf("year filter = %v", got.Year)
	}

	// A malformed year is dropped, not an error.
	rec = doJSON(t, h, http.MethodGet, "/v1/items?year=abc", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("malformed year: status = %d, want 200", rec.Code)
	}
	if got.Year != nil {
		t.Fatalf("malformed year parsed as %v", *got.Year)
	}
}

func TestGetItemNotFound(t *testing.T) {
	svcs := defaultServices()
	svcs.Catalog = stubCatalog{
		getFn: func(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
			return nil, domain.ErrItemNotFound
		},
	}
	h := NewRouter(svcs, Options{})

	rec := doJSON(t, h, http.MethodGet, "/v1/items/"+uuid.New().String(), nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/items/not-a-uuid", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", rec.Code)
	}
}
