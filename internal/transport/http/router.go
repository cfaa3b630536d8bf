package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/netutil"
	obsmw "github.com/proyectocucea9-hash/proyectocucea/internal/observability/middleware"
	"github.com/proyectocucea9-hash/proyectocucea/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	Auth         service.AuthService
	Registration service.RegistrationService
	Votes        service.VoteService
	Catalog      service.CatalogService
	Comments     service.CommentService
	Content      service.ContentService
}

type Options struct {
	TrustProxy  bool
	CORSOrigins []string
}

type accountCtxKey struct{}

func accountFromContext(ctx context.Context) *domain.Account {
	acc, _ := ctx.Value(accountCtxKey{}).(*domain.Account)
	return acc
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// XFF can be a list: client, proxy1, proxy2...
			ip := strings.TrimSpace(strings.Split(xff, ",")[0])
			if normalized, ok := netutil.NormalizeIP(ip); ok {
				return normalized
			}
		}
		if xr := r.Header.Get("X-Real-IP"); xr != "" {
			if normalized, ok := netutil.NormalizeIP(xr); ok {
				return normalized
			}
		}
	}
	if normalized, ok := netutil.NormalizeIP(r.RemoteAddr); ok {
		return normalized
	}
	return r.RemoteAddr
}

func NewRouter(svcs Services, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(httprate.LimitByIP(100, 1*time.Minute))
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(obsmw.WithRequestAndTrace)
	r.Use(obsmw.WithMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	ah := &authHandler{svcs: svcs, trustProxy: opts.TrustProxy}
	ih := &itemHandler{svcs: svcs}
	vh := &voteHandler{svcs: svcs}
	ch := &commentHandler{svcs: svcs}
	sh := &contentHandler{svcs: svcs}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", ah.register)
		r.Post("/auth/verify", ah.verify)
		r.Post("/auth/login", ah.login)

		r.Get("/items", ih.list)
		r.Get("/items/{id}", ih.get)
		r.Get("/items/{id}/comments", ch.list)
		r.Post("/items/{id}/comments", ch.create)

		r.Get("/carousel", sh.listSlides)
		r.Get("/content/{key}", sh.getContent)

		r.Group(func(r chi.Router) {
			r.Use(requireAccount(svcs.Auth))

			r.Put("/items/{id}/vote", vh.cast)
			r.Get("/items/{id}/vote", vh.current)

			r.Post("/items", ih.create)
			r.Put("/items/{id}", ih.update)
			r.Delete("/items/{id}", ih.delete)
			r.Delete("/comments/{id}", ch.delete)

			r.Post("/carousel", sh.createSlide)
			r.Put("/carousel/{id}", sh.updateSlide)
			r.Delete("/carousel/{id}", sh.deleteSlide)
			r.Put("/content/{key}", sh.setContent)
		})
	})

	return r
}

// requireAccount resolves the bearer token to an account and stores it on the
// request context. Privilege checks stay in the services.
func requireAccount(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
				return
			}
			acc, err := auth.AccountFromToken(r.Context(), token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid token"})
				return
			}
			ctx := context.WithValue(r.Context(), accountCtxKey{}, acc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
