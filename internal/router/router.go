package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "vahis-pet-care-hub/docs"
	mem "vahis-pet-care-hub/internal/adapters/storage/memory"
	pg "vahis-pet-care-hub/internal/adapters/storage/postgres"
	"vahis-pet-care-hub/internal/domain/accounts"
	"vahis-pet-care-hub/internal/domain/bookings"
	"vahis-pet-care-hub/internal/domain/matching"
	"vahis-pet-care-hub/internal/domain/pets"
	"vahis-pet-care-hub/internal/domain/products"
	"vahis-pet-care-hub/internal/domain/quiz"
	"vahis-pet-care-hub/internal/middleware"
	"vahis-pet-care-hub/internal/platform/logger"
	"vahis-pet-care-hub/internal/platform/metrics"
	"vahis-pet-care-hub/internal/ports/oracle"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Puede ser nil (sin GEMINI_API_KEY): el matcher responde 500.
	Oracle oracle.Oracle

	Logger logger.Logger

	Match MatchOptions
	Auth  AuthOptions

	// SeedCatalog carga el catálogo demo si el store está vacío (solo sin DB).
	SeedCatalog bool
}

type MatchOptions struct {
	OracleTimeout time.Duration
	RatePerMinute int
	RateBurst     int
}

type AuthOptions struct {
	SessionTTL   time.Duration
	SecureCookie bool

	// Si AdminPassword viene, se asegura que exista ese admin al arrancar.
	AdminUsername string
	AdminPassword string
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var (
		petRepo     pets.Repository
		productRepo products.Repository
		bookingRepo bookings.Repository
		userRepo    accounts.Repository
	)
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		productRepo = pg.NewProductsRepo(opts.DB)
		bookingRepo = pg.NewBookingsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		productRepo = mem.NewProductRepo()
		bookingRepo = mem.NewBookingRepo()
		userRepo = mem.NewUserRepo()
	}
	// Sesiones siempre en memoria: un reinicio obliga a loguearse de nuevo.
	sessionRepo := mem.NewSessionRepo()

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	productsSvc := products.NewService(productRepo)
	bookingsSvc := bookings.NewService(bookingRepo)
	accountsSvc := accounts.NewService(userRepo, sessionRepo, opts.Auth.SessionTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if opts.DB == nil && opts.SeedCatalog {
		nPets, nProducts, err := mem.SeedCatalog(ctx, petsSvc, productsSvc)
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		log.Info("demo catalog loaded", map[string]any{"pets": nPets, "products": nProducts})
	}

	if opts.Auth.AdminPassword != "" {
		created, err := accountsSvc.EnsureUser(ctx, opts.Auth.AdminUsername, opts.Auth.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("ensure admin: %w", err)
		}
		if created {
			log.Info("admin user created", map[string]any{"username": opts.Auth.AdminUsername})
		}
	}

	questions, err := quiz.DefaultQuestions()
	if err != nil {
		return nil, err
	}

	engine := matching.NewEngine(petsSvc, opts.Oracle, matching.Config{
		OracleTimeout: opts.Match.OracleTimeout,
	}, log.With(map[string]any{"component": "matching"}))
	limiter := middleware.NewRateLimiter(opts.Match.RatePerMinute, opts.Match.RateBurst, log)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Use(middleware.AuthContext(accountsSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	products.RegisterRoutes(r, productsSvc)
	bookings.RegisterRoutes(r, bookingsSvc)
	accounts.RegisterRoutes(r, accountsSvc, opts.Auth.SecureCookie)
	quiz.RegisterRoutes(r, questions)
	matching.RegisterRoutes(r, engine, limiter.Handler)

	return r, nil
}
