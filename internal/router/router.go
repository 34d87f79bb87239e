package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	mem "github.com/Dev-Icaro/pet-impacta/internal/adapters/storage/memory"
	pg "github.com/Dev-Icaro/pet-impacta/internal/adapters/storage/postgres"
	"github.com/Dev-Icaro/pet-impacta/internal/api"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/appointments"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/pets"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/services"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/veterinarians"
	"github.com/Dev-Icaro/pet-impacta/internal/middleware"
	"github.com/Dev-Icaro/pet-impacta/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger         logger.Logger
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler(opts.DB))

	var (
		petRepo  pets.Repository
		vetRepo  veterinarians.Repository
		svcRepo  services.Repository
		apptRepo appointments.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		vetRepo = pg.NewVeterinariansRepo(opts.DB)
		svcRepo = pg.NewServicesRepo(opts.DB)
		apptRepo = pg.NewAppointmentsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		petRepo = store.Pets()
		vetRepo = store.Veterinarians()
		svcRepo = store.Services()
		apptRepo = store.Appointments()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	vetsSvc := veterinarians.NewService(vetRepo)
	clinicSvc := services.NewService(svcRepo)
	apptsSvc := appointments.NewService(apptRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	veterinarians.RegisterRoutes(r, vetsSvc)
	services.RegisterRoutes(r, clinicSvc)
	appointments.RegisterRoutes(r, apptsSvc)

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				api.Fail(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		api.OK(w, "service is healthy", nil)
	}
}
