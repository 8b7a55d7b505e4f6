package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	mem "spa-transferts/internal/adapters/storage/memory"
	"spa-transferts/internal/adapters/storage/sqldb"
	"spa-transferts/internal/domain/animaux"
	"spa-transferts/internal/domain/refuges"
	"spa-transferts/internal/domain/transferts"
	"spa-transferts/internal/middleware"
)

type Options struct {
	// Optional: if nil, in-memory repos back the API (dev mode and the
	// end-to-end tests).
	DB *sqlx.DB

	// Logger must be set; use zerolog.Nop() to silence.
	Logger zerolog.Logger

	// Origins allowed to call /api/*.
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		refugesRepo  refuges.Repository
		chiensRepo   animaux.ChienRepository
		chiens12Repo animaux.Chien12Repository
		chats12Repo  animaux.Chat12Repository
		transfRepo   transferts.Repository
	)

	if opts.DB != nil {
		refugesRepo = sqldb.NewRefugesRepo(opts.DB)
		chiensRepo = sqldb.NewChiensRepo(opts.DB)
		chiens12Repo = sqldb.NewChiens12Repo(opts.DB)
		chats12Repo = sqldb.NewChats12Repo(opts.DB)
		transfRepo = sqldb.NewTransfertsRepo(opts.DB)
	} else {
		refugesRepo = mem.NewRefugesRepo()
		chiensRepo = mem.NewChiensRepo()
		chiens12Repo = mem.NewChiens12Repo()
		chats12Repo = mem.NewChats12Repo()
		transfRepo = mem.NewTransfertsRepo()
	}

	refugesSvc := refuges.NewService(refugesRepo)
	animauxSvc := animaux.NewService(chiensRepo, chiens12Repo, chats12Repo)
	transfertsSvc := transferts.NewService(transfRepo)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.CORS(opts.AllowedOrigins))

		refuges.RegisterRoutes(api, refugesSvc)
		animaux.RegisterRoutes(api, animauxSvc)
		transferts.RegisterRoutes(api, transfertsSvc)
	})

	return r
}
