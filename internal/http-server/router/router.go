package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "petStylizer/docs"
	"petStylizer/internal/http-server/handlers/generate"
	"petStylizer/internal/http-server/handlers/generation/createGeneration"
	"petStylizer/internal/http-server/handlers/generation/deleteGeneration"
	"petStylizer/internal/http-server/handlers/generation/getGeneration"
	"petStylizer/internal/http-server/handlers/home"
	"petStylizer/internal/http-server/middleware/mwlogger"
	"petStylizer/internal/kafka/producer"
)

type GenerationStore interface {
	createGeneration.GenerationCreator
	getGeneration.GenerationGetter
	deleteGeneration.GenerationDeleter
}

// Async holds the queued generation dependencies. A nil *Async leaves the
// /api/generations routes unmounted.
type Async struct {
	Store     GenerationStore
	Producer  producer.ProducerIface
	UploadDir string
}

type Deps struct {
	Stylizer      generate.Stylizer
	Cache         generate.ResultCache
	Async         *Async
	MaxUploadSize int64
}

func New(log *slog.Logger, deps Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", home.New())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/api", func(r chi.Router) {
		r.Post("/generate", generate.New(log, deps.Stylizer, deps.Cache, deps.MaxUploadSize))

		if deps.Async != nil {
			r.Post("/generations", createGeneration.New(log, deps.Async.Store, deps.Async.Producer, deps.Async.UploadDir, deps.MaxUploadSize))
			r.Get("/generations/{id}", getGeneration.New(log, deps.Async.Store))
			r.Delete("/generations/{id}", deleteGeneration.New(log, deps.Async.Store))
		}
	})

	return router
}
