package getGeneration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"petStylizer/internal/lib/api/response"
	"petStylizer/internal/lib/logger/sl"
	"petStylizer/internal/models"
	"petStylizer/internal/storage"
)

type Response struct {
	response.Response
	Generation models.Generation `json:"generation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GenerationGetter
type GenerationGetter interface {
	GetGeneration(ctx context.Context, id uuid.UUID) (*models.Generation, error)
}

// GetGeneration returns a queued stylization and, once done, its images.
// @Summary      Gets a stylization
// @Tags         generations
// @Produce      json
// @Param        id   path      string  true  "Generation ID"
// @Success      200  {object}  getGeneration.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/generations/{id} [get]
func New(log *slog.Logger, getter GenerationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generation.getGeneration.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse generation ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid generation ID"))
			return
		}

		generation, err := getter.GetGeneration(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrGenerationNotFound) {
				log.Warn("generation not found", slog.String("generation_id", id.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("generation not found"))
				return
			}

			log.Error("failed to get generation from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get generation"))
			return
		}

		log.Info("generation retrieved", slog.String("generation_id", id.String()), slog.String("status", generation.Status))

		render.JSON(w, r, Response{
			Response:   response.OK(),
			Generation: *generation,
		})
	}
}
