package deleteGeneration

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
	"petStylizer/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GenerationDeleter
type GenerationDeleter interface {
	DeleteGeneration(ctx context.Context, id uuid.UUID) error
}

// DeleteGeneration forgets a stylization. Hosted images are not touched.
// @Summary      Deletes a stylization record
// @Tags         generations
// @Produce      json
// @Param        id   path      string  true  "Generation ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/generations/{id} [delete]
func New(log *slog.Logger, deleter GenerationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generation.deleteGeneration.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse generation ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid generation ID"))
			return
		}

		log.Info("attempting to delete generation", slog.String("generation_id", id.String()))

		err = deleter.DeleteGeneration(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrGenerationNotFound) {
				log.Warn("generation not found for deletion", slog.String("generation_id", id.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("generation not found"))
				return
			}

			log.Error("failed to delete generation from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete generation"))
			return
		}

		log.Info("generation deleted", slog.String("generation_id", id.String()))

		render.JSON(w, r, response.OK())
	}
}
