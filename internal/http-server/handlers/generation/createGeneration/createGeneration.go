package createGeneration

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"petStylizer/internal/kafka/producer"
	"petStylizer/internal/lib/api/response"
	"petStylizer/internal/lib/api/upload"
	"petStylizer/internal/lib/logger/sl"
	"petStylizer/internal/models"
	"petStylizer/internal/processor"
)

type Response struct {
	response.Response
	GenerationID uuid.UUID `json:"generation_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GenerationCreator
type GenerationCreator interface {
	CreateGeneration(ctx context.Context, sourcePath string, prompts []string) (*models.Generation, error)
	DeleteGeneration(ctx context.Context, id uuid.UUID) error
}

// CreateGeneration queues a pet photo for stylization.
// @Summary      Queues a stylization
// @Description  Stores the photo and queues the two-variation stylization; poll the returned id for the result
// @Tags         generations
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Pet photo"
// @Param        prompt1  formData  string  false  "Prompt for variation 1"
// @Param        prompt2  formData  string  false  "Prompt for variation 2"
// @Success      202  {object}  createGeneration.Response
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/generations [post]
func New(log *slog.Logger, creator GenerationCreator, kafkaProducer producer.ProducerIface, uploadDir string, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generation.createGeneration.New"

		log := log.With(
			slog.String("op", op),
		)

		up, err := upload.Read(w, r, maxUploadSize)
		if err != nil {
			log.Error("failed to read upload", sl.Err(err))
			status, resp := upload.ErrorResponse(err)
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		if err = os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			log.Error("failed to create upload directory", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		filePath := filepath.Join(uploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(up.Filename)))
		if err = os.WriteFile(filePath, up.Data, 0o644); err != nil {
			log.Error("failed to write file on disk", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		generation, err := creator.CreateGeneration(r.Context(), filePath, up.Prompts)
		if err != nil {
			log.Error("failed to save generation", sl.Err(err))
			_ = os.Remove(filePath)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save generation"))
			return
		}

		log = log.With(slog.String("generation_id", generation.ID.String()))

		// the client never learns the id of a generation that was not queued
		discard := func() {
			if err := creator.DeleteGeneration(context.WithoutCancel(r.Context()), generation.ID); err != nil {
				log.Error("failed to delete unqueued generation", sl.Err(err))
			}
			_ = os.Remove(filePath)
		}

		message, err := json.Marshal(processor.JobMessage{
			GenerationID: generation.ID,
			SourcePath:   filePath,
			Prompts:      up.Prompts,
		})
		if err != nil {
			log.Error("failed to marshal kafka message", sl.Err(err))
			discard()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to prepare message"))
			return
		}

		if err = kafkaProducer.SendMessage(r.Context(), []byte(generation.ID.String()), message); err != nil {
			log.Error("failed to publish message to kafka", sl.Err(err))
			discard()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to start image processing"))
			return
		}

		log.Info("generation queued")

		render.Status(r, http.StatusAccepted)
		render.JSON(w, r, Response{
			Response:     response.OK(),
			GenerationID: generation.ID,
		})
	}
}
