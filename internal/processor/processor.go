package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"petStylizer/internal/lib/logger/sl"
	"petStylizer/internal/models"
)

// InterruptedMessage is recorded when the service stops mid-generation.
const InterruptedMessage = "generation interrupted, please retry"

// JobMessage is the payload published for a queued generation.
type JobMessage struct {
	GenerationID uuid.UUID `json:"generation_id"`
	SourcePath   string    `json:"source_path"`
	Prompts      []string  `json:"prompts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GenerationUpdater
type GenerationUpdater interface {
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	CompleteGeneration(ctx context.Context, id uuid.UUID, images []models.Variation) error
	FailGeneration(ctx context.Context, id uuid.UUID, reason string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageStylizer
type ImageStylizer interface {
	Stylize(ctx context.Context, src image.Image, prompts []string) ([]models.Variation, error)
}

type ImageProcessor struct {
	storage  GenerationUpdater
	stylizer ImageStylizer
	log      *slog.Logger
}

func NewImageProcessor(log *slog.Logger, storage GenerationUpdater, stylizer ImageStylizer) *ImageProcessor {
	return &ImageProcessor{
		log:      log,
		storage:  storage,
		stylizer: stylizer,
	}
}

// ProcessMessage runs a queued generation. Pipeline failures are recorded on
// the generation and do not fail the message; only storage errors do.
// Status writes outlive ctx so that a job interrupted by shutdown still ends
// up failed instead of stuck in processing.
func (p *ImageProcessor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "processor.ProcessMessage"

	var job JobMessage
	if err := json.Unmarshal(message, &job); err != nil {
		p.log.Error("failed to unmarshal kafka message", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log := p.log.With(
		slog.String("op", op),
		slog.String("generation_id", job.GenerationID.String()),
	)

	storeCtx := context.WithoutCancel(ctx)

	log.Info("processing generation")

	if err := p.storage.MarkProcessing(storeCtx, job.GenerationID); err != nil {
		log.Error("failed to mark generation as processing", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	src, err := imaging.Open(job.SourcePath, imaging.AutoOrientation(true))
	if err != nil {
		log.Error("failed to open source image", slog.String("path", job.SourcePath), sl.Err(err))
		return p.fail(storeCtx, log, job.GenerationID, "failed to open source image")
	}

	images, err := p.stylizer.Stylize(ctx, src, Prompts(job.promptAt(0), job.promptAt(1)))
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("generation interrupted", sl.Err(err))
			return p.fail(storeCtx, log, job.GenerationID, InterruptedMessage)
		}
		log.Error("failed to stylize image", sl.Err(err))
		return p.fail(storeCtx, log, job.GenerationID, FailureMessage(err))
	}

	if err = p.storage.CompleteGeneration(storeCtx, job.GenerationID, images); err != nil {
		log.Error("failed to store generation result", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("generation processed successfully")

	return nil
}

func (p *ImageProcessor) fail(ctx context.Context, log *slog.Logger, id uuid.UUID, reason string) error {
	if err := p.storage.FailGeneration(ctx, id, reason); err != nil {
		log.Error("failed to mark generation as failed", sl.Err(err))
		return fmt.Errorf("processor.ProcessMessage: %w", err)
	}

	return nil
}

func (j JobMessage) promptAt(i int) string {
	if i < len(j.Prompts) {
		return j.Prompts[i]
	}
	return ""
}
