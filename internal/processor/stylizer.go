package processor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"petStylizer/internal/lib/logger/sl"
	"petStylizer/internal/models"
)

type Generator interface {
	Generate(ctx context.Context, prompt string, src image.Image) (image.Image, error)
}

type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, img image.Image) (image.Image, error)
}

type Uploader interface {
	Upload(ctx context.Context, img image.Image) (string, error)
}

const (
	StageGenerate         = "generate"
	StageRemoveBackground = "remove background"
	StageUploadPreview    = "upload preview"
	StageUploadHighRes    = "upload high-res"
)

// VariationError reports which variation failed and at which step.
type VariationError struct {
	Variation int
	Stage     string
	Err       error
}

func (e *VariationError) Error() string {
	return fmt.Sprintf("variation %d: %s: %v", e.Variation, e.Stage, e.Err)
}

func (e *VariationError) Unwrap() error {
	return e.Err
}

type Stylizer struct {
	log       *slog.Logger
	generator Generator
	remover   BackgroundRemover
	uploader  Uploader
}

func NewStylizer(log *slog.Logger, generator Generator, remover BackgroundRemover, uploader Uploader) *Stylizer {
	return &Stylizer{
		log:       log,
		generator: generator,
		remover:   remover,
		uploader:  uploader,
	}
}

// Stylize produces one variation per prompt. Variations run concurrently and
// the first failure cancels the rest; the result is ordered by variation.
func (s *Stylizer) Stylize(ctx context.Context, src image.Image, prompts []string) ([]models.Variation, error) {
	const op = "processor.Stylize"

	log := s.log.With(slog.String("op", op))

	variations := make([]models.Variation, len(prompts))

	g, gctx := errgroup.WithContext(ctx)
	for i, prompt := range prompts {
		g.Go(func() error {
			v, err := s.variation(gctx, i+1, prompt, src)
			if err != nil {
				return err
			}
			variations[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("stylization failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("stylization finished", slog.Int("variations", len(variations)))

	return variations, nil
}

func (s *Stylizer) variation(ctx context.Context, n int, prompt string, src image.Image) (models.Variation, error) {
	fail := func(stage string, err error) (models.Variation, error) {
		return models.Variation{}, &VariationError{Variation: n, Stage: stage, Err: err}
	}

	generated, err := s.generator.Generate(ctx, prompt, src)
	if err != nil {
		return fail(StageGenerate, err)
	}

	processed, err := s.remover.RemoveBackground(ctx, generated)
	if err != nil {
		return fail(StageRemoveBackground, err)
	}

	preview := Preview(processed)
	highres := HighRes(processed)

	var previewURL, highresURL string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.uploader.Upload(gctx, preview)
		if err != nil {
			return &VariationError{Variation: n, Stage: StageUploadPreview, Err: err}
		}
		previewURL = url
		return nil
	})
	g.Go(func() error {
		url, err := s.uploader.Upload(gctx, highres)
		if err != nil {
			return &VariationError{Variation: n, Stage: StageUploadHighRes, Err: err}
		}
		highresURL = url
		return nil
	})
	if err = g.Wait(); err != nil {
		return models.Variation{}, err
	}

	s.log.Debug("variation ready",
		slog.Int("variation", n),
		slog.String("preview_url", previewURL),
		slog.String("highres_url", highresURL),
	)

	return models.Variation{
		Variation:  n,
		PreviewURL: previewURL,
		HighresURL: highresURL,
	}, nil
}

// FailureMessage is the client-facing description of a Stylize error.
func FailureMessage(err error) string {
	var verr *VariationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("failed to stylize variation %d", verr.Variation)
	}
	return "failed to stylize image"
}
