package janitor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"petStylizer/internal/lib/logger/sl"
)

type GenerationPurger interface {
	DeleteGenerationsBefore(ctx context.Context, t time.Time) ([]string, error)
}

// Janitor periodically drops expired generations and their uploaded sources.
type Janitor struct {
	cron      *cron.Cron
	storage   GenerationPurger
	uploadDir string
	retention time.Duration
	log       *slog.Logger
	now       func() time.Time
}

func New(log *slog.Logger, storage GenerationPurger, uploadDir string, retention time.Duration) *Janitor {
	return &Janitor{
		cron:      cron.New(),
		storage:   storage,
		uploadDir: uploadDir,
		retention: retention,
		log:       log.With(slog.String("component", "janitor")),
		now:       time.Now,
	}
}

func (j *Janitor) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.log.Error("cleanup failed", sl.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("janitor.Start: %w", err)
	}

	j.cron.Start()
	j.log.Info("janitor scheduled", slog.String("schedule", schedule), slog.String("retention", j.retention.String()))

	return nil
}

// Stop waits for a running cleanup to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) Run(ctx context.Context) error {
	const op = "janitor.Run"

	cutoff := j.now().Add(-j.retention)

	paths, err := j.storage.DeleteGenerationsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	removed := 0
	for _, path := range paths {
		if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			j.log.Warn("failed to remove source image", slog.String("path", path), sl.Err(err))
			continue
		}
		removed++
	}

	// uploads whose rows never made it into the database
	entries, err := os.ReadDir(j.uploadDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err = os.Remove(filepath.Join(j.uploadDir, entry.Name())); err == nil {
			removed++
		}
	}

	j.log.Info("cleanup finished",
		slog.Int("generations", len(paths)),
		slog.Int("files", removed),
	)

	return nil
}
