package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"petStylizer/internal/config"
	"petStylizer/internal/models"
	"petStylizer/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) CreateGeneration(ctx context.Context, sourcePath string, prompts []string) (*models.Generation, error) {
	const op = "storage.postgres.CreateGeneration"

	promptsJSON, err := json.Marshal(prompts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
        INSERT INTO generations (id, status, prompts, source_path)
        VALUES ($1, $2, $3, $4)
        RETURNING id, status, source_path, created_at, updated_at`

	generation := models.Generation{Prompts: prompts}

	err = s.DB.QueryRowContext(ctx, query, uuid.New(), models.StatusPending, promptsJSON, sourcePath).Scan(
		&generation.ID,
		&generation.Status,
		&generation.SourcePath,
		&generation.CreatedAt,
		&generation.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &generation, nil
}

func (s *Storage) GetGeneration(ctx context.Context, id uuid.UUID) (*models.Generation, error) {
	const op = "storage.postgres.GetGeneration"

	query := `
        SELECT id, status, prompts, source_path, images, error, created_at, updated_at
        FROM generations
        WHERE id = $1`

	var (
		generation  models.Generation
		promptsJSON []byte
		imagesJSON  []byte
		errMsg      sql.NullString
	)

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&generation.ID,
		&generation.Status,
		&promptsJSON,
		&generation.SourcePath,
		&imagesJSON,
		&errMsg,
		&generation.CreatedAt,
		&generation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrGenerationNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = json.Unmarshal(promptsJSON, &generation.Prompts); err != nil {
		return nil, fmt.Errorf("%s: decode prompts: %w", op, err)
	}
	if len(imagesJSON) > 0 {
		if err = json.Unmarshal(imagesJSON, &generation.Images); err != nil {
			return nil, fmt.Errorf("%s: decode images: %w", op, err)
		}
	}
	generation.Error = errMsg.String

	return &generation, nil
}

func (s *Storage) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.MarkProcessing"

	return s.update(ctx, op, `
        UPDATE generations
        SET status = $1, updated_at = NOW()
        WHERE id = $2`, models.StatusProcessing, id)
}

func (s *Storage) CompleteGeneration(ctx context.Context, id uuid.UUID, images []models.Variation) error {
	const op = "storage.postgres.CompleteGeneration"

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.update(ctx, op, `
        UPDATE generations
        SET status = $1, images = $2, error = NULL, updated_at = NOW()
        WHERE id = $3`, models.StatusDone, imagesJSON, id)
}

func (s *Storage) FailGeneration(ctx context.Context, id uuid.UUID, reason string) error {
	const op = "storage.postgres.FailGeneration"

	return s.update(ctx, op, `
        UPDATE generations
        SET status = $1, error = $2, updated_at = NOW()
        WHERE id = $3`, models.StatusFailed, reason, id)
}

func (s *Storage) DeleteGeneration(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteGeneration"

	return s.update(ctx, op, `
        DELETE FROM generations
        WHERE id = $1`, id)
}

// DeleteGenerationsBefore removes generations created before t and returns
// their source paths.
func (s *Storage) DeleteGenerationsBefore(ctx context.Context, t time.Time) ([]string, error) {
	const op = "storage.postgres.DeleteGenerationsBefore"

	rows, err := s.DB.QueryContext(ctx, `
        DELETE FROM generations
        WHERE created_at < $1
        RETURNING source_path`, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err = rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		paths = append(paths, path)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return paths, nil
}

func (s *Storage) update(ctx context.Context, op string, query string, args ...any) error {
	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGenerationNotFound)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
