package rembg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"petStylizer/internal/config"
)

var (
	ErrEmptyResult   = errors.New("background removal returned no data")
	ErrInvalidResult = errors.New("background removal returned an undecodable image")
)

const maxErrorBody = 512

// Client talks to a rembg HTTP server (`rembg s`).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func New(cfg *config.Rembg, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With(slog.String("component", "clients/rembg")),
	}
}

func (c *Client) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	const op = "clients.rembg.RemoveBackground"

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "image.png")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = png.Encode(part, img); err != nil {
		return nil, fmt.Errorf("%s: encode image: %w", op, err)
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/remove", body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, excerpt)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyResult)
	}

	out, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidResult, err)
	}

	c.log.Debug("background removed",
		slog.Int("width", out.Bounds().Dx()),
		slog.Int("height", out.Bounds().Dy()),
	)

	return out, nil
}
