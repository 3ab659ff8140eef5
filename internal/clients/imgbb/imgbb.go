package imgbb

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"petStylizer/internal/config"
)

var ErrUploadFailed = errors.New("imgbb upload failed")

type Client struct {
	apiKey     string
	endpoint   string
	expiration int
	httpClient *http.Client
	log        *slog.Logger
}

type uploadResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		ID         string `json:"id"`
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
}

func New(cfg *config.ImgBB, log *slog.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		expiration: cfg.Expiration,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With(slog.String("component", "clients/imgbb")),
	}
}

// Upload stores img as PNG under a generated name and returns its public URL.
func (c *Client) Upload(ctx context.Context, img image.Image) (string, error) {
	const op = "clients.imgbb.Upload"

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%s: encode image: %w", op, err)
	}

	name := "generated_" + uuid.NewString()

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("image", base64.StdEncoding.EncodeToString(buf.Bytes()))
	form.Set("name", name)
	if c.expiration > 0 {
		form.Set("expiration", strconv.Itoa(c.expiration))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", op, err)
	}

	var out uploadResponse
	if err = json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("%s: decode response (status %d): %w", op, resp.StatusCode, err)
	}

	if !out.Success || out.Data.URL == "" {
		return "", fmt.Errorf("%s: %w: %s", op, ErrUploadFailed, payload)
	}

	c.log.Debug("image uploaded",
		slog.String("name", name),
		slog.String("url", out.Data.URL),
	)

	return out.Data.URL, nil
}
