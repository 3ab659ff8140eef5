package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"net/http"

	"github.com/disintegration/imaging"
	"google.golang.org/genai"
	"petStylizer/internal/config"
)

var ErrNoImage = errors.New("response contains no inline image")

type Client struct {
	genai *genai.Client
	model string
	log   *slog.Logger
}

func New(ctx context.Context, cfg *config.Gemini, log *slog.Logger) (*Client, error) {
	const op = "clients.gemini.New"

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Client{
		genai: client,
		model: cfg.Model,
		log:   log.With(slog.String("component", "clients/gemini")),
	}, nil
}

// Generate sends the prompt together with src and returns the first inline
// image found in the response.
func (c *Client) Generate(ctx context.Context, prompt string, src image.Image) (image.Image, error) {
	const op = "clients.gemini.Generate"

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("%s: encode source: %w", op, err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(buf.Bytes(), "image/png"),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}

			img, err := imaging.Decode(bytes.NewReader(part.InlineData.Data))
			if err != nil {
				return nil, fmt.Errorf("%s: decode %s: %w", op, part.InlineData.MIMEType, err)
			}

			c.log.Debug("image generated",
				slog.String("model", c.model),
				slog.String("mime_type", part.InlineData.MIMEType),
				slog.Int("width", img.Bounds().Dx()),
				slog.Int("height", img.Bounds().Dy()),
			)

			return img, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, ErrNoImage)
}
