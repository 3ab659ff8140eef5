package generate

import (
	"context"
	"image"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"petStylizer/internal/lib/api/response"
	"petStylizer/internal/lib/api/upload"
	"petStylizer/internal/lib/logger/sl"
	"petStylizer/internal/models"
	"petStylizer/internal/processor"
)

type Response struct {
	response.Response
	Images []models.Variation `json:"images"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Stylizer
type Stylizer interface {
	Stylize(ctx context.Context, src image.Image, prompts []string) ([]models.Variation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResultCache
type ResultCache interface {
	Get(ctx context.Context, image []byte, prompts []string) ([]models.Variation, error)
	Set(ctx context.Context, image []byte, prompts []string, images []models.Variation) error
}

// Generate stylizes a pet photo into two variations.
// @Summary      Stylizes a pet photo
// @Description  Generates two stylized variations, removes their backgrounds and returns hosted preview and high-res URLs
// @Tags         generate
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Pet photo"
// @Param        prompt1  formData  string  false  "Prompt for variation 1"
// @Param        prompt2  formData  string  false  "Prompt for variation 2"
// @Success      200  {object}  generate.Response
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/generate [post]
func New(log *slog.Logger, stylizer Stylizer, cache ResultCache, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate.New"

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

		log.Info("upload received",
			slog.String("filename", up.Filename),
			slog.Int("size", len(up.Data)),
			slog.Int("width", up.Image.Bounds().Dx()),
			slog.Int("height", up.Image.Bounds().Dy()),
		)

		if cache != nil {
			images, err := cache.Get(r.Context(), up.Data, up.Prompts)
			if err != nil {
				log.Warn("failed to read result cache", sl.Err(err))
			} else if images != nil {
				log.Info("result served from cache")
				render.JSON(w, r, Response{
					Response: response.OK(),
					Images:   images,
				})
				return
			}
		}

		images, err := stylizer.Stylize(r.Context(), up.Image, up.Prompts)
		if err != nil {
			log.Error("failed to stylize image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(processor.FailureMessage(err)))
			return
		}

		if cache != nil {
			if err = cache.Set(r.Context(), up.Data, up.Prompts, images); err != nil {
				log.Warn("failed to write result cache", sl.Err(err))
			}
		}

		log.Info("image stylized successfully", slog.Int("variations", len(images)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Images:   images,
		})
	}
}
