package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"petStylizer/internal/lib/api/response"
	"petStylizer/internal/processor"
)

const FileField = "file"

var (
	ErrMissingFile  = errors.New("failed to get file from request")
	ErrEmptyFile    = errors.New("received empty file")
	ErrTooLarge     = errors.New("file is too large")
	ErrInvalidImage = errors.New("invalid image")
)

var validate = validator.New()

type Form struct {
	Prompt1 string `validate:"max=4000"`
	Prompt2 string `validate:"max=4000"`
}

// Upload is a parsed generation form.
type Upload struct {
	Data     []byte
	Filename string
	Image    image.Image
	Prompts  []string
}

// Read parses the multipart form of a generation request. Validation
// failures are returned as validator.ValidationErrors.
func Read(w http.ResponseWriter, r *http.Request, maxSize int64) (*Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	file, header, err := r.FormFile(FileField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	defer file.Close()

	if header.Size == 0 {
		return nil, ErrEmptyFile
	}

	form := Form{
		Prompt1: r.FormValue("prompt1"),
		Prompt2: r.FormValue("prompt2"),
	}
	if err = validate.Struct(form); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return &Upload{
		Data:     data,
		Filename: header.Filename,
		Image:    img,
		Prompts:  processor.Prompts(form.Prompt1, form.Prompt2),
	}, nil
}

// ErrorResponse maps an error returned by Read to a status and body.
func ErrorResponse(err error) (int, response.Response) {
	var validateErr validator.ValidationErrors

	switch {
	case errors.As(err, &validateErr):
		return http.StatusBadRequest, response.ValidationError(validateErr)
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge, response.Error(ErrTooLarge.Error())
	case errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest, response.Error(ErrMissingFile.Error())
	case errors.Is(err, ErrEmptyFile):
		return http.StatusBadRequest, response.Error(ErrEmptyFile.Error())
	case errors.Is(err, ErrInvalidImage):
		return http.StatusBadRequest, response.Error(ErrInvalidImage.Error())
	default:
		return http.StatusInternalServerError, response.Error("failed to read request")
	}
}
