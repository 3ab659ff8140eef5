package processor_test

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"petStylizer/internal/lib/logger/handlers/slogdiscard"
	"petStylizer/internal/processor"
)

type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	fail    map[string]error
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string, src image.Image) (image.Image, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if err := g.fail[prompt]; err != nil {
		return nil, err
	}

	// 2:1 landscape, unlike the square source
	return image.NewNRGBA(image.Rect(0, 0, 800, 400)), nil
}

type fakeRemover struct {
	err error
}

func (r *fakeRemover) RemoveBackground(_ context.Context, img image.Image) (image.Image, error) {
	if r.err != nil {
		return nil, r.err
	}

	b := img.Bounds()
	out := image.NewNRGBA(b)
	out.Set(0, 0, color.NRGBA{A: 0})
	return out, nil
}

type upload struct {
	w, h int
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []upload
	err     error
}

func (u *fakeUploader) Upload(_ context.Context, img image.Image) (string, error) {
	if u.err != nil {
		return "", u.err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	b := img.Bounds()
	u.uploads = append(u.uploads, upload{b.Dx(), b.Dy()})
	return fmt.Sprintf("https://i.ibb.co/%dx%d/%d.png", b.Dx(), b.Dy(), len(u.uploads)), nil
}

func TestStylize(t *testing.T) {
	gen := &fakeGenerator{}
	up := &fakeUploader{}
	s := processor.NewStylizer(slogdiscard.NewDiscardLogger(), gen, &fakeRemover{}, up)

	src := image.NewNRGBA(image.Rect(0, 0, 512, 512))

	got, err := s.Stylize(context.Background(), src, processor.DefaultPrompts)
	require.NoError(t, err)

	require.Len(t, got, 2)
	for i, v := range got {
		require.Equal(t, i+1, v.Variation)
		require.NotEmpty(t, v.PreviewURL)
		require.NotEmpty(t, v.HighresURL)
		require.Contains(t, v.PreviewURL, "/400x200/")
		require.Contains(t, v.HighresURL, "/3000x3600/")
	}

	require.ElementsMatch(t, processor.DefaultPrompts, gen.prompts)
	require.ElementsMatch(t, []upload{{400, 200}, {400, 200}, {3000, 3600}, {3000, 3600}}, up.uploads)
}

func TestStylizeFailures(t *testing.T) {
	errNoImage := errors.New("no inline image")
	errHost := errors.New("host said no")
	errRembg := errors.New("rembg down")

	tests := []struct {
		name      string
		gen       *fakeGenerator
		remover   *fakeRemover
		uploader  *fakeUploader
		wantErr   error
		wantStage string
		wantVar   int
	}{
		{
			name:      "Second Generation Has No Image",
			gen:       &fakeGenerator{fail: map[string]error{"two": errNoImage}},
			remover:   &fakeRemover{},
			uploader:  &fakeUploader{},
			wantErr:   errNoImage,
			wantStage: processor.StageGenerate,
			wantVar:   2,
		},
		{
			name:      "Background Removal Fails",
			gen:       &fakeGenerator{},
			remover:   &fakeRemover{err: errRembg},
			uploader:  &fakeUploader{},
			wantErr:   errRembg,
			wantStage: processor.StageRemoveBackground,
		},
		{
			name:     "Host Reports Failure",
			gen:      &fakeGenerator{},
			remover:  &fakeRemover{},
			uploader: &fakeUploader{err: errHost},
			wantErr:  errHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := processor.NewStylizer(slogdiscard.NewDiscardLogger(), tt.gen, tt.remover, tt.uploader)

			got, err := s.Stylize(context.Background(), image.NewNRGBA(image.Rect(0, 0, 8, 8)), []string{"one", "two"})
			require.Nil(t, got)
			require.ErrorIs(t, err, tt.wantErr)

			var verr *processor.VariationError
			require.ErrorAs(t, err, &verr)
			if tt.wantStage != "" {
				require.Equal(t, tt.wantStage, verr.Stage)
			}
			if tt.wantVar != 0 {
				require.Equal(t, tt.wantVar, verr.Variation)
				require.Equal(t, fmt.Sprintf("failed to stylize variation %d", tt.wantVar), processor.FailureMessage(err))
			}
		})
	}
}

func TestFailureMessage(t *testing.T) {
	require.Equal(t, "failed to stylize image", processor.FailureMessage(errors.New("boom")))
	require.Equal(t, "failed to stylize variation 1",
		processor.FailureMessage(fmt.Errorf("wrapped: %w", &processor.VariationError{Variation: 1, Stage: processor.StageGenerate, Err: errors.New("x")})))
}
