package rembg_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"petStylizer/internal/clients/rembg"
	"petStylizer/internal/config"
	"petStylizer/internal/lib/logger/handlers/slogdiscard"
)

func TestRemoveBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 6))
	for x := 0; x < 10; x++ {
		for y := 0; y < 6; y++ {
			src.Set(x, y, color.NRGBA{G: 200, A: 255})
		}
	}

	transparent := func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		in, err := imaging.Decode(file)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		out := imaging.New(in.Bounds().Dx(), in.Bounds().Dy(), color.NRGBA{})
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, out)
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
		wantIn  string
	}{
		{
			name:    "Success",
			handler: transparent,
		},
		{
			name: "Empty Body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.Copy(io.Discard, r.Body)
				w.WriteHeader(http.StatusOK)
			},
			wantErr: rembg.ErrEmptyResult,
		},
		{
			name: "Garbage Body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("definitely not a png"))
			},
			wantErr: rembg.ErrInvalidResult,
		},
		{
			name: "Server Error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("model not loaded"))
			},
			wantIn: "unexpected status 500: model not loaded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				tt.handler(w, r)
			}))
			defer srv.Close()

			client := rembg.New(&config.Rembg{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}, slogdiscard.NewDiscardLogger())

			out, err := client.RemoveBackground(context.Background(), src)
			require.Equal(t, "/api/remove", gotPath)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantIn != "":
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantIn)
			default:
				require.NoError(t, err)
				require.Equal(t, src.Bounds().Size(), out.Bounds().Size())

				_, _, _, a := out.At(3, 3).RGBA()
				require.Zero(t, a)
			}
		})
	}
}

func TestRemoveBackgroundSendsPNG(t *testing.T) {
	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		got, _ = io.ReadAll(file)
		_ = png.Encode(w, image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	}))
	defer srv.Close()

	client := rembg.New(&config.Rembg{BaseURL: srv.URL, Timeout: 5 * time.Second}, slogdiscard.NewDiscardLogger())

	_, err := client.RemoveBackground(context.Background(), image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(got, []byte("\x89PNG")))
}
