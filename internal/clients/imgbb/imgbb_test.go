package imgbb_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"petStylizer/internal/clients/imgbb"
	"petStylizer/internal/config"
	"petStylizer/internal/lib/logger/handlers/slogdiscard"
)

func TestUpload(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))

	tests := []struct {
		name       string
		expiration int
		status     int
		body       string
		wantURL    string
		wantErr    error
		wantErrIn  string
	}{
		{
			name:    "Success",
			status:  http.StatusOK,
			body:    `{"data":{"id":"abc","url":"https://i.ibb.co/abc/generated.png"},"success":true,"status":200}`,
			wantURL: "https://i.ibb.co/abc/generated.png",
		},
		{
			name:       "Success With Expiration",
			expiration: 600,
			status:     http.StatusOK,
			body:       `{"data":{"url":"https://i.ibb.co/x/y.png"},"success":true,"status":200}`,
			wantURL:    "https://i.ibb.co/x/y.png",
		},
		{
			name:      "Host Reports Failure",
			status:    http.StatusBadRequest,
			body:      `{"status_code":400,"error":{"message":"Invalid API v1 key.","code":100},"status_txt":"Bad Request"}`,
			wantErr:   imgbb.ErrUploadFailed,
			wantErrIn: "Invalid API v1 key.",
		},
		{
			name:    "Success Flag False",
			status:  http.StatusOK,
			body:    `{"success":false}`,
			wantErr: imgbb.ErrUploadFailed,
		},
		{
			name:      "Not JSON",
			status:    http.StatusBadGateway,
			body:      `<html>bad gateway</html>`,
			wantErrIn: "decode response (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form map[string]string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.NoError(t, r.ParseForm())

				form = map[string]string{
					"key":        r.PostForm.Get("key"),
					"image":      r.PostForm.Get("image"),
					"name":       r.PostForm.Get("name"),
					"expiration": r.PostForm.Get("expiration"),
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := imgbb.New(&config.ImgBB{
				APIKey:     "secret",
				Endpoint:   srv.URL + "/1/upload",
				Expiration: tt.expiration,
				Timeout:    5 * time.Second,
			}, slogdiscard.NewDiscardLogger())

			got, err := client.Upload(context.Background(), img)

			require.Equal(t, "secret", form["key"])
			require.True(t, strings.HasPrefix(form["name"], "generated_"))
			raw, decErr := base64.StdEncoding.DecodeString(form["image"])
			require.NoError(t, decErr)
			_, decErr = png.Decode(bytes.NewReader(raw))
			require.NoError(t, decErr)
			if tt.expiration > 0 {
				require.Equal(t, "600", form["expiration"])
			} else {
				require.Empty(t, form["expiration"])
			}

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantErrIn != "" {
					require.Contains(t, err.Error(), tt.wantErrIn)
				}
				require.Empty(t, got)
			case tt.wantErrIn != "":
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErrIn)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.wantURL, got)
			}
		})
	}
}

func TestUploadUniqueNames(t *testing.T) {
	names := map[string]bool{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		names[r.PostForm.Get("name")] = true
		_, _ = w.Write([]byte(`{"data":{"url":"https://i.ibb.co/u.png"},"success":true}`))
	}))
	defer srv.Close()

	client := imgbb.New(&config.ImgBB{APIKey: "k", Endpoint: srv.URL, Timeout: time.Second}, slogdiscard.NewDiscardLogger())

	for i := 0; i < 3; i++ {
		_, err := client.Upload(context.Background(), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
		require.NoError(t, err)
	}

	require.Len(t, names, 3)
}
