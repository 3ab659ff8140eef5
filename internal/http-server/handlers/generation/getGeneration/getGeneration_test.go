package getGeneration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"petStylizer/internal/http-server/handlers/generation/getGeneration"
	"petStylizer/internal/http-server/handlers/generation/getGeneration/mocks"
	"petStylizer/internal/models"
	"petStylizer/internal/storage"
)

func TestGetGeneration(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	testGeneration := &models.Generation{
		ID:         testUUID,
		Status:     models.StatusDone,
		Prompts:    []string{"one", "two"},
		SourcePath: "uploads/source.png",
		Images: []models.Variation{
			{Variation: 1, PreviewURL: "https://i.ibb.co/p1.png", HighresURL: "https://i.ibb.co/h1.png"},
			{Variation: 2, PreviewURL: "https://i.ibb.co/p2.png", HighresURL: "https://i.ibb.co/h2.png"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	tests := []struct {
		name           string
		id             string
		mockCall       bool
		mockGeneration *models.Generation
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			id:             testUUID.String(),
			mockCall:       true,
			mockGeneration: testGeneration,
			expectedStatus: http.StatusOK,
			expectedBody: fmt.Sprintf(`{"status":"OK","generation":{"id":"%s","status":"done","prompts":["one","two"],"images":[`+
				`{"variation":1,"preview_url":"https://i.ibb.co/p1.png","highres_url":"https://i.ibb.co/h1.png"},`+
				`{"variation":2,"preview_url":"https://i.ibb.co/p2.png","highres_url":"https://i.ibb.co/h2.png"}],`+
				`"created_at":"2026-10-18T09:30:00Z","updated_at":"2026-10-18T09:30:00Z"}}`, testUUID),
		},
		{
			name:           "Invalid UUID",
			id:             "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid generation ID"}`,
		},
		{
			name:           "Not Found",
			id:             testUUID.String(),
			mockCall:       true,
			mockErr:        fmt.Errorf("storage.postgres.GetGeneration: %w", storage.ErrGenerationNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"generation not found"}`,
		},
		{
			name:           "Internal Error",
			id:             testUUID.String(),
			mockCall:       true,
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get generation"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getterMock := mocks.NewGenerationGetter(t)

			if tt.mockCall {
				getterMock.On("GetGeneration", mock.Anything, testUUID).Return(tt.mockGeneration, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/generations/%s", tt.id), nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := getGeneration.New(log, getterMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			err := json.Unmarshal(rr.Body.Bytes(), &actualMap)
			require.NoError(t, err)
			err = json.Unmarshal([]byte(tt.expectedBody), &expectedMap)
			require.NoError(t, err)
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
