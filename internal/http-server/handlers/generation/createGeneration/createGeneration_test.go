package createGeneration_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"petStylizer/internal/http-server/handlers/generation/createGeneration"
	creatorMocks "petStylizer/internal/http-server/handlers/generation/createGeneration/mocks"
	kafkaMocks "petStylizer/internal/kafka/producer/mocks"
	"petStylizer/internal/models"
	"petStylizer/internal/processor"
)

func TestCreateGeneration(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	var pngFile bytes.Buffer
	require.NoError(t, png.Encode(&pngFile, image.NewNRGBA(image.Rect(0, 0, 4, 4))))

	testUUID, _ := uuid.NewRandom()

	tests := []struct {
		name           string
		fileContent    []byte
		creatorCall    bool
		mockGeneration *models.Generation
		mockSaveErr    error
		kafkaCall      bool
		mockKafkaErr   error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			fileContent:    pngFile.Bytes(),
			creatorCall:    true,
			mockGeneration: &models.Generation{ID: testUUID, Status: models.StatusPending},
			kafkaCall:      true,
			expectedStatus: http.StatusAccepted,
			expectedBody:   fmt.Sprintf(`{"status":"OK","generation_id":"%s"}`, testUUID),
		},
		{
			name:           "Empty File",
			fileContent:    []byte(""),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"received empty file"}`,
		},
		{
			name:           "Not An Image",
			fileContent:    []byte("test file content"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid image"}`,
		},
		{
			name:           "Failed to Save Generation",
			fileContent:    pngFile.Bytes(),
			creatorCall:    true,
			mockSaveErr:    errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to save generation"}`,
		},
		{
			name:           "Failed to Publish to Kafka",
			fileContent:    pngFile.Bytes(),
			creatorCall:    true,
			mockGeneration: &models.Generation{ID: testUUID, Status: models.StatusPending},
			kafkaCall:      true,
			mockKafkaErr:   errors.New("kafka error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to start image processing"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploadDir := filepath.Join(t.TempDir(), "uploads")

			creatorMock := creatorMocks.NewGenerationCreator(t)
			kafkaProducerMock := kafkaMocks.NewProducerIface(t)

			var sourcePath string
			if tt.creatorCall {
				creatorMock.On("CreateGeneration", mock.Anything, mock.AnythingOfType("string"), processor.DefaultPrompts).
					Run(func(args mock.Arguments) { sourcePath = args.String(1) }).
					Return(tt.mockGeneration, tt.mockSaveErr).Once()
			}
			if tt.mockKafkaErr != nil {
				creatorMock.On("DeleteGeneration", mock.Anything, testUUID).Return(nil).Once()
			}
			if tt.kafkaCall {
				kafkaProducerMock.On("SendMessage", mock.Anything, []byte(testUUID.String()), mock.MatchedBy(func(msg []byte) bool {
					var job processor.JobMessage
					return json.Unmarshal(msg, &job) == nil && job.GenerationID == testUUID && job.SourcePath == sourcePath
				})).Return(tt.mockKafkaErr).Once()
			}

			body := new(bytes.Buffer)
			writer := multipart.NewWriter(body)
			part, err := writer.CreateFormFile("file", "pet.PNG")
			require.NoError(t, err)
			_, _ = part.Write(tt.fileContent)
			require.NoError(t, writer.Close())

			req := httptest.NewRequest(http.MethodPost, "/api/generations", body)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			rr := httptest.NewRecorder()

			handler := createGeneration.New(log, creatorMock, kafkaProducerMock, uploadDir, 1<<20)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			err = json.Unmarshal(rr.Body.Bytes(), &actualMap)
			require.NoError(t, err)
			err = json.Unmarshal([]byte(tt.expectedBody), &expectedMap)
			require.NoError(t, err)
			require.Equal(t, expectedMap, actualMap)

			switch {
			case tt.mockSaveErr != nil, tt.mockKafkaErr != nil:
				require.NoFileExists(t, sourcePath)
			case tt.creatorCall:
				require.Equal(t, ".png", filepath.Ext(sourcePath))
				saved, err := os.ReadFile(sourcePath)
				require.NoError(t, err)
				require.Equal(t, tt.fileContent, saved)
			}
		})
	}
}
