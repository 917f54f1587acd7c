package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mangoadvisory/internal/api/middleware"
	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/models"
	"mangoadvisory/internal/repository"
	"mangoadvisory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	err := logging.InitLogger(&logging.LogConfig{
		File:       filepath.Join(os.TempDir(), "mangoadvisory-handlers-test.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
}

// Mock ContactService
type mockContactService struct {
	service.ContactService
	submitFunc func(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	listFunc   func(ctx context.Context) ([]*models.ContactMessage, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	msg.ID = uuid.New()
	return msg, nil
}

func (m *mockContactService) Get(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &models.ContactMessage{ID: id}, nil
}

func (m *mockContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newContactRouter(svc service.ContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := middleware.NewValidationMiddleware()
	h := NewContactHandler(svc)
	group := r.Group("/api/v1/contact")
	group.POST("/submit", v.ValidateContactRequest(), h.Submit)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.DELETE("/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	parsed := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

const validContactBody = `{
	"firstName": "Jane",
	"lastName": "Doe",
	"email": "jane@example.com",
	"phone": "(987) 654-3210",
	"message": "I would like to know more about your services.",
	"serviceType": "Individual"
}`

func TestContactHandler_Submit(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{})

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/contact/submit", validContactBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Thank you for contacting us. We have received your message and will get back to you soon!", body["message"])
	require.Contains(t, body, "data")

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
	// Phone is stored in normalized digit form.
	assert.Equal(t, "9876543210", data["phone"])
}

func TestContactHandler_SubmitValidation(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{
		submitFunc: func(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
			t.Fatal("service must not be reached for invalid payloads")
			return nil, nil
		},
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"firstName":"Jane","lastName":"Doe","phone":"9876543210","message":"I would like to know more."}`},
		{"malformed email", `{"firstName":"Jane","lastName":"Doe","email":"not-an-email","phone":"9876543210","message":"I would like to know more."}`},
		{"message too short", `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"9876543210","message":"short"}`},
		{"bad phone", `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"12345","message":"I would like to know more."}`},
		{"unknown service type", `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"9876543210","message":"I would like to know more.","serviceType":"Astrology"}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, r, http.MethodPost, "/api/v1/contact/submit", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestContactHandler_List(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{
		listFunc: func(ctx context.Context) ([]*models.ContactMessage, error) {
			return []*models.ContactMessage{
				{ID: uuid.New(), Email: "a@example.com"},
				{ID: uuid.New(), Email: "b@example.com"},
			}, nil
		},
	})

	w, body := doJSON(t, r, http.MethodGet, "/api/v1/contact", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["totalCount"])
	assert.Len(t, body["messages"], 2)
}

func TestContactHandler_Get(t *testing.T) {
	initTestLogger(t)
	id := uuid.New()
	r := newContactRouter(&mockContactService{
		getFunc: func(ctx context.Context, got uuid.UUID) (*models.ContactMessage, error) {
			assert.Equal(t, id, got)
			return &models.ContactMessage{ID: id, Email: "jane@example.com"}, nil
		},
	})

	w, body := doJSON(t, r, http.MethodGet, "/api/v1/contact/"+id.String(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, "jane@example.com", body["email"])
}

func TestContactHandler_GetNotFound(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{
		getFunc: func(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
			return nil, repository.ErrNotFound
		},
	})

	w, body := doJSON(t, r, http.MethodGet, "/api/v1/contact/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", body["message"])
}

func TestContactHandler_Delete(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{})

	w, body := doJSON(t, r, http.MethodDelete, "/api/v1/contact/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message deleted successfully", body["message"])
}

func TestContactHandler_DeleteNotFound(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{
		deleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return repository.ErrNotFound
		},
	})

	w, body := doJSON(t, r, http.MethodDelete, "/api/v1/contact/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", body["message"])
}

func TestContactHandler_DeleteInvalidID(t *testing.T) {
	initTestLogger(t)
	r := newContactRouter(&mockContactService{})

	w, body := doJSON(t, r, http.MethodDelete, "/api/v1/contact/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid message id", body["message"])
}
