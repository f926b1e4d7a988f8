package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/jwt"
	"github.com/hrtools-br/ausencias-backend-go/internal/repository/csvfile"
	absenceService "github.com/hrtools-br/ausencias-backend-go/internal/service/absence"
	exportService "github.com/hrtools-br/ausencias-backend-go/internal/service/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
	handlerTestPassword  = "password123"
)

type fixedLookup struct{}

func (fixedLookup) Lookup(ctx context.Context, code string) string {
	return "descrição de teste"
}

type noopRoster struct{}

func (noopRoster) Names(ctx context.Context) []string {
	return []string{"Maria Silva"}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := csvfile.NewAbsenceRepository(filepath.Join(t.TempDir(), "atestados.csv"))
	recordService, err := absenceService.NewRecordService(context.Background(), repo, fixedLookup{})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)

	return NewRouter(
		jwtService,
		NewAuthHandler(jwtService, string(hash)),
		NewAbsenceHandler(recordService, exportService.NewExportService(recordService)),
		NewRosterHandler(noopRoster{}),
		NewUploadHandler(),
	)
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"password": handlerTestPassword})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAbsencesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/absences", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateListDeleteFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	do := func(method, path string, payload interface{}) *httptest.ResponseRecorder {
		var body bytes.Buffer
		if payload != nil {
			require.NoError(t, json.NewEncoder(&body).Encode(payload))
		}
		req := httptest.NewRequest(method, path, &body)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// Create an Atestado record.
	rec := do(http.MethodPost, "/api/v1/absences", map[string]interface{}{
		"employee_name": "Maria Silva",
		"start_date":    "2024-01-30",
		"days":          3,
		"category":      "Atestado",
		"cid":           "m54",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			ID         string `json:"id"`
			CID        string `json:"cid"`
			Reason     string `json:"reason"`
			EndDate    string `json:"end_date"`
			ReturnDate string `json:"return_date"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "M54", created.Data.CID)
	assert.Equal(t, "M54 - descrição de teste", created.Data.Reason)
	assert.Equal(t, "2024-02-01", created.Data.EndDate)
	assert.Equal(t, "2024-02-02", created.Data.ReturnDate)

	// Validation failure surfaces as 422.
	rec = do(http.MethodPost, "/api/v1/absences", map[string]interface{}{
		"employee_name": "",
		"start_date":    "2024-01-30",
		"days":          1,
		"category":      "Falta",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// List shows the single record.
	rec = do(http.MethodGet, "/api/v1/absences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed.Data, 1)

	// Delete it, then a second delete is a stale reference.
	rec = do(http.MethodDelete, "/api/v1/absences/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodDelete, "/api/v1/absences/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportDownload(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/absences/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "registros_ausencias.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestRosterEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Maria Silva"}, resp.Data)
}
