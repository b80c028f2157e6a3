package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"civicreport-be/models"
	authUtils "civicreport-be/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesCitizenAccount(t *testing.T) {
	var insertedUser map[string]any
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/role":
			assert.Equal(t, "eq.citizen", r.URL.Query().Get("role_name"))
			w.Write([]byte(`[{"role_id": 1}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/app_user":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&insertedUser))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"user_id":42,"full_name":"Jane Doe","email":"jane@example.com","phone":null,"password":"<digest>","role_id":1,"is_anonymous_allowed":true}]`))
		default:
			t.Fatalf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		}
	})
	r, _ := newTestRouter(t, upstream)

	req := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"full_name":"Jane Doe","email":"jane@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, "jane@example.com", body["email"])

	// The stored row carries a digest, never the plaintext.
	assert.Equal(t, true, insertedUser["is_anonymous_allowed"])
	assert.Equal(t, float64(1), insertedUser["role_id"])
	digest, _ := insertedUser["password"].(string)
	assert.NotEqual(t, "secret123", digest)
	assert.True(t, authUtils.VerifyPassword("secret123", digest))
}

func TestSignupDuplicateEmail(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/role":
			w.Write([]byte(`[{"role_id": 1}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/app_user":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint \"app_user_email_key\""}`))
		default:
			t.Fatalf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		}
	})
	r, _ := newTestRouter(t, upstream)

	req := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"full_name":"Jane Doe","email":"jane@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Email already registered."}`, resp.Body.String())
}

func TestSignupMissingCitizenRole(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	r, _ := newTestRouter(t, upstream)

	req := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"full_name":"Jane Doe","email":"jane@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Citizen role not found."}`, resp.Body.String())
}

func TestSignupUpstreamFailure(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"connection to server failed"}`))
	})
	r, _ := newTestRouter(t, upstream)

	req := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"full_name":"Jane Doe","email":"jane@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "connection to server failed")
}

func TestSignupRejectsInvalidPayload(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("upstream must not be called, got %s %s", r.Method, r.URL.Path)
	})
	r, _ := newTestRouter(t, upstream)

	req := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"full_name":"Jane Doe","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func loginUpstream(t *testing.T, rows []models.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/rest/v1/app_user", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		require.NoError(t, json.NewEncoder(w).Encode(rows))
	})
}

func TestLoginSuccess(t *testing.T) {
	digest, err := authUtils.HashPassword("secret123")
	require.NoError(t, err)

	r, _ := newTestRouter(t, loginUpstream(t, []models.User{{
		UserID:   42,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: digest,
		RoleID:   1,
	}}))

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, "jane@example.com", body["email"])
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := newTestRouter(t, loginUpstream(t, []models.User{}))

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"No account found with this email."}`, resp.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	digest, err := authUtils.HashPassword("secret123")
	require.NoError(t, err)

	r, _ := newTestRouter(t, loginUpstream(t, []models.User{{
		UserID:   42,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: digest,
	}}))

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"jane@example.com","password":"secret124"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"error":"Incorrect password."}`, resp.Body.String())
}
