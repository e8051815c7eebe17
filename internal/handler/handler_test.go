package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth"
	"github.com/kiema2001/prof-mbinda-backend/internal/auth/credentials"
	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/middleware"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	"github.com/kiema2001/prof-mbinda-backend/internal/session"
)

type fakeUserStore struct {
	users map[string]model.User
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	f.users[u.Email] = u
	return u, nil
}

// spyStudentStore counts writes so tests can prove the guard
// short-circuited before the repository.
type spyStudentStore struct {
	students []model.Student
	creates  int
	deletes  int
}

func (s *spyStudentStore) List(context.Context) ([]model.Student, error) {
	return s.students, nil
}

func (s *spyStudentStore) Get(_ context.Context, id string) (model.Student, error) {
	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return model.Student{}, model.ErrNotFound
}

func (s *spyStudentStore) Create(_ context.Context, st model.Student) (model.Student, error) {
	s.creates++
	st.ID = "student-new"
	st.CreatedAt = time.Now()
	s.students = append(s.students, st)
	return st, nil
}

func (s *spyStudentStore) Update(_ context.Context, st model.Student) (model.Student, error) {
	return st, nil
}

func (s *spyStudentStore) Delete(_ context.Context, id string) error {
	s.deletes++
	return nil
}

type fakeProfileStore struct{ profile model.Profile }

func (f *fakeProfileStore) Get(context.Context) (model.Profile, error) { return f.profile, nil }
func (f *fakeProfileStore) Upsert(_ context.Context, p model.Profile) error {
	f.profile = p
	return nil
}

func newTestRouter(t *testing.T, carrier string) (*gin.Engine, *spyStudentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := credentials.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &fakeUserStore{users: map[string]model.User{
		"admin@example.org": {
			ID:           "user-1",
			Email:        "admin@example.org",
			PasswordHash: hash,
			FullName:     "Administrator",
		},
	}}

	students := &spyStudentStore{}
	stores := model.Stores{
		Users:    users,
		Profile:  &fakeProfileStore{},
		Students: students,
	}

	log := logger.New(0)
	sessions := session.NewMemoryStore()
	authService := auth.NewService(users, sessions, 24*time.Hour, log)
	guard := middleware.NewAuthMiddleware(authService, carrier, log)

	h := NewHandler(stores, authService, nil, carrier, log)

	router := gin.New()
	h.RegisterRoutes(router, middleware.GinRequireAuth(guard))
	return router, students
}

func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(session.HeaderName, token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine, email, password string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	var body struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body.Token, rec
}

func TestLoginStatusLogoutRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t, config.CarrierHeader)

	token, rec := login(t, router, "admin@example.org", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, token)

	rec = doJSON(router, http.MethodGet, "/api/auth/status", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		Authenticated bool              `json:"authenticated"`
		User          model.UserSummary `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Authenticated)
	assert.Equal(t, "admin@example.org", status.User.Email)

	rec = doJSON(router, http.MethodPost, "/api/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/auth/status", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Authenticated)
}

func TestLogin_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t, config.CarrierHeader)

	rec := doJSON(router, http.MethodPost, "/api/login", map[string]string{"email": "admin@example.org"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UniformErrorBody(t *testing.T) {
	router, _ := newTestRouter(t, config.CarrierHeader)

	_, wrongPass := login(t, router, "admin@example.org", "nope")
	_, noUser := login(t, router, "ghost@example.org", "nope")

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.JSONEq(t, wrongPass.Body.String(), noUser.Body.String())
}

func TestLogin_SetsCookieInCookieMode(t *testing.T) {
	router, _ := newTestRouter(t, config.CarrierCookie)

	_, rec := login(t, router, "admin@example.org", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestGuardedMutation_NoToken(t *testing.T) {
	router, students := newTestRouter(t, config.CarrierHeader)

	form := url.Values{"name": {"Jane"}, "degree": {"MSc"}, "type": {"masters"}}
	req := httptest.NewRequest(http.MethodPost, "/api/data/student", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, students.creates, "write path must not be invoked")
	assert.Empty(t, students.students)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Authentication required", body["message"])
}

func TestGuardedMutation_WithToken(t *testing.T) {
	router, students := newTestRouter(t, config.CarrierHeader)

	token, rec := login(t, router, "admin@example.org", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)

	form := url.Values{"name": {"Jane"}, "degree": {"MSc"}, "type": {"masters"}}
	req := httptest.NewRequest(http.MethodPost, "/api/data/student", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(session.HeaderName, token)

	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)

	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, 1, students.creates)
}

func TestLogout_GuardRejectsSecondCallWithoutSession(t *testing.T) {
	router, _ := newTestRouter(t, config.CarrierHeader)

	token, rec := login(t, router, "admin@example.org", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)

	first := doJSON(router, http.MethodPost, "/api/logout", nil, token)
	assert.Equal(t, http.StatusOK, first.Code)

	// The session is gone, so the guard now rejects the token.
	second := doJSON(router, http.MethodPost, "/api/logout", nil, token)
	assert.Equal(t, http.StatusUnauthorized, second.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, config.CarrierHeader)

	rec := doJSON(router, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
