package controller

import (
	"net/http"
	"net/http/httptest"
	"stepup_backend/internal/model"
	"stepup_backend/internal/service"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedProfiles struct {
	users []model.User
}

func (f *fixedProfiles) FindAll() ([]model.User, error) {
	return f.users, nil
}

type countingMailer struct {
	calls int
}

func (m *countingMailer) Send(toName, toAddress, subject, htmlBody string) error {
	m.calls++
	return nil
}

func nudgeRouter(mailer service.Mailer, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	profiles := &fixedProfiles{users: []model.User{{
		Name:          "Asha",
		Email:         "asha@example.com",
		SelectedTrack: "fs-core",
		Onboarded:     true,
	}}}
	svc := service.NewNudgeService(profiles, mailer, "https://stepup.example.com")
	c := NewNudgeController(svc, secret)

	router := gin.New()
	router.POST("/api/nudges/send", c.Send)
	router.GET("/api/nudges/send", c.Send)
	return router
}

func TestNudgeSendRejectsMissingSecret(t *testing.T) {
	mailer := &countingMailer{}
	router := nudgeRouter(mailer, "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/nudges/send", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, mailer.calls, "rejected requests must not send anything")
}

func TestNudgeSendRejectsWrongSecret(t *testing.T) {
	mailer := &countingMailer{}
	router := nudgeRouter(mailer, "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/nudges/send", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, mailer.calls)
}

func TestNudgeSendRejectsWhenSecretUnconfigured(t *testing.T) {
	// An empty configured secret must never mean open access.
	mailer := &countingMailer{}
	router := nudgeRouter(mailer, "")

	req := httptest.NewRequest(http.MethodPost, "/api/nudges/send", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, mailer.calls)
}

func TestNudgeSendWithValidSecret(t *testing.T) {
	mailer := &countingMailer{}
	router := nudgeRouter(mailer, "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/nudges/send", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.calls)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), `"sent":1`)
}

func TestNudgeSendGetBehavesLikePost(t *testing.T) {
	mailer := &countingMailer{}
	router := nudgeRouter(mailer, "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/nudges/send", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.calls)
}
