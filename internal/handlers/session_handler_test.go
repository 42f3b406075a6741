package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ughyper3/Spodaily-api/internal/models"
	"github.com/ughyper3/Spodaily-api/internal/repository"
	"github.com/ughyper3/Spodaily-api/internal/services"
)

type stubWorkoutService struct {
	createResult    *models.Session
	createErr       error
	listResult      []models.Session
	listTotal       int
	listErr         error
	getResult       *models.Session
	getErr          error
	deleteErr       error
	addResult       *models.ActivityDetail
	addErr          error
	activitiesList  []models.ActivityDetail
	activitiesErr   error
	lastUserID      int64
	lastName        string
	lastDate        time.Time
	lastUUID        uuid.UUID
	lastListFilter  repository.SessionListFilter
	lastAddInput    services.AddActivityInput
	deleteCallCount int
}

func (s *stubWorkoutService) CreateSession(_ context.Context, userID int64, name string, date time.Time) (*models.Session, error) {
	s.lastUserID = userID
	s.lastName = name
	s.lastDate = date
	return s.createResult, s.createErr
}

func (s *stubWorkoutService) ListSessions(_ context.Context, userID int64, filter repository.SessionListFilter) ([]models.Session, int, error) {
	s.lastUserID = userID
	s.lastListFilter = filter
	return s.listResult, s.listTotal, s.listErr
}

func (s *stubWorkoutService) GetSession(_ context.Context, userID int64, sessionUUID uuid.UUID) (*models.Session, error) {
	s.lastUserID = userID
	s.lastUUID = sessionUUID
	return s.getResult, s.getErr
}

func (s *stubWorkoutService) DeleteSession(_ context.Context, userID int64, sessionUUID uuid.UUID) error {
	s.lastUserID = userID
	s.lastUUID = sessionUUID
	s.deleteCallCount++
	return s.deleteErr
}

func (s *stubWorkoutService) AddActivity(_ context.Context, userID int64, sessionUUID uuid.UUID, input services.AddActivityInput) (*models.ActivityDetail, error) {
	s.lastUserID = userID
	s.lastUUID = sessionUUID
	s.lastAddInput = input
	return s.addResult, s.addErr
}

func (s *stubWorkoutService) ListActivities(_ context.Context, userID int64, sessionUUID uuid.UUID) ([]models.ActivityDetail, error) {
	s.lastUserID = userID
	s.lastUUID = sessionUUID
	return s.activitiesList, s.activitiesErr
}

func newSessionTestApp(service *stubWorkoutService, userID string) *fiber.App {
	handler := &SessionHandler{service: service}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Post("/api/v1/sessions", handler.CreateSession)
	app.Get("/api/v1/sessions", handler.ListSessions)
	app.Get("/api/v1/sessions/:uuid", handler.GetSession)
	app.Delete("/api/v1/sessions/:uuid", handler.DeleteSession)
	app.Post("/api/v1/sessions/:uuid/activities", handler.AddActivity)
	app.Get("/api/v1/sessions/:uuid/activities", handler.ListActivities)
	return app
}

func TestCreateSessionReturnsCreated(t *testing.T) {
	service := &stubWorkoutService{
		createResult: &models.Session{
			UUID: uuid.New(),
			Name: "Leg Day",
			Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	app := newSessionTestApp(service, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{
		"name": "Leg Day",
		"date": "2024-01-01"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastUserID != 42 {
		t.Fatalf("expected owner 42, got %d", service.lastUserID)
	}
	if service.lastName != "Leg Day" {
		t.Fatalf("expected name Leg Day, got %q", service.lastName)
	}
	if !service.lastDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date 2024-01-01, got %v", service.lastDate)
	}
}

func TestCreateSessionRejectsMissingFields(t *testing.T) {
	service := &stubWorkoutService{}
	app := newSessionTestApp(service, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{
		"name": "",
		"date": "not-a-date"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.lastName != "" {
		t.Fatalf("expected service not to be called")
	}
}

func TestListSessionsPassesTimeframeAndPagination(t *testing.T) {
	service := &stubWorkoutService{
		listResult: []models.Session{{UUID: uuid.New(), Name: "Push"}},
		listTotal:  1,
	}
	app := newSessionTestApp(service, "9")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?timeframe=past&page=2&limit=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastListFilter.Timeframe != "past" {
		t.Fatalf("expected past timeframe, got %q", service.lastListFilter.Timeframe)
	}
	if service.lastListFilter.Limit != 5 || service.lastListFilter.Offset != 5 {
		t.Fatalf("expected limit 5 offset 5, got %d/%d", service.lastListFilter.Limit, service.lastListFilter.Offset)
	}
}

func TestListSessionsRejectsUnknownTimeframe(t *testing.T) {
	app := newSessionTestApp(&stubWorkoutService{}, "9")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?timeframe=someday", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetSessionReturnsNotFoundForUnknownUUID(t *testing.T) {
	service := &stubWorkoutService{getErr: services.ErrSessionNotFound}
	app := newSessionTestApp(service, "9")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetSessionRejectsMalformedIdentifier(t *testing.T) {
	app := newSessionTestApp(&stubWorkoutService{}, "9")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteSessionReturnsForbiddenForOtherOwner(t *testing.T) {
	service := &stubWorkoutService{deleteErr: services.ErrForbidden}
	app := newSessionTestApp(service, "9")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestDeleteSessionReturnsNoContent(t *testing.T) {
	service := &stubWorkoutService{}
	app := newSessionTestApp(service, "9")

	target := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+target.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if service.deleteCallCount != 1 {
		t.Fatalf("expected one delete call, got %d", service.deleteCallCount)
	}
	if service.lastUUID != target {
		t.Fatalf("expected uuid %s, got %s", target, service.lastUUID)
	}
}
