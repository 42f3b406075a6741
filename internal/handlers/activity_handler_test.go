package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ughyper3/Spodaily-api/internal/models"
	"github.com/ughyper3/Spodaily-api/internal/services"
)

func TestAddActivityReturnsCreatedWithExerciseName(t *testing.T) {
	service := &stubWorkoutService{
		addResult: &models.ActivityDetail{
			Activity: models.Activity{
				ID:         1,
				SessionID:  3,
				ExerciseID: 5,
				Sets:       3,
				Repetition: 10,
				Rest:       60,
				Weight:     40,
			},
			ExerciseName: "Bench Press",
		},
	}
	app := newSessionTestApp(service, "42")

	target := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+target.String()+"/activities", strings.NewReader(`{
		"exercise_id": 5,
		"sets": 3,
		"repetition": 10,
		"rest": 60,
		"weight": 40
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
	if service.lastUUID != target {
		t.Fatalf("expected session uuid from route, got %s", service.lastUUID)
	}
	if service.lastAddInput.ExerciseID != 5 || service.lastAddInput.Sets != 3 {
		t.Fatalf("unexpected input passed to service: %+v", service.lastAddInput)
	}

	var body struct {
		Activity models.ActivityDetail `json:"activity"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Activity.ExerciseName != "Bench Press" {
		t.Fatalf("expected exercise_name Bench Press, got %q", body.Activity.ExerciseName)
	}
}

func TestAddActivityRejectsNegativeValues(t *testing.T) {
	service := &stubWorkoutService{}
	app := newSessionTestApp(service, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/activities", strings.NewReader(`{
		"exercise_id": 5,
		"sets": -1,
		"repetition": 10,
		"rest": 60,
		"weight": 40
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
}

func TestAddActivityReturnsNotFoundForUnknownExercise(t *testing.T) {
	service := &stubWorkoutService{addErr: services.ErrExerciseNotFound}
	app := newSessionTestApp(service, "42")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/activities", strings.NewReader(`{
		"exercise_id": 999,
		"sets": 3,
		"repetition": 10,
		"rest": 60,
		"weight": 40
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListActivitiesReturnsEmptyListNotError(t *testing.T) {
	service := &stubWorkoutService{activitiesList: []models.ActivityDetail{}}
	app := newSessionTestApp(service, "42")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+uuid.NewString()+"/activities", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Activities []models.ActivityDetail `json:"activities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Activities == nil || len(body.Activities) != 0 {
		t.Fatalf("expected empty list, got %v", body.Activities)
	}
}

func TestListActivitiesReturnsNotFoundForUnknownSession(t *testing.T) {
	service := &stubWorkoutService{activitiesErr: services.ErrSessionNotFound}
	app := newSessionTestApp(service, "42")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+uuid.NewString()+"/activities", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
