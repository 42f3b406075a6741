package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ughyper3/Spodaily-api/internal/models"
	"github.com/ughyper3/Spodaily-api/internal/repository"
	"github.com/ughyper3/Spodaily-api/internal/services"
)

type SessionHandler struct {
	service workoutApplicationService
}

type workoutApplicationService interface {
	CreateSession(ctx context.Context, userID int64, name string, date time.Time) (*models.Session, error)
	ListSessions(ctx context.Context, userID int64, filter repository.SessionListFilter) ([]models.Session, int, error)
	GetSession(ctx context.Context, userID int64, sessionUUID uuid.UUID) (*models.Session, error)
	DeleteSession(ctx context.Context, userID int64, sessionUUID uuid.UUID) error
	AddActivity(ctx context.Context, userID int64, sessionUUID uuid.UUID, input services.AddActivityInput) (*models.ActivityDetail, error)
	ListActivities(ctx context.Context, userID int64, sessionUUID uuid.UUID) ([]models.ActivityDetail, error)
}

func NewSessionHandler(service *services.WorkoutService) *SessionHandler {
	return &SessionHandler{service: service}
}

type addSessionRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req addSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateAddSessionRequest(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	date, _ := time.Parse(dateLayout, req.Date)

	session, err := h.service.CreateSession(c.Context(), userID, strings.TrimSpace(req.Name), date)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	timeframe := strings.TrimSpace(c.Query("timeframe"))
	if timeframe != "" && timeframe != "upcoming" && timeframe != "past" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "timeframe must be upcoming or past"})
	}

	page, limit := parsePagination(c)

	sessions, total, err := h.service.ListSessions(c.Context(), userID, repository.SessionListFilter{
		Timeframe: timeframe,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{
		"sessions":   sessions,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session identifier"})
	}

	session, err := h.service.GetSession(c.Context(), userID, sessionUUID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session identifier"})
	}

	if err := h.service.DeleteSession(c.Context(), userID, sessionUUID); err != nil {
		return mapWorkoutError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func mapWorkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	case errors.Is(err, services.ErrExerciseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process workout request"})
	}
}
