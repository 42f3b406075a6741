package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ughyper3/Spodaily-api/internal/services"
)

type addActivityRequest struct {
	ExerciseID int64   `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Repetition int     `json:"repetition"`
	Rest       int     `json:"rest"`
	Weight     float64 `json:"weight"`
}

func (h *SessionHandler) AddActivity(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session identifier"})
	}

	var req addActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateAddActivityRequest(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	activity, err := h.service.AddActivity(c.Context(), userID, sessionUUID, services.AddActivityInput{
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Repetition: req.Repetition,
		Rest:       req.Rest,
		Weight:     req.Weight,
	})
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"activity": activity})
}

func (h *SessionHandler) ListActivities(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	sessionUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session identifier"})
	}

	activities, err := h.service.ListActivities(c.Context(), userID, sessionUUID)
	if err != nil {
		return mapWorkoutError(c, err)
	}

	return c.JSON(fiber.Map{"activities": activities})
}
