package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/ughyper3/Spodaily-api/internal/models"
)

type ExerciseHandler struct {
	exerciseRepo exerciseCatalogue
}

type exerciseCatalogue interface {
	List(ctx context.Context) ([]models.Exercise, error)
}

func NewExerciseHandler(exerciseRepo exerciseCatalogue) *ExerciseHandler {
	return &ExerciseHandler{exerciseRepo: exerciseRepo}
}

func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	exercises, err := h.exerciseRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}

	return c.JSON(fiber.Map{"exercises": exercises})
}
