package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/ughyper3/Spodaily-api/internal/models"
)

type ContactHandler struct {
	contactRepo contactStore
}

type contactStore interface {
	Create(ctx context.Context, userID int64, subject string, content string) (*models.ContactMessage, error)
}

func NewContactHandler(contactRepo contactStore) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

type contactRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateContactRequest(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	message, err := h.contactRepo.Create(c.Context(), userID, req.Subject, req.Content)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record message"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}
