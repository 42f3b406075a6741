package handlers

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/ughyper3/Spodaily-api/internal/models"
	"github.com/ughyper3/Spodaily-api/internal/repository"
	"github.com/ughyper3/Spodaily-api/internal/services"
)

type AccountHandler struct {
	service accountApplicationService
}

type accountApplicationService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, input repository.UpdateProfileInput) (*models.User, error)
}

func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type updateAccountRequest struct {
	Email     *string  `json:"email"`
	UserName  *string  `json:"user_name"`
	FirstName *string  `json:"first_name"`
	Name      *string  `json:"name"`
	Birth     *string  `json:"birth"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	Sexe      *string  `json:"sexe"`
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch account"})
	}

	return c.JSON(fiber.Map{"user": user})
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	userID, err := parseAuthUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := validateEditProfileRequest(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	normalized := strings.ToLower(strings.TrimSpace(*req.Email))
	if parsed, err := mail.ParseAddress(normalized); err == nil {
		normalized = strings.ToLower(parsed.Address)
	}

	input := repository.UpdateProfileInput{
		Email:     &normalized,
		UserName:  req.UserName,
		FirstName: req.FirstName,
		Name:      req.Name,
		Height:    req.Height,
		Weight:    req.Weight,
		Sexe:      req.Sexe,
	}
	if req.Birth != nil {
		birth, err := time.Parse(dateLayout, *req.Birth)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"errors": fiber.Map{"birth": "birth must be a date formatted as YYYY-MM-DD"}})
		}
		input.Birth = &birth
	}

	user, err := h.service.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"errors": fiber.Map{"email": "Email already registered"}})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update account"})
	}

	return c.JSON(fiber.Map{"user": user})
}
