package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairshop-service/internal/api/dto"
	"github.com/spec-kit/repairshop-service/internal/auth"
	"github.com/spec-kit/repairshop-service/internal/domain"
	"github.com/spec-kit/repairshop-service/internal/service"
	"github.com/spec-kit/repairshop-service/internal/validation"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

// AuthHandler manages staff authentication endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return apperrors.NewValidationError("validation failed", fieldErrors)
	}

	staff, token, exp, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Staff:     staffResponse(staff),
		Role:      staff.Role,
	})
}

// ChangePassword POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return apperrors.NewUnauthenticated("sign in required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return apperrors.NewValidationError("validation failed", fieldErrors)
	}

	if err := h.service.ChangePassword(c.Context(), principal.Staff, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

// ListTechs GET /staff/techs returns assignee options for managers.
func (h *AuthHandler) ListTechs(c *fiber.Ctx) error {
	techs, err := h.service.ListTechs(c.Context())
	if err != nil {
		return err
	}
	options := make([]dto.TechOption, 0, len(techs)+1)
	options = append(options, dto.TechOption{
		ID:          domain.TechUnassigned,
		Description: domain.TechUnassigned,
	})
	for _, tech := range techs {
		options = append(options, dto.TechOption{
			ID:          tech.Email,
			Description: tech.Name,
		})
	}
	return c.JSON(fiber.Map{"data": options})
}

func staffResponse(staff *domain.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:     staff.ID,
		Name:   staff.Name,
		Email:  staff.Email,
		Role:   staff.Role,
		Active: staff.Active,
	}
}
