package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairshop-service/internal/api/dto"
	"github.com/spec-kit/repairshop-service/internal/auth"
	"github.com/spec-kit/repairshop-service/internal/domain"
	"github.com/spec-kit/repairshop-service/internal/repository"
	"github.com/spec-kit/repairshop-service/internal/service"
	"github.com/spec-kit/repairshop-service/internal/validation"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Save POST /tickets.
func (h *TicketsHandler) Save(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return apperrors.NewUnauthenticated("sign in required")
	}
	var req dto.SaveTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return apperrors.NewValidationError("validation failed", fieldErrors)
	}

	input := service.TicketSaveInput{
		ID:          req.ID.Identity(),
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Tech:        req.Tech,
	}
	receipt, err := h.service.Save(c.Context(), principal.Staff, input)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if req.ID.Identity().IsNew() {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SaveReceiptResponse{
		Message: receipt.Message,
		ID:      receipt.ID,
	})
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	detail, err := h.service.Get(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketDetailResponse{
		Ticket:   ticketResponse(detail.Ticket),
		Customer: customerResponse(detail.Customer),
	}})
}

// Search GET /tickets?searchText=...
func (h *TicketsHandler) Search(c *fiber.Ctx) error {
	results, err := h.service.Search(c.Context(), c.Query("searchText"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketListItems(results)})
}

// List GET /tickets/open returns the default listing for the caller role.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return apperrors.NewUnauthenticated("sign in required")
	}
	results, err := h.service.ListForStaff(c.Context(), principal.Staff)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketListItems(results)})
}

func ticketListItems(results []repository.TicketResult) []dto.TicketListItem {
	items := make([]dto.TicketListItem, 0, len(results))
	for i := range results {
		items = append(items, dto.TicketListItem{
			TicketResponse: ticketResponse(&results[i].Ticket),
			CustomerName:   results[i].CustomerName,
			CustomerEmail:  results[i].CustomerEmail,
		})
	}
	return items
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          ticket.ID,
		CustomerID:  ticket.CustomerID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Completed:   ticket.Completed,
		Tech:        ticket.Tech,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}
