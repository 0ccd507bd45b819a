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

// CustomersHandler manages customer endpoints.
type CustomersHandler struct {
	service *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{service: customerService}
}

// Save POST /customers.
func (h *CustomersHandler) Save(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return apperrors.NewUnauthenticated("sign in required")
	}
	var req dto.SaveCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return apperrors.NewValidationError("validation failed", fieldErrors)
	}

	input := service.CustomerSaveInput{
		ID:        req.Identity(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address1:  req.Address1,
		Address2:  req.Address2,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Notes:     req.Notes,
		Active:    req.Active,
	}
	receipt, err := h.service.Save(c.Context(), principal.Staff, input)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if req.Identity().IsNew() {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SaveReceiptResponse{
		Message: receipt.Message,
		ID:      receipt.ID,
	})
}

// Get GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("invalid customer id", nil)
	}
	customer, err := h.service.Get(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customerResponse(customer)})
}

// Search GET /customers?searchText=...
func (h *CustomersHandler) Search(c *fiber.Ctx) error {
	results, err := h.service.Search(c.Context(), c.Query("searchText"))
	if err != nil {
		return err
	}
	items := make([]dto.CustomerResponse, 0, len(results))
	for i := range results {
		items = append(items, customerResponse(&results[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func customerResponse(customer *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address1:  customer.Address1,
		Address2:  customer.Address2,
		City:      customer.City,
		State:     customer.State,
		Zip:       customer.Zip,
		Notes:     customer.Notes,
		Active:    customer.Active,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
