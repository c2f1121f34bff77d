package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/UnknownOlympus/hestia/internal/form"
	"github.com/UnknownOlympus/hestia/internal/presenter"
)

type employeesHandler struct {
	service DirectoryService
}

// removeRequest addresses rows of the list shown for Query.
type removeRequest struct {
	Query     string `json:"query"`
	Positions []int  `json:"positions"`
}

// moveRequest addresses rows of the list shown for Query; To is an insertion offset in that list.
type moveRequest struct {
	Query string `json:"query"`
	From  []int  `json:"from"`
	To    *int   `json:"to"`
}

// List handles GET /api/v1/employees?q=.
func (h *employeesHandler) List(c *fiber.Ctx) error {
	query := c.Query("q")
	employees, total := h.service.Search(c.UserContext(), query)

	return c.JSON(fiber.Map{
		"data":  presenter.Rows(employees),
		"count": len(employees),
		"total": total,
		"query": query,
	})
}

// Get handles GET /api/v1/employees/:id.
func (h *employeesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}

	employee, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": presenter.NewDetail(employee)})
}

// Create handles POST /api/v1/employees.
func (h *employeesHandler) Create(c *fiber.Ctx) error {
	var entry form.Entry
	if err := c.BodyParser(&entry); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.service.Add(c.UserContext(), entry)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": presenter.NewDetail(employee)})
}

// Remove handles DELETE /api/v1/employees.
func (h *employeesHandler) Remove(c *fiber.Ctx) error {
	var req removeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.Positions) == 0 {
		return fiber.NewError(http.StatusBadRequest, "positions required")
	}

	total, err := h.service.RemoveVisible(c.UserContext(), req.Query, req.Positions)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"total": total}})
}

// Move handles POST /api/v1/employees/move.
func (h *employeesHandler) Move(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.From) == 0 || req.To == nil {
		return fiber.NewError(http.StatusBadRequest, "from and to required")
	}

	if err := h.service.MoveVisible(c.UserContext(), req.Query, req.From, *req.To); err != nil {
		return err
	}

	return c.SendStatus(http.StatusNoContent)
}

// Departments handles GET /api/v1/departments.
func (h *employeesHandler) Departments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":    form.Departments,
		"default": form.DefaultDepartment,
	})
}
