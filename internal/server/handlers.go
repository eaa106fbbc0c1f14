package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/employee-service/internal/metrics"
	"github.com/Houeta/employee-service/internal/models"
	"github.com/Houeta/employee-service/internal/report"
	"github.com/Houeta/employee-service/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	deletedMessage = "Deleted employee successfully"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// EmployeeService is the set of use cases the HTTP layer depends on.
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int) (models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	DeleteEmployeeByID(ctx context.Context, id int) error
}

// EmployeeHandler maps the /employee/v1 routes onto the employee service.
type EmployeeHandler struct {
	log     *slog.Logger
	svc     EmployeeService
	metrics *metrics.Metrics
}

// NewEmployeeHandler returns a handler backed by the given service.
func NewEmployeeHandler(log *slog.Logger, svc EmployeeService, m *metrics.Metrics) *EmployeeHandler {
	return &EmployeeHandler{log: log, svc: svc, metrics: m}
}

// ListEmployees handles GET /employee/v1/.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.GetAllEmployees(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to list employees", err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee handles GET /employee/v1/:id.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, inRange, ok := parseID(c)
	if !ok {
		return
	}
	if !inRange {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrEmployeeNotFound.Error()})
		return
	}

	employee, err := h.svc.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, "failed to get employee", err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles POST /employee/v1/.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.Employee
	if !bindEmployee(c, &in) {
		return
	}

	saved, err := h.svc.SaveEmployee(c.Request.Context(), in)
	if err != nil {
		h.internalError(c, "failed to save employee", err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// UpdateEmployee handles PUT /employee/v1/.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var in models.Employee
	if !bindEmployee(c, &in) {
		return
	}

	updated, err := h.svc.UpdateEmployee(c.Request.Context(), in)
	if err != nil {
		h.serviceError(c, "failed to update employee", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEmployee handles DELETE /employee/v1/:id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, inRange, ok := parseID(c)
	if !ok {
		return
	}
	if !inRange {
		c.String(http.StatusOK, deletedMessage)
		return
	}

	if err := h.svc.DeleteEmployeeByID(c.Request.Context(), id); err != nil {
		h.internalError(c, "failed to delete employee", err)
		return
	}

	c.String(http.StatusOK, deletedMessage)
}

// ExportEmployees handles GET /reports/employees.xlsx.
func (h *EmployeeHandler) ExportEmployees(c *gin.Context) {
	started := time.Now()

	employees, err := h.svc.GetAllEmployees(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to list employees", err)
		return
	}

	buffer, err := report.GenerateEmployeeReport(employees)
	if err != nil {
		if errors.Is(err, report.ErrNoEmployees) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no employees to export"})
			return
		}
		h.internalError(c, "failed to generate report", err)
		return
	}
	h.metrics.ObserveReport(started)

	c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, buffer.Bytes())
}

// serviceError maps service.ErrEmployeeNotFound to 404 and anything else to 500.
func (h *EmployeeHandler) serviceError(c *gin.Context, msg string, err error) {
	if errors.Is(err, service.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.internalError(c, msg, err)
}

func (h *EmployeeHandler) internalError(c *gin.Context, msg string, err error) {
	h.log.ErrorContext(c.Request.Context(), msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// parseID reads the :id path parameter. Integers that do not fit the INTEGER id
// column are reported with inRange false, since no stored employee can have them.
func parseID(c *gin.Context) (int, bool, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, true
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id", "details": c.Param("id")})
		return 0, false, false
	}
	return int(id), true, true
}

func bindEmployee(c *gin.Context, in *models.Employee) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": validationDetails(err)})
		return false
	}
	return true
}
