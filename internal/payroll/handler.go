package payroll

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/transport"
	"github.com/lumenkraft/hr-management/pkg/logger"
)

type ServiceAPI interface {
	CreateCycle(ctx context.Context, dto CreateCycleDTO) (*Cycle, error)
	GetCycleByID(ctx context.Context, id int64) (*Cycle, error)
	GetCycles(ctx context.Context, status string) ([]*Cycle, error)
	ProcessCycle(ctx context.Context, id int64, processedBy string) (*Cycle, error)
	UpsertSalary(ctx context.Context, dto UpsertSalaryDTO) (*Salary, error)
	GetSalaries(ctx context.Context) ([]*Salary, error)
	GetSalaryByEmployeeID(ctx context.Context, employeeID string) (*Salary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var dto CreateCycleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cycle, err := h.Service.CreateCycle(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, cycle)
}

func (h *Handler) GetAllCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.Service.GetCycles(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cycles)
}

func (h *Handler) GetCycle(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid cycle id")
		return
	}

	cycle, err := h.Service.GetCycleByID(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cycle)
}

func (h *Handler) ProcessCycle(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid cycle id")
		return
	}

	processedBy := internal.EmployeeIDFromContext(r.Context())

	cycle, err := h.Service.ProcessCycle(r.Context(), id, processedBy)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cycle)
}

func (h *Handler) UpsertSalary(w http.ResponseWriter, r *http.Request) {
	var dto UpsertSalaryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	salary, err := h.Service.UpsertSalary(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, salary)
}

func (h *Handler) GetAllSalaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.Service.GetSalaries(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, salaries)
}

func (h *Handler) GetEmployeeSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	salary, err := h.Service.GetSalaryByEmployeeID(r.Context(), employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, salary)
}

func (h *Handler) parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
