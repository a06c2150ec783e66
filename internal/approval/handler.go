package approval

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
	Create(ctx context.Context, dto CreateApprovalDTO) (*Approval, error)
	GetByID(ctx context.Context, id int64) (*Approval, error)
	GetAll(ctx context.Context, status string) ([]*Approval, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*Approval, error)
	Approve(ctx context.Context, id int64, decidedBy string) (*Approval, error)
	Reject(ctx context.Context, id int64, decidedBy string) (*Approval, error)
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

func (h *Handler) CreateApproval(w http.ResponseWriter, r *http.Request) {
	var dto CreateApprovalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	approval, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, approval)
}

func (h *Handler) GetAllApprovals(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.Service.GetAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, approvals)
}

func (h *Handler) GetApproval(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid approval id")
		return
	}

	approval, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, approval)
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Approve)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Reject)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, string) (*Approval, error)) {
	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid approval id")
		return
	}

	decidedBy := internal.EmployeeIDFromContext(r.Context())

	approval, err := op(r.Context(), id, decidedBy)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, approval)
}

func (h *Handler) parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
