package approval

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumenkraft/hr-management/internal"
)

type Repository interface {
	Create(ctx context.Context, approval *Approval) error
	GetByID(ctx context.Context, id int64) (*Approval, error)
	GetAll(ctx context.Context, status string) ([]*Approval, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*Approval, error)
	UpdateDecision(ctx context.Context, id int64, status, decidedBy string, decidedAt time.Time) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, dto CreateApprovalDTO) (*Approval, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	approval := &Approval{
		EmployeeID:  dto.EmployeeID,
		RequestType: dto.RequestType,
		Details:     dto.Details,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, approval); err != nil {
		s.logger.Error("failed to create approval", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("approval created",
		"approval_id", approval.ID,
		"employee_id", approval.EmployeeID,
		"request_type", approval.RequestType)
	return approval, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Approval, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll lists approvals, optionally filtered by status.
func (s *Service) GetAll(ctx context.Context, status string) ([]*Approval, error) {
	if status != "" && status != StatusPending && status != StatusApproved && status != StatusRejected {
		return nil, internal.ErrInvalidApprovalStatus
	}
	return s.repo.GetAll(ctx, status)
}

func (s *Service) GetByEmployeeID(ctx context.Context, employeeID string) ([]*Approval, error) {
	return s.repo.GetByEmployeeID(ctx, employeeID)
}

// Approve moves a pending request to approved. Decided requests stay
// decided.
func (s *Service) Approve(ctx context.Context, id int64, decidedBy string) (*Approval, error) {
	return s.decide(ctx, id, StatusApproved, decidedBy)
}

// Reject moves a pending request to rejected.
func (s *Service) Reject(ctx context.Context, id int64, decidedBy string) (*Approval, error) {
	return s.decide(ctx, id, StatusRejected, decidedBy)
}

func (s *Service) decide(ctx context.Context, id int64, status, decidedBy string) (*Approval, error) {
	approval, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !approval.IsPending() {
		s.logger.Warn("decision on non-pending approval rejected",
			"approval_id", id,
			"current_status", approval.Status,
			"requested_status", status)
		return nil, internal.ErrInvalidApprovalStatus
	}

	decidedAt := time.Now()
	if err := s.repo.UpdateDecision(ctx, id, status, decidedBy, decidedAt); err != nil {
		s.logger.Error("failed to record decision", "error", err, "approval_id", id)
		return nil, err
	}

	s.logger.Info("approval decided",
		"approval_id", id,
		"status", status,
		"decided_by", decidedBy)
	return s.repo.GetByID(ctx, id)
}
