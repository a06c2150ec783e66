package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumenkraft/hr-management/internal"
)

type Repository interface {
	CreateCycle(ctx context.Context, cycle *Cycle) error
	GetCycleByID(ctx context.Context, id int64) (*Cycle, error)
	GetCycles(ctx context.Context, status string) ([]*Cycle, error)
	ProcessCycle(ctx context.Context, id int64, processedBy string, processedAt time.Time, items []Item, totalNet int64) error
	UpsertSalary(ctx context.Context, salary *Salary) error
	GetSalaries(ctx context.Context) ([]*Salary, error)
	GetSalaryByEmployeeID(ctx context.Context, employeeID string) (*Salary, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateCycle(ctx context.Context, dto CreateCycleDTO) (*Cycle, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	cycle := &Cycle{
		Period:    dto.Period,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateCycle(ctx, cycle); err != nil {
		s.logger.Error("failed to create payroll cycle", "error", err, "period", dto.Period)
		return nil, err
	}

	s.logger.Info("payroll cycle created", "cycle_id", cycle.ID, "period", cycle.Period)
	return cycle, nil
}

func (s *Service) GetCycleByID(ctx context.Context, id int64) (*Cycle, error) {
	return s.repo.GetCycleByID(ctx, id)
}

// GetCycles lists cycles, optionally filtered by status.
func (s *Service) GetCycles(ctx context.Context, status string) ([]*Cycle, error) {
	if status != "" && status != StatusPending && status != StatusProcessed {
		return nil, internal.ErrInvalidCycleStatus
	}
	return s.repo.GetCycles(ctx, status)
}

// ProcessCycle computes pay for every configured salary and marks the cycle
// processed. A cycle is processed at most once; the snapshotted items never
// change after that.
func (s *Service) ProcessCycle(ctx context.Context, id int64, processedBy string) (*Cycle, error) {
	cycle, err := s.repo.GetCycleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !cycle.IsPending() {
		s.logger.Warn("processing a non-pending payroll cycle rejected",
			"cycle_id", id,
			"current_status", cycle.Status)
		return nil, internal.ErrInvalidCycleStatus
	}

	salaries, err := s.repo.GetSalaries(ctx)
	if err != nil {
		return nil, err
	}
	if len(salaries) == 0 {
		return nil, internal.NewValidationError("no salaries configured", internal.ErrCodeValidationFailed)
	}

	items := make([]Item, len(salaries))
	var totalNet int64
	for i, salary := range salaries {
		items[i] = ComputeItem(salary)
		items[i].CycleID = id
		totalNet += items[i].NetPay
	}

	processedAt := time.Now()
	if err := s.repo.ProcessCycle(ctx, id, processedBy, processedAt, items, totalNet); err != nil {
		s.logger.Error("failed to process payroll cycle", "error", err, "cycle_id", id)
		return nil, err
	}

	s.logger.Info("payroll cycle processed",
		"cycle_id", id,
		"period", cycle.Period,
		"employees", len(items),
		"total_net", totalNet,
		"processed_by", processedBy)
	return s.repo.GetCycleByID(ctx, id)
}

func (s *Service) UpsertSalary(ctx context.Context, dto UpsertSalaryDTO) (*Salary, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	salary := &Salary{
		EmployeeID:   dto.EmployeeID,
		MonthlyGross: dto.MonthlyGross,
	}

	if err := s.repo.UpsertSalary(ctx, salary); err != nil {
		s.logger.Error("failed to upsert salary", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	return salary, nil
}

func (s *Service) GetSalaries(ctx context.Context) ([]*Salary, error) {
	return s.repo.GetSalaries(ctx)
}

func (s *Service) GetSalaryByEmployeeID(ctx context.Context, employeeID string) (*Salary, error) {
	return s.repo.GetSalaryByEmployeeID(ctx, employeeID)
}
