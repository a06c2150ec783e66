package payroll

import (
	"time"

	"github.com/lumenkraft/hr-management/internal"
)

// CreateCycleDTO opens a pending payroll cycle for a month.
type CreateCycleDTO struct {
	Period string `json:"period"`
}

// UpsertSalaryDTO sets the monthly gross for one employee.
type UpsertSalaryDTO struct {
	EmployeeID   string `json:"employeeId"`
	MonthlyGross int64  `json:"monthlyGross"`
}

func (d CreateCycleDTO) Validate() error {
	if d.Period == "" {
		return internal.NewValidationError("period is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse("2006-01", d.Period); err != nil {
		return internal.NewValidationError("period must be formatted YYYY-MM", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d UpsertSalaryDTO) Validate() error {
	if d.EmployeeID == "" {
		return internal.NewValidationError("employeeId is required", internal.ErrCodeValidationFailed)
	}
	if d.MonthlyGross <= 0 {
		return internal.NewValidationError("monthlyGross must be positive", internal.ErrCodeValidationFailed)
	}
	return nil
}
