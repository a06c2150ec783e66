package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenkraft/hr-management/internal"
	payrollDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/payroll"
	"github.com/lumenkraft/hr-management/internal/database"
	"github.com/lumenkraft/hr-management/internal/payroll"
)

type PayrollRepository struct {
	exec *database.Executor
}

func NewPayrollRepository(exec *database.Executor) payroll.Repository {
	return &PayrollRepository{exec: exec}
}

func (r *PayrollRepository) CreateCycle(ctx context.Context, cycle *payroll.Cycle) error {
	dm := payroll.CycleToDataModel(cycle)
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Create(dm).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return internal.ErrDuplicateCyclePeriod
		}
		return err
	}
	cycle.ID = dm.ID
	return nil
}

func (r *PayrollRepository) GetCycleByID(ctx context.Context, id int64) (*payroll.Cycle, error) {
	var dm payrollDatamodel.Cycle
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Preload("Items").First(&dm, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPayrollCycleNotFound
		}
		return nil, err
	}
	return payroll.CycleFromDataModel(&dm), nil
}

func (r *PayrollRepository) GetCycles(ctx context.Context, status string) ([]*payroll.Cycle, error) {
	var dms []*payrollDatamodel.Cycle
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		q := db.Order("period DESC")
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q.Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return payroll.CycleFromDataModelSlice(dms), nil
}

// ProcessCycle flips a pending cycle to processed and snapshots its items in
// one transaction. The status guard sits in SQL so two concurrent runs
// cannot both write items.
func (r *PayrollRepository) ProcessCycle(ctx context.Context, id int64, processedBy string, processedAt time.Time, items []payroll.Item, totalNet int64) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			fields := map[string]interface{}{
				"status":       payroll.StatusProcessed,
				"processed_at": processedAt,
				"total_net":    totalNet,
				"updated_at":   time.Now(),
			}
			if processedBy != "" {
				fields["processed_by"] = processedBy
			}
			res := tx.Model(&payrollDatamodel.Cycle{}).
				Where("id = ? AND status = ?", id, payroll.StatusPending).
				Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return internal.ErrInvalidCycleStatus
			}

			dms := make([]payrollDatamodel.Item, len(items))
			for i, item := range items {
				dms[i] = *payroll.ItemToDataModel(&item)
				dms[i].CycleID = id
			}
			return tx.Create(&dms).Error
		})
	})
}

// UpsertSalary inserts or replaces the one salary row per employee.
func (r *PayrollRepository) UpsertSalary(ctx context.Context, salary *payroll.Salary) error {
	dm := payroll.SalaryToDataModel(salary)
	now := time.Now()
	dm.UpdatedAt = now
	if dm.CreatedAt.IsZero() {
		dm.CreatedAt = now
	}

	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"monthly_gross", "updated_at"}),
		}).Create(dm).Error
	})
	if err != nil {
		return err
	}
	salary.ID = dm.ID
	salary.CreatedAt = dm.CreatedAt
	salary.UpdatedAt = dm.UpdatedAt
	return nil
}

func (r *PayrollRepository) GetSalaries(ctx context.Context) ([]*payroll.Salary, error) {
	var dms []*payrollDatamodel.Salary
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Order("employee_id").Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return payroll.SalaryFromDataModelSlice(dms), nil
}

func (r *PayrollRepository) GetSalaryByEmployeeID(ctx context.Context, employeeID string) (*payroll.Salary, error) {
	var dm payrollDatamodel.Salary
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.First(&dm, "employee_id = ?", employeeID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrSalaryNotFound
		}
		return nil, err
	}
	return payroll.SalaryFromDataModel(&dm), nil
}
