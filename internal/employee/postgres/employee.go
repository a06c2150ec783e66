package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lumenkraft/hr-management/internal"
	employeeDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/employee"
	"github.com/lumenkraft/hr-management/internal/database"
	"github.com/lumenkraft/hr-management/internal/employee"
)

// EmployeeRepository implements employee.Repository using GORM. Every
// round-trip goes through the resilient executor.
type EmployeeRepository struct {
	exec *database.Executor
}

func NewEmployeeRepository(exec *database.Executor) employee.Repository {
	return &EmployeeRepository{exec: exec}
}

// NextBadgeSequence reads the next value of the shared employee number
// sequence. A missing or invalid value is a configuration fault
// (ErrBadgeSequence), distinct from a transient connection failure.
func (r *EmployeeRepository) NextBadgeSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Raw("SELECT nextval('employee_number_seq') AS seq").Scan(&seq).Error
	})
	if err != nil {
		return 0, err
	}
	if !seq.Valid || seq.Int64 <= 0 {
		return 0, internal.ErrBadgeSequence
	}
	return seq.Int64, nil
}

// Create inserts the employee and its education rows as one creation; GORM
// wraps the parent and association inserts in a single transaction.
func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	dm := employee.ToDataModel(emp)
	now := time.Now()
	dm.CreatedAt = now
	dm.UpdatedAt = now

	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Create(dm).Error
	})
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	var dms []*employeeDatamodel.Employee
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Preload("Education").
			Order("created_at DESC").
			Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(dms), nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	var dm employeeDatamodel.Employee
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Preload("Education").First(&dm, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&dm), nil
}

// Update writes only the given columns.
func (r *EmployeeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Model(&employeeDatamodel.Employee{}).
			Where("id = ?", id).
			Updates(fields).Error
	})
}

// ReplaceEducation swaps the owned education rows wholesale. Delete and
// insert run in one transaction so readers never observe a half-replaced
// set.
func (r *EmployeeRepository) ReplaceEducation(ctx context.Context, id string, rows []employee.Education) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("employee_id = ?", id).
				Delete(&employeeDatamodel.Education{}).Error; err != nil {
				return err
			}
			if len(rows) == 0 {
				return nil
			}
			dms := make([]employeeDatamodel.Education, len(rows))
			for i, row := range rows {
				dms[i] = employeeDatamodel.Education{
					EmployeeID:    id,
					Institution:   row.Institution,
					University:    row.University,
					Qualification: row.Qualification,
					YearCompleted: row.YearCompleted,
				}
			}
			return tx.Create(&dms).Error
		})
	})
}

// Delete removes education rows then the employee row in one transaction.
// Deleting a missing id reports ErrEmployeeNotFound.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("employee_id = ?", id).
				Delete(&employeeDatamodel.Education{}).Error; err != nil {
				return err
			}
			res := tx.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return internal.ErrEmployeeNotFound
			}
			return nil
		})
	})
}
