package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/auth"
	employeeDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/employee"
	"github.com/lumenkraft/hr-management/internal/database"
)

// AuthRepository reads and writes the credential columns on the employees
// table; auth has no table of its own.
type AuthRepository struct {
	exec *database.Executor
}

func NewAuthRepository(exec *database.Executor) auth.Repository {
	return &AuthRepository{exec: exec}
}

func (r *AuthRepository) GetCredentialsByEmail(ctx context.Context, email string) (*auth.Credentials, error) {
	var dm employeeDatamodel.Employee
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Select("id", "email", "password_hash", "temp_password_hash", "changed_temp_password").
			First(&dm, "email = ?", email).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toCredentials(&dm), nil
}

func (r *AuthRepository) GetCredentialsByID(ctx context.Context, employeeID string) (*auth.Credentials, error) {
	var dm employeeDatamodel.Employee
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Select("id", "email", "password_hash", "temp_password_hash", "changed_temp_password").
			First(&dm, "id = ?", employeeID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toCredentials(&dm), nil
}

// SetPermanentPassword stores the new hash, clears the temporary one and
// marks the employee as having completed the mandatory change.
func (r *AuthRepository) SetPermanentPassword(ctx context.Context, employeeID, passwordHash string) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		res := db.Model(&employeeDatamodel.Employee{}).
			Where("id = ?", employeeID).
			Updates(map[string]interface{}{
				"password_hash":         passwordHash,
				"temp_password_hash":    nil,
				"changed_temp_password": true,
				"updated_at":            time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrEmployeeNotFound
		}
		return nil
	})
}

func toCredentials(dm *employeeDatamodel.Employee) *auth.Credentials {
	email := ""
	if dm.Email != nil {
		email = *dm.Email
	}
	return &auth.Credentials{
		EmployeeID:          dm.ID,
		Email:               email,
		PasswordHash:        dm.PasswordHash,
		TempPasswordHash:    dm.TempPasswordHash,
		ChangedTempPassword: dm.ChangedTempPassword,
	}
}
