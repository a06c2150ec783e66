package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/approval"
	approvalDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/approval"
	"github.com/lumenkraft/hr-management/internal/database"
)

type ApprovalRepository struct {
	exec *database.Executor
}

func NewApprovalRepository(exec *database.Executor) approval.Repository {
	return &ApprovalRepository{exec: exec}
}

func (r *ApprovalRepository) Create(ctx context.Context, a *approval.Approval) error {
	dm := approval.ToDataModel(a)
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Create(dm).Error
	})
	if err != nil {
		return err
	}
	a.ID = dm.ID
	return nil
}

func (r *ApprovalRepository) GetByID(ctx context.Context, id int64) (*approval.Approval, error) {
	var dm approvalDatamodel.Approval
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.First(&dm, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrApprovalNotFound
		}
		return nil, err
	}
	return approval.FromDataModel(&dm), nil
}

func (r *ApprovalRepository) GetAll(ctx context.Context, status string) ([]*approval.Approval, error) {
	var dms []*approvalDatamodel.Approval
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		q := db.Order("created_at DESC")
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q.Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return approval.FromDataModelSlice(dms), nil
}

func (r *ApprovalRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]*approval.Approval, error) {
	var dms []*approvalDatamodel.Approval
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Where("employee_id = ?", employeeID).
			Order("created_at DESC").
			Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return approval.FromDataModelSlice(dms), nil
}

// UpdateDecision records a decision, guarded in SQL so two concurrent
// deciders cannot both win: only a still-pending row is updated.
func (r *ApprovalRepository) UpdateDecision(ctx context.Context, id int64, status, decidedBy string, decidedAt time.Time) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		fields := map[string]interface{}{
			"status":     status,
			"decided_at": decidedAt,
			"updated_at": time.Now(),
		}
		if decidedBy != "" {
			fields["decided_by"] = decidedBy
		}
		res := db.Model(&approvalDatamodel.Approval{}).
			Where("id = ? AND status = ?", id, approval.StatusPending).
			Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrInvalidApprovalStatus
		}
		return nil
	})
}
