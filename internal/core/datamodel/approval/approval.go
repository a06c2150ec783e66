package approval

import "time"

// Approval is a pending HR request (leave, expense reimbursement, document
// change) awaiting a decision.
type Approval struct {
	ID          int64      `gorm:"primaryKey"`
	EmployeeID  string     `gorm:"column:employee_id;type:uuid;not null;index"`
	RequestType string     `gorm:"column:request_type;not null"`
	Details     *string    `gorm:"column:details"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	DecidedBy   *string    `gorm:"column:decided_by;type:uuid"`
	DecidedAt   *time.Time `gorm:"column:decided_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Approval) TableName() string {
	return "approvals"
}
