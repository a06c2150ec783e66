package approval

import (
	"time"

	approvalDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/approval"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Approval is a request raised by or for an employee that a manager decides
// on. Decisions are terminal: only pending requests accept one.
type Approval struct {
	ID          int64      `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	RequestType string     `json:"requestType"`
	Details     *string    `json:"details"`
	Status      string     `json:"status"`
	DecidedBy   *string    `json:"decidedBy,omitempty"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (a *Approval) IsPending() bool {
	return a.Status == StatusPending
}

func ToDataModel(a *Approval) *approvalDatamodel.Approval {
	return &approvalDatamodel.Approval{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		RequestType: a.RequestType,
		Details:     a.Details,
		Status:      a.Status,
		DecidedBy:   a.DecidedBy,
		DecidedAt:   a.DecidedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromDataModel(dm *approvalDatamodel.Approval) *Approval {
	return &Approval{
		ID:          dm.ID,
		EmployeeID:  dm.EmployeeID,
		RequestType: dm.RequestType,
		Details:     dm.Details,
		Status:      dm.Status,
		DecidedBy:   dm.DecidedBy,
		DecidedAt:   dm.DecidedAt,
		CreatedAt:   dm.CreatedAt,
		UpdatedAt:   dm.UpdatedAt,
	}
}

func FromDataModelSlice(dms []*approvalDatamodel.Approval) []*Approval {
	out := make([]*Approval, len(dms))
	for i, dm := range dms {
		out[i] = FromDataModel(dm)
	}
	return out
}
