package approval

import "github.com/lumenkraft/hr-management/internal"

// CreateApprovalDTO raises a new pending request.
type CreateApprovalDTO struct {
	EmployeeID  string  `json:"employeeId"`
	RequestType string  `json:"requestType"`
	Details     *string `json:"details"`
}

func (d CreateApprovalDTO) Validate() error {
	if d.EmployeeID == "" {
		return internal.NewValidationError("employeeId is required", internal.ErrCodeValidationFailed)
	}
	if d.RequestType == "" {
		return internal.NewValidationError("requestType is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
