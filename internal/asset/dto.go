package asset

import "github.com/lumenkraft/hr-management/internal"

type CreateAssetDTO struct {
	Tag      string  `json:"tag"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
}

type UpdateAssetDTO struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

type AssignAssetDTO struct {
	EmployeeID string `json:"employeeId"`
}

func (d CreateAssetDTO) Validate() error {
	if d.Tag == "" {
		return internal.NewValidationError("tag is required", internal.ErrCodeValidationFailed)
	}
	if d.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d UpdateAssetDTO) Validate() error {
	if d.Status != nil {
		switch *d.Status {
		case StatusAvailable, StatusAssigned, StatusRetired:
		default:
			return internal.NewValidationError("status must be available, assigned or retired", internal.ErrCodeValidationFailed)
		}
	}
	return nil
}

func (d AssignAssetDTO) Validate() error {
	if d.EmployeeID == "" {
		return internal.NewValidationError("employeeId is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
