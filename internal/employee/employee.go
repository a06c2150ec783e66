package employee

import (
	"fmt"
	"time"

	employeeDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/employee"
)

// Employee is the domain shape served over HTTP. Field names follow the
// admin UI's existing wire format, so they stay camelCase.
type Employee struct {
	ID               string     `json:"id"`
	BadgeID          string     `json:"empId"`
	FirstName        *string    `json:"firstName"`
	LastName         *string    `json:"lastName"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Gender           *string    `json:"gender"`
	AadhaarNumber    *string    `json:"aadhaarNumber"`
	PANNumber        *string    `json:"panNumber"`
	Email            *string    `json:"email"`
	PhoneNumber      *string    `json:"phoneNumber"`
	EmergencyContact *string    `json:"emergencyContact"`
	Photo            *string    `json:"photo"`
	BloodGroup       *string    `json:"bloodGroup"`
	PresentAddress   *string    `json:"presentAddress"`
	PermanentAddress *string    `json:"permanentAddress"`
	Designation      *string    `json:"designation"`
	Department       *string    `json:"department"`
	DateOfJoining    *time.Time `json:"dateOfJoining"`
	WorkLocation     *string    `json:"workLocation"`
	BankName         *string    `json:"bankName"`
	AccountNumber    *string    `json:"accountNumber"`
	IFSCCode         *string    `json:"ifscCode"`

	PasswordHash        *string `json:"password"`
	TempPasswordHash    *string `json:"tempPasswordHash,omitempty"`
	ChangedTempPassword bool    `json:"changedTempPassword"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Education []Education `json:"educationDetails"`
}

type Education struct {
	ID            int64   `json:"id,omitempty"`
	EmployeeID    string  `json:"employeeId,omitempty"`
	Institution   *string `json:"institution"`
	University    *string `json:"university"`
	Qualification *string `json:"qualification"`
	YearCompleted *string `json:"yearCompleted"`
}

// FormatBadgeID renders a sequence value as a human-readable badge ID,
// e.g. ("LK", 3, 7) -> "LK007". Values wider than pad are not truncated.
func FormatBadgeID(prefix string, pad int, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, pad, seq)
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	dm := &employeeDatamodel.Employee{
		ID:                  e.ID,
		BadgeID:             e.BadgeID,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		DateOfBirth:         e.DateOfBirth,
		Gender:              e.Gender,
		AadhaarNumber:       e.AadhaarNumber,
		PANNumber:           e.PANNumber,
		Email:               e.Email,
		PhoneNumber:         e.PhoneNumber,
		EmergencyContact:    e.EmergencyContact,
		Photo:               e.Photo,
		BloodGroup:          e.BloodGroup,
		PresentAddress:      e.PresentAddress,
		PermanentAddress:    e.PermanentAddress,
		Designation:         e.Designation,
		Department:          e.Department,
		DateOfJoining:       e.DateOfJoining,
		WorkLocation:        e.WorkLocation,
		BankName:            e.BankName,
		AccountNumber:       e.AccountNumber,
		IFSCCode:            e.IFSCCode,
		PasswordHash:        e.PasswordHash,
		TempPasswordHash:    e.TempPasswordHash,
		ChangedTempPassword: e.ChangedTempPassword,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	for _, ed := range e.Education {
		dm.Education = append(dm.Education, employeeDatamodel.Education{
			ID:            ed.ID,
			EmployeeID:    ed.EmployeeID,
			Institution:   ed.Institution,
			University:    ed.University,
			Qualification: ed.Qualification,
			YearCompleted: ed.YearCompleted,
		})
	}
	return dm
}

func FromDataModel(dm *employeeDatamodel.Employee) *Employee {
	e := &Employee{
		ID:                  dm.ID,
		BadgeID:             dm.BadgeID,
		FirstName:           dm.FirstName,
		LastName:            dm.LastName,
		DateOfBirth:         dm.DateOfBirth,
		Gender:              dm.Gender,
		AadhaarNumber:       dm.AadhaarNumber,
		PANNumber:           dm.PANNumber,
		Email:               dm.Email,
		PhoneNumber:         dm.PhoneNumber,
		EmergencyContact:    dm.EmergencyContact,
		Photo:               dm.Photo,
		BloodGroup:          dm.BloodGroup,
		PresentAddress:      dm.PresentAddress,
		PermanentAddress:    dm.PermanentAddress,
		Designation:         dm.Designation,
		Department:          dm.Department,
		DateOfJoining:       dm.DateOfJoining,
		WorkLocation:        dm.WorkLocation,
		BankName:            dm.BankName,
		AccountNumber:       dm.AccountNumber,
		IFSCCode:            dm.IFSCCode,
		PasswordHash:        dm.PasswordHash,
		TempPasswordHash:    dm.TempPasswordHash,
		ChangedTempPassword: dm.ChangedTempPassword,
		CreatedAt:           dm.CreatedAt,
		UpdatedAt:           dm.UpdatedAt,
		Education:           make([]Education, 0, len(dm.Education)),
	}
	for _, ed := range dm.Education {
		e.Education = append(e.Education, Education{
			ID:            ed.ID,
			EmployeeID:    ed.EmployeeID,
			Institution:   ed.Institution,
			University:    ed.University,
			Qualification: ed.Qualification,
			YearCompleted: ed.YearCompleted,
		})
	}
	return e
}

func FromDataModelSlice(dms []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(dms))
	for i, dm := range dms {
		result[i] = FromDataModel(dm)
	}
	return result
}
