package employee

import "time"

// Employee is the persisted shape of an employee row. Scalar attributes are
// pointers: the HR screens submit partial records and every column except the
// identifiers is nullable.
type Employee struct {
	ID               string     `gorm:"primaryKey;type:uuid"`
	BadgeID          string     `gorm:"column:badge_id;uniqueIndex;not null"`
	FirstName        *string    `gorm:"column:first_name"`
	LastName         *string    `gorm:"column:last_name"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth"`
	Gender           *string    `gorm:"column:gender"`
	AadhaarNumber    *string    `gorm:"column:aadhaar_number"`
	PANNumber        *string    `gorm:"column:pan_number"`
	Email            *string    `gorm:"column:email"`
	PhoneNumber      *string    `gorm:"column:phone_number"`
	EmergencyContact *string    `gorm:"column:emergency_contact"`
	Photo            *string    `gorm:"column:photo"`
	BloodGroup       *string    `gorm:"column:blood_group"`
	PresentAddress   *string    `gorm:"column:present_address"`
	PermanentAddress *string    `gorm:"column:permanent_address"`
	Designation      *string    `gorm:"column:designation"`
	Department       *string    `gorm:"column:department"`
	DateOfJoining    *time.Time `gorm:"column:date_of_joining"`
	WorkLocation     *string    `gorm:"column:work_location"`
	BankName         *string    `gorm:"column:bank_name"`
	AccountNumber    *string    `gorm:"column:account_number"`
	IFSCCode         *string    `gorm:"column:ifsc_code"`

	PasswordHash        *string `gorm:"column:password_hash"`
	TempPasswordHash    *string `gorm:"column:temp_password_hash"`
	ChangedTempPassword bool    `gorm:"column:changed_temp_password;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`

	Education []Education `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// Education rows are owned by exactly one employee and have no independent
// lifecycle: they are replaced wholesale on update and removed with the
// employee.
type Education struct {
	ID            int64     `gorm:"primaryKey"`
	EmployeeID    string    `gorm:"column:employee_id;type:uuid;not null;index"`
	Institution   *string   `gorm:"column:institution"`
	University    *string   `gorm:"column:university"`
	Qualification *string   `gorm:"column:qualification"`
	YearCompleted *string   `gorm:"column:year_completed"`
	CreatedAt     time.Time `gorm:"column:created_at;default:now()"`
}

func (Education) TableName() string {
	return "educations"
}
