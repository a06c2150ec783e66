package employee

import (
	"strings"
	"time"

	"github.com/lumenkraft/hr-management/internal/core/common/patch"
)

// EducationInput is one education row as submitted by the UI.
type EducationInput struct {
	Institution   *string `json:"institution"`
	University    *string `json:"university"`
	Qualification *string `json:"qualification"`
	YearCompleted *string `json:"yearCompleted"`
}

// isBlank reports whether every identifying field is empty; such rows are
// dropped silently rather than persisted.
func (e EducationInput) isBlank() bool {
	return !hasValue(e.Institution) && !hasValue(e.Qualification) && !hasValue(e.University)
}

func hasValue(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// FilterEducation drops rows with no institution, qualification or
// university, mirroring how the admin UI pads forms with empty rows.
func FilterEducation(rows []EducationInput) []Education {
	out := make([]Education, 0, len(rows))
	for _, r := range rows {
		if r.isBlank() {
			continue
		}
		out = append(out, Education{
			Institution:   r.Institution,
			University:    r.University,
			Qualification: r.Qualification,
			YearCompleted: r.YearCompleted,
		})
	}
	return out
}

// CreateEmployeeDTO accepts the creation payload. Date fields arrive as
// strings and are normalized by the service; education is accepted under
// either of the two field names the UI has used over time.
type CreateEmployeeDTO struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Gender           *string `json:"gender"`
	AadhaarNumber    *string `json:"aadhaarNumber"`
	PANNumber        *string `json:"panNumber"`
	Email            *string `json:"email"`
	PhoneNumber      *string `json:"phoneNumber"`
	EmergencyContact *string `json:"emergencyContact"`
	Photo            *string `json:"photo"`
	BloodGroup       *string `json:"bloodGroup"`
	PresentAddress   *string `json:"presentAddress"`
	PermanentAddress *string `json:"permanentAddress"`
	Designation      *string `json:"designation"`
	Department       *string `json:"department"`
	DateOfJoining    *string `json:"dateOfJoining"`
	WorkLocation     *string `json:"workLocation"`
	BankName         *string `json:"bankName"`
	AccountNumber    *string `json:"accountNumber"`
	IFSCCode         *string `json:"ifscCode"`

	Education        []EducationInput `json:"education"`
	EducationDetails []EducationInput `json:"educationDetails"`

	GenerateTemp bool   `json:"generateTemp"`
	TempPassword string `json:"tempPassword"`
}

// EducationRows resolves the two accepted education field names, preferring
// the current one.
func (d *CreateEmployeeDTO) EducationRows() []EducationInput {
	if d.Education != nil {
		return d.Education
	}
	return d.EducationDetails
}

// UpdateEmployeeDTO is a field-presence-tracked patch: keys absent from the
// payload leave stored values untouched, keys present with null clear them.
type UpdateEmployeeDTO struct {
	FirstName        patch.Optional[string] `json:"firstName"`
	LastName         patch.Optional[string] `json:"lastName"`
	DateOfBirth      patch.Optional[string] `json:"dateOfBirth"`
	Gender           patch.Optional[string] `json:"gender"`
	AadhaarNumber    patch.Optional[string] `json:"aadhaarNumber"`
	PANNumber        patch.Optional[string] `json:"panNumber"`
	Email            patch.Optional[string] `json:"email"`
	PhoneNumber      patch.Optional[string] `json:"phoneNumber"`
	EmergencyContact patch.Optional[string] `json:"emergencyContact"`
	Photo            patch.Optional[string] `json:"photo"`
	BloodGroup       patch.Optional[string] `json:"bloodGroup"`
	PresentAddress   patch.Optional[string] `json:"presentAddress"`
	PermanentAddress patch.Optional[string] `json:"permanentAddress"`
	Designation      patch.Optional[string] `json:"designation"`
	Department       patch.Optional[string] `json:"department"`
	DateOfJoining    patch.Optional[string] `json:"dateOfJoining"`
	WorkLocation     patch.Optional[string] `json:"workLocation"`
	BankName         patch.Optional[string] `json:"bankName"`
	AccountNumber    patch.Optional[string] `json:"accountNumber"`
	IFSCCode         patch.Optional[string] `json:"ifscCode"`
	BadgeID          patch.Optional[string] `json:"empId"`

	Education        patch.Optional[[]EducationInput] `json:"education"`
	EducationDetails patch.Optional[[]EducationInput] `json:"educationDetails"`
}

// EducationRows resolves the education replacement list if either accepted
// key was present. The second return value reports presence.
func (d *UpdateEmployeeDTO) EducationRows() ([]EducationInput, bool) {
	if d.Education.Set {
		if d.Education.Value == nil {
			return nil, true
		}
		return *d.Education.Value, true
	}
	if d.EducationDetails.Set {
		if d.EducationDetails.Value == nil {
			return nil, true
		}
		return *d.EducationDetails.Value, true
	}
	return nil, false
}

// Fields flattens the set scalar keys into a column->value map for a partial
// update. Date strings are normalized; a present-but-null or unparseable
// date clears the column.
func (d *UpdateEmployeeDTO) Fields() map[string]interface{} {
	fields := make(map[string]interface{})

	setString := func(column string, f patch.Optional[string]) {
		if !f.Set {
			return
		}
		if f.Value == nil {
			fields[column] = nil
			return
		}
		fields[column] = *f.Value
	}

	setDate := func(column string, f patch.Optional[string]) {
		if !f.Set {
			return
		}
		if f.Value == nil {
			fields[column] = nil
			return
		}
		fields[column] = ParseDateOrNil(*f.Value)
	}

	setString("first_name", d.FirstName)
	setString("last_name", d.LastName)
	setDate("date_of_birth", d.DateOfBirth)
	setString("gender", d.Gender)
	setString("aadhaar_number", d.AadhaarNumber)
	setString("pan_number", d.PANNumber)
	setString("email", d.Email)
	setString("phone_number", d.PhoneNumber)
	setString("emergency_contact", d.EmergencyContact)
	setString("photo", d.Photo)
	setString("blood_group", d.BloodGroup)
	setString("present_address", d.PresentAddress)
	setString("permanent_address", d.PermanentAddress)
	setString("designation", d.Designation)
	setString("department", d.Department)
	setDate("date_of_joining", d.DateOfJoining)
	setString("work_location", d.WorkLocation)
	setString("bank_name", d.BankName)
	setString("account_number", d.AccountNumber)
	setString("ifsc_code", d.IFSCCode)

	// Badge IDs are assigned once at creation; allow correction only with a
	// non-null value.
	if d.BadgeID.Set && d.BadgeID.Value != nil {
		fields["badge_id"] = *d.BadgeID.Value
	}

	return fields
}

// ParseDateOrNil normalizes a date-like string to a canonical instant. A
// date-only value is interpreted as UTC midnight; invalid or empty input
// normalizes to absent rather than an error.
func ParseDateOrNil(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		u := t.UTC()
		return &u
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return ParseDateOrNil(*s)
}
