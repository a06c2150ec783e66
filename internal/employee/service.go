package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lumenkraft/hr-management/internal"
)

// Repository is the data-access contract for employees. Implementations
// route every round-trip through the resilient executor, so errors seen here
// are terminal: either application faults or exhausted-retry infrastructure
// failures.
type Repository interface {
	NextBadgeSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, emp *Employee) error
	GetAll(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	ReplaceEducation(ctx context.Context, id string, rows []Education) error
	Delete(ctx context.Context, id string) error
}

// Service orchestrates employee persistence: badge-ID assignment, temp
// credential hashing and the parent/child consistency of education rows.
type Service struct {
	repo        Repository
	badgePrefix string
	badgePad    int
	bcryptCost  int
	logger      *slog.Logger
}

func NewService(repo Repository, cfg internal.EmployeeConfig, bcryptCost int, logger *slog.Logger) *Service {
	prefix := cfg.BadgePrefix
	if prefix == "" {
		prefix = internal.DefaultBadgePrefix
	}
	pad := cfg.BadgePad
	if pad <= 0 {
		pad = internal.DefaultBadgePad
	}
	return &Service{
		repo:        repo,
		badgePrefix: prefix,
		badgePad:    pad,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// Create persists a new employee with its education rows as one logical
// creation. When a temp credential is requested the plaintext is hashed and
// discarded here; the generated password (if the server produced one) is
// returned exactly once so the operator can hand it over.
func (s *Service) Create(ctx context.Context, dto *CreateEmployeeDTO) (*Employee, string, error) {
	seq, err := s.repo.NextBadgeSequence(ctx)
	if err != nil {
		s.logger.Error("failed to obtain badge sequence", "error", err)
		return nil, "", err
	}
	badgeID := FormatBadgeID(s.badgePrefix, s.badgePad, seq)

	emp := &Employee{
		ID:               uuid.NewString(),
		BadgeID:          badgeID,
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		DateOfBirth:      parseDatePtr(dto.DateOfBirth),
		Gender:           dto.Gender,
		AadhaarNumber:    dto.AadhaarNumber,
		PANNumber:        dto.PANNumber,
		Email:            dto.Email,
		PhoneNumber:      dto.PhoneNumber,
		EmergencyContact: dto.EmergencyContact,
		Photo:            dto.Photo,
		BloodGroup:       dto.BloodGroup,
		PresentAddress:   dto.PresentAddress,
		PermanentAddress: dto.PermanentAddress,
		Designation:      dto.Designation,
		Department:       dto.Department,
		DateOfJoining:    parseDatePtr(dto.DateOfJoining),
		WorkLocation:     dto.WorkLocation,
		BankName:         dto.BankName,
		AccountNumber:    dto.AccountNumber,
		IFSCCode:         dto.IFSCCode,
		Education:        FilterEducation(dto.EducationRows()),
	}

	plaintext := dto.TempPassword
	dto.TempPassword = ""

	var generated string
	if plaintext == "" && dto.GenerateTemp {
		plaintext, err = GenerateTempPassword(DefaultTempPasswordLength)
		if err != nil {
			return nil, "", err
		}
		generated = plaintext
	}

	if plaintext != "" {
		hash, hashErr := HashTempPassword(plaintext, s.bcryptCost)
		plaintext = ""
		if hashErr != nil {
			s.logger.Error("failed to prepare temp credential", "error", hashErr)
			return nil, "", hashErr
		}
		emp.TempPasswordHash = &hash
		emp.ChangedTempPassword = false
		emp.PasswordHash = nil
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "badge_id", badgeID)
		return nil, "", err
	}

	created, err := s.repo.GetByID(ctx, emp.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("employee created",
		"employee_id", created.ID,
		"badge_id", created.BadgeID,
		"education_rows", len(created.Education))

	return created, generated, nil
}

// GetAll returns every employee with education, newest first. No pagination:
// acceptable at expected fleet scale, noted as a scaling limit.
func (s *Service) GetAll(ctx context.Context) ([]*Employee, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

// Update applies a partial update: only keys present in the patch are
// written, a present-null clears the field. A present education list is
// replaced wholesale (delete-all-then-insert-all, transactionally in the
// repository). Returns the freshly re-fetched record.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateEmployeeDTO) (*Employee, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := dto.Fields()
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		if err := s.repo.Update(ctx, id, fields); err != nil {
			s.logger.Error("failed to update employee", "error", err, "employee_id", id)
			return nil, err
		}
	}

	if rows, present := dto.EducationRows(); present {
		if err := s.repo.ReplaceEducation(ctx, id, FilterEducation(rows)); err != nil {
			s.logger.Error("failed to replace education rows", "error", err, "employee_id", id)
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes the employee and its education rows. A missing id is an
// error, not a silent success.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err != internal.ErrEmployeeNotFound {
			s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		}
		return err
	}
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
