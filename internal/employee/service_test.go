package employee_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/core/common/patch"
	"github.com/lumenkraft/hr-management/internal/employee"
)

func patchOf[T any](v T) patch.Optional[T] { return patch.Of(v) }
func patchNull[T any]() patch.Optional[T]  { return patch.Null[T]() }

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// MockRepository implements employee.Repository for testing
type MockRepository struct {
	employees map[string]*employee.Employee
	nextSeq   int64

	seqErr     error
	shouldFail bool
	failError  error

	lastUpdateFields   map[string]interface{}
	lastEducationRows  []employee.Education
	educationReplaced  bool
	replaceEducationFn func(id string, rows []employee.Education) error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		employees: make(map[string]*employee.Employee),
		nextSeq:   1,
	}
}

func (m *MockRepository) NextBadgeSequence(ctx context.Context) (int64, error) {
	if m.seqErr != nil {
		return 0, m.seqErr
	}
	seq := m.nextSeq
	m.nextSeq++
	return seq, nil
}

func (m *MockRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	clone := *emp
	m.employees[emp.ID] = &clone
	return nil
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*employee.Employee
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *MockRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if m.shouldFail {
		return m.failError
	}
	m.lastUpdateFields = fields
	emp, ok := m.employees[id]
	if !ok {
		return internal.ErrEmployeeNotFound
	}
	if v, ok := fields["first_name"]; ok {
		if v == nil {
			emp.FirstName = nil
		} else {
			s := v.(string)
			emp.FirstName = &s
		}
	}
	if v, ok := fields["department"]; ok {
		if v == nil {
			emp.Department = nil
		} else {
			s := v.(string)
			emp.Department = &s
		}
	}
	return nil
}

func (m *MockRepository) ReplaceEducation(ctx context.Context, id string, rows []employee.Education) error {
	if m.replaceEducationFn != nil {
		return m.replaceEducationFn(id, rows)
	}
	if m.shouldFail {
		return m.failError
	}
	m.educationReplaced = true
	m.lastEducationRows = rows
	emp, ok := m.employees[id]
	if !ok {
		return internal.ErrEmployeeNotFound
	}
	emp.Education = rows
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.employees[id]; !ok {
		return internal.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func strPtr(s string) *string { return &s }

var _ = Describe("Employee Service", func() {
	var (
		mockRepo *MockRepository
		service  *employee.Service
		logger   *slog.Logger
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, internal.EmployeeConfig{
			BadgePrefix: "LK",
			BadgePad:    3,
		}, bcrypt.MinCost, logger)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("assigns a zero-padded badge ID from the sequence", func() {
			mockRepo.nextSeq = 7

			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{
				FirstName: strPtr("Asha"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.BadgeID).To(Equal("LK007"))
		})

		It("does not truncate sequence values wider than the pad", func() {
			mockRepo.nextSeq = 1234

			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{})

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.BadgeID).To(Equal("LK1234"))
		})

		It("fails the whole creation when the sequence is unavailable", func() {
			mockRepo.seqErr = internal.ErrBadgeSequence

			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{})

			Expect(err).To(MatchError(internal.ErrBadgeSequence))
			Expect(emp).To(BeNil())
			Expect(mockRepo.employees).To(BeEmpty())
		})

		It("hashes a supplied temp password and never stores the plaintext", func() {
			dto := &employee.CreateEmployeeDTO{TempPassword: "hunter2secret"}

			emp, generated, err := service.Create(ctx, dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(generated).To(BeEmpty())
			Expect(dto.TempPassword).To(BeEmpty())
			Expect(emp.TempPasswordHash).NotTo(BeNil())
			Expect(*emp.TempPasswordHash).NotTo(ContainSubstring("hunter2secret"))
			Expect(bcrypt.CompareHashAndPassword([]byte(*emp.TempPasswordHash), []byte("hunter2secret"))).To(Succeed())
			Expect(emp.ChangedTempPassword).To(BeFalse())
			Expect(emp.PasswordHash).To(BeNil())
		})

		It("generates a temp password when asked and returns it exactly once", func() {
			emp, generated, err := service.Create(ctx, &employee.CreateEmployeeDTO{GenerateTemp: true})

			Expect(err).NotTo(HaveOccurred())
			Expect(generated).NotTo(BeEmpty())
			Expect(emp.TempPasswordHash).NotTo(BeNil())
			Expect(*emp.TempPasswordHash).NotTo(Equal(generated))
			Expect(bcrypt.CompareHashAndPassword([]byte(*emp.TempPasswordHash), []byte(generated))).To(Succeed())
		})

		It("leaves credentials empty when no temp password is requested", func() {
			emp, generated, err := service.Create(ctx, &employee.CreateEmployeeDTO{})

			Expect(err).NotTo(HaveOccurred())
			Expect(generated).To(BeEmpty())
			Expect(emp.TempPasswordHash).To(BeNil())
			Expect(emp.PasswordHash).To(BeNil())
		})

		It("drops blank education rows", func() {
			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{
				EducationDetails: []employee.EducationInput{
					{Institution: strPtr("IIT Delhi"), Qualification: strPtr("B.Tech")},
					{Institution: strPtr("  "), University: strPtr(""), Qualification: nil},
					{},
				},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.Education).To(HaveLen(1))
			Expect(*emp.Education[0].Institution).To(Equal("IIT Delhi"))
		})

		It("prefers the education field over educationDetails", func() {
			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{
				Education: []employee.EducationInput{
					{Institution: strPtr("Current Field")},
				},
				EducationDetails: []employee.EducationInput{
					{Institution: strPtr("Legacy Field")},
				},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.Education).To(HaveLen(1))
			Expect(*emp.Education[0].Institution).To(Equal("Current Field"))
		})

		It("parses date-only strings as UTC midnight", func() {
			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{
				DateOfBirth: strPtr("1990-06-15"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.DateOfBirth).NotTo(BeNil())
			Expect(emp.DateOfBirth.Year()).To(Equal(1990))
			Expect(emp.DateOfBirth.Hour()).To(Equal(0))
		})

		It("treats unparseable dates as absent", func() {
			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{
				DateOfBirth: strPtr("not-a-date"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.DateOfBirth).To(BeNil())
		})
	})

	Describe("GetByID", func() {
		It("returns not-found for a missing id", func() {
			_, err := service.GetByID(ctx, "missing")
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Update", func() {
		var existingID string

		BeforeEach(func() {
			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{
				FirstName:  strPtr("Ravi"),
				Department: strPtr("Engineering"),
			})
			Expect(err).NotTo(HaveOccurred())
			existingID = emp.ID
		})

		It("writes only the keys present in the patch", func() {
			var dto employee.UpdateEmployeeDTO
			dto.FirstName = patchOf("Ravindra")

			emp, err := service.Update(ctx, existingID, &dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(*emp.FirstName).To(Equal("Ravindra"))
			Expect(*emp.Department).To(Equal("Engineering"))
			Expect(mockRepo.lastUpdateFields).To(HaveKey("first_name"))
			Expect(mockRepo.lastUpdateFields).NotTo(HaveKey("department"))
		})

		It("clears a field given a present null", func() {
			var dto employee.UpdateEmployeeDTO
			dto.Department = patchNull[string]()

			emp, err := service.Update(ctx, existingID, &dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(emp.Department).To(BeNil())
			Expect(mockRepo.lastUpdateFields["department"]).To(BeNil())
		})

		It("replaces education wholesale when the key is present", func() {
			var dto employee.UpdateEmployeeDTO
			dto.EducationDetails = patchOf([]employee.EducationInput{
				{Institution: strPtr("NIT Trichy")},
				{},
			})

			emp, err := service.Update(ctx, existingID, &dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.educationReplaced).To(BeTrue())
			Expect(emp.Education).To(HaveLen(1))
		})

		It("clears education given a present empty list", func() {
			var dto employee.UpdateEmployeeDTO
			dto.EducationDetails = patchOf([]employee.EducationInput{})

			_, err := service.Update(ctx, existingID, &dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.educationReplaced).To(BeTrue())
			Expect(mockRepo.lastEducationRows).To(BeEmpty())
		})

		It("leaves education untouched when the key is absent", func() {
			var dto employee.UpdateEmployeeDTO
			dto.FirstName = patchOf("Someone")

			_, err := service.Update(ctx, existingID, &dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.educationReplaced).To(BeFalse())
		})

		It("returns not-found for a missing id", func() {
			var dto employee.UpdateEmployeeDTO
			dto.FirstName = patchOf("Nobody")

			_, err := service.Update(ctx, "missing", &dto)

			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})

		It("propagates a failed education replacement", func() {
			replaceErr := errors.New("database error")
			mockRepo.replaceEducationFn = func(id string, rows []employee.Education) error {
				return replaceErr
			}

			var dto employee.UpdateEmployeeDTO
			dto.EducationDetails = patchOf([]employee.EducationInput{
				{Institution: strPtr("Somewhere")},
			})

			_, err := service.Update(ctx, existingID, &dto)
			Expect(err).To(MatchError(replaceErr))
		})
	})

	Describe("Delete", func() {
		It("removes an existing employee", func() {
			emp, _, err := service.Create(ctx, &employee.CreateEmployeeDTO{})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, emp.ID)).To(Succeed())
			_, err = service.GetByID(ctx, emp.ID)
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})

		It("returns not-found for a missing id", func() {
			err := service.Delete(ctx, "missing")
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})
})
