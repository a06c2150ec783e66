package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/employee"
)

// MockService implements employee.ServiceAPI for handler tests
type MockService struct {
	createFn func(ctx context.Context, dto *employee.CreateEmployeeDTO) (*employee.Employee, string, error)
	getAllFn func(ctx context.Context) ([]*employee.Employee, error)
	getFn    func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn func(ctx context.Context, id string, dto *employee.UpdateEmployeeDTO) (*employee.Employee, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *MockService) Create(ctx context.Context, dto *employee.CreateEmployeeDTO) (*employee.Employee, string, error) {
	return m.createFn(ctx, dto)
}

func (m *MockService) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	return m.getAllFn(ctx)
}

func (m *MockService) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	return m.getFn(ctx, id)
}

func (m *MockService) Update(ctx context.Context, id string, dto *employee.UpdateEmployeeDTO) (*employee.Employee, error) {
	return m.updateFn(ctx, id, dto)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

var _ = Describe("Employee Handler", func() {
	var (
		mockService *MockService
		handler     *employee.Handler
		router      *chi.Mux
	)

	BeforeEach(func() {
		mockService = &MockService{}
		handler = employee.NewHandler(mockService)
		router = chi.NewRouter()
		router.Post("/employees", handler.CreateEmployee)
		router.Get("/employees", handler.GetAllEmployees)
		router.Get("/employees/{id}", handler.GetEmployee)
		router.Patch("/employees/{id}", handler.UpdateEmployee)
		router.Delete("/employees/{id}", handler.DeleteEmployee)
	})

	sample := func() *employee.Employee {
		first := "Asha"
		return &employee.Employee{
			ID:        "11111111-1111-1111-1111-111111111111",
			BadgeID:   "LK007",
			FirstName: &first,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Education: []employee.Education{},
		}
	}

	Describe("CreateEmployee", func() {
		It("returns 201 with the created employee", func() {
			mockService.createFn = func(ctx context.Context, dto *employee.CreateEmployeeDTO) (*employee.Employee, string, error) {
				Expect(*dto.FirstName).To(Equal("Asha"))
				return sample(), "", nil
			}

			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"firstName": "Asha"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["empId"]).To(Equal("LK007"))
			Expect(body["firstName"]).To(Equal("Asha"))
			Expect(body).NotTo(HaveKey("generatedTempPassword"))
		})

		It("includes the generated temp password exactly once when produced", func() {
			mockService.createFn = func(ctx context.Context, dto *employee.CreateEmployeeDTO) (*employee.Employee, string, error) {
				return sample(), "Kx7mRp2wNq4v", nil
			}

			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"generateTemp": true}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["generatedTempPassword"]).To(Equal("Kx7mRp2wNq4v"))
		})

		It("returns 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{not json`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKey("error"))
		})
	})

	Describe("GetEmployee", func() {
		It("maps a missing employee to 404", func() {
			mockService.getFn = func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, internal.ErrEmployeeNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/employees/missing", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).To(Equal("Not found"))
		})

		It("collapses unexpected failures to a generic 500", func() {
			mockService.getFn = func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, context.DeadlineExceeded
			}

			req := httptest.NewRequest(http.MethodGet, "/employees/any", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).To(Equal("Server error"))
		})
	})

	Describe("UpdateEmployee", func() {
		It("passes presence-tracked fields through to the service", func() {
			var captured *employee.UpdateEmployeeDTO
			mockService.updateFn = func(ctx context.Context, id string, dto *employee.UpdateEmployeeDTO) (*employee.Employee, error) {
				captured = dto
				return sample(), nil
			}

			payload := `{"firstName": "Ravi", "department": null}`
			req := httptest.NewRequest(http.MethodPatch, "/employees/abc", bytes.NewBufferString(payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(captured.FirstName.Set).To(BeTrue())
			Expect(*captured.FirstName.Value).To(Equal("Ravi"))
			Expect(captured.Department.Set).To(BeTrue())
			Expect(captured.Department.Value).To(BeNil())
			Expect(captured.LastName.Set).To(BeFalse())
		})
	})

	Describe("DeleteEmployee", func() {
		It("returns a success envelope", func() {
			mockService.deleteFn = func(ctx context.Context, id string) error {
				return nil
			}

			req := httptest.NewRequest(http.MethodDelete, "/employees/abc", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"success": true}`))
		})

		It("maps a missing employee to 404", func() {
			mockService.deleteFn = func(ctx context.Context, id string) error {
				return internal.ErrEmployeeNotFound
			}

			req := httptest.NewRequest(http.MethodDelete, "/employees/missing", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
