package asset_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/asset"
)

func TestAssetService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Asset Service Suite")
}

// MockRepository implements asset.Repository for testing
type MockRepository struct {
	assets map[int64]*asset.Asset
	nextID int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		assets: make(map[int64]*asset.Asset),
		nextID: 1,
	}
}

func (m *MockRepository) Create(ctx context.Context, a *asset.Asset) error {
	a.ID = m.nextID
	m.nextID++
	clone := *a
	m.assets[a.ID] = &clone
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*asset.Asset, error) {
	a, ok := m.assets[id]
	if !ok {
		return nil, internal.ErrAssetNotFound
	}
	return a, nil
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*asset.Asset, error) {
	var result []*asset.Asset
	for _, a := range m.assets {
		result = append(result, a)
	}
	return result, nil
}

func (m *MockRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]*asset.Asset, error) {
	var result []*asset.Asset
	for _, a := range m.assets {
		if a.AssignedTo != nil && *a.AssignedTo == employeeID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *MockRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	a, ok := m.assets[id]
	if !ok {
		return internal.ErrAssetNotFound
	}
	if v, ok := fields["name"]; ok {
		a.Name = v.(string)
	}
	if v, ok := fields["status"]; ok {
		a.Status = v.(string)
	}
	if v, ok := fields["assigned_to"]; ok {
		if v == nil {
			a.AssignedTo = nil
		} else {
			s := v.(string)
			a.AssignedTo = &s
		}
	}
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.assets[id]; !ok {
		return internal.ErrAssetNotFound
	}
	delete(m.assets, id)
	return nil
}

var _ = Describe("Asset Service", func() {
	var (
		mockRepo *MockRepository
		service  *asset.Service
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = asset.NewService(mockRepo, logger)
		ctx = context.Background()
	})

	createAsset := func(tag string) *asset.Asset {
		a, err := service.Create(ctx, asset.CreateAssetDTO{
			Tag:  tag,
			Name: "ThinkPad T14",
		})
		Expect(err).NotTo(HaveOccurred())
		return a
	}

	Describe("Create", func() {
		It("registers a new asset as available", func() {
			a := createAsset("LT-0001")
			Expect(a.Status).To(Equal(asset.StatusAvailable))
			Expect(a.AssignedTo).To(BeNil())
		})

		It("requires a tag, reported as a 400", func() {
			_, err := service.Create(ctx, asset.CreateAssetDTO{Name: "Monitor"})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(appErr.Message).To(Equal("tag is required"))
		})
	})

	Describe("Assign", func() {
		It("assigns an available asset to an employee", func() {
			a := createAsset("LT-0001")

			assigned, err := service.Assign(ctx, a.ID, asset.AssignAssetDTO{EmployeeID: "emp-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(assigned.Status).To(Equal(asset.StatusAssigned))
			Expect(*assigned.AssignedTo).To(Equal("emp-1"))
		})

		It("refuses to assign an already assigned asset", func() {
			a := createAsset("LT-0001")
			_, err := service.Assign(ctx, a.ID, asset.AssignAssetDTO{EmployeeID: "emp-1"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Assign(ctx, a.ID, asset.AssignAssetDTO{EmployeeID: "emp-2"})
			Expect(err).To(HaveOccurred())
		})

		It("lists assets by assigned employee", func() {
			a := createAsset("LT-0001")
			createAsset("LT-0002")
			_, err := service.Assign(ctx, a.ID, asset.AssignAssetDTO{EmployeeID: "emp-1"})
			Expect(err).NotTo(HaveOccurred())

			assets, err := service.GetByEmployeeID(ctx, "emp-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(assets).To(HaveLen(1))
			Expect(assets[0].Tag).To(Equal("LT-0001"))
		})
	})

	Describe("Unassign", func() {
		It("returns an assigned asset to the pool", func() {
			a := createAsset("LT-0001")
			_, err := service.Assign(ctx, a.ID, asset.AssignAssetDTO{EmployeeID: "emp-1"})
			Expect(err).NotTo(HaveOccurred())

			returned, err := service.Unassign(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(returned.Status).To(Equal(asset.StatusAvailable))
			Expect(returned.AssignedTo).To(BeNil())
		})

		It("refuses to unassign an available asset", func() {
			a := createAsset("LT-0001")
			_, err := service.Unassign(ctx, a.ID)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("rejects an unknown status", func() {
			a := createAsset("LT-0001")
			bad := "lost"
			_, err := service.Update(ctx, a.ID, asset.UpdateAssetDTO{Status: &bad})
			Expect(err).To(HaveOccurred())
		})

		It("retires an asset", func() {
			a := createAsset("LT-0001")
			retired := asset.StatusRetired
			updated, err := service.Update(ctx, a.ID, asset.UpdateAssetDTO{Status: &retired})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(asset.StatusRetired))
		})
	})

	Describe("Delete", func() {
		It("removes an asset", func() {
			a := createAsset("LT-0001")
			Expect(service.Delete(ctx, a.ID)).To(Succeed())
			_, err := service.GetByID(ctx, a.ID)
			Expect(err).To(MatchError(internal.ErrAssetNotFound))
		})

		It("returns not-found for a missing id", func() {
			Expect(service.Delete(ctx, 404)).To(MatchError(internal.ErrAssetNotFound))
		})
	})
})
