package asset

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumenkraft/hr-management/internal"
)

type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id int64) (*Asset, error)
	GetAll(ctx context.Context) ([]*Asset, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*Asset, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, dto CreateAssetDTO) (*Asset, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &Asset{
		Tag:       dto.Tag,
		Name:      dto.Name,
		Category:  dto.Category,
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		s.logger.Error("failed to create asset", "error", err, "tag", dto.Tag)
		return nil, err
	}

	s.logger.Info("asset created", "asset_id", asset.ID, "tag", asset.Tag)
	return asset, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]*Asset, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByEmployeeID(ctx context.Context, employeeID string) ([]*Asset, error) {
	return s.repo.GetByEmployeeID(ctx, employeeID)
}

func (s *Service) Update(ctx context.Context, id int64, dto UpdateAssetDTO) (*Asset, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Category != nil {
		fields["category"] = *dto.Category
	}
	if dto.Status != nil {
		fields["status"] = *dto.Status
	}
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		if err := s.repo.Update(ctx, id, fields); err != nil {
			s.logger.Error("failed to update asset", "error", err, "asset_id", id)
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

// Assign hands the asset to an employee. Only an available asset can be
// assigned.
func (s *Service) Assign(ctx context.Context, id int64, dto AssignAssetDTO) (*Asset, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset.Status != StatusAvailable {
		return nil, internal.NewValidationError("asset is not available for assignment", internal.ErrCodeValidationFailed)
	}

	now := time.Now()
	fields := map[string]interface{}{
		"status":      StatusAssigned,
		"assigned_to": dto.EmployeeID,
		"assigned_at": now,
		"updated_at":  now,
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.logger.Error("failed to assign asset", "error", err, "asset_id", id)
		return nil, err
	}

	s.logger.Info("asset assigned", "asset_id", id, "employee_id", dto.EmployeeID)
	return s.repo.GetByID(ctx, id)
}

// Unassign returns an assigned asset to the available pool.
func (s *Service) Unassign(ctx context.Context, id int64) (*Asset, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset.Status != StatusAssigned {
		return nil, internal.NewValidationError("asset is not assigned", internal.ErrCodeValidationFailed)
	}

	fields := map[string]interface{}{
		"status":      StatusAvailable,
		"assigned_to": nil,
		"assigned_at": nil,
		"updated_at":  time.Now(),
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.logger.Error("failed to unassign asset", "error", err, "asset_id", id)
		return nil, err
	}

	s.logger.Info("asset unassigned", "asset_id", id)
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete asset", "error", err, "asset_id", id)
		return err
	}
	s.logger.Info("asset deleted", "asset_id", id)
	return nil
}
