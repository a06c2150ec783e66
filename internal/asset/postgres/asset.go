package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/asset"
	assetDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/asset"
	"github.com/lumenkraft/hr-management/internal/database"
)

type AssetRepository struct {
	exec *database.Executor
}

func NewAssetRepository(exec *database.Executor) asset.Repository {
	return &AssetRepository{exec: exec}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	dm := asset.ToDataModel(a)
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Create(dm).Error
	})
	if err != nil {
		return err
	}
	a.ID = dm.ID
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*asset.Asset, error) {
	var dm assetDatamodel.Asset
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.First(&dm, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrAssetNotFound
		}
		return nil, err
	}
	return asset.FromDataModel(&dm), nil
}

func (r *AssetRepository) GetAll(ctx context.Context) ([]*asset.Asset, error) {
	var dms []*assetDatamodel.Asset
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Order("created_at DESC").Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(dms), nil
}

func (r *AssetRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]*asset.Asset, error) {
	var dms []*assetDatamodel.Asset
	err := r.exec.Execute(ctx, func(db *gorm.DB) error {
		return db.Where("assigned_to = ?", employeeID).
			Order("created_at DESC").
			Find(&dms).Error
	})
	if err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(dms), nil
}

func (r *AssetRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		res := db.Model(&assetDatamodel.Asset{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrAssetNotFound
		}
		return nil
	})
}

func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	return r.exec.Execute(ctx, func(db *gorm.DB) error {
		res := db.Where("id = ?", id).Delete(&assetDatamodel.Asset{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrAssetNotFound
		}
		return nil
	})
}
