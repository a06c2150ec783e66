package asset

import (
	"time"

	assetDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/asset"
)

const (
	StatusAvailable = "available"
	StatusAssigned  = "assigned"
	StatusRetired   = "retired"
)

// Asset is a company asset tracked by its tag. Assignment links it to an
// employee and flips the status; unassignment returns it to the pool.
type Asset struct {
	ID         int64      `json:"id"`
	Tag        string     `json:"tag"`
	Name       string     `json:"name"`
	Category   *string    `json:"category"`
	Status     string     `json:"status"`
	AssignedTo *string    `json:"assignedTo,omitempty"`
	AssignedAt *time.Time `json:"assignedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ToDataModel(a *Asset) *assetDatamodel.Asset {
	return &assetDatamodel.Asset{
		ID:         a.ID,
		Tag:        a.Tag,
		Name:       a.Name,
		Category:   a.Category,
		Status:     a.Status,
		AssignedTo: a.AssignedTo,
		AssignedAt: a.AssignedAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDataModel(dm *assetDatamodel.Asset) *Asset {
	return &Asset{
		ID:         dm.ID,
		Tag:        dm.Tag,
		Name:       dm.Name,
		Category:   dm.Category,
		Status:     dm.Status,
		AssignedTo: dm.AssignedTo,
		AssignedAt: dm.AssignedAt,
		CreatedAt:  dm.CreatedAt,
		UpdatedAt:  dm.UpdatedAt,
	}
}

func FromDataModelSlice(dms []*assetDatamodel.Asset) []*Asset {
	out := make([]*Asset, len(dms))
	for i, dm := range dms {
		out[i] = FromDataModel(dm)
	}
	return out
}
