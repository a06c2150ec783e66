package asset

import "time"

// Asset is a tracked company asset, optionally assigned to an employee.
type Asset struct {
	ID         int64      `gorm:"primaryKey"`
	Tag        string     `gorm:"column:tag;uniqueIndex;not null"`
	Name       string     `gorm:"column:name;not null"`
	Category   *string    `gorm:"column:category"`
	Status     string     `gorm:"column:status;not null;default:available"`
	AssignedTo *string    `gorm:"column:assigned_to;type:uuid;index"`
	AssignedAt *time.Time `gorm:"column:assigned_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Asset) TableName() string {
	return "assets"
}
