package payroll

import "time"

// Cycle is one payroll run for a calendar month. A cycle starts pending and
// is processed exactly once.
type Cycle struct {
	ID          int64      `gorm:"primaryKey"`
	Period      string     `gorm:"column:period;not null;uniqueIndex"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	ProcessedBy *string    `gorm:"column:processed_by;type:uuid"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	TotalNet    int64      `gorm:"column:total_net;not null;default:0"`
	Items       []Item     `gorm:"foreignKey:CycleID;references:ID"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Cycle) TableName() string {
	return "payroll_cycles"
}

// Salary is the monthly gross configured per employee, the input to
// processing.
type Salary struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex"`
	MonthlyGross int64     `gorm:"column:monthly_gross;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

func (Salary) TableName() string {
	return "salaries"
}

// Item is the per-employee pay computed when a cycle is processed. Amounts
// are snapshotted so later salary edits never rewrite history.
type Item struct {
	ID         int64     `gorm:"primaryKey"`
	CycleID    int64     `gorm:"column:cycle_id;not null;index"`
	EmployeeID string    `gorm:"column:employee_id;type:uuid;not null"`
	Gross      int64     `gorm:"column:gross;not null"`
	Tax        int64     `gorm:"column:tax;not null"`
	Deductions int64     `gorm:"column:deductions;not null"`
	Benefits   int64     `gorm:"column:benefits;not null"`
	NetPay     int64     `gorm:"column:net_pay;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
}

func (Item) TableName() string {
	return "payroll_items"
}
