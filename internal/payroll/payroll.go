package payroll

import (
	"time"

	payrollDatamodel "github.com/lumenkraft/hr-management/internal/core/datamodel/payroll"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
)

// Pay percentages withheld from the monthly gross.
const (
	taxPct       = 10
	deductionPct = 2
	benefitPct   = 3
)

// Cycle is one payroll run for a calendar month. Processing is terminal:
// only a pending cycle can be processed, and its items are immutable
// afterwards.
type Cycle struct {
	ID          int64      `json:"id"`
	Period      string     `json:"period"`
	Status      string     `json:"status"`
	ProcessedBy *string    `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	TotalNet    int64      `json:"totalNet"`
	Items       []Item     `json:"items,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (c *Cycle) IsPending() bool {
	return c.Status == StatusPending
}

// Salary is the configured monthly gross for one employee.
type Salary struct {
	ID           int64     `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	MonthlyGross int64     `json:"monthlyGross"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Item is the snapshotted pay of one employee inside a processed cycle.
type Item struct {
	ID         int64  `json:"id"`
	CycleID    int64  `json:"cycleId"`
	EmployeeID string `json:"employeeId"`
	Gross      int64  `json:"gross"`
	Tax        int64  `json:"tax"`
	Deductions int64  `json:"deductions"`
	Benefits   int64  `json:"benefits"`
	NetPay     int64  `json:"netPay"`
}

// ComputeItem derives the pay breakdown for one salary: tax, fixed
// deductions and benefits are percentages of the gross, rounded half up.
func ComputeItem(s *Salary) Item {
	tax := roundPct(s.MonthlyGross, taxPct)
	deductions := roundPct(s.MonthlyGross, deductionPct)
	benefits := roundPct(s.MonthlyGross, benefitPct)
	return Item{
		EmployeeID: s.EmployeeID,
		Gross:      s.MonthlyGross,
		Tax:        tax,
		Deductions: deductions,
		Benefits:   benefits,
		NetPay:     s.MonthlyGross - tax - deductions - benefits,
	}
}

func roundPct(amount, pct int64) int64 {
	return (amount*pct + 50) / 100
}

func CycleToDataModel(c *Cycle) *payrollDatamodel.Cycle {
	dm := &payrollDatamodel.Cycle{
		ID:          c.ID,
		Period:      c.Period,
		Status:      c.Status,
		ProcessedBy: c.ProcessedBy,
		ProcessedAt: c.ProcessedAt,
		TotalNet:    c.TotalNet,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, item := range c.Items {
		dm.Items = append(dm.Items, *ItemToDataModel(&item))
	}
	return dm
}

func CycleFromDataModel(dm *payrollDatamodel.Cycle) *Cycle {
	c := &Cycle{
		ID:          dm.ID,
		Period:      dm.Period,
		Status:      dm.Status,
		ProcessedBy: dm.ProcessedBy,
		ProcessedAt: dm.ProcessedAt,
		TotalNet:    dm.TotalNet,
		CreatedAt:   dm.CreatedAt,
		UpdatedAt:   dm.UpdatedAt,
	}
	for _, item := range dm.Items {
		c.Items = append(c.Items, *ItemFromDataModel(&item))
	}
	return c
}

func CycleFromDataModelSlice(dms []*payrollDatamodel.Cycle) []*Cycle {
	out := make([]*Cycle, len(dms))
	for i, dm := range dms {
		out[i] = CycleFromDataModel(dm)
	}
	return out
}

func SalaryToDataModel(s *Salary) *payrollDatamodel.Salary {
	return &payrollDatamodel.Salary{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		MonthlyGross: s.MonthlyGross,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func SalaryFromDataModel(dm *payrollDatamodel.Salary) *Salary {
	return &Salary{
		ID:           dm.ID,
		EmployeeID:   dm.EmployeeID,
		MonthlyGross: dm.MonthlyGross,
		CreatedAt:    dm.CreatedAt,
		UpdatedAt:    dm.UpdatedAt,
	}
}

func SalaryFromDataModelSlice(dms []*payrollDatamodel.Salary) []*Salary {
	out := make([]*Salary, len(dms))
	for i, dm := range dms {
		out[i] = SalaryFromDataModel(dm)
	}
	return out
}

func ItemToDataModel(i *Item) *payrollDatamodel.Item {
	return &payrollDatamodel.Item{
		ID:         i.ID,
		CycleID:    i.CycleID,
		EmployeeID: i.EmployeeID,
		Gross:      i.Gross,
		Tax:        i.Tax,
		Deductions: i.Deductions,
		Benefits:   i.Benefits,
		NetPay:     i.NetPay,
	}
}

func ItemFromDataModel(dm *payrollDatamodel.Item) *Item {
	return &Item{
		ID:         dm.ID,
		CycleID:    dm.CycleID,
		EmployeeID: dm.EmployeeID,
		Gross:      dm.Gross,
		Tax:        dm.Tax,
		Deductions: dm.Deductions,
		Benefits:   dm.Benefits,
		NetPay:     dm.NetPay,
	}
}
