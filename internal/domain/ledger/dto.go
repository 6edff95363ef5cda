package ledger

type EntryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Kind       Kind    `json:"kind"`
	Hours      float64 `json:"hours"`
}

type ReportResponse struct {
	EmployeeID string          `json:"employee_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	TotalHours float64         `json:"total_hours"`
	Entries    []EntryResponse `json:"entries"`
}
