package notification

type NotificationResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}
