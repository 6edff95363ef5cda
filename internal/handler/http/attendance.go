package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	RecordLeave(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RecordAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// RecordLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.EventFilter{}

	q := r.URL.Query()
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("kind"); v != "" {
		kind := attendance.Kind(v)
		filter.Kind = &kind
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.attendanceService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Events, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}
