package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/branch"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/holiday"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Branch handlers
	CreateBranch(w http.ResponseWriter, r *http.Request)
	GetBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
	UpdateBranch(w http.ResponseWriter, r *http.Request)
	DeleteBranch(w http.ResponseWriter, r *http.Request)

	// Shift handlers
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	// Assignment handlers
	AssignShift(w http.ResponseWriter, r *http.Request)
	UnassignShift(w http.ResponseWriter, r *http.Request)
	ListEmployeeAssignments(w http.ResponseWriter, r *http.Request)

	// Employee handlers
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)

	// Holiday handlers
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	// Settings handlers
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== BRANCH HANDLERS ====================

func (h *masterHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created", result)
}

func (h *masterHandlerImpl) GetBranch(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetBranch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateBranch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Branch updated", nil)
}

func (h *masterHandlerImpl) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteBranch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Branch deleted", nil)
}

// ==================== SHIFT HANDLERS ====================

func (h *masterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", result)
}

func (h *masterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateShift(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated", nil)
}

func (h *masterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// ==================== ASSIGNMENT HANDLERS ====================

func (h *masterHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.AssignShift(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned", result)
}

func (h *masterHandlerImpl) UnassignShift(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.UnassignShift(r.Context(), chi.URLParam(r, "assignmentID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift unassigned", nil)
}

func (h *masterHandlerImpl) ListEmployeeAssignments(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListEmployeeAssignments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ==================== EMPLOYEE HANDLERS ====================

func (h *masterHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *masterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateEmployee(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", nil)
}

func (h *masterHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// ==================== HOLIDAY HANDLERS ====================

func (h *masterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// ==================== SETTINGS HANDLERS ====================

func (h *masterHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", result)
}
