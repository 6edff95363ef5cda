package master

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/branch"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/holiday"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
)

// MasterService covers the administrative CRUD surface: branches,
// shifts, shift assignments, employees, official holidays and general
// settings. The reconciliation services consume the same repositories;
// nothing here touches the event log.
type MasterService interface {
	// Branch operations
	CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error)
	GetBranch(ctx context.Context, id string) (branch.BranchResponse, error)
	ListBranches(ctx context.Context) ([]branch.BranchResponse, error)
	UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) error
	DeleteBranch(ctx context.Context, id string) error

	// Shift operations
	CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (shift.ShiftResponse, error)
	ListShifts(ctx context.Context) ([]shift.ShiftResponse, error)
	UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) error
	DeleteShift(ctx context.Context, id string) error

	// Assignment operations
	AssignShift(ctx context.Context, shiftID string, req shift.AssignRequest) (shift.AssignmentResponse, error)
	UnassignShift(ctx context.Context, assignmentID string) error
	ListEmployeeAssignments(ctx context.Context, employeeID string) ([]shift.AssignmentResponse, error)

	// Employee operations
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id string) error

	// Holiday operations
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	// Settings operations
	GetSettings(ctx context.Context) (settings.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error)
}

type masterServiceImpl struct {
	branchRepo     branch.Repository
	shiftRepo      shift.Repository
	assignmentRepo shift.AssignmentRepository
	employeeRepo   employee.Repository
	holidayRepo    holiday.Repository
	settingsRepo   settings.Repository
}

func NewMasterService(
	branchRepo branch.Repository,
	shiftRepo shift.Repository,
	assignmentRepo shift.AssignmentRepository,
	employeeRepo employee.Repository,
	holidayRepo holiday.Repository,
	settingsRepo settings.Repository,
) MasterService {
	return &masterServiceImpl{
		branchRepo:     branchRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		settingsRepo:   settingsRepo,
	}
}

// ==================== BRANCH OPERATIONS ====================

func (s *masterServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	created, err := s.branchRepo.Create(ctx, branch.Branch{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return toBranchResponse(created), nil
}

func (s *masterServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	return toBranchResponse(b), nil
}

func (s *masterServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchResponse, len(branches))
	for i, b := range branches {
		responses[i] = toBranchResponse(b)
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	b, err := s.branchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Latitude != nil {
		b.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		b.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		b.RadiusMeters = *req.RadiusMeters
	}

	return s.branchRepo.Update(ctx, b)
}

func (s *masterServiceImpl) DeleteBranch(ctx context.Context, id string) error {
	return s.branchRepo.Delete(ctx, id)
}

// ==================== SHIFT OPERATIONS ====================

func (s *masterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	start, _ := shift.ParseTimeOfDay(req.StartTime)
	end, _ := shift.ParseTimeOfDay(req.EndTime)

	entity := shift.Shift{
		ID:        uuid.NewString(),
		Name:      req.Name,
		StartTime: start,
		EndTime:   end,
	}
	if !entity.HasValidTimes() {
		return shift.ShiftResponse{}, shift.ErrInvalidShiftTimes
	}

	created, err := s.shiftRepo.Create(ctx, entity)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created), nil
}

func (s *masterServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(sh), nil
}

func (s *masterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, len(shifts))
	for i, sh := range shifts {
		responses[i] = toShiftResponse(sh)
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		start, _ := shift.ParseTimeOfDay(*req.StartTime)
		sh.StartTime = start
	}
	if req.EndTime != nil {
		end, _ := shift.ParseTimeOfDay(*req.EndTime)
		sh.EndTime = end
	}
	if !sh.HasValidTimes() {
		return shift.ErrInvalidShiftTimes
	}

	return s.shiftRepo.Update(ctx, sh)
}

func (s *masterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// ==================== ASSIGNMENT OPERATIONS ====================

func (s *masterServiceImpl) AssignShift(ctx context.Context, shiftID string, req shift.AssignRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	// Both sides must exist before linking them.
	if _, err := s.shiftRepo.GetByID(ctx, shiftID); err != nil {
		return shift.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	created, err := s.assignmentRepo.Create(ctx, shift.Assignment{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ShiftID:    shiftID,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	return toAssignmentResponse(created), nil
}

func (s *masterServiceImpl) UnassignShift(ctx context.Context, assignmentID string) error {
	return s.assignmentRepo.Delete(ctx, assignmentID)
}

func (s *masterServiceImpl) ListEmployeeAssignments(ctx context.Context, employeeID string) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = toAssignmentResponse(a)
	}
	return responses, nil
}

// ==================== EMPLOYEE OPERATIONS ====================

func (s *masterServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:       uuid.NewString(),
		FullName: req.FullName,
		Email:    req.Email,
		BranchID: req.BranchID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

func (s *masterServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

func (s *masterServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = toEmployeeResponse(e)
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return err
		}
		e.BranchID = req.BranchID
	}

	return s.employeeRepo.Update(ctx, e)
}

func (s *masterServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *masterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("invalid holiday date: %w", err)
	}

	exists, err := s.holidayRepo.IsOfficialHoliday(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	if exists {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:   uuid.NewString(),
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.HolidayResponse{
		ID:   created.ID,
		Name: created.Name,
		Date: created.Date.Format("2006-01-02"),
	}, nil
}

func (s *masterServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, len(holidays))
	for i, h := range holidays {
		responses[i] = holiday.HolidayResponse{
			ID:   h.ID,
			Name: h.Name,
			Date: h.Date.Format("2006-01-02"),
		}
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

// ==================== SETTINGS OPERATIONS ====================

func (s *masterServiceImpl) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return toSettingsResponse(current), nil
}

func (s *masterServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	if req.DailyWorkingHours != nil {
		current.DailyWorkingHours = req.DailyWorkingHours
	}
	if req.VacationsPerYear != nil {
		current.VacationsPerYear = req.VacationsPerYear
	}

	updated, err := s.settingsRepo.Update(ctx, current)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return toSettingsResponse(updated), nil
}

// ==================== RESPONSE MAPPERS ====================

func toBranchResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:           b.ID,
		Name:         b.Name,
		Latitude:     b.Latitude,
		Longitude:    b.Longitude,
		RadiusMeters: b.RadiusMeters,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        sh.ID,
		Name:      sh.Name,
		StartTime: sh.StartTime.String(),
		EndTime:   sh.EndTime.String(),
		Overnight: sh.IsOvernight(),
		CreatedAt: sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt: sh.UpdatedAt.Format(time.RFC3339),
	}
}

func toAssignmentResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		ShiftID:    a.ShiftID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Email:     e.Email,
		BranchID:  e.BranchID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

func toSettingsResponse(s settings.Settings) settings.SettingsResponse {
	return settings.SettingsResponse{
		DailyWorkingHours:   s.DailyWorkingHours,
		VacationsPerYear:    s.VacationsPerYear,
		EffectiveDailyHours: s.DailyWorkingHoursOrDefault(),
		EffectiveAllowance:  s.AnnualVacationHoursOrDefault(),
	}
}
