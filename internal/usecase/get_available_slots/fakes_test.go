package get_available_slots

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var errStorage = errors.New("connection refused")

type mockCalendarRepo struct {
	hours    map[int]*domain.BusinessHours
	closures map[types.Date]bool
}

func (m *mockCalendarRepo) GetClosureForDate(_ context.Context, companyID int64, date types.Date) (*domain.Closure, error) {
	if m.closures[date] {
		return &domain.Closure{CompanyID: companyID, ClosureDate: date}, nil
	}
	return nil, calendarRepo.ErrClosureNotFound
}

func (m *mockCalendarRepo) GetBusinessHoursForWeekday(_ context.Context, _ int64, weekday int) (*domain.BusinessHours, error) {
	if h, ok := m.hours[weekday]; ok {
		return h, nil
	}
	return nil, calendarRepo.ErrBusinessHoursNotFound
}

type mockCatalogRepo struct {
	services map[string]*domain.Service
	err      error
}

func (m *mockCatalogRepo) GetByName(_ context.Context, companyID int64, name string) (*domain.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	if svc, ok := m.services[name]; ok && svc.CompanyID == companyID {
		return svc, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (m *mockAppointmentRepo) ListForServiceOnDate(_ context.Context, _, serviceID int64, date types.Date) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range m.appointments {
		if a.ServiceID == serviceID && a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
