package evaluate_availability

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ── Mock CalendarRepository ──

type mockCalendarRepo struct {
	hours    map[int]*domain.BusinessHours
	closures map[types.Date]*domain.Closure
	err      error
}

func newMockCalendarRepo() *mockCalendarRepo {
	return &mockCalendarRepo{
		hours:    make(map[int]*domain.BusinessHours),
		closures: make(map[types.Date]*domain.Closure),
	}
}

func (m *mockCalendarRepo) GetClosureForDate(_ context.Context, _ int64, date types.Date) (*domain.Closure, error) {
	if m.err != nil {
		return nil, m.err
	}
	if c, ok := m.closures[date]; ok {
		return c, nil
	}
	return nil, calendarRepo.ErrClosureNotFound
}

func (m *mockCalendarRepo) GetBusinessHoursForWeekday(_ context.Context, _ int64, weekday int) (*domain.BusinessHours, error) {
	if m.err != nil {
		return nil, m.err
	}
	if h, ok := m.hours[weekday]; ok {
		return h, nil
	}
	return nil, calendarRepo.ErrBusinessHoursNotFound
}

// ── Mock CatalogRepository ──

type mockCatalogRepo struct {
	services map[string]*domain.Service
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{services: make(map[string]*domain.Service)}
}

func (m *mockCatalogRepo) GetByName(_ context.Context, companyID int64, name string) (*domain.Service, error) {
	if s, ok := m.services[name]; ok && s.CompanyID == companyID {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) ListForServiceOnDate(_ context.Context, companyID, serviceID int64, date types.Date) ([]*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*domain.Appointment
	for _, a := range m.appointments {
		if a.CompanyID == companyID && a.ServiceID == serviceID && a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

// ── Mock VerdictRecorder ──

type mockRecorder struct {
	verdicts []string
}

func (m *mockRecorder) RecordVerdict(v string) {
	m.verdicts = append(m.verdicts, v)
}

// ── Logger ──

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var errStorage = errors.New("connection refused")
