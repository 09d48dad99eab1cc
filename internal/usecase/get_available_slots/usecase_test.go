package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	companyID = int64(1)
	wednesday = types.Date("2025-10-15")
)

// Утро понедельника до интересующей среды: фильтр прошедших слотов ничего не убирает
var beforeWednesday = time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)

type fixture struct {
	calendar     *mockCalendarRepo
	catalog      *mockCatalogRepo
	appointments *mockAppointmentRepo
}

func newFixture() *fixture {
	return &fixture{
		calendar: &mockCalendarRepo{
			hours: map[int]*domain.BusinessHours{
				2: {CompanyID: companyID, DayOfWeek: 2, OpensAt: "09:00:00", ClosesAt: "17:00:00"},
			},
			closures: map[types.Date]bool{},
		},
		catalog: &mockCatalogRepo{
			services: map[string]*domain.Service{
				"Haircut": {ID: 10, CompanyID: companyID, Name: "Haircut", DurationMinutes: 30},
			},
		},
		appointments: &mockAppointmentRepo{},
	}
}

func (f *fixture) useCase(now time.Time) *UseCase {
	return NewUseCase(f.calendar, f.catalog, f.appointments, nopLogger{}).WithTimeProvider(fixedTime{now: now})
}

func TestExecute_AllSlotsOnFreeDay(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase(beforeWednesday).Execute(context.Background(), &Request{
		CompanyID: companyID, ServiceName: "Haircut", Date: wednesday,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ServiceID)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Empty(t, resp.Reason)
	// 09:00..17:00 с шагом 30 минут, 17:00 включительно
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, types.TimeString("09:00:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:00:00"), resp.Slots[16])
}

func TestExecute_SkipsOverlappingSlots(t *testing.T) {
	f := newFixture()
	f.appointments.appointments = []*domain.Appointment{
		{ServiceID: 10, Date: wednesday, StartTime: "09:00:00"},
		{ServiceID: 10, Date: wednesday, StartTime: "12:15:00"},
		{ServiceID: 11, Date: wednesday, StartTime: "14:00:00"},
	}

	resp, err := f.useCase(beforeWednesday).Execute(context.Background(), &Request{
		CompanyID: companyID, ServiceName: "Haircut", Date: wednesday,
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("09:00:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:00:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:30:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30:00"))
	assert.Contains(t, resp.Slots, types.TimeString("14:00:00"), "другая услуга не занимает слот")
	assert.Len(t, resp.Slots, 14)
}

func TestExecute_ClosedAndNoHours(t *testing.T) {
	f := newFixture()
	f.calendar.closures[wednesday] = true

	uc := f.useCase(beforeWednesday)

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: companyID, ServiceName: "Haircut", Date: wednesday})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRejectedClosedDay, resp.Reason)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)

	resp, err = uc.Execute(context.Background(), &Request{CompanyID: companyID, ServiceName: "Haircut", Date: "2025-10-16"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRejectedNoBusinessHours, resp.Reason)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastSlots(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name  string
		now   time.Time
		count int
		first types.TimeString
	}{
		{name: "same day after noon", now: time.Date(2025, 10, 15, 12, 10, 0, 0, time.UTC), count: 10, first: "12:30:00"},
		{name: "same day on slot boundary", now: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC), count: 11, first: "12:00:00"},
		{name: "day after", now: time.Date(2025, 10, 16, 8, 0, 0, 0, time.UTC), count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.useCase(tt.now).Execute(context.Background(), &Request{
				CompanyID: companyID, ServiceName: "Haircut", Date: wednesday,
			})
			require.NoError(t, err)
			require.Len(t, resp.Slots, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, resp.Slots[0])
			}
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture()
	uc := f.useCase(beforeWednesday)

	_, err := uc.Execute(context.Background(), &Request{CompanyID: companyID, ServiceName: "Massage", Date: wednesday})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: 2, ServiceName: "Haircut", Date: wednesday})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: companyID, ServiceName: "Haircut", Date: "15.10.2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CompanyID: 0, ServiceName: "Haircut", Date: wednesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.catalog.err = errStorage
	_, err = uc.Execute(context.Background(), &Request{CompanyID: companyID, ServiceName: "Haircut", Date: wednesday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGenerateTimeSlots(t *testing.T) {
	hours := &domain.BusinessHours{OpensAt: "22:00:00", ClosesAt: "23:59:00"}

	// Шаг через полночь обрывает генерацию
	slots := generateTimeSlots(hours, 90)
	assert.Equal(t, []types.TimeString{"22:00:00", "23:30:00"}, slots)

	assert.Empty(t, generateTimeSlots(hours, 0))
}
