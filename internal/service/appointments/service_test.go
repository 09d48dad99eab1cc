package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	deleteErr    error
	err          error
}

func newMockRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: map[int64]*domain.Appointment{
		7: {ID: 7, CompanyID: 1, ServiceID: 10, Date: "2025-10-15", StartTime: "09:00:00", Status: "scheduled"},
	}}
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (m *mockAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	var result []*domain.Appointment
	for _, a := range m.appointments {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(m.appointments, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newMockRepo(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15T09:00:00", resp.DateTime)
	assert.Equal(t, int64(10), resp.ServiceID)

	_, err = svc.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_CancelTwice(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nopLogger{})

	cancelled, err := svc.Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, cancelled)

	cancelled, err = svc.Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, cancelled)

	_, err = svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_CancelConcurrentDelete(t *testing.T) {
	repo := newMockRepo()
	repo.deleteErr = appointmentRepo.ErrAppointmentNotFound
	svc := NewService(repo, nopLogger{})

	cancelled, err := svc.Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestService_CancelStorageError(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo, nopLogger{})

	cancelled, err := svc.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, cancelled)
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.ListAppointmentsRequest
		wantErr   error
		wantStart *types.Date
		wantEnd   *types.Date
	}{
		{
			name:      "single date overrides range",
			req:       &models.ListAppointmentsRequest{CompanyID: 1, Date: ptr.Ptr(types.Date("2025-10-15")), From: ptr.Ptr(types.Date("2025-10-01"))},
			wantStart: ptr.Ptr(types.Date("2025-10-15")),
			wantEnd:   ptr.Ptr(types.Date("2025-10-15")),
		},
		{
			name:      "range",
			req:       &models.ListAppointmentsRequest{CompanyID: 1, From: ptr.Ptr(types.Date("2025-10-01")), To: ptr.Ptr(types.Date("2025-10-31"))},
			wantStart: ptr.Ptr(types.Date("2025-10-01")),
			wantEnd:   ptr.Ptr(types.Date("2025-10-31")),
		},
		{
			name: "no dates",
			req:  &models.ListAppointmentsRequest{CompanyID: 1},
		},
		{
			name:    "reversed range",
			req:     &models.ListAppointmentsRequest{CompanyID: 1, From: ptr.Ptr(types.Date("2025-10-31")), To: ptr.Ptr(types.Date("2025-10-01"))},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "malformed date",
			req:     &models.ListAppointmentsRequest{CompanyID: 1, Date: ptr.Ptr(types.Date("2025-13-01"))},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := NewService(repo, nopLogger{})

			resp, err := svc.List(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, resp.Appointments, 1)
			assert.Equal(t, tt.wantStart, repo.lastFilter.StartDate)
			assert.Equal(t, tt.wantEnd, repo.lastFilter.EndDate)
			assert.Equal(t, uint64(domain.DefaultPageLimit), repo.lastFilter.Page.Limit)
		})
	}
}
