package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestSlotLockKey(t *testing.T) {
	key := SlotLockKey(1, "Haircut", "2025-10-15")

	assert.Equal(t, key, SlotLockKey(1, "Haircut", "2025-10-15"))
	assert.NotEqual(t, key, SlotLockKey(2, "Haircut", "2025-10-15"))
	assert.NotEqual(t, key, SlotLockKey(1, "Massage", "2025-10-15"))
	assert.NotEqual(t, key, SlotLockKey(1, "Haircut", "2025-10-16"))
}

func TestRepository_LockSlotRequiresTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.LockSlot(context.Background(), 1, "Haircut", "2025-10-15")
	assert.ErrorIs(t, err, ErrTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockSlotInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(SlotLockKey(1, "Haircut", "2025-10-15")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.LockSlot(dbmetrics.WithTx(context.Background(), tx), 1, "Haircut", "2025-10-15"))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	appointment := func() *domain.Appointment {
		return &domain.Appointment{
			CompanyID:     1,
			ServiceID:     10,
			Date:          "2025-10-15",
			StartTime:     "09:00:00",
			CustomerName:  "Ivan",
			CustomerPhone: "+79990000000",
			Status:        domain.DefaultAppointmentStatus,
		}
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO appointments .+ RETURNING id, created_at`).
			WithArgs(int64(1), int64(10), "2025-10-15", "09:00:00", "Ivan", "+79990000000", "scheduled", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))

		created, err := repo.Create(context.Background(), appointment())
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
	})

	t.Run("slot taken", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO appointments`).WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), appointment())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO appointments`).WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Create(context.Background(), appointment())
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 7))

	mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 7), ErrAppointmentNotFound)
}
