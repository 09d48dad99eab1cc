package appointment

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// SlotLockKey ключ advisory-блокировки для (компания, услуга, дата)
func SlotLockKey(companyID int64, serviceName string, date types.Date) int64 {
	return int64(xxhash.Sum64String(fmt.Sprintf("%d|%s|%s", companyID, serviceName, date)))
}

// LockSlot берет pg_advisory_xact_lock на (компания, услуга, дата).
// Блокировка держится до конца транзакции из контекста, поэтому вне транзакции вызов запрещен.
// Услуга идентифицируется по имени: оно уникально в пределах компании и известно до её поиска.
func (r *Repository) LockSlot(ctx context.Context, companyID int64, serviceName string, date types.Date) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column("pg_advisory_xact_lock(?)", SlotLockKey(companyID, serviceName, date)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockSlot - build lock query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockSlot - acquire advisory lock: %v", ErrExecQuery, err)
	}

	return nil
}
