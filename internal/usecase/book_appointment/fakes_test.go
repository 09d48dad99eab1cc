package book_appointment

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ── In-memory хранилище: календарь, каталог и журнал записей ──

type memoryStore struct {
	mu           sync.Mutex
	hours        map[int]*domain.BusinessHours
	closures     map[types.Date]bool
	services     map[string]*domain.Service
	appointments []*domain.Appointment
	nextID       int64

	catalogCalls int
	createErr    error

	slotLocks sync.Map // int64 -> *sync.Mutex
	locksMu   sync.Mutex
	lockCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		hours:    make(map[int]*domain.BusinessHours),
		closures: make(map[types.Date]bool),
		services: make(map[string]*domain.Service),
	}
}

func (s *memoryStore) GetClosureForDate(_ context.Context, companyID int64, date types.Date) (*domain.Closure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closures[date] {
		return &domain.Closure{CompanyID: companyID, ClosureDate: date}, nil
	}
	return nil, calendarRepo.ErrClosureNotFound
}

func (s *memoryStore) GetBusinessHoursForWeekday(_ context.Context, _ int64, weekday int) (*domain.BusinessHours, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.hours[weekday]; ok {
		return h, nil
	}
	return nil, calendarRepo.ErrBusinessHoursNotFound
}

func (s *memoryStore) GetByName(_ context.Context, companyID int64, name string) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogCalls++
	if svc, ok := s.services[name]; ok && svc.CompanyID == companyID {
		return svc, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (s *memoryStore) ListForServiceOnDate(_ context.Context, companyID, serviceID int64, date types.Date) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*domain.Appointment
	for _, a := range s.appointments {
		if a.CompanyID == companyID && a.ServiceID == serviceID && a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

// Create повторяет уникальный индекс (service_id, appointment_date, start_time)
func (s *memoryStore) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, existing := range s.appointments {
		if existing.ServiceID == a.ServiceID && existing.Date == a.Date && existing.StartTime == a.StartTime {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}
	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	s.appointments = append(s.appointments, a)
	return a, nil
}

// LockSlot держит мьютекс ключа до конца транзакции fakeTxManager
func (s *memoryStore) LockSlot(ctx context.Context, companyID int64, serviceName string, date types.Date) error {
	tx, ok := ctx.Value(txKey{}).(*fakeTx)
	if !ok {
		return appointmentRepo.ErrTransaction
	}

	s.locksMu.Lock()
	s.lockCalls++
	s.locksMu.Unlock()

	key := appointmentRepo.SlotLockKey(companyID, serviceName, date)
	m, _ := s.slotLocks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	tx.unlocks = append(tx.unlocks, mu.Unlock)
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

// ── Fake TransactionManager ──

type txKey struct{}

type fakeTx struct {
	unlocks []func()
}

type fakeTxManager struct {
	mu        sync.Mutex
	rollbacks int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := &fakeTx{}
	defer func() {
		for _, unlock := range tx.unlocks {
			unlock()
		}
	}()

	err := fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		m.mu.Lock()
		m.rollbacks++
		m.mu.Unlock()
	}
	return err
}

// ── Logger ──

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
