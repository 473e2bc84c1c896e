package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

// MockCutRepository is a mock implementation of CutRepository.
type MockCutRepository struct {
	mu   sync.RWMutex
	cuts map[string]*domain.CutRecord
	next int64

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, cut *domain.CutRecord) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.CutRecord, error)
	GetByDateFunc     func(ctx context.Context, date time.Time) (*domain.CutRecord, error)
	UpdateFunc        func(ctx context.Context, cut *domain.CutRecord) error
	DeleteFunc        func(ctx context.Context, id string) error
	ListFunc          func(ctx context.Context, limit, offset int) ([]*domain.CutRecord, error)
	NextCutNumberFunc func(ctx context.Context, tx usecase.Transaction) (int64, error)
}

func NewMockCutRepository() *MockCutRepository {
	return &MockCutRepository{
		cuts: make(map[string]*domain.CutRecord),
	}
}

func (m *MockCutRepository) Create(ctx context.Context, tx usecase.Transaction, cut *domain.CutRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, cut)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cuts[cut.ID] = cut
	return nil
}

func (m *MockCutRepository) GetByID(ctx context.Context, id string) (*domain.CutRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cut, ok := m.cuts[id]; ok {
		return cut, nil
	}
	return nil, domain.ErrCutNotFound
}

func (m *MockCutRepository) GetByDate(ctx context.Context, date time.Time) (*domain.CutRecord, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, cut := range m.cuts {
		if cut.CutDate.Equal(date) {
			return cut, nil
		}
	}
	return nil, domain.ErrCutNotFound
}

func (m *MockCutRepository) Update(ctx context.Context, cut *domain.CutRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cut)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cuts[cut.ID]; !ok {
		return domain.ErrCutNotFound
	}
	m.cuts[cut.ID] = cut
	return nil
}

func (m *MockCutRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cuts[id]; !ok {
		return domain.ErrCutNotFound
	}
	delete(m.cuts, id)
	return nil
}

func (m *MockCutRepository) List(ctx context.Context, limit, offset int) ([]*domain.CutRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cuts []*domain.CutRecord
	for _, cut := range m.cuts {
		cuts = append(cuts, cut)
	}
	return cuts, nil
}

func (m *MockCutRepository) NextCutNumber(ctx context.Context, tx usecase.Transaction) (int64, error) {
	if m.NextCutNumberFunc != nil {
		return m.NextCutNumberFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return m.next, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	// Same convention as the postgres repository: absence is not an error.
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.User
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	Logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Logs, nil
}

func (m *MockAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var logs []*domain.AuditLog
	for _, log := range m.Logs {
		if log.ResourceType == resourceType && log.ResourceID == resourceID {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
	Last      *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.Last = &MockTransaction{}
	return m.Last, nil
}

// MockIDGenerator generates predictable IDs.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-id"
}

// MockIdempotencyStore is an in-memory idempotency store.
type MockIdempotencyStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{data: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response == nil {
		response = []byte("processing")
	}
	m.data[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

// NopMetrics is a MetricsRecorder that counts nothing.
type NopMetrics struct{}

func (NopMetrics) CutCreated(manual bool) {}
func (NopMetrics) CutUpdated()            {}
func (NopMetrics) CutClosed()             {}
func (NopMetrics) CutDeleted()            {}
func (NopMetrics) DesyncDetected()        {}
