//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/gymops/cashcut/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockExpenseRepository is a mock of ExpenseRepository interface.
type MockExpenseRepository struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseRepositoryMockRecorder
	isgomock struct{}
}

// MockExpenseRepositoryMockRecorder is the mock recorder for MockExpenseRepository.
type MockExpenseRepositoryMockRecorder struct {
	mock *MockExpenseRepository
}

// NewMockExpenseRepository creates a new mock instance.
func NewMockExpenseRepository(ctrl *gomock.Controller) *MockExpenseRepository {
	mock := &MockExpenseRepository{ctrl: ctrl}
	mock.recorder = &MockExpenseRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseRepository) EXPECT() *MockExpenseRepositoryMockRecorder {
	return m.recorder
}

// GetDailySummary mocks base method.
func (m *MockExpenseRepository) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDailySummary", ctx, date)
	ret0, _ := ret[0].(*domain.DailyExpenseSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDailySummary indicates an expected call of GetDailySummary.
func (mr *MockExpenseRepositoryMockRecorder) GetDailySummary(ctx, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDailySummary", reflect.TypeOf((*MockExpenseRepository)(nil).GetDailySummary), ctx, date)
}

// MockFigureSource is a mock of FigureSource interface.
type MockFigureSource struct {
	ctrl     *gomock.Controller
	recorder *MockFigureSourceMockRecorder
	isgomock struct{}
}

// MockFigureSourceMockRecorder is the mock recorder for MockFigureSource.
type MockFigureSourceMockRecorder struct {
	mock *MockFigureSource
}

// NewMockFigureSource creates a new mock instance.
func NewMockFigureSource(ctrl *gomock.Controller) *MockFigureSource {
	mock := &MockFigureSource{ctrl: ctrl}
	mock.recorder = &MockFigureSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFigureSource) EXPECT() *MockFigureSourceMockRecorder {
	return m.recorder
}

// FiguresForDate mocks base method.
func (m *MockFigureSource) FiguresForDate(ctx context.Context, date time.Time) (*domain.DayFigures, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FiguresForDate", ctx, date)
	ret0, _ := ret[0].(*domain.DayFigures)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FiguresForDate indicates an expected call of FiguresForDate.
func (mr *MockFigureSourceMockRecorder) FiguresForDate(ctx, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FiguresForDate", reflect.TypeOf((*MockFigureSource)(nil).FiguresForDate), ctx, date)
}

// MockCache is a mock of Cache interface.
type MockCache struct {
	ctrl     *gomock.Controller
	recorder *MockCacheMockRecorder
	isgomock struct{}
}

// MockCacheMockRecorder is the mock recorder for MockCache.
type MockCacheMockRecorder struct {
	mock *MockCache
}

// NewMockCache creates a new mock instance.
func NewMockCache(ctrl *gomock.Controller) *MockCache {
	mock := &MockCache{ctrl: ctrl}
	mock.recorder = &MockCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCache) EXPECT() *MockCacheMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCacheMockRecorder) Get(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCache)(nil).Get), ctx, key)
}

// Set mocks base method.
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockCacheMockRecorder) Set(ctx, key, value, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockCache)(nil).Set), ctx, key, value, ttl)
}

// Delete mocks base method.
func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockCacheMockRecorder) Delete(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCache)(nil).Delete), ctx, key)
}
