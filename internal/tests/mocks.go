package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"courier/internal/auth"
	"courier/internal/domain"
	"courier/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

// GetUser returns a stored user for test assertions.
func (m *MockUserRepository) GetUser(id string) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[id]
}

// CountUsers returns the number of stored users.
func (m *MockUserRepository) CountUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// ──────────────────────────────────────────────
// MOCK COURIER REPOSITORY
// ──────────────────────────────────────────────

// MockCourierRepository is a mock implementation of CourierRepository.
type MockCourierRepository struct {
	mu       sync.RWMutex
	couriers map[string]*domain.Courier

	// Joined listings returned as-is, in insertion order.
	Summaries []*domain.BookingSummary

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	GetError          error
	UpdateStatusError error
}

// NewMockCourierRepository creates a new mock courier repository.
func NewMockCourierRepository() *MockCourierRepository {
	return &MockCourierRepository{
		couriers: make(map[string]*domain.Courier),
	}
}

// AddCourier adds a courier to the mock repository.
func (m *MockCourierRepository) AddCourier(courier *domain.Courier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.couriers[courier.ID] = courier
}

func (m *MockCourierRepository) Create(ctx context.Context, courier *domain.Courier) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.couriers {
		if c.TrackingNo == courier.TrackingNo {
			return repository.ErrDuplicate
		}
	}
	m.couriers[courier.ID] = courier
	return nil
}

func (m *MockCourierRepository) GetByTrackingNo(ctx context.Context, trackingNo string) (*domain.Courier, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.couriers {
		if c.TrackingNo == trackingNo {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCourierRepository) GetBySenderID(ctx context.Context, senderID string) ([]*domain.BookingSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.BookingSummary
	for _, s := range m.Summaries {
		if s.SenderID == senderID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *MockCourierRepository) GetAllWithDetails(ctx context.Context) ([]*domain.BookingSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Summaries, nil
}

func (m *MockCourierRepository) UpdateStatus(ctx context.Context, id string, status domain.CourierStatus, deliveryDate time.Time) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	courier, ok := m.couriers[id]
	if !ok {
		return repository.ErrNotFound
	}
	courier.Status = status
	courier.DeliveryDate = deliveryDate
	return nil
}

func (m *MockCourierRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.couriers), nil
}

// GetCourier returns a stored courier for test assertions.
func (m *MockCourierRepository) GetCourier(id string) *domain.Courier {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.couriers[id]
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment // keyed by courier ID

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	GetError          error
	UpdateStatusError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

// AddPayment adds a payment to the mock repository.
func (m *MockPaymentRepository) AddPayment(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.CourierID] = payment
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.CourierID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByCourierID(ctx context.Context, courierID string) (*domain.Payment, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[courierID]
	if !ok {
		return nil, nil
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) UpdateStatusByCourierID(ctx context.Context, courierID string, status domain.PaymentStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[courierID]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = status
	return nil
}

// GetPayment returns a stored payment for test assertions.
func (m *MockPaymentRepository) GetPayment(courierID string) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[courierID]
}

// ──────────────────────────────────────────────
// MOCK RECEIPT REPOSITORY
// ──────────────────────────────────────────────

// MockReceiptRepository is a mock implementation of ReceiptRepository.
type MockReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[string]*domain.Receipt // keyed by courier ID

	CreateCallCount int32
	CreateError     error
}

// NewMockReceiptRepository creates a new mock receipt repository.
func NewMockReceiptRepository() *MockReceiptRepository {
	return &MockReceiptRepository{
		receipts: make(map[string]*domain.Receipt),
	}
}

func (m *MockReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[receipt.CourierID] = receipt
	return nil
}

func (m *MockReceiptRepository) GetByCourierID(ctx context.Context, courierID string) (*domain.Receipt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	receipt, ok := m.receipts[courierID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *receipt
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK TRACKING REPOSITORY
// ──────────────────────────────────────────────

// MockTrackingRepository is a mock implementation of TrackingRepository.
// Events are kept in insertion order.
type MockTrackingRepository struct {
	mu     sync.RWMutex
	events []*domain.TrackingEvent

	CreateCallCount int32
	CreateError     error
}

// NewMockTrackingRepository creates a new mock tracking repository.
func NewMockTrackingRepository() *MockTrackingRepository {
	return &MockTrackingRepository{}
}

// AddEvent adds a tracking event to the mock repository.
func (m *MockTrackingRepository) AddEvent(event *domain.TrackingEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockTrackingRepository) Create(ctx context.Context, event *domain.TrackingEvent) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockTrackingRepository) GetByCourierID(ctx context.Context, courierID string) ([]*domain.TrackingEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.TrackingEvent
	for _, e := range m.events {
		if e.CourierID == courierID {
			result = append(result, e)
		}
	}
	return result, nil
}

// CountEvents returns the number of stored events.
func (m *MockTrackingRepository) CountEvents() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// ──────────────────────────────────────────────
// MOCK REPORT REPOSITORY
// ──────────────────────────────────────────────

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	Total   float64
	Monthly []domain.MonthlyEarning

	TotalError   error
	MonthlyError error
}

// NewMockReportRepository creates a new mock report repository.
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

func (m *MockReportRepository) TotalEarnings(ctx context.Context) (float64, error) {
	if m.TotalError != nil {
		return 0, m.TotalError
	}
	return m.Total, nil
}

func (m *MockReportRepository) MonthlyEarnings(ctx context.Context) ([]domain.MonthlyEarning, error) {
	if m.MonthlyError != nil {
		return nil, m.MonthlyError
	}
	return m.Monthly, nil
}

// ──────────────────────────────────────────────
// MOCK PASSWORD HASHER
// ──────────────────────────────────────────────

// MockHasher is a trivial reversible hasher so user tests stay fast.
type MockHasher struct{}

func (MockHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (MockHasher) Verify(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

// Ensure the mocks satisfy the interfaces they stand in for.
var (
	_ repository.UserRepository     = (*MockUserRepository)(nil)
	_ repository.CourierRepository  = (*MockCourierRepository)(nil)
	_ repository.PaymentRepository  = (*MockPaymentRepository)(nil)
	_ repository.ReceiptRepository  = (*MockReceiptRepository)(nil)
	_ repository.TrackingRepository = (*MockTrackingRepository)(nil)
	_ repository.ReportRepository   = (*MockReportRepository)(nil)
	_ auth.PasswordHasher           = MockHasher{}
)
