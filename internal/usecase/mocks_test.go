package usecase

import (
	"context"

	"chickenshop/internal/domain/model"
	repo "chickenshop/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// =====================
// Mock: AuthValidator
// =====================

type MockAuthValidator struct {
	mock.Mock
}

func (m *MockAuthValidator) ValidateRegister(ctx context.Context, email string, password string, phone string) error {
	args := m.Called(ctx, email, password, phone)
	return args.Error(0)
}

func (m *MockAuthValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, userID, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

// =====================
// Mock: CartRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error {
	args := m.Called(ctx, cartID, status)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *MockCartRepository) AppendItem(ctx context.Context, cartID int64, productName string) error {
	args := m.Called(ctx, cartID, productName)
	return args.Error(0)
}

func (m *MockCartRepository) ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

// =====================
// Mock: PaymentNotificationRepository
// =====================

type MockPaymentNotificationRepository struct {
	mock.Mock
}

func (m *MockPaymentNotificationRepository) Create(ctx context.Context, n *model.PaymentNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockPaymentNotificationRepository) FindByTxnID(ctx context.Context, txnID string) (model.PaymentNotification, bool, error) {
	args := m.Called(ctx, txnID)
	n, _ := args.Get(0).(model.PaymentNotification)
	return n, args.Bool(1), args.Error(2)
}

// =====================
// Mock: NotificationSender
// =====================

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to string, orderDetails string) error {
	args := m.Called(ctx, to, orderDetails)
	return args.Error(0)
}

// =====================
// Fake: TransactionManager（txなしでfnを呼ぶだけ）
// =====================

type fakeTxRepos struct {
	orders repo.OrderRepository
	carts  repo.CartRepository
}

func (r *fakeTxRepos) Orders() repo.OrderRepository { return r.orders }
func (r *fakeTxRepos) Carts() repo.CartRepository   { return r.carts }

type fakeTxManager struct {
	orders repo.OrderRepository
	carts  repo.CartRepository
}

func (tm *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(&fakeTxRepos{orders: tm.orders, carts: tm.carts})
}
