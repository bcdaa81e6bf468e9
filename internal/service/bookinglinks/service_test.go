package bookinglinks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	linkRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/bookinglink"
	customerRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/customer"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type fakeLinkRepo struct {
	nextID     int64
	byToken    map[string]*domain.BookingLink
	gotCutoff  time.Time
	deleted    int64
	markedUsed []int64
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{nextID: 1, byToken: make(map[string]*domain.BookingLink)}
}

func (f *fakeLinkRepo) Create(_ context.Context, link *domain.BookingLink) (*domain.BookingLink, error) {
	created := *link
	created.ID = f.nextID
	f.nextID++
	f.byToken[created.Token] = &created
	return &created, nil
}

func (f *fakeLinkRepo) GetByToken(_ context.Context, token string) (*domain.BookingLink, error) {
	link, ok := f.byToken[token]
	if !ok {
		return nil, linkRepo.ErrLinkNotFound
	}
	copied := *link
	return &copied, nil
}

func (f *fakeLinkRepo) MarkUsed(_ context.Context, id int64) error {
	for _, link := range f.byToken {
		if link.ID == id {
			link.Used = true
			f.markedUsed = append(f.markedUsed, id)
			return nil
		}
	}
	return linkRepo.ErrLinkNotFound
}

func (f *fakeLinkRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	f.gotCutoff = cutoff
	return f.deleted, nil
}

type fakeCustomerRepo struct {
	nextID  int64
	byPhone map[string]*domain.Customer
	created int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1, byPhone: make(map[string]*domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	created := *customer
	created.ID = f.nextID
	f.nextID++
	f.byPhone[created.Phone] = &created
	f.created++
	return &created, nil
}

func (f *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	customer, ok := f.byPhone[phone]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return customer, nil
}

type fakeDirectory struct {
	shopExists bool
}

func (f *fakeDirectory) GetShopByID(_ context.Context, id int64) (*domain.Shop, error) {
	if !f.shopExists {
		return nil, directoryRepo.ErrShopNotFound
	}
	return &domain.Shop{ID: id, Name: "Main Street"}, nil
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

type testEnv struct {
	svc       *Service
	links     *fakeLinkRepo
	customers *fakeCustomerRepo
}

func newTestEnv(ttl time.Duration) *testEnv {
	links := newFakeLinkRepo()
	customers := newFakeCustomerRepo()
	svc := NewService(links, customers, &fakeDirectory{shopExists: true},
		fixedTimeProvider{now: testNow}, ttl, nopLogger{})
	return &testEnv{svc: svc, links: links, customers: customers}
}

func TestGenerate_CreatesCustomerOnFirstContact(t *testing.T) {
	env := newTestEnv(time.Hour)

	link, err := env.svc.Generate(context.Background(), "+15551234567", 1)
	require.NoError(t, err)

	assert.NotEmpty(t, link.Token)
	assert.Equal(t, testNow, link.CreatedAt)
	assert.False(t, link.Used)
	assert.Equal(t, 1, env.customers.created)

	customer, err := env.customers.GetByPhone(context.Background(), "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, link.CustomerID)
	assert.Equal(t, domain.CustomerStatusActive, customer.Status)
}

func TestGenerate_ReusesExistingCustomer(t *testing.T) {
	env := newTestEnv(time.Hour)

	first, err := env.svc.Generate(context.Background(), "+15551234567", 1)
	require.NoError(t, err)
	second, err := env.svc.Generate(context.Background(), "+15551234567", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, env.customers.created, "one customer per phone")
	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.NotEqual(t, first.Token, second.Token, "every link gets a fresh token")
}

func TestGenerate_EmptyPhone(t *testing.T) {
	env := newTestEnv(time.Hour)

	_, err := env.svc.Generate(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerate_ShopNotFound(t *testing.T) {
	svc := NewService(newFakeLinkRepo(), newFakeCustomerRepo(), &fakeDirectory{shopExists: false},
		fixedTimeProvider{now: testNow}, time.Hour, nopLogger{})

	_, err := svc.Generate(context.Background(), "+15551234567", 404)
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestValidate(t *testing.T) {
	ttl := time.Hour

	tests := []struct {
		name    string
		link    *domain.BookingLink
		wantErr error
	}{
		{
			name: "live link",
			link: &domain.BookingLink{Token: "t-live", CreatedAt: testNow.Add(-30 * time.Minute)},
		},
		{
			name:    "expired link",
			link:    &domain.BookingLink{Token: "t-old", CreatedAt: testNow.Add(-2 * time.Hour)},
			wantErr: ErrLinkExpired,
		},
		{
			name:    "used link",
			link:    &domain.BookingLink{Token: "t-used", CreatedAt: testNow.Add(-5 * time.Minute), Used: true},
			wantErr: ErrLinkUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(ttl)
			_, err := env.links.Create(context.Background(), tt.link)
			require.NoError(t, err)

			link, err := env.svc.Validate(context.Background(), tt.link.Token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.link.Token, link.Token)
		})
	}
}

func TestValidate_UnknownToken(t *testing.T) {
	env := newTestEnv(time.Hour)

	_, err := env.svc.Validate(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestConsume(t *testing.T) {
	env := newTestEnv(time.Hour)

	created, err := env.links.Create(context.Background(), &domain.BookingLink{Token: "t1", CreatedAt: testNow})
	require.NoError(t, err)

	require.NoError(t, env.svc.Consume(context.Background(), created.ID))

	// A consumed link no longer validates.
	_, err = env.svc.Validate(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrLinkUsed)

	assert.ErrorIs(t, env.svc.Consume(context.Background(), 404), ErrLinkNotFound)
}

func TestCleanupExpired_CutoffIsNowMinusTTL(t *testing.T) {
	ttl := 45 * time.Minute
	env := newTestEnv(ttl)
	env.links.deleted = 3

	deleted, err := env.svc.CleanupExpired(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), deleted)
	assert.Equal(t, testNow.Add(-ttl), env.links.gotCutoff)
}
