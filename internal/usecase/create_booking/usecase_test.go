package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
	serviceCatalog "github.com/m04kA/SMC-ShopService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

// memAppointmentRepo is an in-memory appointment store with the same overlap
// and unique service-pair semantics as the SQL repository.
type memAppointmentRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments []*domain.Appointment
	attached     map[int64][]int64
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{nextID: 1, attached: make(map[int64][]int64)}
}

func (r *memAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *appt
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.nextID++
	r.appointments = append(r.appointments, &created)
	return &created, nil
}

func (r *memAppointmentRepo) AttachServices(_ context.Context, appointmentID int64, serviceIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Same primary key as appointment_services: (appointment_id, service_id).
	seen := make(map[int64]struct{}, len(serviceIDs))
	for _, id := range r.attached[appointmentID] {
		seen[id] = struct{}{}
	}
	for _, id := range serviceIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate key value violates unique constraint: (%d, %d)", appointmentID, id)
		}
		seen[id] = struct{}{}
	}

	r.attached[appointmentID] = append(r.attached[appointmentID], serviceIDs...)
	return nil
}

func (r *memAppointmentRepo) CountOverlapping(_ context.Context, employeeID int64, start, end time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := domain.TimeRange{Start: start, End: end}
	count := 0
	for _, appt := range r.appointments {
		if appt.EmployeeID == employeeID && candidate.Overlaps(appt.Range()) {
			count++
		}
	}
	return count, nil
}

type fakeDirectoryRepo struct {
	employeeErr error
	worksAtShop bool
}

func (f *fakeDirectoryRepo) GetEmployeeByID(_ context.Context, id int64) (*domain.Employee, error) {
	if f.employeeErr != nil {
		return nil, f.employeeErr
	}
	return &domain.Employee{ID: id, Name: "Alex"}, nil
}

func (f *fakeDirectoryRepo) EmployeeWorksAtShop(_ context.Context, employeeID, shopID int64) (bool, error) {
	return f.worksAtShop, nil
}

// fakeCatalog resolves from a fixed map with the strict all-or-nothing
// semantics of the catalog service.
type fakeCatalog struct {
	services map[int64]domain.Service
}

func (f *fakeCatalog) ResolveServices(_ context.Context, ids []int64) ([]domain.Service, int, float64, error) {
	resolved := make([]domain.Service, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	var totalDuration int
	var totalPrice float64

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		service, ok := f.services[id]
		if !ok {
			return nil, 0, 0, serviceCatalog.ErrServiceNotFound
		}
		resolved = append(resolved, service)
		totalDuration += service.DurationMinutes
		totalPrice += service.Price
	}
	return resolved, totalDuration, totalPrice, nil
}

type fakeLinks struct {
	mu       sync.Mutex
	consumed []int64
}

func (f *fakeLinks) Consume(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.consumed = append(f.consumed, id)
	return nil
}

// mutexTxManager serializes transactional sections the way the serializable
// isolation level does for conflicting check-then-insert pairs.
type mutexTxManager struct {
	mu sync.Mutex
}

func (m *mutexTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mutexTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (m *mutexTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

func startAt(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.Local)
}

type testEnv struct {
	uc      *UseCase
	appts   *memAppointmentRepo
	catalog *fakeCatalog
	links   *fakeLinks
}

func newTestEnv() *testEnv {
	appts := newMemAppointmentRepo()
	catalog := &fakeCatalog{services: map[int64]domain.Service{
		1: {ID: 1, Name: "Haircut", Price: 30, DurationMinutes: 30},
		2: {ID: 2, Name: "Beard trim", Price: 15, DurationMinutes: 15},
	}}
	links := &fakeLinks{}

	uc := NewUseCase(appts, &fakeDirectoryRepo{worksAtShop: true}, catalog, links, &mutexTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}

	return &testEnv{uc: uc, appts: appts, catalog: catalog, links: links}
}

func validRequest() *Request {
	return &Request{
		EmployeeID: 1,
		ShopID:     1,
		CustomerID: 7,
		LinkID:     42,
		StartAt:    startAt(10, 0),
		ServiceIDs: []int64{1, 2},
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 45, resp.DurationMinutes, "durations are summed across services")
	assert.Equal(t, 45.0, resp.Price, "prices are summed across services")
	assert.Equal(t, startAt(10, 0), resp.StartAt)
	assert.Len(t, resp.Services, 2)

	assert.Equal(t, []int64{1, 2}, env.appts.attached[resp.ID], "services attached in the same transaction")
	assert.Equal(t, []int64{42}, env.links.consumed, "link burned with the booking")
}

func TestExecute_DuplicateServiceIDs(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.ServiceIDs = []int64{1, 1}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 30, resp.DurationMinutes, "a repeated service counts once")
	assert.Equal(t, 30.0, resp.Price)
	assert.Len(t, resp.Services, 1)
	assert.Equal(t, []int64{1}, env.appts.attached[resp.ID], "each service attached once")
}

func TestExecute_ValidationErrors(t *testing.T) {
	env := newTestEnv()

	mutate := []struct {
		name string
		fn   func(req *Request)
	}{
		{name: "zero employee", fn: func(req *Request) { req.EmployeeID = 0 }},
		{name: "zero shop", fn: func(req *Request) { req.ShopID = 0 }},
		{name: "zero customer", fn: func(req *Request) { req.CustomerID = 0 }},
		{name: "zero start", fn: func(req *Request) { req.StartAt = time.Time{} }},
		{name: "no services", fn: func(req *Request) { req.ServiceIDs = nil }},
		{name: "negative service id", fn: func(req *Request) { req.ServiceIDs = []int64{1, -2} }},
		{name: "start in the past", fn: func(req *Request) { req.StartAt = startAt(8, 0) }},
	}

	for _, tt := range mutate {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.fn(req)
			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	env := newTestEnv()
	uc := NewUseCase(env.appts, &fakeDirectoryRepo{employeeErr: directoryRepo.ErrEmployeeNotFound},
		env.catalog, env.links, &mutexTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_EmployeeNotInShop(t *testing.T) {
	env := newTestEnv()
	uc := NewUseCase(env.appts, &fakeDirectoryRepo{worksAtShop: false},
		env.catalog, env.links, &mutexTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotInShop)
}

func TestExecute_UnknownService(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.ServiceIDs = []int64{1, 999}

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, env.appts.appointments, "nothing is inserted when resolution fails")
	assert.Empty(t, env.links.consumed, "the link survives a failed booking")
}

func TestExecute_OverlapGuard(t *testing.T) {
	tests := []struct {
		name         string
		existingMin  int // minutes past 10:00
		requestMin   int
		wantConflict bool
	}{
		{name: "overlapping quarter hour", existingMin: 0, requestMin: 15, wantConflict: true},
		{name: "adjacent back to back", existingMin: 0, requestMin: 30, wantConflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			// Existing 30-minute appointment at 10:00 + existingMin.
			_, err := env.appts.Create(context.Background(), &domain.Appointment{
				EmployeeID:      1,
				ShopID:          1,
				CustomerID:      3,
				StartAt:         startAt(10, tt.existingMin),
				DurationMinutes: 30,
			})
			require.NoError(t, err)

			req := validRequest()
			req.StartAt = startAt(10, tt.requestMin)
			req.ServiceIDs = []int64{1} // 30 minutes

			_, err = env.uc.Execute(context.Background(), req)
			if tt.wantConflict {
				assert.ErrorIs(t, err, ErrTimeSlotTaken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_ConcurrentDoubleBooking(t *testing.T) {
	env := newTestEnv()

	const racers = 2
	errs := make([]error, racers)
	var wg sync.WaitGroup
	wg.Add(racers)

	for i := 0; i < racers; i++ {
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.LinkID = int64(100 + i)
			_, errs[i] = env.uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrTimeSlotTaken):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one racer wins the slot")
	assert.Equal(t, 1, conflicts, "the loser gets a definitive conflict")
	assert.Len(t, env.appts.appointments, 1)
	assert.Len(t, env.links.consumed, 1, "only the winning link is burned")
}
