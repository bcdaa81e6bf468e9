package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShopService/internal/domain"
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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	gotStart     time.Time
	gotEnd       time.Time
	err          error
}

func (f *fakeAppointmentRepo) GetByEmployeeOnRange(_ context.Context, employeeID, shopID int64, rangeStart, rangeEnd time.Time) ([]*domain.Appointment, error) {
	f.gotStart = rangeStart
	f.gotEnd = rangeEnd
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeDirectoryRepo struct {
	employeeErr error
	worksAtShop bool
	worksErr    error
}

func (f *fakeDirectoryRepo) GetEmployeeByID(_ context.Context, id int64) (*domain.Employee, error) {
	if f.employeeErr != nil {
		return nil, f.employeeErr
	}
	return &domain.Employee{ID: id, Name: "Alex"}, nil
}

func (f *fakeDirectoryRepo) EmployeeWorksAtShop(_ context.Context, employeeID, shopID int64) (bool, error) {
	return f.worksAtShop, f.worksErr
}

func newTestUseCase(appts *fakeAppointmentRepo, dir *fakeDirectoryRepo, now time.Time) *UseCase {
	uc := NewUseCase(appts, dir, testBusinessStart, testBusinessEnd, testStepMinutes, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDirectoryRepo{worksAtShop: true}, nowBefore)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero employee", req: &Request{ShopID: 1, Date: day(), DurationMinutes: 30}},
		{name: "zero shop", req: &Request{EmployeeID: 1, Date: day(), DurationMinutes: 30}},
		{name: "zero date", req: &Request{EmployeeID: 1, ShopID: 1, DurationMinutes: 30}},
		{name: "zero duration", req: &Request{EmployeeID: 1, ShopID: 1, Date: day()}},
		{name: "oversized duration", req: &Request{EmployeeID: 1, ShopID: 1, Date: day(), DurationMinutes: domain.MaxDurationMinutes + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	dir := &fakeDirectoryRepo{employeeErr: directoryRepo.ErrEmployeeNotFound}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir, nowBefore)

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 404, ShopID: 1, Date: day(), DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_EmployeeNotInShop(t *testing.T) {
	dir := &fakeDirectoryRepo{worksAtShop: false}
	uc := newTestUseCase(&fakeAppointmentRepo{}, dir, nowBefore)

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ShopID: 2, Date: day(), DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrEmployeeNotInShop)
}

func TestExecute_FetchesLocalCalendarDay(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	uc := newTestUseCase(appts, &fakeDirectoryRepo{worksAtShop: true}, nowBefore)

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ShopID: 1, Date: day(), DurationMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), appts.gotStart)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.Local), appts.gotEnd)
}

func TestExecute_EndToEnd(t *testing.T) {
	// 2024-06-10, one appointment 10:00-11:00, one-hour query.
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{appointmentAt(10, 0, 60)}}
	uc := newTestUseCase(appts, &fakeDirectoryRepo{worksAtShop: true}, nowBefore)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ShopID: 1, Date: day(), DurationMinutes: 60})
	require.NoError(t, err)

	assert.Contains(t, resp.Slots, "2024-06-10 09:00")
	assert.Contains(t, resp.Slots, "2024-06-10 11:00")
	assert.NotContains(t, resp.Slots, "2024-06-10 09:10")
	assert.NotContains(t, resp.Slots, "2024-06-10 09:50")
	assert.NotContains(t, resp.Slots, "2024-06-10 10:30")
	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_UnbookableDayIsEmptyNotError(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	// Query for yesterday.
	now := time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local)
	uc := newTestUseCase(appts, &fakeDirectoryRepo{worksAtShop: true}, now)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ShopID: 1, Date: day(), DurationMinutes: 30})
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}
