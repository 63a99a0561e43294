package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	return f.service, nil
}

type fakeApptRepo struct {
	request    *domain.AppointmentRequest
	overlaps   bool
	gotExclude string
}

func (f *fakeApptRepo) GetRequestByIDRequest(ctx context.Context, idRequest string) (*domain.AppointmentRequest, error) {
	if f.request == nil || f.request.IDRequest != idRequest {
		return nil, apptRepo.ErrRequestNotFound
	}
	return f.request, nil
}

func (f *fakeApptRepo) HasOverlappingRequest(ctx context.Context, staffID int64, date, startTime, endTime time.Time, excludeIDRequest string) (bool, error) {
	f.gotExclude = excludeIDRequest
	return f.overlaps, nil
}

type fakeRescheduleRepo struct {
	holds   []domain.Hold
	created *domain.RescheduleHistory
}

func (f *fakeRescheduleRepo) CreatePending(ctx context.Context, h *domain.RescheduleHistory) (*domain.RescheduleHistory, error) {
	created := *h
	created.ID = 30
	created.Status = domain.RescheduleStatusPending
	f.created = &created
	return &created, nil
}

func (f *fakeRescheduleRepo) ListPendingHolds(ctx context.Context, staffID int64, date, since time.Time) ([]domain.Hold, error) {
	return f.holds, nil
}

type fakeScheduleService struct {
	staffIDs []int64
	dayOff   bool
	window   *domain.Window
}

func (f *fakeScheduleService) GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error) {
	f.staffIDs = append(f.staffIDs, staffID)
	return &domain.StaffMember{ID: staffID}, nil
}

func (f *fakeScheduleService) HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	return f.dayOff, nil
}

func (f *fakeScheduleService) WindowFor(ctx context.Context, staff *domain.StaffMember, date time.Time) (*domain.Window, error) {
	return f.window, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 2, hour, minute, 0, 0, time.UTC)
}

type fixture struct {
	services    *fakeServiceRepo
	appts       *fakeApptRepo
	reschedules *fakeRescheduleRepo
	schedules   *fakeScheduleService
	now         time.Time
}

func newFixture() *fixture {
	return &fixture{
		services: &fakeServiceRepo{service: &domain.Service{ID: 5, Duration: time.Hour}},
		appts: &fakeApptRepo{request: &domain.AppointmentRequest{
			ID:        10,
			IDRequest: "req-1",
			ServiceID: 5,
			StaffID:   7,
		}},
		reschedules: &fakeRescheduleRepo{},
		schedules:   &fakeScheduleService{window: &domain.Window{Start: at(9, 0), End: at(18, 0)}},
		now:         time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.services, f.appts, f.reschedules, f.schedules, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: f.now}
	return uc
}

func validRequest() *Request {
	return &Request{
		IDRequest: "req-1",
		Date:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: at(14, 0),
	}
}

func TestExecute(t *testing.T) {
	t.Run("creates a pending hold on the proposed interval", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, "req-1", resp.IDRequest)
		assert.Equal(t, "2024-03-02", resp.Date)
		assert.Equal(t, "14:00:00", resp.StartTime)
		assert.Equal(t, "15:00:00", resp.EndTime)
		assert.Equal(t, int64(7), resp.StaffID)
		assert.Equal(t, "pending", resp.Status)

		require.NotNil(t, f.reschedules.created)
		assert.Equal(t, int64(10), f.reschedules.created.RequestID)
	})

	t.Run("own request is excluded from the overlap check", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "req-1", f.appts.gotExclude)
	})

	t.Run("explicit staff override wins", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		req := validRequest()
		req.StaffID = ptr.Ptr(int64(9))
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.StaffID)
		assert.Contains(t, f.schedules.staffIDs, int64(9))
	})

	t.Run("unknown id_request", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		req := validRequest()
		req.IDRequest = "missing"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})

	t.Run("occupied target interval", func(t *testing.T) {
		f := newFixture()
		f.appts.overlaps = true
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, f.reschedules.created)
	})

	t.Run("target date outside the working window", func(t *testing.T) {
		f := newFixture()
		f.schedules.window = nil
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("past target date", func(t *testing.T) {
		f := newFixture()
		f.now = time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
