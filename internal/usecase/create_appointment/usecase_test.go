package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type fakeServiceRepo struct {
	service *domain.Service
	offered bool
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	return f.service, nil
}

func (f *fakeServiceRepo) OfferedByStaff(ctx context.Context, staffID, serviceID int64) (bool, error) {
	return f.offered, nil
}

type fakeApptRepo struct {
	overlaps       bool
	createdRequest *domain.AppointmentRequest
	createdAppt    *domain.Appointment
}

func (f *fakeApptRepo) CreateRequest(ctx context.Context, req *domain.AppointmentRequest) (*domain.AppointmentRequest, error) {
	created := *req
	created.ID = 10
	f.createdRequest = &created
	return &created, nil
}

func (f *fakeApptRepo) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = 20
	f.createdAppt = &created
	return &created, nil
}

func (f *fakeApptRepo) HasOverlappingRequest(ctx context.Context, staffID int64, date, startTime, endTime time.Time, excludeIDRequest string) (bool, error) {
	return f.overlaps, nil
}

type fakeRescheduleRepo struct {
	holds []domain.Hold
}

func (f *fakeRescheduleRepo) ListPendingHolds(ctx context.Context, staffID int64, date, since time.Time) ([]domain.Hold, error) {
	return f.holds, nil
}

type fakeScheduleService struct {
	staff  *domain.StaffMember
	dayOff bool
	window *domain.Window
}

func (f *fakeScheduleService) GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error) {
	return f.staff, nil
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
		services: &fakeServiceRepo{
			service: &domain.Service{ID: 5, Name: "Haircut", Duration: time.Hour},
			offered: true,
		},
		appts:       &fakeApptRepo{},
		reschedules: &fakeRescheduleRepo{},
		schedules: &fakeScheduleService{
			staff:  &domain.StaffMember{ID: 7},
			window: &domain.Window{Start: at(9, 0), End: at(18, 0)},
		},
		now: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.services, f.appts, f.reschedules, f.schedules, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: f.now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceID:   5,
		StaffID:     7,
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   at(10, 0),
		PaymentType: "full",
		ClientName:  "Dana",
		ClientEmail: "dana@example.com",
	}
}

func TestExecute(t *testing.T) {
	t.Run("creates request and linked appointment", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, "2024-03-02", resp.Date)
		assert.Equal(t, "10:00:00", resp.StartTime)
		assert.Equal(t, "11:00:00", resp.EndTime)
		assert.Equal(t, "full", resp.PaymentType)
		assert.NotEmpty(t, resp.IDRequest)

		require.NotNil(t, f.appts.createdAppt)
		assert.Equal(t, f.appts.createdRequest.ID, f.appts.createdAppt.RequestID)
		assert.Equal(t, f.appts.createdRequest.IDRequest, f.appts.createdAppt.IDRequest)
	})

	t.Run("id_request embeds timestamp and service id", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Contains(t, resp.IDRequest, "17092800000005")
		assert.NotContains(t, resp.IDRequest, "-")
	})

	t.Run("overlapping request blocks the slot", func(t *testing.T) {
		f := newFixture()
		f.appts.overlaps = true
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, f.appts.createdRequest)
	})

	t.Run("pending hold blocks an overlapping interval", func(t *testing.T) {
		f := newFixture()
		f.reschedules.holds = []domain.Hold{{Start: at(10, 30), End: at(11, 30)}}
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("hold touching the boundary does not block", func(t *testing.T) {
		f := newFixture()
		f.reschedules.holds = []domain.Hold{{Start: at(11, 0), End: at(12, 0)}}
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("interval outside the window", func(t *testing.T) {
		f := newFixture()
		f.schedules.window = &domain.Window{Start: at(9, 0), End: at(10, 30)}
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("day off blocks the date", func(t *testing.T) {
		f := newFixture()
		f.schedules.dayOff = true
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("staff does not offer the service", func(t *testing.T) {
		f := newFixture()
		f.services.offered = false
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotOffered)
	})

	t.Run("past date", func(t *testing.T) {
		f := newFixture()
		f.now = time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("start already passed today", func(t *testing.T) {
		f := newFixture()
		f.now = time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)
		uc := f.useCase()

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown payment type", func(t *testing.T) {
		f := newFixture()
		uc := f.useCase()

		req := validRequest()
		req.PaymentType = "credit"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
