package get_staff_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

type fakeApptRepo struct {
	views []domain.AppointmentView
}

func (f *fakeApptRepo) ListViewsForStaffAndWindow(ctx context.Context, staffID int64, date, windowStart, windowEnd time.Time) ([]domain.AppointmentView, error) {
	return f.views, nil
}

type fakeRescheduleRepo struct {
	holds []domain.Hold
	since time.Time
}

func (f *fakeRescheduleRepo) ListPendingHolds(ctx context.Context, staffID int64, date, since time.Time) ([]domain.Hold, error) {
	f.since = since
	return f.holds, nil
}

type fakeScheduleService struct {
	staff        *domain.StaffMember
	staffErr     error
	dayOff       bool
	window       *domain.Window
	slotDuration time.Duration
	buffer       time.Duration
}

func (f *fakeScheduleService) GetStaff(ctx context.Context, staffID int64) (*domain.StaffMember, error) {
	if f.staffErr != nil {
		return nil, f.staffErr
	}
	return f.staff, nil
}

func (f *fakeScheduleService) HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	return f.dayOff, nil
}

func (f *fakeScheduleService) WindowFor(ctx context.Context, staff *domain.StaffMember, date time.Time) (*domain.Window, error) {
	return f.window, nil
}

func (f *fakeScheduleService) StaffPacing(ctx context.Context, staff *domain.StaffMember) (time.Duration, time.Duration, error) {
	return f.slotDuration, f.buffer, nil
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

func newUseCase(appts *fakeApptRepo, reschedules *fakeRescheduleRepo, schedules *fakeScheduleService, now time.Time) *UseCase {
	uc := NewUseCase(appts, reschedules, schedules, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	member := &domain.StaffMember{ID: 7}

	baseSchedules := func() *fakeScheduleService {
		return &fakeScheduleService{
			staff:        member,
			window:       &domain.Window{Start: at(9, 0), End: at(12, 0)},
			slotDuration: time.Hour,
		}
	}

	t.Run("buffer warms up from the window start", func(t *testing.T) {
		schedules := baseSchedules()
		schedules.buffer = 30 * time.Minute
		uc := newUseCase(&fakeApptRepo{}, &fakeRescheduleRepo{}, schedules, now)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)

		// 09:00 + 30m warmup: the first back-to-back slot left is 10:00.
		assert.Equal(t, []time.Time{at(10, 0), at(11, 0)}, resp.Slots)
	})

	t.Run("day off yields no slots", func(t *testing.T) {
		schedules := baseSchedules()
		schedules.dayOff = true
		uc := newUseCase(&fakeApptRepo{}, &fakeRescheduleRepo{}, schedules, now)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("no window means non-working day", func(t *testing.T) {
		schedules := baseSchedules()
		schedules.window = nil
		uc := newUseCase(&fakeApptRepo{}, &fakeRescheduleRepo{}, schedules, now)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("pending hold blocks the slot it starts in", func(t *testing.T) {
		reschedules := &fakeRescheduleRepo{holds: []domain.Hold{
			{Start: at(10, 0), End: at(11, 0)},
		}}
		uc := newUseCase(&fakeApptRepo{}, reschedules, baseSchedules(), now)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)

		assert.Equal(t, []time.Time{at(9, 0), at(11, 0)}, resp.Slots)
		// Expired holds are filtered at the query boundary.
		assert.Equal(t, now.Add(-domain.PendingHoldWindow), reschedules.since)
	})

	t.Run("booked intervals use full overlap", func(t *testing.T) {
		appts := &fakeApptRepo{views: []domain.AppointmentView{
			{Start: at(10, 30), End: at(11, 30)},
		}}
		uc := newUseCase(appts, &fakeRescheduleRepo{}, baseSchedules(), now)

		resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{at(9, 0)}, resp.Slots)
	})

	t.Run("unknown staff member", func(t *testing.T) {
		schedules := baseSchedules()
		schedules.staffErr = schedule.ErrStaffNotFound
		uc := newUseCase(&fakeApptRepo{}, &fakeRescheduleRepo{}, schedules, now)

		_, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("invalid staff id", func(t *testing.T) {
		uc := newUseCase(&fakeApptRepo{}, &fakeRescheduleRepo{}, baseSchedules(), now)

		_, err := uc.Execute(context.Background(), &Request{StaffID: -1, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
