package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeConfigResolver struct {
	cfg *domain.SchedulingConfig
	err error
}

func (f *fakeConfigResolver) Current(ctx context.Context) (*domain.SchedulingConfig, error) {
	return f.cfg, f.err
}

type fakeStaffRepo struct {
	workingHours map[time.Weekday]*domain.WorkingHours
	whErr        error
	member       *domain.StaffMember
	memberErr    error
	dayOff       bool
	dayOffErr    error
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	if f.memberErr != nil {
		return nil, f.memberErr
	}
	return f.member, nil
}

func (f *fakeStaffRepo) GetWorkingHours(ctx context.Context, staffID int64, day time.Weekday) (*domain.WorkingHours, error) {
	if f.whErr != nil {
		return nil, f.whErr
	}
	if wh, ok := f.workingHours[day]; ok {
		return wh, nil
	}
	return nil, staffRepo.ErrWorkingHoursNotFound
}

func (f *fakeStaffRepo) HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	return f.dayOff, f.dayOffErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func clock(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestWindowAndPacing(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("defaults when no config row exists", func(t *testing.T) {
		svc := NewService(&fakeConfigResolver{}, &fakeStaffRepo{}, nopLogger{})

		pacing, err := svc.WindowAndPacing(context.Background(), date)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), pacing.WindowStart)
		assert.Equal(t, time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC), pacing.WindowEnd)
		assert.Equal(t, 30*time.Minute, pacing.SlotDuration)
		assert.Equal(t, time.Duration(0), pacing.Buffer)
	})

	t.Run("configured values win over defaults", func(t *testing.T) {
		cfg := &domain.SchedulingConfig{
			SlotDurationMinutes: ptr.Ptr(45),
			LeadTime:            ptr.Ptr(clock(10, 0)),
			FinishTime:          ptr.Ptr(clock(20, 0)),
			BufferMinutes:       ptr.Ptr(90.0),
		}
		svc := NewService(&fakeConfigResolver{cfg: cfg}, &fakeStaffRepo{}, nopLogger{})

		pacing, err := svc.WindowAndPacing(context.Background(), date)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), pacing.WindowStart)
		assert.Equal(t, time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC), pacing.WindowEnd)
		assert.Equal(t, 45*time.Minute, pacing.SlotDuration)
		assert.Equal(t, 90*time.Minute, pacing.Buffer)
	})

	t.Run("config resolve failure", func(t *testing.T) {
		svc := NewService(&fakeConfigResolver{err: errors.New("boom")}, &fakeStaffRepo{}, nopLogger{})

		_, err := svc.WindowAndPacing(context.Background(), date)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestStaffPacing(t *testing.T) {
	cfg := &domain.SchedulingConfig{
		SlotDurationMinutes: ptr.Ptr(45),
		BufferMinutes:       ptr.Ptr(60.0),
	}

	t.Run("personal overrides win", func(t *testing.T) {
		svc := NewService(&fakeConfigResolver{cfg: cfg}, &fakeStaffRepo{}, nopLogger{})
		member := &domain.StaffMember{
			SlotDurationMinutes: ptr.Ptr(20),
			BufferMinutes:       ptr.Ptr(7.5),
		}

		slot, buffer, err := svc.StaffPacing(context.Background(), member)
		require.NoError(t, err)
		assert.Equal(t, 20*time.Minute, slot)
		assert.Equal(t, 7*time.Minute+30*time.Second, buffer)
	})

	t.Run("falls back to the global config", func(t *testing.T) {
		svc := NewService(&fakeConfigResolver{cfg: cfg}, &fakeStaffRepo{}, nopLogger{})

		slot, buffer, err := svc.StaffPacing(context.Background(), &domain.StaffMember{})
		require.NoError(t, err)
		assert.Equal(t, 45*time.Minute, slot)
		assert.Equal(t, 60*time.Minute, buffer)
	})

	t.Run("falls back to defaults without a config row", func(t *testing.T) {
		svc := NewService(&fakeConfigResolver{}, &fakeStaffRepo{}, nopLogger{})

		slot, buffer, err := svc.StaffPacing(context.Background(), &domain.StaffMember{})
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, slot)
		assert.Equal(t, time.Duration(0), buffer)
	})
}

func TestWindowFor(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) // friday
	member := &domain.StaffMember{ID: 7}

	t.Run("explicit working hours win", func(t *testing.T) {
		staff := &fakeStaffRepo{workingHours: map[time.Weekday]*domain.WorkingHours{
			time.Friday: {StartTime: clock(11, 0), EndTime: clock(15, 0)},
		}}
		svc := NewService(&fakeConfigResolver{}, staff, nopLogger{})

		window, err := svc.WindowFor(context.Background(), member, date)
		require.NoError(t, err)
		require.NotNil(t, window)
		assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), window.Start)
		assert.Equal(t, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC), window.End)
	})

	t.Run("personal window stands in for a missing row", func(t *testing.T) {
		personal := &domain.StaffMember{
			ID:         7,
			LeadTime:   ptr.Ptr(clock(8, 0)),
			FinishTime: ptr.Ptr(clock(14, 0)),
		}
		svc := NewService(&fakeConfigResolver{}, &fakeStaffRepo{}, nopLogger{})

		window, err := svc.WindowFor(context.Background(), personal, date)
		require.NoError(t, err)
		require.NotNil(t, window)
		assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), window.Start)
		assert.Equal(t, time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC), window.End)
	})

	t.Run("one personal bound is not enough", func(t *testing.T) {
		partial := &domain.StaffMember{ID: 7, LeadTime: ptr.Ptr(clock(8, 0))}
		svc := NewService(&fakeConfigResolver{}, &fakeStaffRepo{}, nopLogger{})

		window, err := svc.WindowFor(context.Background(), partial, date)
		require.NoError(t, err)
		assert.Nil(t, window)
	})

	t.Run("no source means non-working day", func(t *testing.T) {
		svc := NewService(&fakeConfigResolver{}, &fakeStaffRepo{}, nopLogger{})

		window, err := svc.WindowFor(context.Background(), member, date)
		require.NoError(t, err)
		assert.Nil(t, window)
	})

	t.Run("lookup failure is internal", func(t *testing.T) {
		staff := &fakeStaffRepo{whErr: errors.New("db down")}
		svc := NewService(&fakeConfigResolver{}, staff, nopLogger{})

		_, err := svc.WindowFor(context.Background(), member, date)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetStaff(t *testing.T) {
	t.Run("maps repository not-found", func(t *testing.T) {
		staff := &fakeStaffRepo{memberErr: staffRepo.ErrStaffNotFound}
		svc := NewService(&fakeConfigResolver{}, staff, nopLogger{})

		_, err := svc.GetStaff(context.Background(), 42)
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("passes the member through", func(t *testing.T) {
		staff := &fakeStaffRepo{member: &domain.StaffMember{ID: 42, Name: "Dana"}}
		svc := NewService(&fakeConfigResolver{}, staff, nopLogger{})

		member, err := svc.GetStaff(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), member.ID)
	})
}
