package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/staff"
)

type fakeRepo struct {
	member       *domain.StaffMember
	createWHErr  error
	deletedWH    *domain.WorkingHours
	deleteWHErr  error
	flagCalls    []flagCall
	overlaps     bool
	createdDay   *domain.DayOff
	deleteDayErr error
}

type flagCall struct {
	staffID int64
	day     time.Weekday
	works   bool
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	if f.member == nil {
		return nil, staffRepo.ErrStaffNotFound
	}
	return f.member, nil
}

func (f *fakeRepo) SetWeekendFlag(ctx context.Context, staffID int64, day time.Weekday, works bool) error {
	f.flagCalls = append(f.flagCalls, flagCall{staffID, day, works})
	return nil
}

func (f *fakeRepo) GetWorkingHours(ctx context.Context, staffID int64, day time.Weekday) (*domain.WorkingHours, error) {
	return nil, staffRepo.ErrWorkingHoursNotFound
}

func (f *fakeRepo) ListWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHours, error) {
	return nil, nil
}

func (f *fakeRepo) CreateWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	if f.createWHErr != nil {
		return nil, f.createWHErr
	}
	created := *wh
	created.ID = 1
	return &created, nil
}

func (f *fakeRepo) UpdateWorkingHours(ctx context.Context, id int64, start, end time.Time) error {
	return nil
}

func (f *fakeRepo) DeleteWorkingHours(ctx context.Context, id int64) (*domain.WorkingHours, error) {
	if f.deleteWHErr != nil {
		return nil, f.deleteWHErr
	}
	return f.deletedWH, nil
}

func (f *fakeRepo) DayOffOverlaps(ctx context.Context, staffID int64, start, end time.Time, excludeID *int64) (bool, error) {
	return f.overlaps, nil
}

func (f *fakeRepo) CreateDayOff(ctx context.Context, dayOff *domain.DayOff) (*domain.DayOff, error) {
	created := *dayOff
	created.ID = 1
	f.createdDay = &created
	return &created, nil
}

func (f *fakeRepo) ListDaysOff(ctx context.Context, staffID int64) ([]*domain.DayOff, error) {
	return nil, nil
}

func (f *fakeRepo) DeleteDayOff(ctx context.Context, id int64) error {
	return f.deleteDayErr
}

func (f *fakeRepo) HasDayOff(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	return false, nil
}

// passthroughTx запускает функцию без транзакции: в тестах сервиса
// важна только последовательность вызовов репозитория.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func clock(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateWorkingHours(t *testing.T) {
	member := &domain.StaffMember{ID: 7}

	t.Run("saturday raises the weekend flag", func(t *testing.T) {
		repo := &fakeRepo{member: member}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		created, err := svc.CreateWorkingHours(context.Background(), &domain.WorkingHours{
			StaffID:   7,
			DayOfWeek: time.Saturday,
			StartTime: clock(10, 0),
			EndTime:   clock(16, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		require.Len(t, repo.flagCalls, 1)
		assert.Equal(t, flagCall{7, time.Saturday, true}, repo.flagCalls[0])
	})

	t.Run("weekday leaves the flags alone", func(t *testing.T) {
		repo := &fakeRepo{member: member}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		_, err := svc.CreateWorkingHours(context.Background(), &domain.WorkingHours{
			StaffID:   7,
			DayOfWeek: time.Tuesday,
			StartTime: clock(9, 0),
			EndTime:   clock(18, 0),
		})
		require.NoError(t, err)
		assert.Empty(t, repo.flagCalls)
	})

	t.Run("inverted interval is rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{member: member}, passthroughTx{}, nopLogger{})

		_, err := svc.CreateWorkingHours(context.Background(), &domain.WorkingHours{
			StaffID:   7,
			DayOfWeek: time.Tuesday,
			StartTime: clock(18, 0),
			EndTime:   clock(9, 0),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("duplicate weekday", func(t *testing.T) {
		repo := &fakeRepo{member: member, createWHErr: staffRepo.ErrDuplicateWorkingHours}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		_, err := svc.CreateWorkingHours(context.Background(), &domain.WorkingHours{
			StaffID:   7,
			DayOfWeek: time.Tuesday,
			StartTime: clock(9, 0),
			EndTime:   clock(18, 0),
		})
		assert.ErrorIs(t, err, ErrDuplicateWorkingHours)
	})

	t.Run("unknown staff member", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, passthroughTx{}, nopLogger{})

		_, err := svc.CreateWorkingHours(context.Background(), &domain.WorkingHours{
			StaffID:   99,
			DayOfWeek: time.Tuesday,
			StartTime: clock(9, 0),
			EndTime:   clock(18, 0),
		})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestDeleteWorkingHours(t *testing.T) {
	t.Run("sunday clears the weekend flag", func(t *testing.T) {
		repo := &fakeRepo{deletedWH: &domain.WorkingHours{ID: 3, StaffID: 7, DayOfWeek: time.Sunday}}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		err := svc.DeleteWorkingHours(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, repo.flagCalls, 1)
		assert.Equal(t, flagCall{7, time.Sunday, false}, repo.flagCalls[0])
	})

	t.Run("missing row", func(t *testing.T) {
		repo := &fakeRepo{deleteWHErr: staffRepo.ErrWorkingHoursNotFound}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		err := svc.DeleteWorkingHours(context.Background(), 3)
		assert.ErrorIs(t, err, ErrWorkingHoursNotFound)
	})
}

func TestCreateDayOff(t *testing.T) {
	member := &domain.StaffMember{ID: 7}

	t.Run("creates a valid range", func(t *testing.T) {
		repo := &fakeRepo{member: member}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		created, err := svc.CreateDayOff(context.Background(), &domain.DayOff{
			StaffID:   7,
			StartDate: date(2024, 3, 1),
			EndDate:   date(2024, 3, 3),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("single-day range is allowed", func(t *testing.T) {
		repo := &fakeRepo{member: member}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		_, err := svc.CreateDayOff(context.Background(), &domain.DayOff{
			StaffID:   7,
			StartDate: date(2024, 3, 1),
			EndDate:   date(2024, 3, 1),
		})
		assert.NoError(t, err)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{member: member}, passthroughTx{}, nopLogger{})

		_, err := svc.CreateDayOff(context.Background(), &domain.DayOff{
			StaffID:   7,
			StartDate: date(2024, 3, 3),
			EndDate:   date(2024, 3, 1),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("overlap with an existing day off", func(t *testing.T) {
		repo := &fakeRepo{member: member, overlaps: true}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		_, err := svc.CreateDayOff(context.Background(), &domain.DayOff{
			StaffID:   7,
			StartDate: date(2024, 3, 1),
			EndDate:   date(2024, 3, 3),
		})
		assert.ErrorIs(t, err, ErrDayOffOverlap)
	})
}

func TestDeleteDayOff(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		repo := &fakeRepo{deleteDayErr: staffRepo.ErrDayOffNotFound}
		svc := NewService(repo, passthroughTx{}, nopLogger{})

		err := svc.DeleteDayOff(context.Background(), 9)
		assert.ErrorIs(t, err, ErrDayOffNotFound)
	})
}
