package get_service_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeApptRepo struct {
	views []domain.AppointmentView
}

func (f *fakeApptRepo) ListViewsForServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]domain.AppointmentView, error) {
	return f.views, nil
}

type fakeScheduleService struct {
	pacing *schedule.Pacing
}

func (f *fakeScheduleService) WindowAndPacing(ctx context.Context, date time.Time) (*schedule.Pacing, error) {
	return f.pacing, nil
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

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func defaultPacing(date time.Time) *schedule.Pacing {
	return &schedule.Pacing{
		WindowStart:  at(date.Year(), date.Month(), date.Day(), 9, 0),
		WindowEnd:    at(date.Year(), date.Month(), date.Day(), 12, 0),
		SlotDuration: time.Hour,
		Buffer:       30 * time.Minute,
	}
}

func newUseCase(services *fakeServiceRepo, appts *fakeApptRepo, schedules *fakeScheduleService, now time.Time) *UseCase {
	uc := NewUseCase(services, appts, schedules, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	service := &domain.Service{ID: 5, Name: "Haircut"}
	date := at(2024, 3, 2, 0, 0)

	t.Run("future date ignores the buffer", func(t *testing.T) {
		now := at(2024, 3, 1, 11, 45)
		uc := newUseCase(&fakeServiceRepo{service: service}, &fakeApptRepo{}, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date})
		require.NoError(t, err)

		assert.Equal(t, "Haircut", resp.ServiceName)
		assert.Equal(t, "2024-03-02", resp.Date)
		assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM"}, resp.Slots)
	})

	t.Run("today applies buffer from now", func(t *testing.T) {
		now := at(2024, 3, 2, 9, 45)
		uc := newUseCase(&fakeServiceRepo{service: service}, &fakeApptRepo{}, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date})
		require.NoError(t, err)

		// 09:45 + 30m buffer: the 09:00 and 10:00 slots are gone.
		assert.Equal(t, []string{"11:00 AM"}, resp.Slots)
	})

	t.Run("booked intervals drop overlapping slots", func(t *testing.T) {
		now := at(2024, 3, 1, 8, 0)
		appts := &fakeApptRepo{views: []domain.AppointmentView{
			{Start: at(2024, 3, 2, 9, 30), End: at(2024, 3, 2, 10, 30)},
		}}
		uc := newUseCase(&fakeServiceRepo{service: service}, appts, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date})
		require.NoError(t, err)
		assert.Equal(t, []string{"11:00 AM"}, resp.Slots)
	})

	t.Run("appointment touching a slot boundary keeps it", func(t *testing.T) {
		now := at(2024, 3, 1, 8, 0)
		appts := &fakeApptRepo{views: []domain.AppointmentView{
			{Start: at(2024, 3, 2, 10, 0), End: at(2024, 3, 2, 11, 0)},
		}}
		uc := newUseCase(&fakeServiceRepo{service: service}, appts, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date})
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00 AM", "11:00 AM"}, resp.Slots)
	})

	t.Run("past date", func(t *testing.T) {
		now := at(2024, 3, 3, 8, 0)
		uc := newUseCase(&fakeServiceRepo{service: service}, &fakeApptRepo{}, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date})
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("unknown service", func(t *testing.T) {
		now := at(2024, 3, 1, 8, 0)
		uc := newUseCase(&fakeServiceRepo{}, &fakeApptRepo{}, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid service id", func(t *testing.T) {
		now := at(2024, 3, 1, 8, 0)
		uc := newUseCase(&fakeServiceRepo{service: service}, &fakeApptRepo{}, &fakeScheduleService{pacing: defaultPacing(date)}, now)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
