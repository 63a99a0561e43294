package preview_recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/timeutil"
)

func TestToUseCaseRequest(t *testing.T) {
	t.Run("converts minutes and combines date with clock", func(t *testing.T) {
		req := PreviewRequest{
			Date:            "2024-03-02",
			StartTime:       "10:00 AM",
			Rule:            "FREQ=WEEKLY",
			DurationMinutes: 45,
		}

		useCaseReq, err := req.ToUseCaseRequest()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), useCaseReq.InitialStart)
		assert.Equal(t, 45*time.Minute, useCaseReq.ServiceDuration)
		assert.Nil(t, useCaseReq.EndRecurrence)
	})

	t.Run("end recurrence covers the whole last day", func(t *testing.T) {
		req := PreviewRequest{
			Date:            "2024-03-02",
			StartTime:       "10:00",
			Rule:            "FREQ=DAILY",
			EndRecurrence:   ptr.Ptr("2024-03-10"),
			DurationMinutes: 30,
		}

		useCaseReq, err := req.ToUseCaseRequest()
		require.NoError(t, err)

		require.NotNil(t, useCaseReq.EndRecurrence)
		assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), *useCaseReq.EndRecurrence)
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		req := PreviewRequest{
			Date:            "2024-03-02",
			StartTime:       "10:00",
			Rule:            "FREQ=DAILY",
			DurationMinutes: -30,
		}

		_, err := req.ToUseCaseRequest()
		assert.ErrorIs(t, err, timeutil.ErrInvalidArgument)
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		req := PreviewRequest{
			Date:            "03/02/2024",
			StartTime:       "10:00",
			Rule:            "FREQ=DAILY",
			DurationMinutes: 30,
		}

		_, err := req.ToUseCaseRequest()
		assert.ErrorIs(t, err, timeutil.ErrInvalidFormat)
	})
}
