package trigger

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/dan13ram/mint-queue/app"
	appMocks "github.com/dan13ram/mint-queue/app/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

type triggerableService struct {
	*appMocks.MockService
	*appMocks.MockTriggerable
}

type firerFunc func(ctx context.Context) error

func (f firerFunc) Fire(ctx context.Context) error {
	return f(ctx)
}

func TestLocalFire(t *testing.T) {
	t.Run("Triggerable Service", func(t *testing.T) {
		service := triggerableService{
			MockService:     appMocks.NewMockService(t),
			MockTriggerable: appMocks.NewMockTriggerable(t),
		}
		service.MockTriggerable.EXPECT().Trigger().Return().Once()

		local := NewLocal(service)

		assert.NoError(t, local.Fire(context.Background()))
	})

	t.Run("Plain Service", func(t *testing.T) {
		var wg sync.WaitGroup
		local := NewLocal(app.NewEmptyService(&wg))

		assert.Nil(t, local.service)
		assert.NoError(t, local.Fire(context.Background()))
	})

	t.Run("Runner Service", func(t *testing.T) {
		local := NewLocal(&app.RunnerService{})

		assert.NotNil(t, local.service)
	})
}

func TestFanout(t *testing.T) {
	ctx := context.Background()

	t.Run("All Fired", func(t *testing.T) {
		calls := 0
		fanout := Fanout{
			firerFunc(func(context.Context) error { calls++; return nil }),
			firerFunc(func(context.Context) error { calls++; return nil }),
		}

		assert.NoError(t, fanout.Fire(ctx))
		assert.Equal(t, 2, calls)
	})

	t.Run("Errors Joined", func(t *testing.T) {
		first := errors.New("first")
		second := errors.New("second")
		calls := 0
		fanout := Fanout{
			firerFunc(func(context.Context) error { calls++; return first }),
			firerFunc(func(context.Context) error { calls++; return nil }),
			firerFunc(func(context.Context) error { calls++; return second }),
		}

		err := fanout.Fire(ctx)

		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
		assert.Equal(t, 3, calls)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, Fanout{}.Fire(ctx))
	})
}
