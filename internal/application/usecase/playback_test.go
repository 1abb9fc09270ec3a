package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/port/mocks"
)

func TestPlaybackStart_Success(t *testing.T) {
	ctx, buf := captureContext()
	pipeline := mocks.NewMockMediaPipeline(t)

	pipeline.EXPECT().SetState(port.PipelineStatePlaying).Return(nil).Once()

	ok := NewPlaybackUseCase().Start(ctx, pipeline)

	assert.True(t, ok)
	assert.Empty(t, messagesAt(t, buf, "error"))
}

func TestPlaybackStart_FailureIsLoggedOnly(t *testing.T) {
	ctx, buf := captureContext()
	pipeline := mocks.NewMockMediaPipeline(t)

	pipeline.EXPECT().SetState(port.PipelineStatePlaying).Return(errors.New("state change failure")).Once()

	ok := NewPlaybackUseCase().Start(ctx, pipeline)

	assert.False(t, ok)
	assert.Equal(t, []string{"failed to set pipeline to playing"}, messagesAt(t, buf, "error"))
}

func TestPlaybackStop(t *testing.T) {
	t.Run("sets null", func(t *testing.T) {
		ctx, buf := captureContext()
		pipeline := mocks.NewMockMediaPipeline(t)
		pipeline.EXPECT().SetState(port.PipelineStateNull).Return(nil).Once()

		NewPlaybackUseCase().Stop(ctx, pipeline)

		assert.Empty(t, messagesAt(t, buf, "warn"))
	})

	t.Run("failure warns", func(t *testing.T) {
		ctx, buf := captureContext()
		pipeline := mocks.NewMockMediaPipeline(t)
		pipeline.EXPECT().SetState(port.PipelineStateNull).Return(errors.New("busy")).Once()

		NewPlaybackUseCase().Stop(ctx, pipeline)

		assert.Equal(t, []string{"failed to set pipeline to null"}, messagesAt(t, buf, "warn"))
	})

	t.Run("nil pipeline is a no-op", func(t *testing.T) {
		ctx, _ := captureContext()
		assert.NotPanics(t, func() { NewPlaybackUseCase().Stop(ctx, nil) })
	})
}
