package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/port/mocks"
)

func TestBuildPipeline_AddsTwoElementsAndOneLink(t *testing.T) {
	ctx, _ := captureContext()
	pipeline := mocks.NewMockMediaPipeline(t)
	source := mocks.NewMockMediaElement(t)
	sinkElem := mocks.NewMockMediaElement(t)
	sink := &port.SoftwareSink{Sink: sinkElem, Surface: testHandle()}

	pipeline.EXPECT().Add(source, sinkElem).Return(nil).Once()
	pipeline.EXPECT().Link(source, sinkElem).Return(nil).Once()
	source.EXPECT().FactoryName().Return("v4l2src").Maybe()
	sinkElem.EXPECT().FactoryName().Return("gtksink").Maybe()

	err := NewBuildPipelineUseCase().Execute(ctx, pipeline, source, sink)
	require.NoError(t, err)
}

func TestBuildPipeline_LinksTheBinNotTheInnerSink(t *testing.T) {
	ctx, _ := captureContext()
	pipeline := mocks.NewMockMediaPipeline(t)
	source := mocks.NewMockMediaElement(t)
	bin := mocks.NewMockMediaElement(t)
	inner := mocks.NewMockMediaElement(t)
	sink := &port.AcceleratedSink{Bin: bin, Inner: inner, Surface: testHandle()}

	pipeline.EXPECT().Add(source, bin).Return(nil).Once()
	pipeline.EXPECT().Link(source, bin).Return(nil).Once()
	source.EXPECT().FactoryName().Return("videotestsrc").Maybe()
	bin.EXPECT().FactoryName().Return("glsinkbin").Maybe()

	require.NoError(t, NewBuildPipelineUseCase().Execute(ctx, pipeline, source, sink))
}

func TestBuildPipeline_AddFailure(t *testing.T) {
	ctx, _ := captureContext()
	pipeline := mocks.NewMockMediaPipeline(t)
	source := mocks.NewMockMediaElement(t)
	sinkElem := mocks.NewMockMediaElement(t)
	sink := &port.SoftwareSink{Sink: sinkElem}
	addErr := errors.New("element already has a parent")

	pipeline.EXPECT().Add(source, sinkElem).Return(addErr).Once()

	err := NewBuildPipelineUseCase().Execute(ctx, pipeline, source, sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPipelineLink)
	assert.ErrorIs(t, err, addErr)
}

func TestBuildPipeline_LinkFailure(t *testing.T) {
	ctx, _ := captureContext()
	pipeline := mocks.NewMockMediaPipeline(t)
	source := mocks.NewMockMediaElement(t)
	sinkElem := mocks.NewMockMediaElement(t)
	sink := &port.SoftwareSink{Sink: sinkElem}
	linkErr := errors.New("caps not compatible")

	pipeline.EXPECT().Add(source, sinkElem).Return(nil).Once()
	pipeline.EXPECT().Link(source, sinkElem).Return(linkErr).Once()
	source.EXPECT().FactoryName().Return("v4l2src").Once()
	sinkElem.EXPECT().FactoryName().Return("gtksink").Once()

	err := NewBuildPipelineUseCase().Execute(ctx, pipeline, source, sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPipelineLink)
	assert.ErrorIs(t, err, linkErr)
	assert.Contains(t, err.Error(), "v4l2src -> gtksink")
}

func TestBuildPipeline_MissingInputs(t *testing.T) {
	ctx, _ := captureContext()
	source := mocks.NewMockMediaElement(t)

	err := NewBuildPipelineUseCase().Execute(ctx, nil, source, nil)

	assert.ErrorIs(t, err, ErrPipelineLink)
}
