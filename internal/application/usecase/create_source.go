// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/logging"
)

// DefaultTestSource is used when no source factory is configured.
const DefaultTestSource = "videotestsrc"

// ErrSourceUnavailable is returned when the source element cannot be made.
var ErrSourceUnavailable = errors.New("video source unavailable")

// CreateSourceUseCase makes the element that feeds the pipeline.
type CreateSourceUseCase struct {
	factory port.ElementFactory
}

// NewCreateSourceUseCase creates a new CreateSourceUseCase.
func NewCreateSourceUseCase(factory port.ElementFactory) *CreateSourceUseCase {
	return &CreateSourceUseCase{factory: factory}
}

// CreateSourceInput names the source factories.
type CreateSourceInput struct {
	// Source is the configured factory; empty selects TestSource.
	Source     string
	TestSource string
}

// Execute makes the source element. Failure is fatal for the viewer.
func (uc *CreateSourceUseCase) Execute(ctx context.Context, input CreateSourceInput) (port.MediaElement, error) {
	log := logging.FromContext(ctx)

	name := strings.TrimSpace(input.Source)
	if name == "" {
		name = strings.TrimSpace(input.TestSource)
	}
	if name == "" {
		name = DefaultTestSource
	}

	src, err := uc.factory.Make(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err)
	}

	log.Info().Str("factory", name).Str("element", src.Name()).Msg("video source created")
	return src, nil
}
