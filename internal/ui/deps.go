// Package ui provides the GTK3 presentation layer for camview.
package ui

import (
	"context"

	"github.com/bnema/camview/internal/application/port"
	"github.com/bnema/camview/internal/application/usecase"
	"github.com/bnema/camview/internal/infrastructure/config"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	// Core context and configuration
	Ctx    context.Context
	Config *config.Config

	// Media infrastructure
	Elements port.ElementFactory

	// Use Cases (defaulted when nil)
	CreateSourceUC  *usecase.CreateSourceUseCase
	SelectSinkUC    *usecase.SelectSinkUseCase
	BuildPipelineUC *usecase.BuildPipelineUseCase
	PlaybackUC      *usecase.PlaybackUseCase
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Elements == nil {
		return ErrMissingDependency("Elements")
	}
	return nil
}

func (d *Dependencies) withDefaults() {
	if d.CreateSourceUC == nil {
		d.CreateSourceUC = usecase.NewCreateSourceUseCase(d.Elements)
	}
	if d.SelectSinkUC == nil {
		d.SelectSinkUC = usecase.NewSelectSinkUseCase(d.Elements)
	}
	if d.BuildPipelineUC == nil {
		d.BuildPipelineUC = usecase.NewBuildPipelineUseCase()
	}
	if d.PlaybackUC == nil {
		d.PlaybackUC = usecase.NewPlaybackUseCase()
	}
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
