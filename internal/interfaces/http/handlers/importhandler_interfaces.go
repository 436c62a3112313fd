package handlers

import (
	"context"
	"io"

	"pulsegym/internal/application/retention/usecases"
)

// Use case interfaces for ImportHandler

type importMembersUseCase interface {
	Execute(ctx context.Context, r io.Reader) (*usecases.ImportResult, error)
}
