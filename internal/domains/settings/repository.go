package settings

import "context"

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	// Update applies the document only when expectedVersion still
	// matches the stored row, and returns ErrVersionConflict otherwise.
	Update(ctx context.Context, req *UpdateSettingsReq) (*Settings, error)
}

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req *UpdateSettingsReq) (*Settings, error)
}
