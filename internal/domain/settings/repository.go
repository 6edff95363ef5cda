package settings

import "context"

type Repository interface {
	// Get returns the settings singleton. A zero Settings (all defaults)
	// is returned when the row has never been written.
	Get(ctx context.Context) (Settings, error)

	Update(ctx context.Context, s Settings) (Settings, error)
}
