package store

import (
	"context"
	"errors"

	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
)

// Branding is the company identity printed on exported documents.
type Branding struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// DBConfig mirrors the connection settings the admin panel persists. It is
// carried for snapshot compatibility; the service itself is configured via
// environment variables.
type DBConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
}

// DefaultBranding matches the shipped company profile.
func DefaultBranding() Branding {
	return Branding{
		Name:    "PharmaFlow Enterprise",
		Address: "123 Global Biotech Park, NY",
	}
}

// LoadBranding returns the persisted branding, seeding the default when no
// snapshot exists.
func LoadBranding(ctx context.Context, s kv.Store) (Branding, error) {
	col := NewCollection[Branding](s, KeyBranding)
	branding, err := col.Load(ctx)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			branding = DefaultBranding()
			if err := col.Save(ctx, branding); err != nil {
				return Branding{}, err
			}
			return branding, nil
		}
		return Branding{}, err
	}
	return branding, nil
}
