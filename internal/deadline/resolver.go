package deadline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alexanderramin/pulse/internal/domain"
)

// DeadlineSetting is the settings-store row name holding the serialized
// deadline policy.
const DeadlineSetting = "report_deadline"

// SettingsStore is the narrow persistence contract the resolver needs.
// The repository package's settings repo satisfies it.
type SettingsStore interface {
	Get(ctx context.Context, name string) (string, error)
	Upsert(ctx context.Context, name, value, updatedBy string) error
}

// Resolver loads the active deadline policy, layering three sources:
// the persisted setting, an in-memory override set earlier this session,
// and the compiled-in default. Reads never fail; a broken or missing
// settings store degrades to the next layer.
type Resolver struct {
	settings SettingsStore

	mu      sync.Mutex
	session *domain.DeadlineConfig
}

// NewResolver creates a Resolver over the given settings store. The store
// may be nil, in which case only the session override and default apply.
func NewResolver(settings SettingsStore) *Resolver {
	return &Resolver{settings: settings}
}

// Config returns the active deadline configuration. It never returns an
// error: persistence failures and absent or malformed settings fall back
// to the session override, then to the default.
func (r *Resolver) Config(ctx context.Context) domain.DeadlineConfig {
	if r.settings != nil {
		raw, err := r.settings.Get(ctx, DeadlineSetting)
		if err == nil && raw != "" {
			var cfg domain.DeadlineConfig
			if jsonErr := json.Unmarshal([]byte(raw), &cfg); jsonErr == nil && cfg.Validate() == nil {
				return cfg
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session != nil {
		return *r.session
	}
	return domain.DefaultDeadlineConfig()
}

// SetConfig validates and persists a new deadline policy, recording it as
// the session override so subsequent reads reflect it even if the
// persisted read later fails. Changes affect future computations only.
func (r *Resolver) SetConfig(ctx context.Context, cfg domain.DeadlineConfig, updatedBy string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid deadline config: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing deadline config: %w", err)
	}

	if r.settings != nil {
		if err := r.settings.Upsert(ctx, DeadlineSetting, string(data), updatedBy); err != nil {
			return fmt.Errorf("persisting deadline config: %w", err)
		}
	}

	r.mu.Lock()
	r.session = &cfg
	r.mu.Unlock()
	return nil
}
