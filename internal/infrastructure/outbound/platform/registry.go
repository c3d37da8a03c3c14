package platform

import (
	"log/slog"
	"sort"
	"sync"

	"pinstack-publish-service/internal/domain/custom_errors"
	ports "pinstack-publish-service/internal/domain/ports/output"
	platform_port "pinstack-publish-service/internal/domain/ports/output/platform"
)

// Registry is the adapter factory keyed by platform code.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]platform_port.Adapter
	log      ports.Logger
}

func NewRegistry(log ports.Logger) *Registry {
	return &Registry{adapters: make(map[string]platform_port.Adapter), log: log}
}

func (r *Registry) Register(code string, adapter platform_port.Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[code] = adapter
	r.log.Info("Platform adapter registered", slog.String("platform", code))
}

func (r *Registry) Create(code string) (platform_port.Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[code]
	if !ok {
		return nil, custom_errors.ErrUnknownPlatform
	}
	return adapter, nil
}

func (r *Registry) Platforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.adapters))
	for code := range r.adapters {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
