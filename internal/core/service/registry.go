package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

// ProviderRegistry maps category keys to the providers that enumerate them.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]ports.ResourceProvider
}

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ports.ResourceProvider),
	}
}

func (r *ProviderRegistry) Register(provider ports.ResourceProvider) error {
	if provider == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil resource provider")
	}
	key := provider.Category().Key
	if key == "" {
		return errors.New(errors.CodeInternal, "resource provider category key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[key]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("resource provider for category '%s' already registered", key))
	}
	r.providers[key] = provider
	return nil
}

// Resolve returns the providers for keys in the order given. Unknown keys
// fail the whole lookup so a typo never silently narrows a capture.
func (r *ProviderRegistry) Resolve(keys []string) ([]ports.ResourceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(keys))
	resolved := make([]ports.ResourceProvider, 0, len(keys))
	var unknown []string
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		provider, exists := r.providers[key]
		if !exists {
			unknown = append(unknown, key)
			continue
		}
		resolved = append(resolved, provider)
	}
	if len(unknown) > 0 {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unknown resource categories: %s", strings.Join(unknown, ", ")),
			fmt.Sprintf("Supported categories: %s", strings.Join(r.keysLocked(), ", ")))
	}
	return resolved, nil
}

func (r *ProviderRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keysLocked()
}

func (r *ProviderRegistry) keysLocked() []string {
	keys := make([]string, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
