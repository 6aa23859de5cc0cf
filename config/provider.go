package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"safarsaathi/models"
	"safarsaathi/store"
)

// Credentials address the hosted row store. The same JSON shape is served
// to the landing page on GET /api/config.
type Credentials struct {
	SupabaseURL     string `json:"supabaseUrl"`
	SupabaseAnonKey string `json:"supabaseAnonKey"`
}

// CredentialSource resolves store credentials. A failure returns a
// *models.ConfigurationError.
type CredentialSource interface {
	Credentials(ctx context.Context) (*Credentials, error)
}

// StaticSource serves credentials fixed at startup (from the environment).
type StaticSource struct {
	Creds Credentials
}

func (s *StaticSource) Credentials(ctx context.Context) (*Credentials, error) {
	if s.Creds.SupabaseURL == "" || s.Creds.SupabaseAnonKey == "" {
		return nil, &models.ConfigurationError{Reason: "supabase credentials are not configured"}
	}
	return &s.Creds, nil
}

// HTTPSource fetches credentials from a config endpoint returning
// {"supabaseUrl": ..., "supabaseAnonKey": ...}. Both fields are required.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSource) Credentials(ctx context.Context) (*Credentials, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &models.ConfigurationError{Reason: "build config request", Err: err}
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &models.ConfigurationError{Reason: "config endpoint unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.ConfigurationError{
			Reason: fmt.Sprintf("config endpoint returned status %d", resp.StatusCode),
		}
	}

	var creds Credentials
	if err := json.NewDecoder(resp.Body).Decode(&creds); err != nil {
		return nil, &models.ConfigurationError{Reason: "decode config response", Err: err}
	}
	if creds.SupabaseURL == "" {
		return nil, &models.ConfigurationError{Reason: "config response missing supabaseUrl"}
	}
	if creds.SupabaseAnonKey == "" {
		return nil, &models.ConfigurationError{Reason: "config response missing supabaseAnonKey"}
	}
	return &creds, nil
}

// LeadStoreProvider hands out the ready-to-use store handle.
type LeadStoreProvider interface {
	Handle(ctx context.Context) (store.LeadStore, error)
}

// StoreProvider lazily builds the hosted-store handle from a credential
// source. The first successful initialization is cached for the process
// lifetime; a failed attempt leaves the provider uninitialized so the next
// call retries. The mutex is held across the fetch, so concurrent first
// callers trigger a single fetch.
type StoreProvider struct {
	mu     sync.Mutex
	source CredentialSource
	handle store.LeadStore
}

func NewStoreProvider(source CredentialSource) *StoreProvider {
	return &StoreProvider{source: source}
}

func (p *StoreProvider) Handle(ctx context.Context) (store.LeadStore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle != nil {
		return p.handle, nil
	}

	creds, err := p.source.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	p.handle = store.NewSupabaseStore(creds.SupabaseURL, creds.SupabaseAnonKey)
	return p.handle, nil
}

// FixedProvider wraps an already-constructed store (the postgres driver).
type FixedProvider struct {
	Store store.LeadStore
}

func (p *FixedProvider) Handle(ctx context.Context) (store.LeadStore, error) {
	return p.Store, nil
}
