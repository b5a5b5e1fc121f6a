package connect

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"eventmap/internal/config"
	"eventmap/internal/session"
)

var SupabaseClient *supabase.Client

// InitSupabase builds the shared Supabase client from the loaded config.
func InitSupabase(cfg *config.Config) (*supabase.Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %v", err)
	}
	SupabaseClient = client
	return client, nil
}

func Disconnect() {
	SupabaseClient = nil
}

// OpenSessionStore opens the local sqlite-backed session store.
func OpenSessionStore(cfg *config.Config) (*session.Store, error) {
	store, err := session.Open(cfg.SessionStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %v", err)
	}
	return store, nil
}
