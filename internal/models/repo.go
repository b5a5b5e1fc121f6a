package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
)

var Validate = validator.New()

const (
	UsersTable      = "users"
	CategoriesTable = "categories"
	VenuesTable     = "venues"
	EventsTable     = "events"
	FavoritesTable  = "favorites"
)

// SupabaseRepo implements every remote repository interface on top of the
// shared Supabase client. All persistence lives in the remote store; this
// process keeps no table state of its own.
type SupabaseRepo struct {
	supabaseClient *supabase.Client
}

func SupabaseNewRepo(supabaseClient *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
	}
}
