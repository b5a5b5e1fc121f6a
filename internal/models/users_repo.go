package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// userSelect leaves the password column out of every result set.
const userSelect = "id,email,name,avatar,notifications"

type UserRepo interface {
	AuthenticateUser(ctx context.Context, email, password string) (*User, error)
	CreateUser(ctx context.Context, email, password, name string) (*User, error)
}

// AuthenticateUser performs the credential check against the remote users
// table. The compare itself is delegated to the store; no hashing happens
// here.
func (su *SupabaseRepo) AuthenticateUser(ctx context.Context, email, password string) (*User, error) {
	data, _, err := su.supabaseClient.From(UsersTable).
		Select(userSelect, "", false).
		Eq("email", email).
		Eq("password", password).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user rows: %v", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}
	return &users[0], nil
}

func (su *SupabaseRepo) CreateUser(ctx context.Context, email, password, name string) (*User, error) {
	if name == "" {
		// Default the display name to the email local part.
		name = strings.SplitN(email, "@", 2)[0]
	}

	row := map[string]interface{}{
		"email":    email,
		"password": password,
		"name":     name,
	}
	data, count, err := su.supabaseClient.From(UsersTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		if strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "unique constraint") {
			return nil, fmt.Errorf("email already in use")
		}
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no user row returned after insert")
	}

	var created []User
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created user: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no user data returned after insert")
	}
	return &created[0], nil
}
