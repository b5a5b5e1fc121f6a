package models

import "encoding/json"

// Favorite is a user's bookmark of an event. Identity is the composite
// (user_id, event_id); the remote store asserts no uniqueness constraint, so
// membership is always re-derived by query rather than cached.
type Favorite struct {
	ID      string `json:"id,omitempty"`
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
}

func (f *Favorite) UnmarshalJSON(data []byte) error {
	var row struct {
		ID      FlexID `json:"id"`
		UserID  FlexID `json:"user_id"`
		EventID FlexID `json:"event_id"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*f = Favorite{
		ID:      string(row.ID),
		UserID:  string(row.UserID),
		EventID: string(row.EventID),
	}
	return nil
}
