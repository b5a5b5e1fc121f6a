package models

import "encoding/json"

// User is the session-facing user record. The password column never leaves
// the repository layer.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar,omitempty"`
	Notifications *bool  `json:"notifications,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var row struct {
		ID            FlexID `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Avatar        string `json:"avatar"`
		Notifications *bool  `json:"notifications"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*u = User{
		ID:            string(row.ID),
		Email:         row.Email,
		Name:          row.Name,
		Avatar:        row.Avatar,
		Notifications: row.Notifications,
	}
	return nil
}
