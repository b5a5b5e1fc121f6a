package models

import "encoding/json"

// Category is a user-defined label attached to events for filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var row struct {
		ID   FlexID `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	c.ID = string(row.ID)
	c.Name = row.Name
	return nil
}
