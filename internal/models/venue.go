package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Venue is a named physical location events are pinned to.
type Venue struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Latitude  Coord  `json:"latitude"`
	Longitude Coord  `json:"longitude"`
}

func (v *Venue) UnmarshalJSON(data []byte) error {
	var row struct {
		ID        FlexID `json:"id"`
		Name      string `json:"name"`
		Address   string `json:"address"`
		Latitude  Coord  `json:"latitude"`
		Longitude Coord  `json:"longitude"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*v = Venue{
		ID:        string(row.ID),
		Name:      row.Name,
		Address:   row.Address,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
	}
	return nil
}

// Coordinates returns the venue position when both axes hold a usable,
// non-zero value. A zero on either axis marks a missing pin, not a position.
func (v *Venue) Coordinates() (lat, lng float64, ok bool) {
	if v == nil {
		return 0, 0, false
	}
	lat, latOK := v.Latitude.Float()
	lng, lngOK := v.Longitude.Float()
	if !latOK || !lngOK || lat == 0 || lng == 0 {
		return 0, 0, false
	}
	return lat, lng, true
}

// Coord tolerates coordinate columns stored as numbers or numeric strings.
type Coord struct {
	val float64
	ok  bool
}

func NewCoord(f float64) Coord {
	return Coord{val: f, ok: !math.IsNaN(f) && !math.IsInf(f, 0)}
}

func (c *Coord) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*c = Coord{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*c = NewCoord(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*c = NewCoord(f)
			return nil
		}
	}
	*c = Coord{}
	return nil
}

func (c Coord) MarshalJSON() ([]byte, error) {
	if !c.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(c.val, 'f', -1, 64)), nil
}

func (c Coord) Float() (float64, bool) {
	return c.val, c.ok
}
