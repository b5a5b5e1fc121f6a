package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Event is the canonical shape of an event row. Rows coming back from the
// remote store are loosely typed (numeric-or-string ids and prices, a legacy
// single "image" column next to the "images" array, image entries that are
// objects instead of plain strings), so every accepted legacy shape is mapped
// into this struct at unmarshal time. Nothing downstream sees a legacy shape.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`       // YYYY-MM-DD; legacy rows may carry DD/MM/YYYY
	StartTime   string    `json:"start_time"` // HH:MM
	EndTime     string    `json:"end_time"`
	Price       Price     `json:"price"`
	Images      []string  `json:"images"`
	CategoryID  string    `json:"category_id"`
	VenueID     string    `json:"venue_id"`
	Category    *Category `json:"category,omitempty"`
	Venue       *Venue    `json:"venue,omitempty"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var row struct {
		ID          FlexID       `json:"id"`
		Name        string       `json:"name"`
		Description string       `json:"description"`
		Date        string       `json:"date"`
		StartTime   string       `json:"start_time"`
		EndTime     string       `json:"end_time"`
		Price       Price        `json:"price"`
		Images      []imageEntry `json:"images"`
		Image       imageEntry   `json:"image"`
		CategoryID  FlexID       `json:"category_id"`
		VenueID     FlexID       `json:"venue_id"`
		Category    *Category    `json:"category"`
		Venue       *Venue       `json:"venue"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}

	raw := make([]string, 0, len(row.Images)+1)
	for _, img := range row.Images {
		raw = append(raw, string(img))
	}
	if len(raw) == 0 && row.Image != "" {
		raw = append(raw, string(row.Image))
	}

	*e = Event{
		ID:          string(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Date:        row.Date,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		Price:       row.Price,
		Images:      NormalizeImageURIs(raw),
		CategoryID:  string(row.CategoryID),
		VenueID:     string(row.VenueID),
		Category:    row.Category,
		Venue:       row.Venue,
	}
	return nil
}

// IsWellFormed reports whether the record carries the minimum structure the
// app can render: a name plus some category and venue association (either the
// embedded record or a bare foreign key).
func (e *Event) IsWellFormed() bool {
	if e == nil || e.Name == "" {
		return false
	}
	if e.Category == nil && e.CategoryID == "" {
		return false
	}
	if e.Venue == nil && e.VenueID == "" {
		return false
	}
	return true
}

// WebImages returns only http(s) image URLs. Local file URIs persisted by
// older clients are unreachable once the row is remote and are treated as
// "no image" rather than an error.
func (e *Event) WebImages() []string {
	out := make([]string, 0, len(e.Images))
	for _, uri := range e.Images {
		if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
			out = append(out, uri)
		}
	}
	return out
}

// NormalizeImageURIs drops empty entries and duplicates while preserving the
// first-seen order.
func NormalizeImageURIs(uris []string) []string {
	out := make([]string, 0, len(uris))
	seen := make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		if _, dup := seen[uri]; dup {
			continue
		}
		seen[uri] = struct{}{}
		out = append(out, uri)
	}
	return out
}

// imageEntry tolerates both plain string URIs and legacy {"uri": "..."}
// objects. Anything else normalizes to the empty string and gets dropped.
type imageEntry string

func (i *imageEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = imageEntry(s)
		return nil
	}
	var obj struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*i = imageEntry(obj.URI)
		return nil
	}
	*i = ""
	return nil
}

// FlexID accepts both string and numeric id columns.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexID(num.String())
		return nil
	}
	*f = ""
	return nil
}

// Price tolerates numeric and string price columns. The distinction matters
// for the free filter: a numeric 0 and the string "0" both count as free, but
// other string spellings such as "0.00" do not.
type Price struct {
	raw     string
	num     float64
	numeric bool // raw parses as a number
	literal bool // source was a JSON number literal
}

func NewPrice(f float64) Price {
	return Price{
		raw:     strconv.FormatFloat(f, 'f', -1, 64),
		num:     f,
		numeric: true,
		literal: true,
	}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = Price{}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		p.raw = strings.TrimSpace(str)
		p.literal = false
		p.num, p.numeric = parsePrice(p.raw)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Price{raw: s, num: f, numeric: true, literal: true}
		return nil
	}
	// Malformed values are treated as absent, not as a decode failure.
	*p = Price{}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch {
	case p.raw == "":
		return []byte("null"), nil
	case p.numeric:
		return []byte(strconv.FormatFloat(p.num, 'f', -1, 64)), nil
	default:
		return json.Marshal(p.raw)
	}
}

// Float returns the numeric value of the price. An absent price counts as 0;
// a non-numeric string has no value and reports ok=false.
func (p Price) Float() (float64, bool) {
	if p.raw == "" {
		return 0, true
	}
	if p.numeric {
		return p.num, true
	}
	return 0, false
}

// IsFree reports whether the event costs nothing: price absent, numeric zero,
// or the exact string "0".
func (p Price) IsFree() bool {
	if p.raw == "" || p.raw == "0" {
		return true
	}
	return p.literal && p.numeric && p.num == 0
}

// String returns the stored textual form, or "" when absent.
func (p Price) String() string {
	return p.raw
}

func parsePrice(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
