package models

import (
	"encoding/json"
	"testing"
)

func TestEventUnmarshalLegacyShapes(t *testing.T) {
	raw := `{
		"id": 42,
		"name": "Street Fair",
		"date": "07/03/2025",
		"price": "12.50",
		"image": "https://cdn.example.com/a.jpg",
		"category_id": 7,
		"venue_id": "v1"
	}`

	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("Failed to unmarshal legacy row: %v", err)
	}

	if ev.ID != "42" {
		t.Errorf("Numeric id should normalize to string, got %q", ev.ID)
	}
	if ev.CategoryID != "7" {
		t.Errorf("Numeric category_id should normalize to string, got %q", ev.CategoryID)
	}
	if len(ev.Images) != 1 || ev.Images[0] != "https://cdn.example.com/a.jpg" {
		t.Errorf("Legacy single image column should populate Images, got %v", ev.Images)
	}
	if price, ok := ev.Price.Float(); !ok || price != 12.5 {
		t.Errorf("String price should parse, got %v ok=%v", price, ok)
	}
}

func TestEventUnmarshalImageObjects(t *testing.T) {
	raw := `{
		"name": "Expo",
		"images": [
			{"uri": "https://cdn.example.com/a.jpg"},
			"https://cdn.example.com/b.jpg",
			"https://cdn.example.com/a.jpg",
			"",
			42
		],
		"category_id": "c1",
		"venue_id": "v1"
	}`

	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	want := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	if len(ev.Images) != len(want) {
		t.Fatalf("Expected %v, got %v", want, ev.Images)
	}
	for i := range want {
		if ev.Images[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, ev.Images[i])
		}
	}
}

func TestEventIgnoresImagesColumnOverImageOnlyWhenEmpty(t *testing.T) {
	raw := `{
		"name": "Expo",
		"images": ["https://cdn.example.com/list.jpg"],
		"image": "https://cdn.example.com/single.jpg",
		"category_id": "c1",
		"venue_id": "v1"
	}`

	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(ev.Images) != 1 || ev.Images[0] != "https://cdn.example.com/list.jpg" {
		t.Errorf("The images array should win over the legacy column, got %v", ev.Images)
	}
}

func TestIsWellFormed(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		want bool
	}{
		{"complete", Event{Name: "a", CategoryID: "c", VenueID: "v"}, true},
		{"embedded records", Event{Name: "a", Category: &Category{ID: "c"}, Venue: &Venue{ID: "v"}}, true},
		{"no name", Event{CategoryID: "c", VenueID: "v"}, false},
		{"no category", Event{Name: "a", VenueID: "v"}, false},
		{"no venue", Event{Name: "a", CategoryID: "c"}, false},
	}
	for _, tc := range cases {
		if got := tc.ev.IsWellFormed(); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestWebImages(t *testing.T) {
	ev := Event{Images: []string{
		"https://cdn.example.com/a.jpg",
		"file:///var/mobile/tmp/b.jpg",
		"http://cdn.example.com/c.jpg",
	}}
	got := ev.WebImages()
	if len(got) != 2 {
		t.Fatalf("Expected 2 web images, got %v", got)
	}
}

func TestPriceIsFree(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`null`, true},
		{`0`, true},
		{`0.0`, true},
		{`"0"`, true},
		{`"0.00"`, false},
		{`10`, false},
		{`"10"`, false},
		{`"free"`, false},
	}
	for _, tc := range cases {
		var p Price
		if err := json.Unmarshal([]byte(tc.raw), &p); err != nil {
			t.Fatalf("Failed to unmarshal price %s: %v", tc.raw, err)
		}
		if got := p.IsFree(); got != tc.want {
			t.Errorf("IsFree(%s): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestPriceFloat(t *testing.T) {
	var absent Price
	if v, ok := absent.Float(); !ok || v != 0 {
		t.Errorf("Absent price should evaluate as 0, got %v ok=%v", v, ok)
	}

	var text Price
	if err := json.Unmarshal([]byte(`"call us"`), &text); err != nil {
		t.Fatal(err)
	}
	if _, ok := text.Float(); ok {
		t.Error("Non-numeric string price should report ok=false")
	}
}

func TestPriceMalformedIsAbsent(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte(`{"amount": 3}`), &p); err != nil {
		t.Fatalf("Malformed price should not fail the decode: %v", err)
	}
	if !p.IsFree() {
		t.Error("Malformed price should normalize to absent, which counts as free")
	}
}

func TestVenueCoordinates(t *testing.T) {
	var v Venue
	if err := json.Unmarshal([]byte(`{"id":"v1","latitude":"-23.5","longitude":-46.6}`), &v); err != nil {
		t.Fatalf("Failed to unmarshal venue: %v", err)
	}
	lat, lng, ok := v.Coordinates()
	if !ok || lat != -23.5 || lng != -46.6 {
		t.Errorf("Expected (-23.5, -46.6), got (%v, %v) ok=%v", lat, lng, ok)
	}

	var zero Venue
	if err := json.Unmarshal([]byte(`{"id":"v2","latitude":0,"longitude":-46.6}`), &zero); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := zero.Coordinates(); ok {
		t.Error("A zero axis marks a missing pin and must not report coordinates")
	}

	var nilVenue *Venue
	if _, _, ok := nilVenue.Coordinates(); ok {
		t.Error("A nil venue must not report coordinates")
	}
}
