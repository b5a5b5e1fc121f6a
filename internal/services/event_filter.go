package services

import (
	"time"

	"eventmap/internal/helpers"
	"eventmap/internal/models"
)

type DateFilter string

const (
	DateFilterAll   DateFilter = "all"
	DateFilterToday DateFilter = "today"
	DateFilterWeek  DateFilter = "week"
	DateFilterMonth DateFilter = "month"
)

// MaxPriceUnset is the sentinel slider value meaning "no price cap".
const MaxPriceUnset = 1000

// FilterConfig is the client-side filter state applied on top of a fetched
// event list.
type FilterConfig struct {
	DateFilter DateFilter `json:"date_filter"`
	FreeOnly   bool       `json:"free_only"`
	MaxPrice   float64    `json:"max_price"`
	Categories []string   `json:"categories"`
}

func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		DateFilter: DateFilterAll,
		MaxPrice:   MaxPriceUnset,
	}
}

// ActiveCount reports how many filter groups differ from the defaults. The
// price group counts once: free-only wins over a lowered cap.
func (c FilterConfig) ActiveCount() int {
	count := 0
	if c.DateFilter != "" && c.DateFilter != DateFilterAll {
		count++
	}
	if c.FreeOnly {
		count++
	} else if c.MaxPrice < MaxPriceUnset {
		count++
	}
	if len(c.Categories) > 0 {
		count++
	}
	return count
}

// ApplyFilters runs the event filter pipeline: drop structurally invalid
// records, then apply the date window, the price predicate, and the category
// membership, in that order. A record that cannot be evaluated fails the
// predicate and is excluded; the pipeline itself never aborts. Input order is
// preserved.
func ApplyFilters(events []models.Event, cfg FilterConfig, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if !ev.IsWellFormed() {
			continue
		}
		out = append(out, ev)
	}

	if cfg.DateFilter != "" && cfg.DateFilter != DateFilterAll {
		today := helpers.Truncate(now)
		out = keep(out, func(ev models.Event) bool {
			return matchesDateWindow(ev.Date, cfg.DateFilter, today)
		})
	}

	if cfg.FreeOnly {
		out = keep(out, func(ev models.Event) bool {
			return ev.Price.IsFree()
		})
	} else if cfg.MaxPrice < MaxPriceUnset {
		out = keep(out, func(ev models.Event) bool {
			price, ok := ev.Price.Float()
			return ok && price <= cfg.MaxPrice
		})
	}

	if len(cfg.Categories) > 0 {
		wanted := make(map[string]struct{}, len(cfg.Categories))
		for _, name := range cfg.Categories {
			wanted[name] = struct{}{}
		}
		out = keep(out, func(ev models.Event) bool {
			if ev.Category == nil || ev.Category.Name == "" {
				return false
			}
			_, ok := wanted[ev.Category.Name]
			return ok
		})
	}

	return out
}

func matchesDateWindow(date string, filter DateFilter, today time.Time) bool {
	day, ok := helpers.ParseDateStrict(date, today.Location())
	if !ok {
		return false
	}
	switch filter {
	case DateFilterToday:
		return day.Equal(today)
	case DateFilterWeek:
		return !day.Before(today) && !day.After(today.AddDate(0, 0, 7))
	case DateFilterMonth:
		return !day.Before(today) && !day.After(today.AddDate(0, 1, 0))
	}
	return true
}

func keep(events []models.Event, pred func(models.Event) bool) []models.Event {
	out := events[:0]
	for _, ev := range events {
		if pred(ev) {
			out = append(out, ev)
		}
	}
	return out
}
