// Package service translates user intents into store operations and derives
// day views. It is the only component callers interact with.
package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/plateful/foodlog/internal/datekey"
	"github.com/plateful/foodlog/internal/ident"
	"github.com/plateful/foodlog/internal/model"
	"github.com/plateful/foodlog/internal/store"
)

const (
	entryIDPrefix   = "log"
	placeholderName = "Custom food"
	defaultUnit     = "serving"
	defaultQuantity = 1.0
)

// Service orchestrates the store, date codec, and aggregator. Construct one
// long-lived instance per process and share it; the store is injected, never
// reached through ambient state.
type Service struct {
	store *store.Store
	now   func() time.Time
	log   zerolog.Logger
}

type Option func(*Service)

// WithClock overrides the wall clock used when stamping entries. Tests use
// this for determinism.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func New(st *store.Store, opts ...Option) *Service {
	s := &Service{store: st, now: time.Now, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CustomEntryInput carries raw user input for a free-form entry. Numeric
// fields are strings on purpose: a stray non-numeric character defaults to a
// safe value instead of losing the user's meal.
type CustomEntryInput struct {
	Name     string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
	Quantity string
	Unit     string
	Notes    string
}

// DayView is a day's entries together with their macro totals.
type DayView struct {
	Day     string           `json:"day"`
	Entries []model.LogEntry `json:"entries"`
	Totals  model.Totals     `json:"totals"`
}

// AddFromCatalogue logs a catalogue item scaled linearly by
// quantity/item.DefaultQuantity. Calories round to the nearest integer and
// gram fields to one decimal. The entry is stamped with the tracking day at
// the current time-of-day and persisted before returning.
func (s *Service) AddFromCatalogue(item model.CatalogueItem, quantity float64, day string) (model.LogEntry, error) {
	createdAt, err := s.stampOnDay(day)
	if err != nil {
		return model.LogEntry{}, err
	}

	base := item.DefaultQuantity
	if base <= 0 {
		base = defaultQuantity
	}
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		quantity = base
	}
	factor := quantity / base

	entry := model.LogEntry{
		ID:        ident.New(entryIDPrefix),
		Name:      item.Name,
		FoodID:    item.ID,
		Calories:  int(math.Round(float64(item.Calories) * factor)),
		ProteinG:  round1(item.ProteinG * factor),
		CarbsG:    round1(item.CarbsG * factor),
		FatG:      round1(item.FatG * factor),
		Quantity:  quantity,
		Unit:      item.Unit,
		CreatedAt: createdAt,
	}
	if strings.TrimSpace(entry.Unit) == "" {
		entry.Unit = defaultUnit
	}
	if err := s.store.Put(entry); err != nil {
		return model.LogEntry{}, err
	}
	s.log.Debug().Str("id", entry.ID).Str("food", item.ID).Float64("quantity", quantity).Msg("catalogue entry logged")
	return entry, nil
}

// AddCustom logs a free-form entry. Unparsable or negative numeric input
// defaults to zero, quantity to 1, a blank name to a placeholder, and a
// blank unit to "serving".
func (s *Service) AddCustom(in CustomEntryInput, day string) (model.LogEntry, error) {
	createdAt, err := s.stampOnDay(day)
	if err != nil {
		return model.LogEntry{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = placeholderName
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = defaultUnit
	}

	entry := model.LogEntry{
		ID:        ident.New(entryIDPrefix),
		Name:      name,
		Calories:  parseCount(in.Calories),
		ProteinG:  parseGrams(in.Protein),
		CarbsG:    parseGrams(in.Carbs),
		FatG:      parseGrams(in.Fat),
		Quantity:  parseQuantity(in.Quantity),
		Unit:      unit,
		CreatedAt: createdAt,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if err := s.store.Put(entry); err != nil {
		return model.LogEntry{}, err
	}
	s.log.Debug().Str("id", entry.ID).Str("name", entry.Name).Msg("custom entry logged")
	return entry, nil
}

// RemoveEntry deletes the entry with the given id. Removing an id that is
// already gone is not an error.
func (s *Service) RemoveEntry(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Msg("entry removed")
	return nil
}

// DayView returns the tracked day's entries in creation order along with
// their summed totals. It reflects every prior successful Put and Delete in
// this process.
func (s *Service) DayView(day string) (*DayView, error) {
	entries, err := s.store.ListByDay(day)
	if err != nil {
		return nil, err
	}
	return &DayView{Day: day, Entries: entries, Totals: SumTotals(entries)}, nil
}

// stampOnDay combines the tracking day with the current wall-clock
// time-of-day. Entries backfilled onto a past day therefore order by the
// moment they were entered, not by a user-chosen time.
func (s *Service) stampOnDay(day string) (time.Time, error) {
	start, err := datekey.Start(day)
	if err != nil {
		return time.Time{}, err
	}
	now := s.now().Local()
	return time.Date(start.Year(), start.Month(), start.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.Local), nil
}

func parseCount(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseGrams(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseQuantity(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return defaultQuantity
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
