package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/plateful/foodlog/internal/catalogue"
	"github.com/plateful/foodlog/internal/db"
	"github.com/plateful/foodlog/internal/model"
	"github.com/plateful/foodlog/internal/service"
	"github.com/plateful/foodlog/internal/store"
)

func TestRunDoctorCleanStore(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	cat, err := catalogue.Embedded()
	if err != nil {
		t.Fatalf("load catalogue: %v", err)
	}

	svc := service.New(st)
	if _, err := svc.AddCustom(service.CustomEntryInput{Name: "Toast", Calories: "81"}, "2024-05-01"); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	item, _ := cat.Item("banana")
	if _, err := svc.AddFromCatalogue(item, 1, "2024-05-01"); err != nil {
		t.Fatalf("add from catalogue: %v", err)
	}

	report, err := service.RunDoctor(st, cat)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.Entries != 2 || report.BadTimestamps != 0 || report.MissingCatalogueRefs != 0 {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestRunDoctorFindsProblems(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "foodlog.db")
	st := store.New(path)
	defer st.Close()

	vanished := model.LogEntry{
		ID:        "log_vanished",
		Name:      "Discontinued bar",
		FoodID:    "bar-discontinued",
		Calories:  190,
		Quantity:  1,
		Unit:      "bar",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local),
	}
	if err := st.Put(vanished); err != nil {
		t.Fatalf("put: %v", err)
	}
	broken := vanished
	broken.ID = "log_broken"
	broken.FoodID = ""
	if err := st.Put(broken); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Damage one row's timestamp behind the store's back.
	raw, err := db.Open(path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := raw.Exec(`UPDATE log_entries SET created_at = 'garbage' WHERE id = 'log_broken'`); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}
	if err := raw.Close(); err != nil {
		t.Fatalf("close raw db: %v", err)
	}

	cat, err := catalogue.Embedded()
	if err != nil {
		t.Fatalf("load catalogue: %v", err)
	}
	report, err := service.RunDoctor(st, cat)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.Entries != 2 {
		t.Fatalf("expected 2 entries, got %+v", report)
	}
	if report.BadTimestamps != 1 {
		t.Fatalf("expected 1 bad timestamp, got %+v", report)
	}
	if report.MissingCatalogueRefs != 1 {
		t.Fatalf("expected 1 missing catalogue ref, got %+v", report)
	}
}
