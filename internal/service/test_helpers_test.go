package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/plateful/foodlog/internal/service"
	"github.com/plateful/foodlog/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "foodlog.db"))
	if err := st.Open(); err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// newTestService pins the clock to a fixed afternoon so created_at stamps
// are deterministic.
func newTestService(t *testing.T) (*service.Service, time.Time) {
	t.Helper()
	now := time.Date(2024, 5, 10, 14, 30, 45, 0, time.Local)
	svc := service.New(newTestStore(t), service.WithClock(func() time.Time { return now }))
	return svc, now
}
