package service

import (
	"github.com/plateful/foodlog/internal/model"
	"github.com/plateful/foodlog/internal/store"
)

// Catalogue is the read-only reference dataset entries may point back to.
type Catalogue interface {
	Item(id string) (model.CatalogueItem, bool)
}

type DoctorReport struct {
	Entries              int `json:"entries"`
	BadTimestamps        int `json:"bad_timestamps"`
	MissingCatalogueRefs int `json:"missing_catalogue_refs"`
}

// RunDoctor reports integrity problems without modifying any data: rows with
// unreadable timestamps and entries whose catalogue reference no longer
// resolves. Neither blocks normal operation; both are worth knowing about.
func RunDoctor(st *store.Store, cat Catalogue) (DoctorReport, error) {
	var report DoctorReport

	n, err := st.Count()
	if err != nil {
		return report, err
	}
	report.Entries = n

	bad, err := st.BadTimestamps()
	if err != nil {
		return report, err
	}
	report.BadTimestamps = bad

	if cat != nil {
		ids, err := st.FoodIDs()
		if err != nil {
			return report, err
		}
		for _, id := range ids {
			if _, ok := cat.Item(id); !ok {
				report.MissingCatalogueRefs++
			}
		}
	}
	return report, nil
}
