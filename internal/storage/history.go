package storage

import (
	"context"
	"fmt"

	"pricehound/scraper/internal/domain"

	log "github.com/sirupsen/logrus"
)

// HistoryLimit caps the change log at the most recent records, oldest
// evicted first. All regions share one log.
const HistoryLimit = 1000

// History is the append-only change log on top of a Store.
type History struct {
	store Store
	limit int
}

func NewHistory(store Store) *History {
	return &History{store: store, limit: HistoryLimit}
}

// Append adds change events to the history and truncates it to the cap.
// A no-op on empty input, so a sync with no changes never writes.
func (h *History) Append(ctx context.Context, changes []domain.Change) error {
	if len(changes) == 0 {
		return nil
	}

	existing, err := h.store.GetChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to load change history: %w", err)
	}

	existing = append(existing, changes...)
	if len(existing) > h.limit {
		existing = existing[len(existing)-h.limit:]
	}

	if err := h.store.SetChanges(ctx, existing); err != nil {
		return fmt.Errorf("failed to save change history: %w", err)
	}

	log.Infof("📝 Saved %d pricing changes to history (total: %d)", len(changes), len(existing))
	return nil
}

// Recent returns change events newest first, optionally filtered by
// region. A limit of 0 or less means no limit.
func (h *History) Recent(ctx context.Context, region string, limit int) ([]domain.Change, error) {
	all, err := h.store.GetChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load change history: %w", err)
	}

	var filtered []domain.Change
	for i := len(all) - 1; i >= 0; i-- {
		if region != "" && all[i].Region != region {
			continue
		}
		filtered = append(filtered, all[i])
		if limit > 0 && len(filtered) >= limit {
			break
		}
	}

	return filtered, nil
}
