package detection

import (
	"context"
	"fmt"

	"storesense/internal/catalog"
	"storesense/internal/events"
)

// Confirm records that the user confirmed presence at the store. Confirmed
// stores skip the confirmation prompt on future matches.
func (s *Service) Confirm(ctx context.Context, storeID string) error {
	if storeID == "" {
		return fmt.Errorf("detection: store id is required")
	}
	if err := s.confirmed.Confirm(ctx, storeID); err != nil {
		return fmt.Errorf("confirming store %s: %w", storeID, err)
	}
	s.metrics.IncConfirmation()
	s.emit(ctx, events.Event{
		Type:    events.TypeConfirmed,
		StoreID: storeID,
		Method:  string(MethodManual),
	})
	return nil
}

// SelectManually treats an explicit user choice as an authoritative match.
// The store is confirmed as a side effect.
func (s *Service) SelectManually(ctx context.Context, store catalog.Store) (Result, error) {
	if store.ID == "" {
		return Result{}, fmt.Errorf("detection: store id is required")
	}
	if err := s.confirmed.Confirm(ctx, store.ID); err != nil {
		return Result{}, fmt.Errorf("selecting store %s: %w", store.ID, err)
	}
	s.emit(ctx, events.Event{
		Type:       events.TypeSelectedManually,
		StoreID:    store.ID,
		Method:     string(MethodManual),
		Confidence: 100,
	})
	return Result{
		Store:      &store,
		Confidence: 100,
		Method:     MethodManual,
	}, nil
}

// Search finds stores matching a free-text query. When the catalog is
// unreachable it falls back to filtering the last candidate snapshot so the
// manual-selection flow stays usable offline.
func (s *Service) Search(ctx context.Context, query string) ([]catalog.Store, error) {
	stores, err := s.catalog.SearchByText(ctx, query)
	if err == nil {
		return stores, nil
	}
	s.logger.Warn("catalog search failed, filtering cached candidates", "error", err)

	var out []catalog.Store
	for _, store := range s.cachedCandidates() {
		if store.MatchesQuery(query) {
			out = append(out, store)
		}
	}
	return out, nil
}

// IsConfirmed reports whether the store was previously confirmed.
func (s *Service) IsConfirmed(storeID string) bool {
	return s.confirmed.Contains(storeID)
}

func (s *Service) emitDetection(ctx context.Context, result Result) {
	if result.Store == nil {
		return
	}
	s.emit(ctx, events.Event{
		Type:       events.TypeDetected,
		StoreID:    result.Store.ID,
		Method:     string(result.Method),
		Confidence: result.Confidence,
	})
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Emit(ctx, event); err != nil {
		s.logger.Warn("dropping detection event",
			"type", string(event.Type),
			"store_id", event.StoreID,
			"error", err,
		)
	}
}
