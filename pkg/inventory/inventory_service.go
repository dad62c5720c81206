package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"ecotrack/domain"
	"ecotrack/entities"
	"ecotrack/internal/storage"
	"ecotrack/internal/utils"
	"ecotrack/pkg/co2"
	"ecotrack/pkg/expiry"
	"ecotrack/pkg/notify"
	"ecotrack/pkg/waste"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error)
		ListItems(ctx context.Context, includeConsumed bool) ([]domain.InventoryItemResponse, error)
		GetItem(ctx context.Context, id string) (domain.InventoryItemResponse, error)
		MarkConsumed(ctx context.Context, id string) (domain.InventoryItemResponse, error)
		MarkWasted(ctx context.Context, id string) (domain.WasteEntryResponse, error)
		UpcomingWarnings(ctx context.Context, windowDays int) ([]domain.ExpiryWarning, error)
		// ActiveItems returns unconsumed items ordered by expiry.
		ActiveItems(ctx context.Context) ([]entities.InventoryItem, error)
		// Snapshot reads active items and the waste log under one lock, so an
		// item moving between them is seen in exactly one.
		Snapshot(ctx context.Context) ([]entities.InventoryItem, []entities.WasteEntry, error)
		SendExpiryDigest(ctx context.Context, windowDays int) (int, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		wasteRepository     waste.WasteRepository
		store               storage.Store
		expiryEstimator     expiry.ExpiryEstimator
		co2Estimator        co2.CO2Estimator
		notifier            notify.Notifier
		clock               utils.Clock
		lock                *sync.Mutex
	}
)

// NewInventoryService writes through store directly when a change spans both
// ledgers, so store must be the one both repositories were built on.
func NewInventoryService(
	inventoryRepository InventoryRepository,
	wasteRepository waste.WasteRepository,
	store storage.Store,
	expiryEstimator expiry.ExpiryEstimator,
	co2Estimator co2.CO2Estimator,
	notifier notify.Notifier,
	clock utils.Clock,
	lock *sync.Mutex,
) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		wasteRepository:     wasteRepository,
		store:               store,
		expiryEstimator:     expiryEstimator,
		co2Estimator:        co2Estimator,
		notifier:            notifier,
		clock:               clock,
		lock:                lock,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error) {
	category, err := utils.ValidateFoodFields(req.FoodItem, req.Quantity, req.Unit, req.Category)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	now := s.clock()
	purchaseDate := entities.DateOf(now)
	if req.PurchaseDate != "" {
		purchaseDate, err = entities.ParseDate(req.PurchaseDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidPurchaseDate
		}
	}

	name := strings.TrimSpace(req.FoodItem)
	var expiryDate entities.Date
	if req.ExpiryDate != "" {
		expiryDate, err = entities.ParseDate(req.ExpiryDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
		}
	} else {
		expiryDate = s.expiryEstimator.Estimate(name, category, purchaseDate)
	}

	item := entities.InventoryItem{
		ID:           entities.ItemID(uuid.Must(uuid.NewV7()).String()),
		FoodItem:     name,
		Quantity:     entities.Quantity(req.Quantity),
		Unit:         entities.Unit(strings.TrimSpace(req.Unit)),
		Category:     category,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
	}

	s.lock.Lock()
	items, err := s.inventoryRepository.Load(ctx)
	if err == nil {
		err = s.inventoryRepository.Save(ctx, append(items, item))
	}
	s.lock.Unlock()
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	s.notify(ctx, notify.Event{
		Kind:    notify.EventItemAdded,
		Title:   "Item added",
		Message: fmt.Sprintf("%s added to inventory, expires %s", item.FoodItem, item.ExpiryDate),
	})

	return toResponse(item, now), nil
}

func (s *inventoryService) ListItems(ctx context.Context, includeConsumed bool) ([]domain.InventoryItemResponse, error) {
	s.lock.Lock()
	items, err := s.inventoryRepository.Load(ctx)
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}

	now := s.clock()
	res := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range sortByExpiry(items) {
		if item.IsConsumed && !includeConsumed {
			continue
		}
		res = append(res, toResponse(item, now))
	}
	return res, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (domain.InventoryItemResponse, error) {
	s.lock.Lock()
	items, err := s.inventoryRepository.Load(ctx)
	s.lock.Unlock()
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return domain.InventoryItemResponse{}, domain.ErrInventoryItemNotFound
	}
	return toResponse(items[idx], s.clock()), nil
}

func (s *inventoryService) MarkConsumed(ctx context.Context, id string) (domain.InventoryItemResponse, error) {
	s.lock.Lock()
	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		s.lock.Unlock()
		return domain.InventoryItemResponse{}, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		s.lock.Unlock()
		return domain.InventoryItemResponse{}, domain.ErrInventoryItemNotFound
	}

	changed := !items[idx].IsConsumed
	if changed {
		items[idx].IsConsumed = true
		if err := s.inventoryRepository.Save(ctx, items); err != nil {
			s.lock.Unlock()
			return domain.InventoryItemResponse{}, err
		}
	}
	item := items[idx]
	s.lock.Unlock()

	if changed {
		s.notify(ctx, notify.Event{
			Kind:    notify.EventItemConsumed,
			Title:   "Item consumed",
			Message: fmt.Sprintf("%s marked as consumed", item.FoodItem),
		})
	}
	return toResponse(item, s.clock()), nil
}

// MarkWasted moves an item from the inventory into the waste log with one
// multi-key store write. On failure neither ledger changes.
func (s *inventoryService) MarkWasted(ctx context.Context, id string) (domain.WasteEntryResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return domain.WasteEntryResponse{}, err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return domain.WasteEntryResponse{}, domain.ErrInventoryItemNotFound
	}
	entries, err := s.wasteRepository.Load(ctx)
	if err != nil {
		return domain.WasteEntryResponse{}, err
	}

	item := items[idx]
	entry := entities.WasteEntry{
		FoodItem:  item.FoodItem,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Category:  item.Category,
		Reason:    domain.ReasonExpiredWasted,
		CO2Impact: s.co2Estimator.Estimate(item.Category, utils.ToGrams(float64(item.Quantity), item.Unit)),
		Timestamp: s.clock(),
	}

	remaining := append(items[:idx:idx], items[idx+1:]...)
	logged := append(entries, entry)

	inventoryJSON, err := s.inventoryRepository.Encode(remaining)
	if err != nil {
		return domain.WasteEntryResponse{}, err
	}
	wasteJSON, err := s.wasteRepository.Encode(logged)
	if err != nil {
		return domain.WasteEntryResponse{}, err
	}

	if err := s.store.SetMulti(ctx, map[string]string{
		s.inventoryRepository.Key(): inventoryJSON,
		s.wasteRepository.Key():     wasteJSON,
	}); err != nil {
		return domain.WasteEntryResponse{}, fmt.Errorf("failed to move %s to waste log: %w", item.FoodItem, err)
	}
	s.inventoryRepository.SetCache(remaining)
	s.wasteRepository.SetCache(logged)

	s.notify(ctx, notify.Event{
		Kind:    notify.EventItemWasted,
		Title:   "Item wasted",
		Message: fmt.Sprintf("%s moved to waste log (%s)", entry.FoodItem, utils.FormatCO2(entry.CO2Impact)),
	})

	return waste.ToResponse(entry), nil
}

func (s *inventoryService) UpcomingWarnings(ctx context.Context, windowDays int) ([]domain.ExpiryWarning, error) {
	if windowDays < 0 {
		return nil, domain.ErrInvalidWarningWindow
	}

	items, err := s.ActiveItems(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	warnings := []domain.ExpiryWarning{}
	for _, item := range items {
		days := item.ExpiryDate.DaysUntil(now)
		if days < 0 || days > windowDays {
			continue
		}
		warnings = append(warnings, domain.ExpiryWarning{
			ID:              string(item.ID),
			FoodItem:        item.FoodItem,
			ExpiryDate:      item.ExpiryDate.String(),
			DaysUntilExpiry: days,
			Message:         warningMessage(item.FoodItem, days),
		})
		if len(warnings) == domain.MaxExpiryWarnings {
			break
		}
	}
	return warnings, nil
}

func (s *inventoryService) ActiveItems(ctx context.Context) ([]entities.InventoryItem, error) {
	s.lock.Lock()
	items, err := s.inventoryRepository.Load(ctx)
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}
	return activeByExpiry(items), nil
}

func (s *inventoryService) Snapshot(ctx context.Context) ([]entities.InventoryItem, []entities.WasteEntry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	items, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.wasteRepository.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return activeByExpiry(items), entries, nil
}

func activeByExpiry(items []entities.InventoryItem) []entities.InventoryItem {
	active := make([]entities.InventoryItem, 0, len(items))
	for _, item := range sortByExpiry(items) {
		if !item.IsConsumed {
			active = append(active, item)
		}
	}
	return active
}

// SendExpiryDigest raises one digest event for the current warnings and
// returns how many items it lists. Nothing is sent when there are none.
func (s *inventoryService) SendExpiryDigest(ctx context.Context, windowDays int) (int, error) {
	warnings, err := s.UpcomingWarnings(ctx, windowDays)
	if err != nil {
		return 0, err
	}
	if len(warnings) == 0 {
		return 0, nil
	}

	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("%s (%s)", w.Message, w.ExpiryDate))
	}
	event := notify.Event{
		Kind:    notify.EventExpiryDigest,
		Title:   "EcoTrack: food expiring soon",
		Message: "Use these items before they go to waste:",
		Lines:   lines,
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		return 0, err
	}
	return len(warnings), nil
}

func (s *inventoryService) notify(ctx context.Context, event notify.Event) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		log.Warnw("notification failed", "kind", event.Kind, "error", err)
	}
}

// sortByExpiry orders by expiry date, keeping insertion order for ties.
func sortByExpiry(items []entities.InventoryItem) []entities.InventoryItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiryDate.Compare(items[j].ExpiryDate) < 0
	})
	return items
}

func indexOf(items []entities.InventoryItem, id string) int {
	for i, item := range items {
		if string(item.ID) == id {
			return i
		}
	}
	return -1
}

func expiryStatus(days int) string {
	switch {
	case days < 0:
		return domain.ExpiryStatusExpired
	case days == 0:
		return domain.ExpiryStatusToday
	case days <= 2:
		return domain.ExpiryStatusUrgent
	case days <= 5:
		return domain.ExpiryStatusSoon
	}
	return domain.ExpiryStatusFresh
}

func warningMessage(foodItem string, days int) string {
	switch days {
	case 0:
		return foodItem + " expires today!"
	case 1:
		return foodItem + " expires tomorrow"
	}
	return fmt.Sprintf("%s expires in %d days", foodItem, days)
}

func toResponse(item entities.InventoryItem, now time.Time) domain.InventoryItemResponse {
	days := item.ExpiryDate.DaysUntil(now)
	purchaseDate := ""
	if !item.PurchaseDate.IsZero() {
		purchaseDate = item.PurchaseDate.String()
	}
	return domain.InventoryItemResponse{
		ID:              string(item.ID),
		FoodItem:        item.FoodItem,
		Quantity:        float64(item.Quantity),
		Unit:            string(item.Unit),
		Category:        string(item.Category),
		PurchaseDate:    purchaseDate,
		ExpiryDate:      item.ExpiryDate.String(),
		IsConsumed:      item.IsConsumed,
		DaysUntilExpiry: days,
		Status:          expiryStatus(days),
	}
}
