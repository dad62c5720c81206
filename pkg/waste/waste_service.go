package waste

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ecotrack/domain"
	"ecotrack/entities"
	"ecotrack/internal/utils"
	"ecotrack/pkg/co2"
	"ecotrack/pkg/notify"

	"github.com/gofiber/fiber/v2/log"
)

type (
	WasteService interface {
		LogWaste(ctx context.Context, req domain.LogWasteRequest) (domain.WasteEntryResponse, error)
		GetWasteEntries(ctx context.Context) ([]domain.WasteEntryResponse, error)
		// Entries returns the raw log in insertion order.
		Entries(ctx context.Context) ([]entities.WasteEntry, error)
	}

	wasteService struct {
		wasteRepository WasteRepository
		co2Estimator    co2.CO2Estimator
		notifier        notify.Notifier
		clock           utils.Clock
		lock            *sync.Mutex
	}
)

// NewWasteService shares lock with the inventory service so a wasted item
// and its log entry are never observed half-written.
func NewWasteService(
	wasteRepository WasteRepository,
	co2Estimator co2.CO2Estimator,
	notifier notify.Notifier,
	clock utils.Clock,
	lock *sync.Mutex,
) WasteService {
	return &wasteService{
		wasteRepository: wasteRepository,
		co2Estimator:    co2Estimator,
		notifier:        notifier,
		clock:           clock,
		lock:            lock,
	}
}

func (s *wasteService) LogWaste(ctx context.Context, req domain.LogWasteRequest) (domain.WasteEntryResponse, error) {
	category, err := utils.ValidateFoodFields(req.FoodItem, req.Quantity, req.Unit, req.Category)
	if err != nil {
		return domain.WasteEntryResponse{}, err
	}

	entry := entities.WasteEntry{
		FoodItem:  strings.TrimSpace(req.FoodItem),
		Quantity:  entities.Quantity(req.Quantity),
		Unit:      entities.Unit(strings.TrimSpace(req.Unit)),
		Category:  category,
		Reason:    strings.TrimSpace(req.Reason),
		Timestamp: s.clock(),
	}
	if entry.Reason == "" {
		entry.Reason = domain.DefaultWasteReason
	}

	switch {
	case req.CO2Impact != nil && *req.CO2Impact < 0:
		return domain.WasteEntryResponse{}, domain.ErrInvalidCO2Impact
	case req.CO2Impact != nil && *req.CO2Impact > 0:
		entry.CO2Impact = *req.CO2Impact
	default:
		// zero counts as not supplied
		entry.CO2Impact = s.co2Estimator.Estimate(category, utils.ToGrams(req.Quantity, entry.Unit))
	}

	s.lock.Lock()
	entries, err := s.wasteRepository.Load(ctx)
	if err == nil {
		err = s.wasteRepository.Save(ctx, append(entries, entry))
	}
	s.lock.Unlock()
	if err != nil {
		return domain.WasteEntryResponse{}, err
	}

	s.notify(ctx, notify.Event{
		Kind:    notify.EventWasteLogged,
		Title:   "Waste logged",
		Message: fmt.Sprintf("%s logged as waste (%s)", entry.FoodItem, utils.FormatCO2(entry.CO2Impact)),
	})

	return ToResponse(entry), nil
}

func (s *wasteService) GetWasteEntries(ctx context.Context) ([]domain.WasteEntryResponse, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.WasteEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, ToResponse(e))
	}
	return res, nil
}

func (s *wasteService) Entries(ctx context.Context) ([]entities.WasteEntry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.wasteRepository.Load(ctx)
}

func (s *wasteService) notify(ctx context.Context, event notify.Event) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		log.Warnw("notification failed", "kind", event.Kind, "error", err)
	}
}

func ToResponse(e entities.WasteEntry) domain.WasteEntryResponse {
	return domain.WasteEntryResponse{
		FoodItem:  e.FoodItem,
		Quantity:  float64(e.Quantity),
		Unit:      string(e.Unit),
		Category:  string(e.Category),
		Reason:    e.Reason,
		CO2Impact: e.CO2Impact,
		Timestamp: e.Timestamp,
	}
}
