package dashboard

import (
	"context"

	"ecotrack/domain"
	"ecotrack/internal/utils"
	"ecotrack/pkg/co2"
	"ecotrack/pkg/inventory"
	"ecotrack/pkg/waste"
)

const expiringSoonDays = 5

type (
	DashboardService interface {
		GetStats(ctx context.Context) (domain.DashboardStatsResponse, error)
	}

	dashboardService struct {
		inventoryService inventory.InventoryService
		co2Estimator     co2.CO2Estimator
		clock            utils.Clock
	}
)

func NewDashboardService(
	inventoryService inventory.InventoryService,
	co2Estimator co2.CO2Estimator,
	clock utils.Clock,
) DashboardService {
	return &dashboardService{
		inventoryService: inventoryService,
		co2Estimator:     co2Estimator,
		clock:            clock,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	active, entries, err := s.inventoryService.Snapshot(ctx)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := s.clock()
	weekly := WeeklyTotal(entries, now)
	totalCO2 := TotalCO2(entries, s.co2Estimator)

	series := DailySeries(entries, now)
	daily := make([]domain.DailyWaste, 0, len(series))
	for i, grams := range series {
		daily = append(daily, domain.DailyWaste{Day: DayLabels[i], Grams: grams})
	}

	expiringSoon := 0
	for _, item := range active {
		days := item.ExpiryDate.DaysUntil(now)
		if days >= 0 && days <= expiringSoonDays {
			expiringSoon++
		}
	}

	recent := make([]domain.WasteEntryResponse, 0, domain.RecentActivityLimit)
	for i := len(entries) - 1; i >= 0 && len(recent) < domain.RecentActivityLimit; i-- {
		recent = append(recent, waste.ToResponse(entries[i]))
	}

	return domain.DashboardStatsResponse{
		WeeklyTotalGrams:   weekly,
		WeeklyTotalDisplay: utils.FormatWeight(weekly),
		TotalCO2Kg:         totalCO2,
		TotalCO2Display:    utils.FormatCO2(totalCO2),
		DailySeries:        daily,
		TotalEntries:       len(entries),
		ActiveItems:        len(active),
		ExpiringSoon:       expiringSoon,
		RecentActivity:     recent,
	}, nil
}
