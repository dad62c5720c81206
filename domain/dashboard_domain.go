package domain

var (
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageFailedGetDashboardStats  = "failed to retrieve dashboard statistics"
)

const RecentActivityLimit = 5

type (
	DailyWaste struct {
		Day   string  `json:"day"`
		Grams float64 `json:"grams"`
	}

	DashboardStatsResponse struct {
		WeeklyTotalGrams   float64              `json:"weekly_total_grams"`
		WeeklyTotalDisplay string               `json:"weekly_total_display"`
		TotalCO2Kg         float64              `json:"total_co2_kg"`
		TotalCO2Display    string               `json:"total_co2_display"`
		DailySeries        []DailyWaste         `json:"daily_series"`
		TotalEntries       int                  `json:"total_entries"`
		ActiveItems        int                  `json:"active_items"`
		ExpiringSoon       int                  `json:"expiring_soon"`
		RecentActivity     []WasteEntryResponse `json:"recent_activity"`
	}
)
