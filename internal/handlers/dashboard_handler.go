package handlers

import (
	"strconv"
	"time"

	"github.com/clefio/clefs-backend/internal/calendar"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
	alerts    *services.AlertService
	keys      *services.KeyService
}

func NewDashboardHandler(dashboard *services.DashboardService, alerts *services.AlertService, keys *services.KeyService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, alerts: alerts, keys: keys}
}

func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.dashboard.Overview(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to build dashboard")
	}
	return c.JSON(overview)
}

// Calendar returns the month grid: per-day alert/key buckets plus the
// Monday-based leading offset for rendering the partial first week.
func (h *DashboardHandler) Calendar(c *fiber.Ctx) error {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return badRequest(c, "Invalid year")
	}
	monthNum, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return badRequest(c, "Invalid month")
	}
	month := time.Month(monthNum)

	alerts, err := h.alerts.List(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch alerts")
	}
	keys, err := h.keys.List(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch keys")
	}

	return c.JSON(fiber.Map{
		"year":           year,
		"month":          monthNum,
		"leading_offset": calendar.LeadingOffset(year, month),
		"days":           calendar.Bucket(alerts, keys, year, month),
	})
}
