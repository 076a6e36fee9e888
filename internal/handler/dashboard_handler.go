package handler

import (
	"github.com/gofiber/fiber/v2"

	"certification-backend/internal/repository"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetStats: GET /api/dashboard/stats
// Ringkasan untuk halaman depan: jumlah pegawai, rule, mapping, exception,
// plus sebaran status dan source eligibility.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik"})
	}
	return c.JSON(fiber.Map{"data": stats})
}
