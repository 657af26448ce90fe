package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/saahla-dz/saahla_be/internal/services/freelancer"
)

type FreelancerHandler struct {
	Freelancers *freelancer.Service
}

func NewFreelancerHandler(svc *freelancer.Service) *FreelancerHandler {
	return &FreelancerHandler{Freelancers: svc}
}

// List returns the merged registered + catalog freelancers, optionally
// filtered by category.
func (h *FreelancerHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")

	all := h.Freelancers.All(c.Context())
	if category != "" {
		filtered := all[:0:0]
		for _, f := range all {
			if f.Category == category {
				filtered = append(filtered, f)
			}
		}
		all = filtered
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    all,
	})
}

func (h *FreelancerHandler) GetDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "معرّف غير صحيح",
		})
	}

	f, ok := h.Freelancers.ByID(c.Context(), id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "المستقل غير موجود",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    f,
	})
}
