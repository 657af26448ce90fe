package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/catalog"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// ListPublic pages through the product catalog, optionally filtered by
// category.
func (h *ProductHandler) ListPublic(c *fiber.Ctx) error {
	category := c.Query("category")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 8)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 8
	}

	items := make([]models.Product, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		if category == "" || p.Category == category {
			items = append(items, p)
		}
	}

	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items[start:end],
		"meta": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func (h *ProductHandler) GetDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "معرّف غير صحيح",
		})
	}

	p, ok := catalog.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "المنتج غير موجود",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    p,
	})
}

func (h *ProductHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    catalog.Categories(),
	})
}
