package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/portfolio"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

type PortfolioHandler struct {
	Portfolio *portfolio.Service
	UploadDir string
	BaseURL   string
}

func NewPortfolioHandler(svc *portfolio.Service, uploadDir, baseURL string) *PortfolioHandler {
	return &PortfolioHandler{Portfolio: svc, UploadDir: uploadDir, BaseURL: baseURL}
}

// List returns the signed-in freelancer's projects, newest first.
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fid := utils.DeriveIDFromEmail(email)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Portfolio.Items(c.Context(), fid),
	})
}

type AddProjectReq struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	MoreImages  []string `json:"moreImages"`
	Description string   `json:"description"`
	ProjectLink string   `json:"projectLink"`
	ToolsUsed   []string `json:"toolsUsed"`
	Features    []string `json:"features"`
}

func (h *PortfolioHandler) Add(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req AddProjectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "العنوان والتصنيف مطلوبان",
		})
	}

	fid := utils.DeriveIDFromEmail(email)
	created, err := h.Portfolio.Add(c.Context(), fid, models.PortfolioItem{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		MoreImages:  req.MoreImages,
		Description: req.Description,
		ProjectLink: req.ProjectLink,
		ToolsUsed:   req.ToolsUsed,
		Features:    req.Features,
	})
	if err != nil {
		log.Println("Error adding portfolio project:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "فشل حفظ المشروع",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "تم إضافة المشروع",
		"data":    created,
	})
}

func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	projectID := c.Params("projectId")
	fid := utils.DeriveIDFromEmail(email)

	if err := h.Portfolio.Delete(c.Context(), fid, projectID); err != nil {
		log.Println("Error deleting portfolio project:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "فشل حذف المشروع",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "تم حذف المشروع",
	})
}

// UploadImage stores a portfolio image under the upload dir with a
// generated filename and returns its public URL.
func (h *PortfolioHandler) UploadImage(c *fiber.Ctx) error {
	if _, err := getEmail(c); err != nil {
		return fiber.ErrUnauthorized
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ملف الصورة غير موجود",
		})
	}

	if file.Size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "حجم الملف غير صحيح",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "صيغة الملف غير مدعومة",
		})
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		log.Println("Error creating upload dir:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "فشل رفع الملف",
		})
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(h.UploadDir, filename)
	if err := c.SaveFile(file, dst); err != nil {
		log.Println("Error saving upload:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "فشل رفع الملف",
		})
	}

	url := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(h.BaseURL, "/"), filename)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"url": url,
		},
	})
}
