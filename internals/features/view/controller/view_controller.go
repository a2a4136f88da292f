package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
	helper "bjjh_cleaning_backend/internals/helpers"
	"bjjh_cleaning_backend/internals/helpers/storage"
)

const recordImageURLExpiry = 24 * time.Hour

type ViewController struct {
	DB      *gorm.DB
	Storage storage.ObjectStorage
}

type recordEntry struct {
	ID        int      `json:"id"`
	AreaName  string   `json:"areaName"`
	Text      string   `json:"text"`
	Repeated  int      `json:"repeated"`
	Comment   *string  `json:"comment,omitempty"`
	ImageURLs []string `json:"imageUrls"`
}

// GET /api/view/records?date=&class_name=
//
// Public lookup used by homeroom teachers. Evidence keys are exchanged
// for presigned URLs so the bucket itself stays private.
func (h *ViewController) GetRecords(c *fiber.Ctx) error {
	date := c.Query("date")
	if _, err := helper.ParseDate(date); err != nil {
		return err
	}
	className := strings.TrimSpace(c.Query("class_name"))
	if className == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入班級名稱")
	}

	var cls settingsModel.ClassModel
	if err := h.DB.Where("name = ?", className).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "找不到班級")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "讀取班級失敗")
	}

	var reports []evaluateModel.ReportModel
	if err := h.DB.Preload("Area").
		Joins(`JOIN "Area" ON "Area".id = "Report"."areaId"`).
		Where(`"Area"."classId" = ? AND "Report".date = ?`, cls.ID, date).
		Order(`"Report".id ASC`).
		Find(&reports).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
	}

	out := make([]recordEntry, 0, len(reports))
	for _, r := range reports {
		entry := recordEntry{
			ID:        r.ID,
			Text:      r.Text,
			Repeated:  r.Repeated,
			Comment:   r.Comment,
			ImageURLs: make([]string, 0),
		}
		if r.Area != nil {
			entry.AreaName = r.Area.Name
		}
		for _, key := range r.EvidenceKeys() {
			url, err := h.Storage.PresignedGetObject(c.UserContext(), key, recordImageURLExpiry)
			if err != nil {
				log.Printf("[ERROR] failed to presign evidence %s: %v", key, err)
				continue
			}
			entry.ImageURLs = append(entry.ImageURLs, url)
		}
		out = append(out, entry)
	}
	return helper.JsonOK(c, "", out)
}
