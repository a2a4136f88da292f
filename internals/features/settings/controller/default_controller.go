package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsDTO "bjjh_cleaning_backend/internals/features/settings/dto"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
	"bjjh_cleaning_backend/internals/features/settings/service"
	helper "bjjh_cleaning_backend/internals/helpers"
)

type DefaultController struct {
	DB *gorm.DB
}

// GET /api/a/defaults
func (h *DefaultController) List(c *fiber.Ctx) error {
	var defaults []settingsModel.DefaultModel
	if err := h.DB.Order("rank ASC").Find(&defaults).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取預設訊息失敗")
	}

	out := make([]settingsDTO.DefaultResponse, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, settingsDTO.FromDefaultModel(d))
	}
	return helper.JsonOK(c, "", out)
}

// POST /api/a/defaults — rank is appended after the current last message.
func (h *DefaultController) Create(c *fiber.Ctx) error {
	var req settingsDTO.DefaultCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Shorthand = strings.TrimSpace(req.Shorthand)
	req.Text = strings.TrimSpace(req.Text)
	if req.Shorthand == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入簡寫")
	}
	if req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入完整訊息")
	}

	var m settingsModel.DefaultModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		rank, err := service.DefaultRanks.NextRank(tx)
		if err != nil {
			return err
		}
		m = settingsModel.DefaultModel{Shorthand: req.Shorthand, Text: req.Text, Rank: rank}
		return tx.Create(&m).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "簡寫或訊息已存在")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "建立預設訊息失敗")
	}
	return helper.JsonCreated(c, "預設訊息已建立", settingsDTO.FromDefaultModel(m))
}

// PUT /api/a/defaults/:id
//
// Renaming the text breaks streak continuity for already-submitted reports,
// since text is the durable join key. That matches the product behaviour.
func (h *DefaultController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	var req settingsDTO.DefaultUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Shorthand = strings.TrimSpace(req.Shorthand)
	req.Text = strings.TrimSpace(req.Text)
	if req.Shorthand == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入簡寫")
	}
	if req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入完整訊息")
	}

	var m settingsModel.DefaultModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "找不到預設訊息")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "讀取預設訊息失敗")
	}

	m.Shorthand = req.Shorthand
	m.Text = req.Text
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "簡寫或訊息已存在")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "更新預設訊息失敗")
	}
	return helper.JsonUpdated(c, "預設訊息已更新", settingsDTO.FromDefaultModel(m))
}

// DELETE /api/a/defaults/:id
func (h *DefaultController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	res := h.DB.Delete(&settingsModel.DefaultModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "刪除預設訊息失敗")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "找不到預設訊息")
	}
	return helper.JsonDeleted(c, "預設訊息已刪除", fiber.Map{"id": id})
}

// POST /api/a/defaults/:id/move-up
func (h *DefaultController) MoveUp(c *fiber.Ctx) error {
	return h.move(c, service.DefaultRanks.MoveUp)
}

// POST /api/a/defaults/:id/move-down
func (h *DefaultController) MoveDown(c *fiber.Ctx) error {
	return h.move(c, service.DefaultRanks.MoveDown)
}

func (h *DefaultController) move(c *fiber.Ctx, fn func(*gorm.DB, int) error) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}
	if err := fn(h.DB, id); err != nil {
		return rankErrorToFiber(err, "找不到預設訊息")
	}
	return helper.JsonUpdated(c, "順序已更新", fiber.Map{"id": id})
}

// PUT /api/a/defaults/ranks
func (h *DefaultController) Reorder(c *fiber.Ctx) error {
	var assignments []service.RankAssignment
	if err := c.BodyParser(&assignments); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	if err := service.DefaultRanks.Reorder(h.DB, assignments); err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "順序重複，請重新整理後再試")
		}
		return rankErrorToFiber(err, "找不到預設訊息")
	}
	return helper.JsonUpdated(c, "順序已更新", fiber.Map{"count": len(assignments)})
}
