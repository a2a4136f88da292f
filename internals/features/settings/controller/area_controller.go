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

type AreaController struct {
	DB *gorm.DB
}

// GET /api/a/areas
func (h *AreaController) List(c *fiber.Ctx) error {
	var areas []settingsModel.AreaModel
	if err := h.DB.Preload("Class").Order("rank ASC").Find(&areas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取掃區失敗")
	}

	out := make([]settingsDTO.AreaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, settingsDTO.FromAreaModel(a))
	}
	return helper.JsonOK(c, "", out)
}

// POST /api/a/areas — rank is appended after the current last area.
func (h *AreaController) Create(c *fiber.Ctx) error {
	var req settingsDTO.AreaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入掃區名稱")
	}
	if req.ClassID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "請選擇班級")
	}

	var m settingsModel.AreaModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&settingsModel.ClassModel{}).Where("id = ?", req.ClassID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "找不到班級")
		}

		rank, err := service.AreaRanks.NextRank(tx)
		if err != nil {
			return err
		}
		m = settingsModel.AreaModel{Name: req.Name, ClassID: req.ClassID, Rank: rank}
		return tx.Create(&m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "掃區名稱已存在")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "建立掃區失敗")
	}
	return helper.JsonCreated(c, "掃區已建立", settingsDTO.FromAreaModel(m))
}

// PUT /api/a/areas/:id
func (h *AreaController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	var req settingsDTO.AreaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入掃區名稱")
	}
	if req.ClassID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "請選擇班級")
	}

	var m settingsModel.AreaModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "找不到掃區")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "讀取掃區失敗")
	}

	m.Name = req.Name
	m.ClassID = req.ClassID
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "掃區名稱已存在")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "更新掃區失敗")
	}
	return helper.JsonUpdated(c, "掃區已更新", settingsDTO.FromAreaModel(m))
}

// DELETE /api/a/areas/:id
func (h *AreaController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	res := h.DB.Delete(&settingsModel.AreaModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "刪除掃區失敗")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "找不到掃區")
	}
	return helper.JsonDeleted(c, "掃區已刪除", fiber.Map{"id": id})
}

// POST /api/a/areas/:id/move-up
func (h *AreaController) MoveUp(c *fiber.Ctx) error {
	return h.move(c, service.AreaRanks.MoveUp)
}

// POST /api/a/areas/:id/move-down
func (h *AreaController) MoveDown(c *fiber.Ctx) error {
	return h.move(c, service.AreaRanks.MoveDown)
}

func (h *AreaController) move(c *fiber.Ctx, fn func(*gorm.DB, int) error) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}
	if err := fn(h.DB, id); err != nil {
		return rankErrorToFiber(err, "找不到掃區")
	}
	return helper.JsonUpdated(c, "順序已更新", fiber.Map{"id": id})
}

// PUT /api/a/areas/ranks — drag-and-drop bulk reorder.
func (h *AreaController) Reorder(c *fiber.Ctx) error {
	var assignments []service.RankAssignment
	if err := c.BodyParser(&assignments); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	if err := service.AreaRanks.Reorder(h.DB, assignments); err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "順序重複，請重新整理後再試")
		}
		return rankErrorToFiber(err, "找不到掃區")
	}
	return helper.JsonUpdated(c, "順序已更新", fiber.Map{"count": len(assignments)})
}

// rankErrorToFiber maps rank-service errors onto user-facing responses.
func rankErrorToFiber(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrAlreadyAtTop):
		return fiber.NewError(fiber.StatusBadRequest, "已經在最上方")
	case errors.Is(err, service.ErrAlreadyAtBottom):
		return fiber.NewError(fiber.StatusBadRequest, "已經在最下方")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "更新順序失敗")
	}
}
