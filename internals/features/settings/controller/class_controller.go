package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsDTO "bjjh_cleaning_backend/internals/features/settings/dto"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
	helper "bjjh_cleaning_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

// GET /api/a/classes
func (h *ClassController) List(c *fiber.Ctx) error {
	var classes []settingsDTO.ClassLite
	if err := h.DB.Model(&settingsModel.ClassModel{}).
		Select("id, name").Order("id ASC").
		Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取班級失敗")
	}
	return helper.JsonOK(c, "", classes)
}

// POST /api/a/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req settingsDTO.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入班級名稱")
	}

	m := settingsModel.ClassModel{Name: req.Name}
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "班級名稱已存在")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "建立班級失敗")
	}
	return helper.JsonCreated(c, "班級已建立", settingsDTO.ClassLite{ID: m.ID, Name: m.Name})
}

// PUT /api/a/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	var req settingsDTO.ClassUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入班級名稱")
	}

	var m settingsModel.ClassModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "找不到班級")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "讀取班級失敗")
	}

	m.Name = req.Name
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "班級名稱已存在")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "更新班級失敗")
	}
	return helper.JsonUpdated(c, "班級已更新", settingsDTO.ClassLite{ID: m.ID, Name: m.Name})
}

// DELETE /api/a/classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	res := h.DB.Delete(&settingsModel.ClassModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "刪除班級失敗")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "找不到班級")
	}
	return helper.JsonDeleted(c, "班級已刪除", fiber.Map{"id": id})
}
