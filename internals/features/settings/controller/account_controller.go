package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsDTO "bjjh_cleaning_backend/internals/features/settings/dto"
	usersModel "bjjh_cleaning_backend/internals/features/users/model"
	helper "bjjh_cleaning_backend/internals/helpers"
)

type AccountController struct {
	DB *gorm.DB
}

// GET /api/a/accounts
func (h *AccountController) List(c *fiber.Ctx) error {
	var users []usersModel.UserModel
	if err := h.DB.Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取帳號失敗")
	}

	out := make([]settingsDTO.AccountResponse, 0, len(users))
	for _, u := range users {
		out = append(out, settingsDTO.AccountResponse{ID: u.ID, Email: u.Email, Name: u.Name})
	}
	return helper.JsonOK(c, "", out)
}

// POST /api/a/accounts — grant admin access to an email.
func (h *AccountController) Create(c *fiber.Ctx) error {
	var req settingsDTO.AccountCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入有效的電子郵件地址")
	}

	m := usersModel.UserModel{Email: req.Email}
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "此電子郵件已有帳號")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "建立帳號失敗")
	}
	return helper.JsonCreated(c, "帳號已建立", settingsDTO.AccountResponse{ID: m.ID, Email: m.Email})
}

// DELETE /api/a/accounts/:id — revokes admin access on the next request.
func (h *AccountController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	res := h.DB.Where("id = ?", id).Delete(&usersModel.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "刪除帳號失敗")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "找不到帳號")
	}
	return helper.JsonDeleted(c, "帳號已刪除", fiber.Map{"id": id})
}
