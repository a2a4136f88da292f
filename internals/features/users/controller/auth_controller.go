package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bjjh_cleaning_backend/internals/configs"
	usersDTO "bjjh_cleaning_backend/internals/features/users/dto"
	usersModel "bjjh_cleaning_backend/internals/features/users/model"
	helper "bjjh_cleaning_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

// POST /api/auth/google
//
// Verifies the Google ID token, then checks the email against the admin
// allow-list. Only pre-registered emails get a session token; sign-in
// never creates accounts.
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req usersDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Google 登入驗證失敗")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claims.Email == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Google 登入驗證失敗")
	}

	email := strings.TrimSpace(strings.ToLower(claims.Email))
	var user usersModel.UserModel
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusForbidden, "此帳號沒有管理權限")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "讀取帳號失敗")
	}

	// Refresh the profile fields from Google on every successful login.
	now := time.Now()
	user.EmailVerified = &now
	if claims.Name != "" {
		user.Name = &claims.Name
	}
	if claims.Picture != "" {
		user.Image = &claims.Picture
	}
	if err := h.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] failed to refresh profile for %s: %v", email, err)
	}

	token, err := helper.CreateUserToken(user.ID, user.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "登入失敗，請稍後再試")
	}

	return helper.JsonOK(c, "登入成功", usersDTO.LoginResponse{
		Token: token,
		User: usersDTO.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Image: user.Image,
		},
	})
}

// GET /api/a/me — identity echo for the frontend session check.
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var user usersModel.UserModel
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "登入已失效，請重新登入")
	}
	return helper.JsonOK(c, "", usersDTO.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Image: user.Image,
	})
}
