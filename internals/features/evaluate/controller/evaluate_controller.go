package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	evaluateDTO "bjjh_cleaning_backend/internals/features/evaluate/dto"
	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
	"bjjh_cleaning_backend/internals/features/evaluate/service"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
	helper "bjjh_cleaning_backend/internals/helpers"
	"bjjh_cleaning_backend/internals/helpers/storage"
)

const (
	uploadURLBatchSize = 10
	putURLExpiry       = time.Hour
	getURLExpiry       = 24 * time.Hour
)

var validate = validator.New()

type EvaluateController struct {
	DB      *gorm.DB
	Storage storage.ObjectStorage
}

// GET /api/a/evaluate/defaults?area_id=&reference_date=
//
// Returns the canned messages annotated with today's and the reference
// date's recency for the area. The reference date defaults to the last
// workday before today.
func (h *EvaluateController) DefaultsWithRecency(c *fiber.Ctx) error {
	areaID, err := strconv.Atoi(c.Query("area_id"))
	if err != nil || areaID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "請選擇掃區")
	}

	today := helper.Today()
	referenceDate := c.Query("reference_date")
	if referenceDate == "" {
		referenceDate, err = helper.LastWorkday(today)
	} else {
		_, err = helper.ParseDate(referenceDate)
	}
	if err != nil {
		return err
	}

	var cnt int64
	if err := h.DB.Model(&settingsModel.AreaModel{}).Where("id = ?", areaID).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取掃區失敗")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "找不到掃區")
	}

	out, err := service.DefaultsWithRecency(h.DB, areaID, today, referenceDate)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取預設訊息失敗")
	}
	return helper.JsonOK(c, "", out)
}

// GET /api/a/evaluate/evidence-upload-urls
func (h *EvaluateController) EvidenceUploadURLs(c *fiber.Ctx) error {
	out := make([]evaluateDTO.UploadURL, 0, uploadURLBatchSize)
	for i := 0; i < uploadURLBatchSize; i++ {
		path := "evidence/" + helper.RandHex(6)
		url, err := h.Storage.PresignedPutObject(c.UserContext(), path, putURLExpiry)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "產生上傳連結失敗")
		}
		out = append(out, evaluateDTO.UploadURL{Path: path, URL: url})
	}
	return helper.JsonOK(c, "", out)
}

// POST /api/a/evaluate/image-urls
func (h *EvaluateController) ImageURLs(c *fiber.Ctx) error {
	var req evaluateDTO.ImageURLsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}

	urls := make([]string, 0, len(req.Paths))
	for _, path := range req.Paths {
		url, err := h.Storage.PresignedGetObject(c.UserContext(), path, getURLExpiry)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "產生圖片連結失敗")
		}
		urls = append(urls, url)
	}
	return helper.JsonOK(c, "", urls)
}

// POST /api/a/evaluate/evidence — server-side upload fallback for clients
// that cannot PUT to the presigned URL directly. Recompresses to webp.
func (h *EvaluateController) UploadEvidence(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "找不到上傳檔案")
	}

	key, err := storage.UploadAsWebP(c.UserContext(), h.Storage, fh, "evidence")
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusBadGateway, "上傳失敗，請稍後再試")
	}
	return helper.JsonCreated(c, "照片已上傳", fiber.Map{"path": key})
}

// POST /api/a/evaluate/reports
func (h *EvaluateController) SubmitReport(c *fiber.Ctx) error {
	var req evaluateDTO.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload 格式錯誤")
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := helper.ParseDate(req.Date); err != nil {
		return err
	}
	if req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入未清潔狀況")
	}
	repeated, err := strconv.Atoi(req.Repeated)
	if err != nil || repeated < 0 || repeated > 30 {
		return fiber.NewError(fiber.StatusBadRequest, "請輸入正確的連續未清潔天數")
	}

	var cnt int64
	if err := h.DB.Model(&settingsModel.AreaModel{}).Where("id = ?", req.AreaID).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取掃區失敗")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "找不到掃區")
	}

	m := evaluateModel.ReportModel{
		Date:     req.Date,
		Text:     req.Text,
		Repeated: repeated,
		AreaID:   req.AreaID,
	}
	if len(req.Evidence) > 0 {
		raw, err := sonic.Marshal(req.Evidence)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "請確認證明照片格式正確")
		}
		m.Evidence = datatypes.JSON(raw)
	}
	if req.Comment != nil {
		if v := strings.TrimSpace(*req.Comment); v != "" {
			m.Comment = &v
		}
	}

	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "回報失敗，請稍後再試")
	}
	return helper.JsonCreated(c, "回報已送出", m)
}
