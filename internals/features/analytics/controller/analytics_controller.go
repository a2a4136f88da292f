package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
	helper "bjjh_cleaning_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

type defaultColumn struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Shorthand string `json:"shorthand"`
}

// GET /api/a/analytics/defaults — the pivot columns, in rank order.
func (h *AnalyticsController) GetDefaults(c *fiber.Ctx) error {
	var defaults []settingsModel.DefaultModel
	if err := h.DB.Order("rank ASC").Find(&defaults).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取預設訊息失敗")
	}

	out := make([]defaultColumn, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, defaultColumn{ID: d.ID, Text: d.Text, Shorthand: d.Shorthand})
	}
	return helper.JsonOK(c, "", out)
}

// GET /api/a/analytics/by-area?start_date=&end_date=
//
// One pivot row per area: report counts keyed by the matching default
// message id, with free-text reports pooled under "0".
func (h *AnalyticsController) ByArea(c *fiber.Ctx) error {
	startDate, endDate, err := h.dateRange(c)
	if err != nil {
		return err
	}

	var areas []settingsModel.AreaModel
	if err := h.DB.Order("rank ASC").Find(&areas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取掃區失敗")
	}
	defaultsByText, err := h.defaultsByText()
	if err != nil {
		return err
	}

	rows := make([]fiber.Map, 0, len(areas))
	for _, a := range areas {
		var reports []evaluateModel.ReportModel
		if err := h.DB.Where(`"areaId" = ? AND date >= ? AND date <= ?`, a.ID, startDate, endDate).
			Find(&reports).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
		}
		rows = append(rows, pivotRow(a.Name, reports, defaultsByText))
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/analytics/by-class?start_date=&end_date=
func (h *AnalyticsController) ByClass(c *fiber.Ctx) error {
	startDate, endDate, err := h.dateRange(c)
	if err != nil {
		return err
	}

	var classes []settingsModel.ClassModel
	if err := h.DB.Order("id ASC").Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取班級失敗")
	}
	defaultsByText, err := h.defaultsByText()
	if err != nil {
		return err
	}

	rows := make([]fiber.Map, 0, len(classes))
	for _, cls := range classes {
		var reports []evaluateModel.ReportModel
		if err := h.DB.Joins(`JOIN "Area" ON "Area".id = "Report"."areaId"`).
			Where(`"Area"."classId" = ? AND "Report".date >= ? AND "Report".date <= ?`, cls.ID, startDate, endDate).
			Find(&reports).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
		}
		rows = append(rows, pivotRow(cls.Name, reports, defaultsByText))
	}
	return helper.JsonOK(c, "", rows)
}

func (h *AnalyticsController) dateRange(c *fiber.Ctx) (string, string, error) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if _, err := helper.ParseDate(startDate); err != nil {
		return "", "", err
	}
	if _, err := helper.ParseDate(endDate); err != nil {
		return "", "", err
	}
	if startDate > endDate {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "開始日期不可晚於結束日期")
	}
	return startDate, endDate, nil
}

func (h *AnalyticsController) defaultsByText() (map[string]int, error) {
	var defaults []settingsModel.DefaultModel
	if err := h.DB.Find(&defaults).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "讀取預設訊息失敗")
	}
	byText := make(map[string]int, len(defaults))
	for _, d := range defaults {
		byText[d.Text] = d.ID
	}
	return byText, nil
}

// pivotRow counts reports per default-message column. Reports whose text
// matches no default message land in column "0".
func pivotRow(key string, reports []evaluateModel.ReportModel, defaultsByText map[string]int) fiber.Map {
	row := fiber.Map{"key": key}
	for _, r := range reports {
		col := "0"
		if id, ok := defaultsByText[r.Text]; ok {
			col = strconv.Itoa(id)
		}
		if n, ok := row[col].(int); ok {
			row[col] = n + 1
		} else {
			row[col] = 1
		}
	}
	return row
}
