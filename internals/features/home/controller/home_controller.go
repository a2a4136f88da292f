package controller

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
	"bjjh_cleaning_backend/internals/features/home/service"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
	helper "bjjh_cleaning_backend/internals/helpers"
	"bjjh_cleaning_backend/internals/helpers/storage"
)

type HomeController struct {
	DB      *gorm.DB
	Storage storage.ObjectStorage
}

type classReports struct {
	ClassID   int                         `json:"classId"`
	ClassName string                      `json:"className"`
	Reports   []evaluateModel.ReportModel `json:"reports"`
}

// GET /api/a/reports/by-class?date=&interleaved=
//
// Groups a day's reports per class. With interleaved=true the class list
// is split in half and zipped back together so two graders walking the
// building in opposite directions do not collide.
func (h *HomeController) GetReportsByClass(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = helper.Today()
	}
	if _, err := helper.ParseDate(date); err != nil {
		return err
	}

	var classes []settingsModel.ClassModel
	if err := h.DB.Order("id ASC").Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取班級失敗")
	}

	out := make([]classReports, 0, len(classes))
	for _, cls := range classes {
		var areaIDs []int
		if err := h.DB.Model(&settingsModel.AreaModel{}).
			Where(`"classId" = ?`, cls.ID).
			Pluck("id", &areaIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "讀取掃區失敗")
		}

		reports := make([]evaluateModel.ReportModel, 0)
		if len(areaIDs) > 0 {
			if err := h.DB.Preload("Area").
				Where(`"areaId" IN ? AND date = ?`, areaIDs, date).
				Order("id ASC").
				Find(&reports).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
			}
		}
		out = append(out, classReports{ClassID: cls.ID, ClassName: cls.Name, Reports: reports})
	}

	if c.QueryBool("interleaved") {
		shuffled, err := service.Interleave(out)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
		}
		out = shuffled
	}
	return helper.JsonOK(c, "", out)
}

// DELETE /api/a/reports/:id
//
// The database row goes first; evidence cleanup is best effort and a
// storage failure never blocks the delete.
func (h *HomeController) DeleteReport(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID 格式錯誤")
	}

	var m evaluateModel.ReportModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "找不到回報")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
	}

	if err := h.DB.Delete(&evaluateModel.ReportModel{}, id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "刪除回報失敗")
	}

	if keys := m.EvidenceKeys(); len(keys) > 0 {
		if err := h.Storage.RemoveObjects(c.UserContext(), keys); err != nil {
			log.Printf("[ERROR] failed to remove evidence for report %d: %v", id, err)
		}
	}
	return helper.JsonDeleted(c, "回報已刪除", fiber.Map{"id": id})
}

// GET /api/a/reports/download?date=
//
// Builds a zip with one folder per class that has reports: a text summary
// plus the evidence images pulled from object storage.
func (h *HomeController) DownloadReports(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = helper.Today()
	}
	if _, err := helper.ParseDate(date); err != nil {
		return err
	}

	var classes []settingsModel.ClassModel
	if err := h.DB.Order("id ASC").Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "讀取班級失敗")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, cls := range classes {
		var reports []evaluateModel.ReportModel
		if err := h.DB.Preload("Area").
			Joins(`JOIN "Area" ON "Area".id = "Report"."areaId"`).
			Where(`"Area"."classId" = ? AND "Report".date = ?`, cls.ID, date).
			Order(`"Report".id ASC`).
			Find(&reports).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "讀取回報失敗")
		}
		if len(reports) == 0 {
			continue
		}

		summary, err := zw.Create(cls.Name + "/回報紀錄.txt")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "產生壓縮檔失敗")
		}
		for _, r := range reports {
			if err := writeReportSummary(summary, r); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "產生壓縮檔失敗")
			}
		}

		for _, r := range reports {
			for i, key := range r.EvidenceKeys() {
				obj, err := h.Storage.GetObject(c.UserContext(), key)
				if err != nil {
					log.Printf("[ERROR] failed to fetch evidence %s: %v", key, err)
					continue
				}
				name := fmt.Sprintf("%s/%d-%d%s", cls.Name, r.ID, i+1, evidenceExt(key))
				w, err := zw.Create(name)
				if err == nil {
					_, err = io.Copy(w, obj)
				}
				obj.Close()
				if err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "產生壓縮檔失敗")
				}
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "產生壓縮檔失敗")
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reports-`+date+`.zip"`)
	return c.Send(buf.Bytes())
}

func writeReportSummary(w io.Writer, r evaluateModel.ReportModel) error {
	areaName := ""
	if r.Area != nil {
		areaName = r.Area.Name
	}
	comment := ""
	if r.Comment != nil {
		comment = *r.Comment
	}
	_, err := fmt.Fprintf(w, "地點：%s\n日期：%s\n時間：%s\n狀況：%s\n備註：%s\n\n",
		areaName, r.Date, r.CreatedAt.Format(time.TimeOnly), r.Text, comment)
	return err
}

func evidenceExt(key string) string {
	if ext := path.Ext(key); ext != "" && !strings.Contains(ext, "/") {
		return ext
	}
	return ".webp"
}
