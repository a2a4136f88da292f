package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/image/draw"

	"bjjh_cleaning_backend/internals/configs"
)

const maxUploadSize = int64(5 * 1024 * 1024)

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: float32(envInt("IMAGE_WEBP_QUALITY", 80)),
	}
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// decodeImage sniffs the MIME from the first 512 bytes, with an extension
// fallback for files served with a generic content type.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP reads, decodes, downscales and re-encodes an uploaded image.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	opt := defaultWebPOptionsFromEnv()

	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadAsWebP is the server-side evidence upload fallback: recompress the
// photo to webp and store it under keyPrefix. Returns the storage key.
func UploadAsWebP(ctx context.Context, s ObjectStorage, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "找不到上傳檔案")
	}
	if fh.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "圖片大小上限為 5MB")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unsupported image format") {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "不支援的圖片格式（請用 jpg/png/webp）")
		}
		return "", err
	}

	key := strings.Trim(keyPrefix, "/") + "/" + time.Now().Format("20060102_150405") + "_" + randHex(3) + ".webp"
	if err := s.PutObject(ctx, key, bytes.NewReader(webpData), int64(len(webpData)), "image/webp"); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "上傳失敗，請稍後再試")
	}
	return key, nil
}
