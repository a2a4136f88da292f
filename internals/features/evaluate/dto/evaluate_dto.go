package dto

// Repeated arrives as the raw form-field string, mirroring the inspection
// form; the controller parses and range-checks it.
type SubmitReportRequest struct {
	Date     string   `json:"date" validate:"required"`
	Text     string   `json:"text" validate:"required,min=1"`
	Repeated string   `json:"repeated" validate:"required"`
	AreaID   int      `json:"areaId" validate:"required,min=1"`
	Evidence []string `json:"evidence"`
	Comment  *string  `json:"comment"`
}

type ImageURLsRequest struct {
	Paths []string `json:"paths" validate:"required"`
}

type UploadURL struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
