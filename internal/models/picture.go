package models

// PicturePreviewResponse is returned once an uploaded picture has been read
type PicturePreviewResponse struct {
	Draft   string `json:"draft"`
	Seq     int64  `json:"seq"`
	DataURL string `json:"dataUrl"`
	Type    string `json:"contentType"`
	Size    int    `json:"size"`
}

// ReactiveValidateRequest carries the live state of the reactive form
type ReactiveValidateRequest struct {
	Values  RawSubmission `json:"values"`
	Touched []string      `json:"touched" binding:"max=9,dive,max=32"`
	Changed string        `json:"changed" binding:"max=32"`
	Draft   string        `json:"draft" binding:"omitempty,uuid"`
}

// ReactiveValidateResponse reports the errors of touched fields
type ReactiveValidateResponse struct {
	Errors    FieldErrors `json:"errors"`
	CanSubmit bool        `json:"canSubmit"`
}
