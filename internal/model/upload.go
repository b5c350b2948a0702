package model

// File type classifications derived from the uploaded content type.
const (
	FileTypeImage    = "image"
	FileTypeDocument = "document"
)

// UploadedFile is an uploaded health record document or photo. Size and
// UploadDate are system-generated at ingest; URL is an opaque reference.
type UploadedFile struct {
	Base
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"uploadDate"`
	Size       string `json:"size"`
	URL        string `json:"url"`
}

// UploadedFileView adds the relative upload-day label shown on dashboards.
type UploadedFileView struct {
	UploadedFile
	UploadedLabel string `json:"uploadedLabel"`
}
