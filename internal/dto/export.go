package dto

// CreateExportRequest asks for an async roster export.
type CreateExportRequest struct {
	JobID  int64  `json:"jobId" binding:"required" validate:"required,gt=0"`
	Format string `json:"format" binding:"required" validate:"required,oneof=csv pdf"`
}

// ExportJobResponse reports the state of an export job.
type ExportJobResponse struct {
	ID          string `json:"id"`
	JobID       int64  `json:"jobId"`
	Format      string `json:"format"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}
