package drawing

type CreateVersionDTO struct {
	FileURL        string  `json:"file_url" binding:"required"`
	ChangesSummary *string `json:"changes_summary,omitempty"`
	CreatedByID    *string `json:"created_by_id,omitempty"`
}

type UploadVersionDTO struct {
	ChangesSummary *string `form:"changes_summary"`
	CreatedByID    *string `form:"created_by_id"`
}
