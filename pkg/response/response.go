package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DeletedResponse confirms a deletion and echoes the removed id.
type DeletedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type UploadResponse struct {
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	URL              string `json:"url"`
	FullURL          string `json:"full_url"`
}
