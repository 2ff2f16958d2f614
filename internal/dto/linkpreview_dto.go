package dto

type LinkPreviewRequest struct {
	Url string `json:"url" query:"url" validate:"required,url"`
}

type LinkPreviewResponse struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	SiteName    *string `json:"site_name"`
	Domain      string  `json:"domain"`
	Favicon     string  `json:"favicon"`
	Url         string  `json:"url"`
}
