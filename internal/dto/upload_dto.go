package dto

type UploadImageResponse struct {
	Url      string `json:"url"`
	FileName string `json:"file_name"`
}
