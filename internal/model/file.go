package model

// UploadImageRequest carries no bound fields, the image arrives as multipart
// form data.
type UploadImageRequest struct{}

type UploadImageResponse struct {
	Url string `json:"url"`
}
