// FILE: internal/dto/file_dto.go
package dto

type UploadFileResponse struct {
	Url string `json:"url"`
}
