package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/hrtools-br/ausencias-backend-go/internal/handler/http/response"
)

const maxUploadSize = 10 << 20

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct{}

func NewUploadHandler() UploadHandler {
	return &UploadHandlerImpl{}
}

type uploadResponse struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	Size     int64  `json:"size"`
}

// Upload accepts a spreadsheet for the automation surface. Processing is not
// implemented yet: the endpoint only acknowledges the file.
// TODO: wire the uploaded rows into the record store once the import format
// is agreed with the HR team.
func (h *UploadHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		response.BadRequest(w, "Only .csv and .xlsx files are accepted", nil)
		return
	}

	response.SuccessWithMessage(w, "Arquivo carregado com sucesso: "+header.Filename, uploadResponse{
		FileName: header.Filename,
		FileType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	})
}
