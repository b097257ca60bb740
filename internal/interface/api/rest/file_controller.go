package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"filedrop-api/internal/application/ports"
	fileDTO "filedrop-api/internal/interface/api/rest/dto/file"
)

// 10MB
const maxSize = int64(10 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	r.POST(RouteFiles, fc.UploadFileHandler)
	r.GET(RouteFiles, fc.GetFilesHandler)

	return fc
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	f, err := fc.fileService.Ingest(c.Request.Context(), fh)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload file"},
		)
		fc.logger.Error("Ingest() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, fileDTO.ToResponseFile(*f))
}

// GetFilesHandler returns every file's metadata: listings are not
// scoped to an owner.
func (fc *FileController) GetFilesHandler(c *gin.Context) {
	files, err := fc.fileService.ListFiles(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("ListFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFiles(files),
	})
}
