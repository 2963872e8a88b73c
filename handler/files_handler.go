package handler

import (
	"errors"
	"mime/multipart"
	"time"

	"studybuddy/repository"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
)

func UploadFilesHandler(c *gin.Context, filesService *usecase.FilesService) {
	userID := c.GetString("user_id")

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Invalid multipart form")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		utils.BadRequest(c, "No files provided")
		return
	}

	noteID := c.PostForm("note_id")

	uploads := make([]usecase.FileUpload, 0, len(headers))
	openFiles := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range openFiles {
			f.Close()
		}
	}()

	for _, h := range headers {
		up := usecase.FileUpload{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Size:        h.Size,
			NoteID:      noteID,
		}
		// Oversized files never get opened; the service rejects them
		// by size alone.
		if h.Size <= usecase.MaxFileSize {
			f, err := h.Open()
			if err != nil {
				utils.InternalError(c, "Failed to read upload")
				return
			}
			openFiles = append(openFiles, f)
			up.Reader = f
		}
		uploads = append(uploads, up)
	}

	results := filesService.UploadFiles(c, userID, uploads)

	out := make([]gin.H, 0, len(results))
	for _, r := range results {
		entry := gin.H{"name": r.Name}
		if r.Err != nil {
			entry["error"] = r.Err.Error()
		} else {
			entry["file"] = r.File
		}
		out = append(out, entry)
	}

	utils.Success(c, out)
}

func ListFilesHandler(c *gin.Context, filesService *usecase.FilesService) {
	files, err := filesService.ListFiles(c, c.GetString("user_id"), c.Query("note_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch files")
		return
	}

	utils.Success(c, files)
}

func FileURLHandler(c *gin.Context, filesService *usecase.FilesService) {
	fileID := c.Param("id")
	userID := c.GetString("user_id")

	url, err := filesService.SignedURL(c, fileID, userID, 15*time.Minute)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			utils.NotFound(c, "File not found")
			return
		}
		utils.InternalError(c, "Failed to sign download URL")
		return
	}

	utils.Success(c, gin.H{"url": url})
}

func DeleteFileHandler(c *gin.Context, filesService *usecase.FilesService) {
	fileID := c.Param("id")
	userID := c.GetString("user_id")

	if err := filesService.DeleteFile(c, fileID, userID); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			utils.NotFound(c, "File not found")
			return
		}
		utils.InternalError(c, "Failed to delete file")
		return
	}

	utils.Success(c, gin.H{"message": "File deleted"})
}
