// controllers/upload_controller.go
package controllers

import (
	"io"

	"github.com/basiljilani/Foodo-admin/pkg/resp"
	"github.com/basiljilani/Foodo-admin/storage"
	"github.com/basiljilani/Foodo-admin/uploads"
	"github.com/gin-gonic/gin"
)

// UploadController takes a multipart image, stages it through the same
// validation as the forms, and commits it straight away, returning the
// public URL to store on an entity.
type UploadController struct {
	uploaders map[string]*uploads.Uploader
}

func NewUploadController(restaurant, menuItem *uploads.Uploader) *UploadController {
	return &UploadController{uploaders: map[string]*uploads.Uploader{
		storage.BucketRestaurantImages: restaurant,
		storage.BucketMenuItemImages:   menuItem,
	}}
}

// POST /uploads/:bucket
func (ctl *UploadController) Upload(c *gin.Context) {
	u, ok := ctl.uploaders[c.Param("bucket")]
	if !ok {
		resp.NotFound(c, "unknown bucket")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "missing file")
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.BadRequest(c, "unreadable file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		resp.BadRequest(c, "unreadable file")
		return
	}

	preview, err := u.Stage(fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		fail(c, err)
		return
	}
	url, err := u.Commit(c.Request.Context(), preview)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}
