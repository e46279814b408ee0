package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/services/uploads"
)

type UploadController struct {
	store uploads.BlobStore
}

func NewUploadController(store uploads.BlobStore) *UploadController {
	return &UploadController{store: store}
}

// Upload godoc
// @Summary      Upload a file answer
// @Description  Returns the URL to submit as the value of a file field.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File"
// @Success      201  {object}  uploads.Upload
// @Failure      400  {object}  models.ErrorResponse
// @Failure      413  {object}  models.ErrorResponse
// @Router       /uploads [post]
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	up, err := ctl.store.Save(c.UserContext(), fh)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(up)
}
