package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-FormCraft/src/qrcode"
)

// ShareController hands out the public link of a form and a QR code for it.
type ShareController struct {
	forms    FormService
	shareURL func(formID string) string
}

func NewShareController(forms FormService, shareURL func(formID string) string) *ShareController {
	return &ShareController{forms: forms, shareURL: shareURL}
}

type ShareLink struct {
	URL      string `json:"url"`
	IsPublic bool   `json:"isPublic"`
	QRCode   string `json:"qrCode"`
}

// GetShareLink godoc
// @Summary      Public link of one of my forms
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true   "Form ID"
// @Param        size  query  int     false  "QR code size in pixels" default(256)
// @Success      200  {object}  controllers.ShareLink
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/share [get]
func (ctl *ShareController) GetShareLink(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	form, err := ctl.forms.GetOwned(c.UserContext(), owner, id)
	if err != nil {
		return err
	}
	link := ctl.shareURL(form.ID.Hex())
	img, err := qrcode.DataURL(link, c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return err
	}
	return c.JSON(ShareLink{URL: link, IsPublic: form.Settings.IsPublic, QRCode: img})
}

// GetShareQRCode godoc
// @Summary      QR code image of a form's public link
// @Tags         forms
// @Produce      png
// @Security     BearerAuth
// @Param        id    path   string  true   "Form ID"
// @Param        size  query  int     false  "Size in pixels" default(256)
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/qrcode [get]
func (ctl *ShareController) GetShareQRCode(c *fiber.Ctx) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	form, err := ctl.forms.GetOwned(c.UserContext(), owner, id)
	if err != nil {
		return err
	}
	png, err := qrcode.PNG(ctl.shareURL(form.ID.Hex()), c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="form-`+form.ID.Hex()+`.png"`)
	return c.Send(png)
}
