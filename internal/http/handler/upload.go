package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"newsapi/internal/service"
)

// UploadImage stores an image sent as multipart/form-data under the field "file".
// The content type is sniffed from the bytes, not taken from the part header.
//
//	@Summary	Upload image
//	@Tags		uploads
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"image"
//	@Success	200		{object}	model.Upload
//	@Failure	400		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Router		/upload [post]
func UploadImage(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct, err := sniffContentType(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		rec, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return err
		}
		return c.JSON(rec)
	}
}

// sniffContentType detects the media type of f and rewinds it.
func sniffContentType(f multipart.File) (string, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	// Drop parameters such as "; charset=utf-8".
	ct, _, _ := strings.Cut(mt.String(), ";")
	return ct, nil
}

// ListUploads pages through stored upload records.
//
//	@Summary	List uploads
//	@Tags		uploads
//	@Produce	json
//	@Param		limit	query		int	false	"page size (max 100)"	default(10)
//	@Param		offset	query		int	false	"records to skip"		default(0)
//	@Success	200		{object}	service.UploadListResult
//	@Failure	400		{object}	errorPayload
//	@Router		/uploads [get]
func ListUploads(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", service.DefaultPageLimit)
		if err != nil {
			return err
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return err
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// DeleteUpload removes the stored object and its record.
//
//	@Summary	Delete upload
//	@Tags		uploads
//	@Param		id	path	string	true	"upload id"
//	@Success	204
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/uploads/{id} [delete]
func DeleteUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return resourceError(err, "upload not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ServeStatic streams a stored object. The wildcard is the object key.
func ServeStatic(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("*"))
		if err != nil {
			return resourceError(err, "file not found")
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc, int(info.Size))
	}
}
