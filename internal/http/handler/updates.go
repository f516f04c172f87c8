package handler

import (
	"github.com/gofiber/fiber/v2"

	"newsapi/internal/model"
	"newsapi/internal/service"
)

func updateNotFound(id string) string { return "Update " + id + " not found" }

// ListUpdates returns update notices, newest first.
//
//	@Summary	List updates
//	@Tags		updates
//	@Produce	json
//	@Param		category	query		string	false	"category filter"
//	@Param		limit		query		int		false	"page size (max 100)"	default(10)
//	@Param		skip		query		int		false	"documents to skip"	default(0)
//	@Success	200			{array}		model.Update
//	@Router		/updates [get]
func ListUpdates(svc service.UpdatesService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", service.DefaultPageLimit)
		if err != nil {
			return err
		}
		skip, err := queryInt(c, "skip", 0)
		if err != nil {
			return err
		}

		items, err := svc.List(c.UserContext(), model.UpdateQuery{
			Category: c.Query("category"),
			Limit:    limit,
			Skip:     skip,
		})
		if err != nil {
			return err
		}
		if items == nil {
			items = []model.Update{}
		}
		return c.JSON(items)
	}
}

// GetUpdate returns one notice by id.
//
//	@Summary	Get update by id
//	@Tags		updates
//	@Produce	json
//	@Param		id	path		string	true	"update id"
//	@Success	200	{object}	model.Update
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/updates/{id} [get]
func GetUpdate(svc service.UpdatesService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		u, err := svc.GetByID(c.UserContext(), id)
		if err != nil {
			return resourceError(err, updateNotFound(id))
		}
		return c.JSON(u)
	}
}

// CreateUpdate stores a notice. Category defaults to "General".
//
//	@Summary	Create update
//	@Tags		updates
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.UpdateInput	true	"update notice"
//	@Success	200		{object}	model.Update
//	@Failure	422		{object}	errorPayload
//	@Router		/updates [post]
func CreateUpdate(svc service.UpdatesService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UpdateInput
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		u, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

// EditUpdate applies a partial update to a notice.
//
//	@Summary	Update an update notice
//	@Tags		updates
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"update id"
//	@Param		body	body		model.UpdatePatch	true	"fields to change"
//	@Success	200		{object}	model.Update
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Router		/updates/{id} [put]
func EditUpdate(svc service.UpdatesService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.UpdatePatch
		if err := bindJSON(c, &patch); err != nil {
			return err
		}
		id := c.Params("id")
		u, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return resourceError(err, updateNotFound(id))
		}
		return c.JSON(u)
	}
}

// DeleteUpdate removes a notice.
//
//	@Summary	Delete update
//	@Tags		updates
//	@Produce	json
//	@Param		id	path		string	true	"update id"
//	@Success	200	{object}	messageResponse
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/updates/{id} [delete]
func DeleteUpdate(svc service.UpdatesService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return resourceError(err, updateNotFound(id))
		}
		return c.JSON(messageResponse{Message: "Update deleted"})
	}
}
