package handler

import (
	"github.com/gofiber/fiber/v2"

	"newsapi/internal/model"
	"newsapi/internal/service"
)

const newsNotFound = "News not found"

// ListNews returns published articles by default, newest first.
//
//	@Summary	List news
//	@Tags		news
//	@Produce	json
//	@Param		status		query		string	false	"status filter, 'all' disables it"	default(published)
//	@Param		category	query		string	false	"category filter"
//	@Param		limit		query		int		false	"page size (max 100)"	default(10)
//	@Param		skip		query		int		false	"documents to skip"	default(0)
//	@Success	200			{array}		model.Article
//	@Failure	400			{object}	errorPayload
//	@Router		/news [get]
func ListNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", service.DefaultPageLimit)
		if err != nil {
			return err
		}
		skip, err := queryInt(c, "skip", 0)
		if err != nil {
			return err
		}

		items, err := svc.List(c.UserContext(), model.NewsQuery{
			Status:   c.Query("status"),
			Category: c.Query("category"),
			Limit:    limit,
			Skip:     skip,
		})
		if err != nil {
			return err
		}
		if items == nil {
			items = []model.Article{}
		}
		return c.JSON(items)
	}
}

// GetNewsBySlug returns a published article. Drafts are reported as not found.
//
//	@Summary	Get published news by slug
//	@Tags		news
//	@Produce	json
//	@Param		slug	path		string	true	"article slug"
//	@Success	200		{object}	model.Article
//	@Failure	404		{object}	errorPayload
//	@Router		/news/{slug} [get]
func GetNewsBySlug(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return resourceError(err, newsNotFound)
		}
		return c.JSON(a)
	}
}

// GetNewsByID returns an article regardless of status.
//
//	@Summary	Get news by id
//	@Tags		news
//	@Produce	json
//	@Param		id	path		string	true	"article id"
//	@Success	200	{object}	model.Article
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/news/id/{id} [get]
func GetNewsByID(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return resourceError(err, newsNotFound)
		}
		return c.JSON(a)
	}
}

// CreateNews stores a new article.
//
//	@Summary	Create news
//	@Tags		news
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.ArticleInput	true	"article"
//	@Success	200		{object}	model.Article
//	@Failure	422		{object}	errorPayload
//	@Router		/news [post]
func CreateNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ArticleInput
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(a)
	}
}

// UpdateNews applies a partial update.
//
//	@Summary	Update news
//	@Tags		news
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"article id"
//	@Param		body	body		model.ArticlePatch	true	"fields to change"
//	@Success	200		{object}	model.Article
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Router		/news/{id} [put]
func UpdateNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.ArticlePatch
		if err := bindJSON(c, &patch); err != nil {
			return err
		}
		a, err := svc.Update(c.UserContext(), c.Params("id"), patch)
		if err != nil {
			return resourceError(err, newsNotFound)
		}
		return c.JSON(a)
	}
}

// DeleteNews removes an article. A second delete of the same id is 404.
//
//	@Summary	Delete news
//	@Tags		news
//	@Produce	json
//	@Param		id	path		string	true	"article id"
//	@Success	200	{object}	messageResponse
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/news/{id} [delete]
func DeleteNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return resourceError(err, newsNotFound)
		}
		return c.JSON(messageResponse{Message: "News deleted successfully"})
	}
}
