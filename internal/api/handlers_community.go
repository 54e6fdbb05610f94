package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListPosts(c *fiber.Ctx) error {
	posts, err := handler.communityService.ListPosts()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

func (handler *Handler) GetPost(c *fiber.Ctx) error {
	post, err := handler.communityService.FindPost(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

func (handler *Handler) CreatePost(c *fiber.Ctx) error {
	input := postInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	post, err := handler.communityService.CreatePost(currentProfile(c), input.Title, input.Content, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (handler *Handler) EditPost(c *fiber.Ctx) error {
	input := postInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	post, err := handler.communityService.EditPost(c.Params("id"), currentProfile(c).ID, input.Title, input.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

func (handler *Handler) DeletePost(c *fiber.Ctx) error {
	if err := handler.communityService.DeletePost(c.Params("id"), currentProfile(c).ID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (handler *Handler) TogglePostLike(c *fiber.Ctx) error {
	post, liked, err := handler.communityService.ToggleLike(c.Params("id"), currentProfile(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked, "post": post})
}

func (handler *Handler) AddPostComment(c *fiber.Ctx) error {
	input := commentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	post, err := handler.communityService.AddComment(c.Params("id"), currentProfile(c), input.Content, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}
