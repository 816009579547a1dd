package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	notificationhandler "conges-backend/lib/notification"
	"conges-backend/middleware"
	apimodels "conges-backend/models/api"
	notificationapimodels "conges-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Post(":id/read", controller.markAsRead)
		router.Post("read-all", controller.markAllAsRead)
	})
}

func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := notificationhandler.Instance.List(middleware.GetUserID(ctx), page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	count, err := notificationhandler.Instance.UnreadCount(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.UnreadCount{Count: count}))
}

func (c *notificationApiController) markAsRead(ctx *fiber.Ctx) error {
	err := notificationhandler.Instance.MarkAsRead(middleware.GetUserID(ctx), c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *notificationApiController) markAllAsRead(ctx *fiber.Ctx) error {
	err := notificationhandler.Instance.MarkAllAsRead(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
