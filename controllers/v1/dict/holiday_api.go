package dict

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	holidayhandler "conges-backend/lib/dicts/holiday"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	dictapimodels "conges-backend/models/api/dict"
)

type holidayDictApiController struct {
	controllers.BaseAPIController
}

func InitHolidayDictApiRouters(app *fiber.App) {
	controller := holidayDictApiController{}
	app.Route("jours-feries", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Use(middleware.RolesRequired(models.RoleAdmin, models.RoleRH))
		router.Post("", controller.create)
		router.Delete(":id", controller.delete)
	})
}

func (c *holidayDictApiController) list(ctx *fiber.Ctx) error {
	list, err := holidayhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *holidayDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.HolidayData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := holidayhandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *holidayDictApiController) delete(ctx *fiber.Ctx) error {
	if err := holidayhandler.Instance.Delete(c.GetID(ctx)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
