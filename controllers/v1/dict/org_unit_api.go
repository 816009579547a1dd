package dict

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	orgunithandler "conges-backend/lib/dicts/org-unit"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	dictapimodels "conges-backend/models/api/dict"
)

type orgUnitDictApiController struct {
	controllers.BaseAPIController
}

func InitOrgUnitDictApiRouters(app *fiber.App) {
	controller := orgUnitDictApiController{}
	app.Route("unites", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.RolesRequired(models.RoleAdmin, models.RoleRH))
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

func (c *orgUnitDictApiController) list(ctx *fiber.Ctx) error {
	list, err := orgunithandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *orgUnitDictApiController) get(ctx *fiber.Ctx) error {
	view, err := orgunithandler.Instance.GetByID(c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("unité introuvable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *orgUnitDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.OrgUnitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := orgunithandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *orgUnitDictApiController) update(ctx *fiber.Ctx) error {
	var payload dictapimodels.OrgUnitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := orgunithandler.Instance.Update(c.GetID(ctx), payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *orgUnitDictApiController) delete(ctx *fiber.Ctx) error {
	if err := orgunithandler.Instance.Delete(c.GetID(ctx)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
