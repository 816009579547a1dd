package dict

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	leavetypehandler "conges-backend/lib/dicts/leave-type"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	dictapimodels "conges-backend/models/api/dict"
)

type leaveTypeDictApiController struct {
	controllers.BaseAPIController
}

func InitLeaveTypeDictApiRouters(app *fiber.App) {
	controller := leaveTypeDictApiController{}
	app.Route("types-conge", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.RolesRequired(models.RoleAdmin, models.RoleRH))
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

func (c *leaveTypeDictApiController) list(ctx *fiber.Ctx) error {
	list, err := leavetypehandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *leaveTypeDictApiController) get(ctx *fiber.Ctx) error {
	view, err := leavetypehandler.Instance.GetByID(c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("type de congé introuvable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *leaveTypeDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.LeaveTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leavetypehandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *leaveTypeDictApiController) update(ctx *fiber.Ctx) error {
	var payload dictapimodels.LeaveTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := leavetypehandler.Instance.Update(c.GetID(ctx), payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *leaveTypeDictApiController) delete(ctx *fiber.Ctx) error {
	if err := leavetypehandler.Instance.Delete(c.GetID(ctx)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
