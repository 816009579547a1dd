package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	employeehandler "conges-backend/lib/employee"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	employeeapimodels "conges-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employes", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH, models.RoleSuperieur),
			controller.list)
		router.Get("subordonnes", controller.subordinates)
		router.Get(":id",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH, models.RoleSuperieur),
			controller.get)
		router.Post("",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH),
			controller.create)
		router.Put(":id",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH),
			controller.update)
		router.Delete(":id",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH),
			controller.delete)
	})
}

func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := employeehandler.Instance.List(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// subordinates liste l'équipe directe de l'appelant.
func (c *employeeApiController) subordinates(ctx *fiber.Ctx) error {
	matricule := middleware.GetUserMatricule(ctx)
	if matricule == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("aucun matricule lié au compte"))
	}
	list, err := employeehandler.Instance.ListSubordinates(matricule)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	view, err := employeehandler.Instance.GetByMatricule(c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("employé introuvable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.CreateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := employeehandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	var payload employeeapimodels.UpdateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := employeehandler.Instance.Update(middleware.GetUserID(ctx), c.GetID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	err := employeehandler.Instance.Delete(middleware.GetUserID(ctx), c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
