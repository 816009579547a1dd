package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	audithandler "conges-backend/lib/audit"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	auditapimodels "conges-backend/models/api/audit"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("audit", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list",
			middleware.RolesRequired(models.RoleAdmin),
			controller.list)
	})
}

func (c *auditApiController) list(ctx *fiber.Ctx) error {
	var payload auditapimodels.AuditFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := audithandler.Instance.List(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
