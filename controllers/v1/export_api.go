package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	xlsexport "conges-backend/lib/export/xls"
	leaverequesthandler "conges-backend/lib/leave-request"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	leaveapimodels "conges-backend/models/api/leave"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("registre",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH),
			controller.leaveRegister)
	})
}

func (c *exportApiController) leaveRegister(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	// l'export couvre tout le filtre, page par page
	payload.Page = 1
	payload.Limit = 100
	var list []leaveapimodels.LeaveRequestView
	for {
		pageList, rowCount, err := leaverequesthandler.Instance.List(payload)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		list = append(list, pageList...)
		if len(pageList) == 0 || int64(len(list)) >= rowCount {
			break
		}
		payload.Page++
	}
	buf, err := xlsexport.Instance.ExportLeaveRegister(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="registre-conges.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
