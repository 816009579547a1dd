package dict

import (
	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	dictapimodels "conges-backend/models/api/dict"
)

type statusDictApiController struct {
	controllers.BaseAPIController
}

func InitStatusDictApiRouters(app *fiber.App) {
	controller := statusDictApiController{}
	app.Route("statuts", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// list sert l'ensemble fermé des statuts de demande.
func (c *statusDictApiController) list(ctx *fiber.Ctx) error {
	list := make([]dictapimodels.StatusView, 0, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		list = append(list, dictapimodels.StatusView{
			Code:  string(status),
			Label: status.ToHuman(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
