package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"conges-backend/controllers"
	pdfexport "conges-backend/lib/export/pdf"
	filestoragehandler "conges-backend/lib/file-storage"
	leaverequesthandler "conges-backend/lib/leave-request"
	"conges-backend/middleware"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
	leaveapimodels "conges-backend/models/api/leave"
)

type leaveRequestApiController struct {
	controllers.BaseAPIController
}

func InitLeaveRequestApiRouters(app *fiber.App) {
	controller := leaveRequestApiController{}
	app.Route("conges", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("",
			middleware.RolesRequired(models.AllRoles...),
			controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Post(":id/approve",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH, models.RoleSuperieur),
			controller.approve)
		router.Post(":id/reject",
			middleware.RolesRequired(models.RoleAdmin, models.RoleRH, models.RoleSuperieur),
			controller.reject)
		router.Post(":id/cancel", controller.cancel)
		router.Get(":id/attestation", controller.attestation)
		router.Post(":id/documents", controller.uploadDocument)
		router.Get(":id/documents", controller.listDocuments)
		router.Get("documents/:id", controller.downloadDocument)
	})
}

func (c *leaveRequestApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	matricule := middleware.GetUserMatricule(ctx)
	if matricule == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("aucun matricule lié au compte"))
	}
	view, err := leaverequesthandler.Instance.Create(middleware.GetUserID(ctx), matricule, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// list restreint un employé simple à ses propres demandes.
func (c *leaveRequestApiController) list(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if middleware.GetUserRole(ctx) == models.RoleEmploye {
		payload.Matricule = middleware.GetUserMatricule(ctx)
	}
	list, rowCount, err := leaverequesthandler.Instance.List(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// getScopedRequest charge la demande visée par :id et applique le périmètre
// employé: un employé simple n'accède qu'à ses propres demandes, la demande
// d'autrui est introuvable. Un retour nil signifie que la réponse est déjà écrite.
func (c *leaveRequestApiController) getScopedRequest(ctx *fiber.Ctx) (*leaveapimodels.LeaveRequestView, error) {
	view, err := leaverequesthandler.Instance.GetByID(c.GetID(ctx))
	if err != nil {
		return nil, ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if view == nil ||
		(middleware.GetUserRole(ctx) == models.RoleEmploye && view.Matricule != middleware.GetUserMatricule(ctx)) {
		return nil, ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("demande de congé introuvable"))
	}
	return view, nil
}

func (c *leaveRequestApiController) get(ctx *fiber.Ctx) error {
	view, err := c.getScopedRequest(ctx)
	if view == nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *leaveRequestApiController) approve(ctx *fiber.Ctx) error {
	err := leaverequesthandler.Instance.Approve(
		middleware.GetUserID(ctx),
		middleware.GetUserMatricule(ctx),
		middleware.GetUserRole(ctx),
		c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *leaveRequestApiController) reject(ctx *fiber.Ctx) error {
	err := leaverequesthandler.Instance.Reject(
		middleware.GetUserID(ctx),
		middleware.GetUserMatricule(ctx),
		middleware.GetUserRole(ctx),
		c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *leaveRequestApiController) cancel(ctx *fiber.Ctx) error {
	err := leaverequesthandler.Instance.Cancel(
		middleware.GetUserID(ctx),
		middleware.GetUserMatricule(ctx),
		c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// attestation n'est délivrée que pour une demande approuvée.
func (c *leaveRequestApiController) attestation(ctx *fiber.Ctx) error {
	view, err := c.getScopedRequest(ctx)
	if view == nil {
		return err
	}
	if view.Statut != string(models.StatusApprouvee) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("seule une demande approuvée donne lieu à une attestation"))
	}
	body, err := pdfexport.GenerateAttestation(*view)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attestation-%s.pdf"`, view.ID))
	return ctx.Status(fiber.StatusOK).Send(body)
}

func (c *leaveRequestApiController) uploadDocument(ctx *fiber.Ctx) error {
	view, err := c.getScopedRequest(ctx)
	if view == nil {
		return err
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("fichier manquant"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("impossible de lire le fichier"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("impossible de lire le fichier"))
	}
	id, err := filestoragehandler.Instance.Upload(ctx.Context(),
		middleware.GetUserMatricule(ctx), view.ID,
		fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), body)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *leaveRequestApiController) listDocuments(ctx *fiber.Ctx) error {
	view, err := c.getScopedRequest(ctx)
	if view == nil {
		return err
	}
	list, err := filestoragehandler.Instance.ListByLeaveRequest(view.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// downloadDocument applique au justificatif le périmètre de la demande
// à laquelle il est rattaché.
func (c *leaveRequestApiController) downloadDocument(ctx *fiber.Ctx) error {
	rec, body, err := filestoragehandler.Instance.Download(ctx.Context(), c.GetID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("justificatif introuvable"))
	}
	if middleware.GetUserRole(ctx) == models.RoleEmploye {
		proprietaire := rec.Matricule
		if rec.LeaveRequestID != nil {
			req, err := leaverequesthandler.Instance.GetByID(*rec.LeaveRequestID)
			if err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
			}
			if req != nil {
				proprietaire = req.Matricule
			}
		}
		if proprietaire != middleware.GetUserMatricule(ctx) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("justificatif introuvable"))
		}
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rec.FileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
