package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("erreur d'analyse de la requête")
		return errors.New("impossible de lire les données de la requête")
	}
	return nil
}

// GetID retourne le paramètre de chemin "id", vide s'il est absent.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) string {
	return ctx.Params("id")
}
