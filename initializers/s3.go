package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "conges-backend/s3"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("erreur d'initialisation du client S3")
		return
	}
	s3client.Instance = client

	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("erreur de préparation du bucket S3")
		return
	}
	log.Info("client S3 initialisé")
}
