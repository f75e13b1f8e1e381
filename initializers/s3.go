package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	filestorage "grc-maturity-backend/lib/file-storage"
	s3client "grc-maturity-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Error inicializando el cliente S3")
		return
	}

	// Verificación de la conexión
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("La conexión a S3 falló, ListBuckets devolvió error")
	}

	filestorage.NewInstance(minioClient)
	log.Info("Cliente S3 inicializado correctamente")
}
