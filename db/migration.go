package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "grc-maturity-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Iniciando migraciones")
	if err := DB.AutoMigrate(&dbmodels.Empresa{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Empresa")
	}
	if err := DB.AutoMigrate(&dbmodels.Proveedor{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Proveedor")
	}
	if err := DB.AutoMigrate(&dbmodels.Usuario{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Usuario")
	}
	if err := DB.AutoMigrate(&dbmodels.Encuesta{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Encuesta")
	}
	if err := DB.AutoMigrate(&dbmodels.Dimension{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Dimension")
	}
	if err := DB.AutoMigrate(&dbmodels.Pregunta{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Pregunta")
	}
	if err := DB.AutoMigrate(&dbmodels.EvaluacionEmpresa{}); err != nil {
		return errors.Wrap(err, "error creando la estructura EvaluacionEmpresa")
	}
	if err := DB.AutoMigrate(&dbmodels.ConfigNivelDeseado{}); err != nil {
		return errors.Wrap(err, "error creando la estructura ConfigNivelDeseado")
	}
	if err := DB.AutoMigrate(&dbmodels.Asignacion{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Asignacion")
	}
	if err := DB.AutoMigrate(&dbmodels.Respuesta{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Respuesta")
	}
	if err := DB.AutoMigrate(&dbmodels.Evidencia{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Evidencia")
	}
	if err := DB.AutoMigrate(&dbmodels.CalculoNivel{}); err != nil {
		return errors.Wrap(err, "error creando la estructura CalculoNivel")
	}
	if err := DB.AutoMigrate(&dbmodels.ProyectoCierreBrecha{}); err != nil {
		return errors.Wrap(err, "error creando la estructura ProyectoCierreBrecha")
	}
	if err := DB.AutoMigrate(&dbmodels.ProyectoPregunta{}); err != nil {
		return errors.Wrap(err, "error creando la estructura ProyectoPregunta")
	}
	if err := DB.AutoMigrate(&dbmodels.ItemProyecto{}); err != nil {
		return errors.Wrap(err, "error creando la estructura ItemProyecto")
	}
	if err := DB.AutoMigrate(&dbmodels.AprobacionGAP{}); err != nil {
		return errors.Wrap(err, "error creando la estructura AprobacionGAP")
	}
	if err := DB.AutoMigrate(&dbmodels.Notificacion{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Notificacion")
	}
	// refuerzo en BD de la regla "una solicitud pendiente por proyecto"
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uniq_aprobacion_pendiente ON aprobacion_gaps (proyecto_id) WHERE estado = 'pendiente' AND deleted_at IS NULL;")
	// índice parcial: un ítem borrado libera su número de secuencia
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uniq_item_numero ON item_proyectos (proyecto_id, numero_item) WHERE deleted_at IS NULL;")
	log.Info("Migración completada")
	return nil
}
