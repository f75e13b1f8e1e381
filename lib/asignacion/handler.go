package asignacionhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"grc-maturity-backend/db"
	asignacionstore "grc-maturity-backend/lib/asignacion/store"
	encuestastore "grc-maturity-backend/lib/encuesta/store"
	notificacionhandler "grc-maturity-backend/lib/notificacion"
	respuestastore "grc-maturity-backend/lib/respuesta/store"
	usuariostore "grc-maturity-backend/lib/usuario/store"
	"grc-maturity-backend/models"
	asignacionapimodels "grc-maturity-backend/models/api/asignacion"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Crear(empresaID, adminID string, data asignacionapimodels.AsignacionData) (id, hMsg string, err error)
	GetByID(empresaID, id string) (item asignacionapimodels.AsignacionView, err error)
	List(empresaID string, filter asignacionapimodels.AsignacionFilter) (list []asignacionapimodels.AsignacionView, rowCount int64, err error)
	Revisar(empresaID, id, revisorID string, data asignacionapimodels.RevisionData) (hMsg string, err error)
	RefrescarProgreso(empresaID, id string) error
	Delete(empresaID, id string) error
	MarcarVencidas() (marcadas int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:             db.DB,
		store:          asignacionstore.NewInstance(db.DB),
		encuestaStore:  encuestastore.NewInstance(db.DB),
		respuestaStore: respuestastore.NewInstance(db.DB),
		usuarioStore:   usuariostore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx opera sobre la transacción en curso, para componer el
// refresco de progreso con el guardado de respuestas
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:             tx,
		store:          asignacionstore.NewInstance(tx),
		encuestaStore:  encuestastore.NewInstance(tx),
		respuestaStore: respuestastore.NewInstance(tx),
		usuarioStore:   usuariostore.NewInstance(tx),
	}
}

type impl struct {
	db             *gorm.DB
	store          asignacionstore.Provider
	encuestaStore  encuestastore.Provider
	respuestaStore respuestastore.Provider
	usuarioStore   usuariostore.Provider
}

func (i impl) Crear(empresaID, adminID string, data asignacionapimodels.AsignacionData) (id, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("evaluacion_id", data.EvaluacionEmpresaID)
	evaluacion, err := i.encuestaStore.GetEvaluacion(empresaID, data.EvaluacionEmpresaID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo la evaluación")
		return "", "", err
	}
	if evaluacion == nil {
		return "", "evaluación no encontrada", nil
	}
	usuario, err := i.usuarioStore.GetDeEmpresa(empresaID, data.UsuarioAsignadoID)
	if err != nil {
		return "", "", err
	}
	if usuario == nil {
		return "", "el usuario asignado no pertenece a la empresa", nil
	}
	var dimensionID *string
	var totalPreguntas int64
	if data.DimensionID != "" {
		dimension, err := i.encuestaStore.GetDimension(data.DimensionID)
		if err != nil {
			return "", "", err
		}
		if dimension == nil || dimension.EncuestaID != evaluacion.EncuestaID {
			return "", "la dimensión no pertenece a la encuesta de la evaluación", nil
		}
		dimensionID = &data.DimensionID
		totalPreguntas, err = i.encuestaStore.CountPreguntasDimension(data.DimensionID)
		if err != nil {
			return "", "", err
		}
	} else {
		totalPreguntas, err = i.encuestaStore.CountPreguntasEncuesta(evaluacion.EncuestaID)
		if err != nil {
			return "", "", err
		}
	}
	if totalPreguntas == 0 {
		return "", "el alcance asignado no tiene preguntas", nil
	}
	existe, err := i.store.ExisteActiva(empresaID, data.EvaluacionEmpresaID, data.UsuarioAsignadoID, dimensionID)
	if err != nil {
		return "", "", err
	}
	if existe {
		return "", "el usuario ya tiene una asignación activa para este alcance", nil
	}
	fechaLimite, err := data.GetFechaLimite()
	if err != nil {
		return "", err.Error(), nil
	}
	rec := dbmodels.Asignacion{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		EvaluacionEmpresaID: data.EvaluacionEmpresaID,
		EncuestaID:          evaluacion.EncuestaID,
		DimensionID:         dimensionID,
		UsuarioAsignadoID:   data.UsuarioAsignadoID,
		AsignadoPorID:       &adminID,
		FechaLimite:         fechaLimite,
		Estado:              models.AsignacionPendiente,
		TotalPreguntas:      int(totalPreguntas),
		RequiereRevision:    data.RequiereRevision,
		Observaciones:       data.Observaciones,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Error creando la asignación")
		return "", "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Asignación creada")
	notificacionhandler.Instance.Notificar(empresaID, notificacionhandler.Aviso{
		UsuarioID: data.UsuarioAsignadoID,
		Tipo:      models.NotifAsignacionCreada,
		Titulo:    "Nueva asignación de evaluación",
		Mensaje:   fmt.Sprintf("Se le asignó una evaluación con fecha límite %s", fechaLimite.Format("2006-01-02")),
		Url:       fmt.Sprintf("/asignaciones/%s", id),
	})
	return id, "", nil
}

func (i impl) GetByID(empresaID, id string) (asignacionapimodels.AsignacionView, error) {
	rec, err := i.getRec(empresaID, id)
	if err != nil {
		return asignacionapimodels.AsignacionView{}, err
	}
	return asignacionapimodels.AsignacionConvert(*rec), nil
}

func (i impl) List(empresaID string, filter asignacionapimodels.AsignacionFilter) (list []asignacionapimodels.AsignacionView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(empresaID, filter)
	if err != nil {
		log.
			WithField("empresa_id", empresaID).
			WithError(err).
			Error("Error obteniendo el listado de asignaciones")
		return nil, 0, err
	}
	result := make([]asignacionapimodels.AsignacionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, asignacionapimodels.AsignacionConvert(rec))
	}
	return result, rowCount, nil
}

// Revisar resuelve la revisión del administrador sobre una asignación
// enviada. El rechazo regresa las respuestas a borrador y el avance a cero.
func (i impl) Revisar(empresaID, id, revisorID string, data asignacionapimodels.RevisionData) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("rec_id", id).
		WithField("accion", data.Accion)
	rec, err := i.getRec(empresaID, id)
	if err != nil {
		return "", err
	}
	if rec.Estado != models.AsignacionPendienteRevision {
		return "solo se puede revisar una asignación pendiente de revisión", nil
	}
	ahora := time.Now()
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := asignacionstore.NewInstance(tx)
		updMap := map[string]interface{}{
			"revisado_por_id":      revisorID,
			"fecha_revision":       ahora,
			"comentarios_revision": data.Comentarios,
		}
		if data.Accion == models.RevisionAprobar {
			updMap["estado"] = models.AsignacionCompletado
			if rec.FechaCompletado == nil {
				updMap["fecha_completado"] = ahora
			}
		} else {
			updMap["estado"] = models.AsignacionRechazado
			updMap["preguntas_respondidas"] = 0
			updMap["porcentaje_avance"] = 0
			respuestaStore := respuestastore.NewInstance(tx)
			if err := respuestaStore.ResetEnviadas(empresaID, id); err != nil {
				return err
			}
		}
		return store.Update(empresaID, id, updMap)
	})
	if err != nil {
		logger.WithError(err).Error("Error aplicando la revisión")
		return "", err
	}
	logger.Info("Revisión aplicada")
	aviso := notificacionhandler.Aviso{
		UsuarioID: rec.UsuarioAsignadoID,
		Tipo:      models.NotifRevisionAprobada,
		Titulo:    "Evaluación aprobada",
		Mensaje:   "Su evaluación fue revisada y aprobada",
		Url:       fmt.Sprintf("/asignaciones/%s", id),
	}
	if data.Accion == models.RevisionRechazar {
		aviso.Tipo = models.NotifRevisionRechazada
		aviso.Titulo = "Evaluación rechazada"
		aviso.Mensaje = fmt.Sprintf("Su evaluación fue rechazada y debe responderse de nuevo. %s", data.Comentarios)
		aviso.RequiereAccion = true
	}
	notificacionhandler.Instance.Notificar(empresaID, aviso)
	return "", nil
}

// RefrescarProgreso recuenta las respuestas enviadas y aplica la máquina
// de estados. Se invoca dentro de la transacción de guardado de respuestas.
func (i impl) RefrescarProgreso(empresaID, id string) error {
	rec, err := i.getRec(empresaID, id)
	if err != nil {
		return err
	}
	respondidas, err := i.respuestaStore.CountRespondidas(empresaID, id)
	if err != nil {
		return err
	}
	ahora := time.Now()
	nuevoEstado := AplicarProgreso(ResumenProgreso{
		Estado:           rec.Estado,
		TotalPreguntas:   rec.TotalPreguntas,
		Respondidas:      int(respondidas),
		RequiereRevision: rec.RequiereRevision,
		FechaLimite:      rec.FechaLimite,
	}, ahora)
	updMap := map[string]interface{}{
		"preguntas_respondidas": int(respondidas),
		"porcentaje_avance":     CalcularPorcentaje(int(respondidas), rec.TotalPreguntas),
		"estado":                nuevoEstado,
	}
	if nuevoEstado == models.AsignacionCompletado && rec.FechaCompletado == nil {
		updMap["fecha_completado"] = ahora
	}
	if nuevoEstado == models.AsignacionPendienteRevision && rec.FechaEnvioRevision == nil {
		updMap["fecha_envio_revision"] = ahora
	}
	return i.store.Update(empresaID, id, updMap)
}

func (i impl) Delete(empresaID, id string) error {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("rec_id", id)
	err := i.store.Delete(empresaID, id)
	if err != nil {
		logger.WithError(err).Error("Error eliminando la asignación")
		return err
	}
	logger.Info("Asignación eliminada")
	return nil
}

// MarcarVencidas es el barrido del worker sobre asignaciones activas con
// fecha límite superada
func (i impl) MarcarVencidas() (marcadas int, err error) {
	ahora := time.Now()
	list, err := i.store.ListVencidas(ahora)
	if err != nil {
		return 0, err
	}
	for _, rec := range list {
		updErr := i.store.Update(rec.EmpresaID, rec.ID, map[string]interface{}{
			"estado": models.AsignacionVencido,
		})
		if updErr != nil {
			log.
				WithField("rec_id", rec.ID).
				WithError(updErr).
				Error("Error marcando la asignación vencida")
			continue
		}
		marcadas++
		notificacionhandler.Instance.Notificar(rec.EmpresaID, notificacionhandler.Aviso{
			UsuarioID: rec.UsuarioAsignadoID,
			Tipo:      models.NotifAsignacionVencida,
			Titulo:    "Asignación vencida",
			Mensaje:   fmt.Sprintf("Su asignación venció el %s", rec.FechaLimite.Format("2006-01-02")),
			Url:       fmt.Sprintf("/asignaciones/%s", rec.ID),
		})
	}
	return marcadas, nil
}

func (i impl) getRec(empresaID, id string) (*dbmodels.Asignacion, error) {
	rec, err := i.store.GetByID(empresaID, id)
	if err != nil {
		log.
			WithField("empresa_id", empresaID).
			WithField("rec_id", id).
			WithError(err).
			Error("Error obteniendo la asignación")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("asignación no encontrada")
	}
	return rec, nil
}
