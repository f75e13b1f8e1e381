package respuestahandler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"grc-maturity-backend/db"
	asignacionhandler "grc-maturity-backend/lib/asignacion"
	asignacionstore "grc-maturity-backend/lib/asignacion/store"
	encuestastore "grc-maturity-backend/lib/encuesta/store"
	filestorage "grc-maturity-backend/lib/file-storage"
	respuestastore "grc-maturity-backend/lib/respuesta/store"
	"grc-maturity-backend/models"
	respuestaapimodels "grc-maturity-backend/models/api/respuesta"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Guardar(empresaID, usuarioID string, esAdmin bool, data respuestaapimodels.RespuestaData) (item respuestaapimodels.RespuestaView, hMsg string, err error)
	ListByAsignacion(empresaID, asignacionID string) (list []respuestaapimodels.RespuestaView, err error)
	AdjuntarEvidencia(ctx context.Context, empresaID, usuarioID, respuestaID, nombreArchivo, codigoDocumento, contentType string, contenido []byte) (id, hMsg string, err error)
	DescargarEvidencia(ctx context.Context, empresaID, evidenciaID string) (contenido []byte, nombreArchivo, contentType string, err error)
	EliminarEvidencia(ctx context.Context, empresaID, evidenciaID string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           respuestastore.NewInstance(db.DB),
		asignacionStore: asignacionstore.NewInstance(db.DB),
		encuestaStore:   encuestastore.NewInstance(db.DB),
	}
}

type impl struct {
	store           respuestastore.Provider
	asignacionStore asignacionstore.Provider
	encuestaStore   encuestastore.Provider
}

// Guardar crea o actualiza la respuesta de una pregunta. El envío y el
// refresco de progreso de la asignación ocurren en una sola transacción.
func (i impl) Guardar(empresaID, usuarioID string, esAdmin bool, data respuestaapimodels.RespuestaData) (item respuestaapimodels.RespuestaView, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("asignacion_id", data.AsignacionID).
		WithField("pregunta_id", data.PreguntaID)
	asignacion, err := i.asignacionStore.GetByID(empresaID, data.AsignacionID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo la asignación")
		return respuestaapimodels.RespuestaView{}, "", err
	}
	if asignacion == nil {
		return respuestaapimodels.RespuestaView{}, "asignación no encontrada", nil
	}
	if !esAdmin && asignacion.UsuarioAsignadoID != usuarioID {
		return respuestaapimodels.RespuestaView{}, "la asignación pertenece a otro usuario", nil
	}
	if asignacion.Estado == models.AsignacionCompletado || asignacion.Estado == models.AsignacionPendienteRevision {
		if !esAdmin {
			return respuestaapimodels.RespuestaView{}, "la asignación ya fue enviada y no admite cambios", nil
		}
	}
	hMsg, err = i.validarPregunta(asignacion, data.PreguntaID)
	if hMsg != "" || err != nil {
		return respuestaapimodels.RespuestaView{}, hMsg, err
	}
	existente, err := i.store.GetByAsignacionPregunta(empresaID, data.AsignacionID, data.PreguntaID)
	if err != nil {
		return respuestaapimodels.RespuestaView{}, "", err
	}
	if data.Enviar {
		if !respuestaapimodels.JustificacionValida(data.Justificacion) {
			return respuestaapimodels.RespuestaView{},
				fmt.Sprintf("la justificación debe tener al menos %v caracteres", models.JustificacionMinLen), nil
		}
		if data.Respuesta == models.RespuestaSiCumple {
			if existente == nil || len(existente.Evidencias) == 0 {
				return respuestaapimodels.RespuestaView{},
					"una respuesta Sí Cumple requiere al menos una evidencia adjunta", nil
			}
		}
	}
	ahora := time.Now()
	rec := dbmodels.Respuesta{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		AsignacionID:           data.AsignacionID,
		PreguntaID:             data.PreguntaID,
		Respuesta:              data.Respuesta,
		Justificacion:          data.Justificacion,
		ComentariosAdicionales: data.ComentariosAdicionales,
		Estado:                 models.RespuestaEstadoBorrador,
		RespondidoPorID:        &usuarioID,
		Version:                1,
	}
	if existente != nil {
		rec.ID = existente.ID
		rec.CreatedAt = existente.CreatedAt
		rec.RespondidoPorID = existente.RespondidoPorID
		rec.Version = existente.Version + 1
		rec.ModificadoPorID = &usuarioID
		rec.ModificadoAt = &ahora
		rec.Estado = existente.Estado
	}
	if data.Enviar {
		rec.Estado = models.RespuestaEstadoEnviado
		if esAdmin && asignacion.UsuarioAsignadoID != usuarioID {
			rec.Estado = models.RespuestaEstadoModificadoAdmin
		}
	}
	var id string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := respuestastore.NewInstance(tx)
		var txErr error
		id, txErr = store.Save(rec)
		if txErr != nil {
			return txErr
		}
		if rec.Estado.CuentaComoRespondida() {
			return asignacionhandler.NewHandlerWithTx(tx).RefrescarProgreso(empresaID, data.AsignacionID)
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Error guardando la respuesta")
		return respuestaapimodels.RespuestaView{}, "", err
	}
	guardada, err := i.store.GetByID(empresaID, id)
	if err != nil || guardada == nil {
		return respuestaapimodels.RespuestaView{}, "", errors.Wrap(err, "error releyendo la respuesta guardada")
	}
	logger.
		WithField("rec_id", id).
		WithField("estado", guardada.Estado).
		Info("Respuesta guardada")
	return respuestaapimodels.RespuestaConvert(*guardada), "", nil
}

func (i impl) ListByAsignacion(empresaID, asignacionID string) (list []respuestaapimodels.RespuestaView, err error) {
	recList, err := i.store.ListByAsignacion(empresaID, asignacionID)
	if err != nil {
		log.
			WithField("empresa_id", empresaID).
			WithField("asignacion_id", asignacionID).
			WithError(err).
			Error("Error obteniendo las respuestas")
		return nil, err
	}
	result := make([]respuestaapimodels.RespuestaView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, respuestaapimodels.RespuestaConvert(rec))
	}
	return result, nil
}

func (i impl) AdjuntarEvidencia(ctx context.Context, empresaID, usuarioID, respuestaID, nombreArchivo, codigoDocumento, contentType string, contenido []byte) (id, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("respuesta_id", respuestaID)
	rec, err := i.store.GetByID(empresaID, respuestaID)
	if err != nil {
		return "", "", err
	}
	if rec == nil {
		return "", "respuesta no encontrada", nil
	}
	total, err := i.store.CountEvidencias(respuestaID)
	if err != nil {
		return "", "", err
	}
	if total >= models.MaxEvidenciasPorRespuesta {
		return "", fmt.Sprintf("una respuesta admite máximo %v evidencias", models.MaxEvidenciasPorRespuesta), nil
	}
	objeto := fmt.Sprintf("evidencias/%s/%s", respuestaID, uuid.NewString())
	err = filestorage.Instance.SubirEvidencia(ctx, empresaID, objeto, contentType, bytes.NewReader(contenido), int64(len(contenido)))
	if err != nil {
		logger.WithError(err).Error("Error subiendo la evidencia al almacenamiento")
		return "", "", err
	}
	id, err = i.store.CreateEvidencia(dbmodels.Evidencia{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		RespuestaID:     respuestaID,
		NombreArchivo:   nombreArchivo,
		CodigoDocumento: codigoDocumento,
		ContentType:     contentType,
		TamanioBytes:    int64(len(contenido)),
		ObjetoS3:        objeto,
		SubidoPorID:     &usuarioID,
	})
	if err != nil {
		logger.WithError(err).Error("Error registrando la evidencia")
		return "", "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Evidencia adjuntada")
	return id, "", nil
}

func (i impl) DescargarEvidencia(ctx context.Context, empresaID, evidenciaID string) (contenido []byte, nombreArchivo, contentType string, err error) {
	rec, err := i.store.GetEvidencia(empresaID, evidenciaID)
	if err != nil {
		return nil, "", "", err
	}
	if rec == nil {
		return nil, "", "", errors.New("evidencia no encontrada")
	}
	contenido, err = filestorage.Instance.DescargarEvidencia(ctx, empresaID, rec.ObjetoS3)
	if err != nil {
		return nil, "", "", err
	}
	return contenido, rec.NombreArchivo, rec.ContentType, nil
}

func (i impl) EliminarEvidencia(ctx context.Context, empresaID, evidenciaID string) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("rec_id", evidenciaID)
	rec, err := i.store.GetEvidencia(empresaID, evidenciaID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "evidencia no encontrada", nil
	}
	err = i.store.DeleteEvidencia(empresaID, evidenciaID)
	if err != nil {
		logger.WithError(err).Error("Error eliminando la evidencia")
		return "", err
	}
	err = filestorage.Instance.EliminarEvidencia(ctx, empresaID, rec.ObjetoS3)
	if err != nil {
		logger.WithError(err).Warn("El objeto de evidencia no se pudo borrar del almacenamiento")
	}
	logger.Info("Evidencia eliminada")
	return "", nil
}

// validarPregunta confirma que la pregunta pertenece al alcance asignado
func (i impl) validarPregunta(asignacion *dbmodels.Asignacion, preguntaID string) (hMsg string, err error) {
	pregunta, err := i.encuestaStore.GetPregunta(preguntaID)
	if err != nil {
		return "", err
	}
	if pregunta == nil {
		return "pregunta no encontrada", nil
	}
	if asignacion.EsEvaluacionCompleta() {
		dimension, err := i.encuestaStore.GetDimension(pregunta.DimensionID)
		if err != nil {
			return "", err
		}
		if dimension == nil || dimension.EncuestaID != asignacion.EncuestaID {
			return "la pregunta no pertenece a la encuesta asignada", nil
		}
		return "", nil
	}
	if asignacion.DimensionID == nil || pregunta.DimensionID != *asignacion.DimensionID {
		return "la pregunta no pertenece a la dimensión asignada", nil
	}
	return "", nil
}
