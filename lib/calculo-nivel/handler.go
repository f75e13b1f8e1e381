package calculonivelhandler

import (
	log "github.com/sirupsen/logrus"

	"grc-maturity-backend/db"
	asignacionstore "grc-maturity-backend/lib/asignacion/store"
	calculonivelstore "grc-maturity-backend/lib/calculo-nivel/store"
	encuestastore "grc-maturity-backend/lib/encuesta/store"
	respuestastore "grc-maturity-backend/lib/respuesta/store"
	"grc-maturity-backend/models"
	gapapimodels "grc-maturity-backend/models/api/gap"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	CalcularGapAsignacion(empresaID, asignacionID string) (item gapapimodels.CalculoNivelView, hMsg string, err error)
	RecalcularEvaluacion(empresaID, evaluacionID string) (resultado gapapimodels.RecalculoResultado, err error)
	GetByAsignacion(empresaID, asignacionID string) (item *gapapimodels.CalculoNivelView, err error)
	ListByEvaluacion(empresaID, evaluacionID string) (list []gapapimodels.CalculoNivelView, err error)
	ListByEmpresa(empresaID string) (list []gapapimodels.CalculoNivelView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           calculonivelstore.NewInstance(db.DB),
		asignacionStore: asignacionstore.NewInstance(db.DB),
		respuestaStore:  respuestastore.NewInstance(db.DB),
		encuestaStore:   encuestastore.NewInstance(db.DB),
	}
}

type impl struct {
	store           calculonivelstore.Provider
	asignacionStore asignacionstore.Provider
	respuestaStore  respuestastore.Provider
	encuestaStore   encuestastore.Provider
}

// CalcularGapAsignacion computa y persiste la brecha de una asignación
// completada. El recálculo sobrescribe el resultado anterior.
func (i impl) CalcularGapAsignacion(empresaID, asignacionID string) (item gapapimodels.CalculoNivelView, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("asignacion_id", asignacionID)
	asignacion, err := i.asignacionStore.GetByID(empresaID, asignacionID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo la asignación")
		return gapapimodels.CalculoNivelView{}, "", err
	}
	if asignacion == nil {
		return gapapimodels.CalculoNivelView{}, "asignación no encontrada", nil
	}
	if asignacion.Estado != models.AsignacionCompletado {
		return gapapimodels.CalculoNivelView{},
			"el cálculo de brecha requiere una asignación completada", nil
	}
	respuestas, err := i.respuestaStore.ListByAsignacion(empresaID, asignacionID)
	if err != nil {
		return gapapimodels.CalculoNivelView{}, "", err
	}
	if len(respuestas) == 0 {
		return gapapimodels.CalculoNivelView{}, "la asignación no tiene respuestas registradas", nil
	}
	opciones := make([]models.OpcionRespuesta, 0, len(respuestas))
	for _, respuesta := range respuestas {
		opciones = append(opciones, respuesta.Respuesta)
	}
	resultado := CalcularNiveles(opciones)

	dimensionID := ""
	if asignacion.DimensionID != nil {
		dimensionID = *asignacion.DimensionID
	}
	nivelDeseado := models.NivelDeseadoDefault
	configurado, err := i.encuestaStore.GetNivelDeseado(empresaID, asignacion.EvaluacionEmpresaID, dimensionID)
	if err != nil {
		return gapapimodels.CalculoNivelView{}, "", err
	}
	if configurado != nil {
		nivelDeseado = *configurado
	}
	gap := redondear2(nivelDeseado - resultado.NivelActual)

	rec := dbmodels.CalculoNivel{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		AsignacionID:            asignacionID,
		EvaluacionEmpresaID:     asignacion.EvaluacionEmpresaID,
		DimensionID:             dimensionID,
		UsuarioID:               asignacion.UsuarioAsignadoID,
		NivelDeseado:            nivelDeseado,
		NivelActual:             resultado.NivelActual,
		Gap:                     gap,
		TotalPreguntas:          resultado.TotalPreguntas,
		RespuestasSiCumple:      resultado.SiCumple,
		RespuestasCumpleParcial: resultado.CumpleParcial,
		RespuestasNoCumple:      resultado.NoCumple,
		RespuestasNoAplica:      resultado.NoAplica,
		PorcentajeCumplimiento:  resultado.PorcentajeCumplimiento,
		ClasificacionGap:        models.ClasificarGap(gap),
	}
	id, err := i.store.Upsert(rec)
	if err != nil {
		logger.WithError(err).Error("Error guardando el cálculo de brecha")
		return gapapimodels.CalculoNivelView{}, "", err
	}
	guardado, err := i.store.GetByID(empresaID, id)
	if err != nil || guardado == nil {
		return gapapimodels.CalculoNivelView{}, "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("gap", gap).
		WithField("clasificacion", rec.ClasificacionGap).
		Info("Cálculo de brecha actualizado")
	return gapapimodels.CalculoNivelConvert(*guardado), "", nil
}

// RecalcularEvaluacion recorre las asignaciones completadas de la
// evaluación acumulando éxitos y errores, sin abortar el lote
func (i impl) RecalcularEvaluacion(empresaID, evaluacionID string) (resultado gapapimodels.RecalculoResultado, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("evaluacion_id", evaluacionID)
	list, err := i.asignacionStore.ListByEvaluacion(empresaID, evaluacionID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo las asignaciones de la evaluación")
		return gapapimodels.RecalculoResultado{}, err
	}
	for _, asignacion := range list {
		if asignacion.Estado != models.AsignacionCompletado {
			continue
		}
		resultado.Total++
		_, hMsg, calcErr := i.CalcularGapAsignacion(empresaID, asignacion.ID)
		if calcErr != nil || hMsg != "" {
			resultado.Errores++
			logger.
				WithField("asignacion_id", asignacion.ID).
				WithField("detalle", hMsg).
				WithError(calcErr).
				Warn("Asignación omitida en el recálculo")
			continue
		}
		resultado.Exitosos++
	}
	logger.
		WithField("total", resultado.Total).
		WithField("exitosos", resultado.Exitosos).
		WithField("errores", resultado.Errores).
		Info("Recálculo de evaluación terminado")
	return resultado, nil
}

func (i impl) GetByAsignacion(empresaID, asignacionID string) (*gapapimodels.CalculoNivelView, error) {
	rec, err := i.store.GetByAsignacion(empresaID, asignacionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := gapapimodels.CalculoNivelConvert(*rec)
	return &view, nil
}

func (i impl) ListByEvaluacion(empresaID, evaluacionID string) (list []gapapimodels.CalculoNivelView, err error) {
	recList, err := i.store.ListByEvaluacion(empresaID, evaluacionID)
	if err != nil {
		return nil, err
	}
	result := make([]gapapimodels.CalculoNivelView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, gapapimodels.CalculoNivelConvert(rec))
	}
	return result, nil
}

func (i impl) ListByEmpresa(empresaID string) (list []gapapimodels.CalculoNivelView, err error) {
	recList, err := i.store.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	result := make([]gapapimodels.CalculoNivelView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, gapapimodels.CalculoNivelConvert(rec))
	}
	return result, nil
}
