package asignacionapimodels

import (
	"time"

	"github.com/pkg/errors"

	"grc-maturity-backend/models"
	apimodels "grc-maturity-backend/models/api"
	dbmodels "grc-maturity-backend/models/db"
)

type AsignacionData struct {
	EvaluacionEmpresaID string `json:"evaluacion_empresa_id"` // evaluación a la que pertenece
	DimensionID         string `json:"dimension_id"`          // dimensión asignada (vacío = evaluación completa)
	UsuarioAsignadoID   string `json:"usuario_asignado_id"`   // usuario que responderá
	FechaLimite         string `json:"fecha_limite"`          // fecha límite (YYYY-MM-DD)
	RequiereRevision    bool   `json:"requiere_revision"`     // el administrador revisa antes de completar
	Observaciones       string `json:"observaciones"`         // observaciones de la asignación
}

func (a AsignacionData) Validate() error {
	if a.EvaluacionEmpresaID == "" {
		return errors.New("falta la referencia a la evaluación")
	}
	if a.UsuarioAsignadoID == "" {
		return errors.New("falta el usuario asignado")
	}
	if _, err := a.GetFechaLimite(); err != nil {
		return err
	}
	return nil
}

func (a AsignacionData) GetFechaLimite() (time.Time, error) {
	fecha, err := time.Parse("2006-01-02", a.FechaLimite)
	if err != nil {
		return time.Time{}, errors.New("fecha límite inválida, formato esperado YYYY-MM-DD")
	}
	return fecha, nil
}

type RevisionData struct {
	Accion      models.AccionRevision `json:"accion"`      // aprobar | rechazar
	Comentarios string                `json:"comentarios"` // observaciones del revisor
}

func (r RevisionData) Validate() error {
	return r.Accion.Validate()
}

type AsignacionView struct {
	ID                   string  `json:"id"`
	EvaluacionEmpresaID  string  `json:"evaluacion_empresa_id"`
	DimensionID          string  `json:"dimension_id,omitempty"`
	DimensionNombre      string  `json:"dimension_nombre,omitempty"`
	UsuarioAsignadoID    string  `json:"usuario_asignado_id"`
	UsuarioAsignado      string  `json:"usuario_asignado,omitempty"`
	Estado               string  `json:"estado"`
	EstadoNombre         string  `json:"estado_nombre"`
	TotalPreguntas       int     `json:"total_preguntas"`
	PreguntasRespondidas int     `json:"preguntas_respondidas"`
	PorcentajeAvance     float64 `json:"porcentaje_avance"`
	FechaLimite          string  `json:"fecha_limite"`
	FechaCompletado      string  `json:"fecha_completado,omitempty"`
	RequiereRevision     bool    `json:"requiere_revision"`
	EsEvaluacionCompleta bool    `json:"es_evaluacion_completa"`
}

func AsignacionConvert(rec dbmodels.Asignacion) AsignacionView {
	view := AsignacionView{
		ID:                   rec.ID,
		EvaluacionEmpresaID:  rec.EvaluacionEmpresaID,
		UsuarioAsignadoID:    rec.UsuarioAsignadoID,
		Estado:               string(rec.Estado),
		EstadoNombre:         rec.Estado.ToHuman(),
		TotalPreguntas:       rec.TotalPreguntas,
		PreguntasRespondidas: rec.PreguntasRespondidas,
		PorcentajeAvance:     rec.PorcentajeAvance,
		FechaLimite:          rec.FechaLimite.Format("2006-01-02"),
		RequiereRevision:     rec.RequiereRevision,
		EsEvaluacionCompleta: rec.EsEvaluacionCompleta(),
	}
	if rec.DimensionID != nil {
		view.DimensionID = *rec.DimensionID
	}
	if rec.Dimension != nil {
		view.DimensionNombre = rec.Dimension.Nombre
	}
	if rec.UsuarioAsignado != nil {
		view.UsuarioAsignado = rec.UsuarioAsignado.NombreCompleto
	}
	if rec.FechaCompletado != nil {
		view.FechaCompletado = rec.FechaCompletado.Format(time.RFC3339)
	}
	return view
}

type AsignacionFilter struct {
	apimodels.Pagination
	EvaluacionEmpresaID string `json:"evaluacion_empresa_id"` // filtrar por evaluación
	Estado              string `json:"estado"`                // filtrar por estado
	UsuarioID           string `json:"usuario_id"`            // filtrar por usuario asignado
	DimensionID         string `json:"dimension_id"`          // filtrar por dimensión
}
