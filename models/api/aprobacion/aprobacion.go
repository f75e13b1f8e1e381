package aprobacionapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	dbmodels "grc-maturity-backend/models/db"
)

type SolicitudData struct {
	Comentarios string   `json:"comentarios"` // comentarios del solicitante
	Documentos  []string `json:"documentos"`  // URLs de documentos de evidencia
}

type DecisionData struct {
	Observaciones string `json:"observaciones"` // obligatorias al rechazar
}

func (d DecisionData) ValidateRechazo() error {
	if strings.TrimSpace(d.Observaciones) == "" {
		return errors.New("las observaciones son obligatorias al rechazar")
	}
	return nil
}

type AprobacionView struct {
	ID                     string   `json:"id"`
	ProyectoID             string   `json:"proyecto_id"`
	CodigoProyecto         string   `json:"codigo_proyecto,omitempty"`
	Estado                 string   `json:"estado"`
	SolicitadoPorID        string   `json:"solicitado_por_id"`
	SolicitadoPor          string   `json:"solicitado_por,omitempty"`
	ValidadorID            string   `json:"validador_id"`
	Validador              string   `json:"validador,omitempty"`
	ComentariosSolicitud   string   `json:"comentarios_solicitud,omitempty"`
	Documentos             []string `json:"documentos,omitempty"`
	Observaciones          string   `json:"observaciones,omitempty"`
	FechaSolicitud         string   `json:"fecha_solicitud"`
	FechaRevision          string   `json:"fecha_revision,omitempty"`
	ItemsCompletados       int      `json:"items_completados"`
	ItemsTotales           int      `json:"items_totales"`
	PresupuestoEjecutado   float64  `json:"presupuesto_ejecutado"`
	PresupuestoPlanificado float64  `json:"presupuesto_planificado"`
	GapOriginal            float64  `json:"gap_original"`
}

func AprobacionConvert(rec dbmodels.AprobacionGAP) AprobacionView {
	view := AprobacionView{
		ID:                     rec.ID,
		ProyectoID:             rec.ProyectoID,
		Estado:                 string(rec.Estado),
		SolicitadoPorID:        rec.SolicitadoPorID,
		ValidadorID:            rec.ValidadorID,
		ComentariosSolicitud:   rec.ComentariosSolicitud,
		Documentos:             rec.DocumentosAdjuntos,
		Observaciones:          rec.Observaciones,
		FechaSolicitud:         rec.CreatedAt.Format(time.RFC3339),
		ItemsCompletados:       rec.ItemsCompletados,
		ItemsTotales:           rec.ItemsTotales,
		PresupuestoEjecutado:   rec.PresupuestoEjecutado,
		PresupuestoPlanificado: rec.PresupuestoPlanificado,
		GapOriginal:            rec.GapOriginal,
	}
	if rec.Proyecto != nil {
		view.CodigoProyecto = rec.Proyecto.CodigoProyecto
	}
	if rec.SolicitadoPor != nil {
		view.SolicitadoPor = rec.SolicitadoPor.NombreCompleto
	}
	if rec.Validador != nil {
		view.Validador = rec.Validador.NombreCompleto
	}
	if rec.FechaRevision != nil {
		view.FechaRevision = rec.FechaRevision.Format(time.RFC3339)
	}
	return view
}
