package gapapimodels

import (
	"time"

	dbmodels "grc-maturity-backend/models/db"
)

type CalculoNivelView struct {
	ID                      string  `json:"id"`
	AsignacionID            string  `json:"asignacion_id"`
	DimensionID             string  `json:"dimension_id"`
	DimensionNombre         string  `json:"dimension_nombre,omitempty"`
	NivelDeseado            float64 `json:"nivel_deseado"`
	NivelActual             float64 `json:"nivel_actual"`
	Gap                     float64 `json:"gap"`
	ClasificacionGap        string  `json:"clasificacion_gap"`
	ClasificacionGapNombre  string  `json:"clasificacion_gap_nombre"`
	TotalPreguntas          int     `json:"total_preguntas"`
	RespuestasSiCumple      int     `json:"respuestas_si_cumple"`
	RespuestasCumpleParcial int     `json:"respuestas_cumple_parcial"`
	RespuestasNoCumple      int     `json:"respuestas_no_cumple"`
	RespuestasNoAplica      int     `json:"respuestas_no_aplica"`
	PorcentajeCumplimiento  float64 `json:"porcentaje_cumplimiento"`
	CalculadoAt             string  `json:"calculado_at"`
}

func CalculoNivelConvert(rec dbmodels.CalculoNivel) CalculoNivelView {
	view := CalculoNivelView{
		ID:                      rec.ID,
		AsignacionID:            rec.AsignacionID,
		DimensionID:             rec.DimensionID,
		NivelDeseado:            rec.NivelDeseado,
		NivelActual:             rec.NivelActual,
		Gap:                     rec.Gap,
		ClasificacionGap:        string(rec.ClasificacionGap),
		ClasificacionGapNombre:  rec.ClasificacionGap.ToHuman(),
		TotalPreguntas:          rec.TotalPreguntas,
		RespuestasSiCumple:      rec.RespuestasSiCumple,
		RespuestasCumpleParcial: rec.RespuestasCumpleParcial,
		RespuestasNoCumple:      rec.RespuestasNoCumple,
		RespuestasNoAplica:      rec.RespuestasNoAplica,
		PorcentajeCumplimiento:  rec.PorcentajeCumplimiento,
		CalculadoAt:             rec.CalculadoAt.Format(time.RFC3339),
	}
	if rec.Dimension != nil {
		view.DimensionNombre = rec.Dimension.Nombre
	}
	return view
}

// RecalculoResultado resume un recálculo masivo por evaluación
type RecalculoResultado struct {
	Total    int `json:"total"`
	Exitosos int `json:"exitosos"`
	Errores  int `json:"errores"`
}
