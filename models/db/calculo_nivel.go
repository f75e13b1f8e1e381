package dbmodels

import (
	"time"

	"grc-maturity-backend/models"
)

// CalculoNivel es el resultado del cálculo de brecha de una asignación
// completada. Uno por asignación: el recálculo sobrescribe, nunca duplica.
type CalculoNivel struct {
	BaseEmpresaModel
	AsignacionID        string `gorm:"type:varchar(36);uniqueIndex"`
	Asignacion          *Asignacion
	EvaluacionEmpresaID string `gorm:"type:varchar(36);index"`
	DimensionID         string `gorm:"type:varchar(36);index"`
	Dimension           *Dimension
	UsuarioID           string `gorm:"type:varchar(36)"`

	NivelDeseado float64 `gorm:"type:numeric(3,1)"`
	NivelActual  float64 `gorm:"type:numeric(4,2)"`
	Gap          float64 `gorm:"type:numeric(4,2)"`

	TotalPreguntas          int `gorm:"default:0"`
	RespuestasSiCumple      int `gorm:"default:0"`
	RespuestasCumpleParcial int `gorm:"default:0"`
	RespuestasNoCumple      int `gorm:"default:0"`
	RespuestasNoAplica      int `gorm:"default:0"`

	PorcentajeCumplimiento float64                 `gorm:"type:numeric(5,2);default:0"`
	ClasificacionGap       models.ClasificacionGap `gorm:"type:varchar(20)"`
	CalculadoAt            time.Time               `gorm:"autoUpdateTime"`
}
