package dbmodels

import (
	"time"

	"grc-maturity-backend/models"
)

// Asignacion es la unidad de trabajo: una dimensión (o la evaluación completa,
// con DimensionID nulo) asignada a un usuario.
type Asignacion struct {
	BaseEmpresaModel
	EvaluacionEmpresaID string `gorm:"type:varchar(36);index:idx_asignacion_eval"`
	EvaluacionEmpresa   *EvaluacionEmpresa
	EncuestaID          string  `gorm:"type:varchar(36)"`
	DimensionID         *string `gorm:"type:varchar(36);index"`
	Dimension           *Dimension
	UsuarioAsignadoID   string   `gorm:"type:varchar(36);index:idx_asignacion_usuario"`
	UsuarioAsignado     *Usuario `gorm:"foreignKey:UsuarioAsignadoID"`
	AsignadoPorID       *string  `gorm:"type:varchar(36)"`
	AsignadoPor         *Usuario `gorm:"foreignKey:AsignadoPorID"`

	FechaLimite          time.Time `gorm:"index"`
	FechaCompletado      *time.Time
	Estado               models.AsignacionEstado `gorm:"type:varchar(20);default:'pendiente';index:idx_asignacion_eval;index:idx_asignacion_usuario"`
	TotalPreguntas       int                     `gorm:"default:0"`
	PreguntasRespondidas int                     `gorm:"default:0"`
	PorcentajeAvance     float64                 `gorm:"type:numeric(5,2);default:0"`
	Observaciones        string

	RequiereRevision    bool `gorm:"default:false"`
	FechaEnvioRevision  *time.Time
	RevisadoPorID       *string  `gorm:"type:varchar(36)"`
	RevisadoPor         *Usuario `gorm:"foreignKey:RevisadoPorID"`
	FechaRevision       *time.Time
	ComentariosRevision string
}

// EsEvaluacionCompleta indica una asignación sobre toda la encuesta
func (a Asignacion) EsEvaluacionCompleta() bool {
	return a.DimensionID == nil || *a.DimensionID == ""
}
