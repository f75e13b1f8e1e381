package dbmodels

import (
	"time"

	"grc-maturity-backend/models"
)

// Respuesta es la contestación a una pregunta dentro de una asignación.
// Existe exactamente una por par (asignación, pregunta).
type Respuesta struct {
	BaseEmpresaModel
	AsignacionID string `gorm:"type:varchar(36);uniqueIndex:uniq_respuesta_asignacion_pregunta;index:idx_respuesta_estado"`
	Asignacion   *Asignacion
	PreguntaID   string `gorm:"type:varchar(36);uniqueIndex:uniq_respuesta_asignacion_pregunta"`
	Pregunta     *Pregunta

	Respuesta              models.OpcionRespuesta `gorm:"type:varchar(20)"`
	Justificacion          string
	ComentariosAdicionales string
	Estado                 models.RespuestaEstado `gorm:"type:varchar(20);default:'borrador';index:idx_respuesta_estado"`

	RespondidoPorID *string  `gorm:"type:varchar(36)"`
	RespondidoPor   *Usuario `gorm:"foreignKey:RespondidoPorID"`
	ModificadoPorID *string  `gorm:"type:varchar(36)"`
	ModificadoPor   *Usuario `gorm:"foreignKey:ModificadoPorID"`
	ModificadoAt    *time.Time
	Version         int `gorm:"default:1"`

	Evidencias []Evidencia
}

// Evidencia es un archivo adjunto que respalda una respuesta (máximo 3)
type Evidencia struct {
	BaseEmpresaModel
	RespuestaID     string  `gorm:"type:varchar(36);index"`
	NombreArchivo   string  `gorm:"type:varchar(300)"`
	CodigoDocumento string  `gorm:"type:varchar(100);index"`
	ContentType     string  `gorm:"type:varchar(100)"`
	TamanioBytes    int64
	ObjetoS3        string  `gorm:"type:varchar(500)"`
	SubidoPorID     *string `gorm:"type:varchar(36)"`
}
