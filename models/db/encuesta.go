package dbmodels

import "time"

// Encuesta es la plantilla de evaluación de madurez
type Encuesta struct {
	BaseModel
	Nombre      string `gorm:"type:varchar(300)"`
	Descripcion string
	Version     string `gorm:"type:varchar(20);default:'1.0'"`
	EsPlantilla bool   `gorm:"default:true"`
	Dimensiones []Dimension
}

// Dimension es una categoría puntuada dentro de una encuesta
type Dimension struct {
	BaseModel
	EncuestaID  string `gorm:"type:varchar(36);index"`
	Codigo      string `gorm:"type:varchar(20)"`
	Nombre      string `gorm:"type:varchar(200)"`
	Descripcion string
	Orden       int
	Preguntas   []Pregunta
}

type Pregunta struct {
	BaseModel
	DimensionID string `gorm:"type:varchar(36);index"`
	Dimension   *Dimension
	Codigo      string `gorm:"type:varchar(50)"`
	Titulo      string `gorm:"type:varchar(500)"`
	Texto       string
	Peso        float64 `gorm:"type:numeric(5,2);default:1"`
	Obligatoria bool    `gorm:"default:true"`
	Orden       int
}

// EvaluacionEmpresa es una instancia de evaluación de una encuesta sobre una empresa
type EvaluacionEmpresa struct {
	BaseEmpresaModel
	EncuestaID       string     `gorm:"type:varchar(36);index"`
	Encuesta         *Encuesta
	Nombre           string     `gorm:"type:varchar(300)"`
	AdministradorID  *string    `gorm:"type:varchar(36)"`
	Administrador    *Usuario   `gorm:"foreignKey:AdministradorID"`
	FechaInicio      *time.Time
	FechaCierre      *time.Time
	PorcentajeAvance float64    `gorm:"type:numeric(5,2);default:0"`
}

// ConfigNivelDeseado fija el nivel objetivo por dimensión. Con EvaluacionEmpresaID
// nulo actúa como configuración legada por empresa.
type ConfigNivelDeseado struct {
	BaseEmpresaModel
	EvaluacionEmpresaID *string `gorm:"type:varchar(36);index"`
	DimensionID         string  `gorm:"type:varchar(36);index"`
	NivelDeseado        float64 `gorm:"type:numeric(3,1)"`
	ConfiguradoPorID    *string `gorm:"type:varchar(36)"`
	MotivoCambio        string
}
