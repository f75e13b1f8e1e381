package dbmodels

import (
	"time"

	"github.com/lib/pq"

	"grc-maturity-backend/models"
)

// ProyectoCierreBrecha es el proyecto de remediación derivado de un GAP.
// El FK al cálculo está protegido: no se borra la brecha mientras exista el proyecto.
type ProyectoCierreBrecha struct {
	BaseEmpresaModel
	CodigoProyecto string `gorm:"type:varchar(50);uniqueIndex"`
	NombreProyecto string `gorm:"type:varchar(200)"`
	Descripcion    string

	CalculoNivelID string `gorm:"type:varchar(36);index"`
	CalculoNivel   *CalculoNivel

	Estado    models.ProyectoEstado    `gorm:"type:varchar(20);default:'planificado';index"`
	Prioridad models.Prioridad         `gorm:"type:varchar(20);index"`
	Categoria models.CategoriaProyecto `gorm:"type:varchar(20)"`

	FechaInicio      time.Time
	FechaFinEstimada time.Time
	FechaFinReal     *time.Time

	DuenoProyectoID             string   `gorm:"type:varchar(36)"`
	DuenoProyecto               *Usuario `gorm:"foreignKey:DuenoProyectoID"`
	ResponsableImplementacionID string   `gorm:"type:varchar(36)"`
	ResponsableImplementacion   *Usuario `gorm:"foreignKey:ResponsableImplementacionID"`
	ValidadorInternoID          *string  `gorm:"type:varchar(36)"`
	ValidadorInterno            *Usuario `gorm:"foreignKey:ValidadorInternoID"`

	ModoPresupuesto          models.ModoPresupuesto `gorm:"type:varchar(20);default:'global'"`
	Moneda                   models.Moneda          `gorm:"type:varchar(3);default:'USD'"`
	PresupuestoGlobal        float64                `gorm:"type:numeric(12,2);default:0"`
	PresupuestoGlobalGastado float64                `gorm:"type:numeric(12,2);default:0"`

	AlcanceProyecto      string
	ObjetivosEspecificos string
	CriteriosAceptacion  string
	RiesgosProyecto      string

	ResultadoFinal      string `gorm:"type:varchar(30)"`
	LeccionesAprendidas string

	CreadoPorID *string `gorm:"type:varchar(36)"`
	Version     int     `gorm:"default:1"`

	Items              []ItemProyecto
	PreguntasAbordadas []ProyectoPregunta
}

// ProyectoPregunta vincula el proyecto con las preguntas no conformes que aborda
type ProyectoPregunta struct {
	BaseModel
	ProyectoID string `gorm:"type:varchar(36);uniqueIndex:uniq_proyecto_pregunta"`
	PreguntaID string `gorm:"type:varchar(36);uniqueIndex:uniq_proyecto_pregunta"`
	Pregunta   *Pregunta
}

// ItemProyecto es una tarea presupuestada dentro de un proyecto por ítems
type ItemProyecto struct {
	BaseEmpresaModel
	ProyectoID  string `gorm:"type:varchar(36);index:idx_item_estado"`
	Proyecto    *ProyectoCierreBrecha
	NumeroItem  int
	NombreItem  string `gorm:"type:varchar(200)"`
	Descripcion string

	RequiereProveedor          bool       `gorm:"default:false"`
	ProveedorID                *string    `gorm:"type:varchar(36)"`
	Proveedor                  *Proveedor `gorm:"foreignKey:ProveedorID"`
	NombreResponsableProveedor string     `gorm:"type:varchar(150)"`

	ResponsableEjecucionID string   `gorm:"type:varchar(36);index"`
	ResponsableEjecucion   *Usuario `gorm:"foreignKey:ResponsableEjecucionID"`

	PresupuestoPlanificado float64 `gorm:"type:numeric(12,2);default:0"`
	PresupuestoEjecutado   float64 `gorm:"type:numeric(12,2);default:0"`

	FechaInicio     time.Time
	DuracionDias    int
	FechaFin        time.Time
	FechaCompletado *time.Time

	TieneDependencia bool          `gorm:"default:false"`
	DependenciaID    *string       `gorm:"type:varchar(36)"`
	Dependencia      *ItemProyecto `gorm:"foreignKey:DependenciaID"`

	Estado           models.ItemEstado `gorm:"type:varchar(20);default:'pendiente';index:idx_item_estado"`
	PorcentajeAvance int               `gorm:"default:0"`
	Observaciones    string
}

// PresupuestoLimite es el techo permitido: planificado más elasticidad (110%)
func (i ItemProyecto) PresupuestoLimite() float64 {
	return i.PresupuestoPlanificado * (1 + models.ElasticidadPresupuesto)
}

// ExcedePresupuestoLimite indica gasto por encima del techo
func (i ItemProyecto) ExcedePresupuestoLimite() bool {
	return i.PresupuestoEjecutado > i.PresupuestoLimite()
}

// MontoExcedido es el gasto por encima del límite, 0 si no excede
func (i ItemProyecto) MontoExcedido() float64 {
	if !i.ExcedePresupuestoLimite() {
		return 0
	}
	return i.PresupuestoEjecutado - i.PresupuestoLimite()
}

// AprobacionGAP es la solicitud formal de cierre del proyecto y su brecha.
// A lo sumo una pendiente por proyecto (índice parcial + bloqueo de fila).
type AprobacionGAP struct {
	BaseEmpresaModel
	ProyectoID string `gorm:"type:varchar(36);index"`
	Proyecto   *ProyectoCierreBrecha

	SolicitadoPorID string   `gorm:"type:varchar(36)"`
	SolicitadoPor   *Usuario `gorm:"foreignKey:SolicitadoPorID"`
	ValidadorID     string   `gorm:"type:varchar(36);index"`
	Validador       *Usuario `gorm:"foreignKey:ValidadorID"`

	Estado               models.AprobacionEstado `gorm:"type:varchar(20);default:'pendiente';index"`
	ComentariosSolicitud string
	Observaciones        string
	FechaRevision        *time.Time
	DocumentosAdjuntos   pq.StringArray `gorm:"type:text[]"`

	// métricas congeladas al momento de la solicitud
	ItemsCompletados       int     `gorm:"default:0"`
	ItemsTotales           int     `gorm:"default:0"`
	PresupuestoEjecutado   float64 `gorm:"type:numeric(12,2);default:0"`
	PresupuestoPlanificado float64 `gorm:"type:numeric(12,2);default:0"`
	GapOriginal            float64 `gorm:"type:numeric(5,2);default:0"`
}
