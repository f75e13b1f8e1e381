package proyectoapimodels

import (
	"time"

	"github.com/pkg/errors"

	"grc-maturity-backend/models"
	apimodels "grc-maturity-backend/models/api"
	dbmodels "grc-maturity-backend/models/db"
)

type ProyectoDesdeGapData struct {
	CalculoNivelID              string                   `json:"calculo_nivel_id"`              // brecha origen
	NombreProyecto              string                   `json:"nombre_proyecto"`               // opcional, se autogenera desde la dimensión
	Descripcion                 string                   `json:"descripcion"`                   // opcional
	Categoria                   models.CategoriaProyecto `json:"categoria"`                     // tecnico por defecto
	FechaInicio                 string                   `json:"fecha_inicio"`                  // YYYY-MM-DD
	FechaFinEstimada            string                   `json:"fecha_fin_estimada"`            // YYYY-MM-DD
	DuenoProyectoID             string                   `json:"dueno_proyecto_id"`             // responsable general
	ResponsableImplementacionID string                   `json:"responsable_implementacion_id"` // quien ejecuta
	ValidadorInternoID          string                   `json:"validador_interno_id"`          // opcional, se resuelve automáticamente
	ModoPresupuesto             models.ModoPresupuesto   `json:"modo_presupuesto"`              // global | por_items
	Moneda                      models.Moneda            `json:"moneda"`                        // USD por defecto
	PresupuestoGlobal           float64                  `json:"presupuesto_global"`            // solo en modo global
	AlcanceProyecto             string                   `json:"alcance_proyecto"`
	ObjetivosEspecificos        string                   `json:"objetivos_especificos"`
	CriteriosAceptacion         string                   `json:"criterios_aceptacion"`
	RiesgosProyecto             string                   `json:"riesgos_proyecto"`
}

func (p ProyectoDesdeGapData) Validate() error {
	if p.CalculoNivelID == "" {
		return errors.New("falta la referencia a la brecha (calculo_nivel_id)")
	}
	if p.DuenoProyectoID == "" {
		return errors.New("falta el dueño del proyecto")
	}
	if p.ResponsableImplementacionID == "" {
		return errors.New("falta el responsable de implementación")
	}
	if p.ModoPresupuesto != "" {
		if err := p.ModoPresupuesto.Validate(); err != nil {
			return err
		}
	}
	if p.ModoEfectivo() == models.PresupuestoGlobal && p.PresupuestoGlobal <= 0 {
		return errors.New("el presupuesto global debe ser mayor a cero")
	}
	if p.Moneda != "" {
		if err := p.Moneda.Validate(); err != nil {
			return err
		}
	}
	if p.Categoria != "" {
		if err := p.Categoria.Validate(); err != nil {
			return err
		}
	}
	inicio, err := p.GetFechaInicio()
	if err != nil {
		return err
	}
	fin, err := p.GetFechaFinEstimada()
	if err != nil {
		return err
	}
	if !fin.After(inicio) {
		return errors.New("la fecha de fin debe ser posterior a la fecha de inicio")
	}
	if fin.Sub(inicio).Hours() > 24*730 {
		return errors.New("el proyecto no puede durar más de 2 años")
	}
	return nil
}

// ModoEfectivo aplica el modo por defecto cuando el campo viene vacío
func (p ProyectoDesdeGapData) ModoEfectivo() models.ModoPresupuesto {
	if p.ModoPresupuesto == "" {
		return models.PresupuestoGlobal
	}
	return p.ModoPresupuesto
}

func (p ProyectoDesdeGapData) GetFechaInicio() (time.Time, error) {
	fecha, err := time.Parse("2006-01-02", p.FechaInicio)
	if err != nil {
		return time.Time{}, errors.New("fecha de inicio inválida, formato esperado YYYY-MM-DD")
	}
	return fecha, nil
}

func (p ProyectoDesdeGapData) GetFechaFinEstimada() (time.Time, error) {
	fecha, err := time.Parse("2006-01-02", p.FechaFinEstimada)
	if err != nil {
		return time.Time{}, errors.New("fecha de fin estimada inválida, formato esperado YYYY-MM-DD")
	}
	return fecha, nil
}

type ProyectoEditData struct {
	NombreProyecto       string                `json:"nombre_proyecto"`
	Descripcion          string                `json:"descripcion"`
	Estado               models.ProyectoEstado `json:"estado"` // transición validada contra la tabla de estados
	Prioridad            models.Prioridad      `json:"prioridad"`
	FechaFinEstimada     string                `json:"fecha_fin_estimada"`
	DuenoProyectoID      string                `json:"dueno_proyecto_id"`
	ValidadorInternoID   string                `json:"validador_interno_id"`
	PresupuestoGlobal    float64               `json:"presupuesto_global"`
	AlcanceProyecto      string                `json:"alcance_proyecto"`
	ObjetivosEspecificos string                `json:"objetivos_especificos"`
	CriteriosAceptacion  string                `json:"criterios_aceptacion"`
	RiesgosProyecto      string                `json:"riesgos_proyecto"`
	LeccionesAprendidas  string                `json:"lecciones_aprendidas"`
}

func (p ProyectoEditData) Validate() error {
	if p.Estado != "" {
		if err := p.Estado.Validate(); err != nil {
			return err
		}
	}
	if p.Prioridad != "" {
		if err := p.Prioridad.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ProyectoView struct {
	ID                string  `json:"id"`
	CodigoProyecto    string  `json:"codigo_proyecto"`
	NombreProyecto    string  `json:"nombre_proyecto"`
	Descripcion       string  `json:"descripcion,omitempty"`
	CalculoNivelID    string  `json:"calculo_nivel_id"`
	GapOriginal       float64 `json:"gap_original,omitempty"`
	DimensionNombre   string  `json:"dimension_nombre,omitempty"`
	Estado            string  `json:"estado"`
	EstadoNombre      string  `json:"estado_nombre"`
	Prioridad         string  `json:"prioridad"`
	Categoria         string  `json:"categoria"`
	ModoPresupuesto   string  `json:"modo_presupuesto"`
	Moneda            string  `json:"moneda"`
	PresupuestoGlobal float64 `json:"presupuesto_global"`
	FechaInicio       string  `json:"fecha_inicio"`
	FechaFinEstimada  string  `json:"fecha_fin_estimada"`
	FechaFinReal      string  `json:"fecha_fin_real,omitempty"`
	TotalItems        int     `json:"total_items"`
	ItemsCompletados  int     `json:"items_completados"`
}

func ProyectoConvert(rec dbmodels.ProyectoCierreBrecha) ProyectoView {
	view := ProyectoView{
		ID:                rec.ID,
		CodigoProyecto:    rec.CodigoProyecto,
		NombreProyecto:    rec.NombreProyecto,
		Descripcion:       rec.Descripcion,
		CalculoNivelID:    rec.CalculoNivelID,
		Estado:            string(rec.Estado),
		EstadoNombre:      rec.Estado.ToHuman(),
		Prioridad:         string(rec.Prioridad),
		Categoria:         string(rec.Categoria),
		ModoPresupuesto:   string(rec.ModoPresupuesto),
		Moneda:            string(rec.Moneda),
		PresupuestoGlobal: rec.PresupuestoGlobal,
		FechaInicio:       rec.FechaInicio.Format("2006-01-02"),
		FechaFinEstimada:  rec.FechaFinEstimada.Format("2006-01-02"),
	}
	if rec.FechaFinReal != nil {
		view.FechaFinReal = rec.FechaFinReal.Format("2006-01-02")
	}
	if rec.CalculoNivel != nil {
		view.GapOriginal = rec.CalculoNivel.Gap
		if rec.CalculoNivel.Dimension != nil {
			view.DimensionNombre = rec.CalculoNivel.Dimension.Nombre
		}
	}
	view.TotalItems = len(rec.Items)
	for _, item := range rec.Items {
		if item.Estado == models.ItemCompletado {
			view.ItemsCompletados++
		}
	}
	return view
}

type ProyectoFilter struct {
	apimodels.Pagination
	Estado    string `json:"estado"`    // filtrar por estado
	Prioridad string `json:"prioridad"` // filtrar por prioridad
}
