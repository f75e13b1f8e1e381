package proyectoapimodels

import (
	"time"

	"github.com/pkg/errors"

	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

type ItemData struct {
	NombreItem                 string  `json:"nombre_item"`                  // ej: Adquisición de licencia de antivirus
	Descripcion                string  `json:"descripcion"`                  // opcional
	ResponsableEjecucionID     string  `json:"responsable_ejecucion_id"`     // obligatorio, de la misma empresa
	RequiereProveedor          bool    `json:"requiere_proveedor"`           // si necesita proveedor externo
	ProveedorID                string  `json:"proveedor_id"`                 // proveedor global o de la empresa
	NombreResponsableProveedor string  `json:"nombre_responsable_proveedor"` // contacto del proveedor
	PresupuestoPlanificado     float64 `json:"presupuesto_planificado"`      // monto planificado
	FechaInicio                string  `json:"fecha_inicio"`                 // YYYY-MM-DD, dentro del rango del proyecto
	DuracionDias               int     `json:"duracion_dias"`                // días laborables
	DependenciaID              string  `json:"dependencia_id"`               // ítem predecesor opcional
}

func (i ItemData) Validate() error {
	if i.NombreItem == "" {
		return errors.New("falta el nombre del ítem")
	}
	if i.ResponsableEjecucionID == "" {
		return errors.New("falta el responsable de ejecución")
	}
	if i.PresupuestoPlanificado < 0 {
		return errors.New("el presupuesto planificado no puede ser negativo")
	}
	if i.DuracionDias < 1 {
		return errors.New("la duración debe ser de al menos 1 día")
	}
	if i.RequiereProveedor && i.ProveedorID == "" {
		return errors.New("falta el proveedor del ítem")
	}
	if _, err := i.GetFechaInicio(); err != nil {
		return err
	}
	return nil
}

func (i ItemData) GetFechaInicio() (time.Time, error) {
	fecha, err := time.Parse("2006-01-02", i.FechaInicio)
	if err != nil {
		return time.Time{}, errors.New("fecha de inicio inválida, formato esperado YYYY-MM-DD")
	}
	return fecha, nil
}

// ItemUpdateData es la acción unificada de seguimiento del ítem
type ItemUpdateData struct {
	Estado               models.ItemEstado `json:"estado"`                // transición validada contra la dependencia
	PorcentajeAvance     *int              `json:"porcentaje_avance"`     // 0-100; >=100 fuerza completado
	PresupuestoEjecutado *float64          `json:"presupuesto_ejecutado"` // gasto acumulado
	DependenciaID        *string           `json:"dependencia_id"`        // cambia el predecesor; vacío lo quita
	Observaciones        string            `json:"observaciones"`
}

func (i ItemUpdateData) Validate() error {
	if i.Estado != "" {
		if err := i.Estado.Validate(); err != nil {
			return err
		}
	}
	if i.PorcentajeAvance != nil && (*i.PorcentajeAvance < 0 || *i.PorcentajeAvance > 100) {
		return errors.New("el porcentaje de avance debe estar entre 0 y 100")
	}
	if i.PresupuestoEjecutado != nil && *i.PresupuestoEjecutado < 0 {
		return errors.New("el presupuesto ejecutado no puede ser negativo")
	}
	return nil
}

type ItemReorderData struct {
	Items []ItemOrden `json:"items"` // nuevo orden completo de los ítems activos
}

type ItemOrden struct {
	ItemID     string `json:"item_id"`
	NumeroItem int    `json:"numero_item"`
}

func (i ItemReorderData) Validate() error {
	if len(i.Items) == 0 {
		return errors.New("no se indicó el nuevo orden de los ítems")
	}
	vistos := map[int]bool{}
	for _, item := range i.Items {
		if item.ItemID == "" {
			return errors.New("falta el identificador de un ítem")
		}
		if item.NumeroItem < 1 {
			return errors.New("los números de ítem deben ser positivos")
		}
		if vistos[item.NumeroItem] {
			return errors.Errorf("número de ítem repetido (%v)", item.NumeroItem)
		}
		vistos[item.NumeroItem] = true
	}
	return nil
}

type ItemView struct {
	ID                     string  `json:"id"`
	ProyectoID             string  `json:"proyecto_id"`
	NumeroItem             int     `json:"numero_item"`
	NombreItem             string  `json:"nombre_item"`
	Estado                 string  `json:"estado"`
	EstadoNombre           string  `json:"estado_nombre"`
	PorcentajeAvance       int     `json:"porcentaje_avance"`
	PresupuestoPlanificado float64 `json:"presupuesto_planificado"`
	PresupuestoEjecutado   float64 `json:"presupuesto_ejecutado"`
	PresupuestoLimite      float64 `json:"presupuesto_limite"`
	FechaInicio            string  `json:"fecha_inicio"`
	FechaFin               string  `json:"fecha_fin"`
	FechaCompletado        string  `json:"fecha_completado,omitempty"`
	TieneDependencia       bool    `json:"tiene_dependencia"`
	DependenciaID          string  `json:"dependencia_id,omitempty"`
	ResponsableEjecucionID string  `json:"responsable_ejecucion_id"`
}

func ItemConvert(rec dbmodels.ItemProyecto) ItemView {
	view := ItemView{
		ID:                     rec.ID,
		ProyectoID:             rec.ProyectoID,
		NumeroItem:             rec.NumeroItem,
		NombreItem:             rec.NombreItem,
		Estado:                 string(rec.Estado),
		EstadoNombre:           rec.Estado.ToHuman(),
		PorcentajeAvance:       rec.PorcentajeAvance,
		PresupuestoPlanificado: rec.PresupuestoPlanificado,
		PresupuestoEjecutado:   rec.PresupuestoEjecutado,
		PresupuestoLimite:      rec.PresupuestoLimite(),
		FechaInicio:            rec.FechaInicio.Format("2006-01-02"),
		FechaFin:               rec.FechaFin.Format("2006-01-02"),
		TieneDependencia:       rec.TieneDependencia,
		ResponsableEjecucionID: rec.ResponsableEjecucionID,
	}
	if rec.FechaCompletado != nil {
		view.FechaCompletado = rec.FechaCompletado.Format("2006-01-02")
	}
	if rec.DependenciaID != nil {
		view.DependenciaID = *rec.DependenciaID
	}
	return view
}
