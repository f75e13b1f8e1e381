package models

import "github.com/pkg/errors"

type ProyectoEstado string

const (
	ProyectoPlanificado  ProyectoEstado = "planificado"
	ProyectoEnEjecucion  ProyectoEstado = "en_ejecucion"
	ProyectoEnValidacion ProyectoEstado = "en_validacion"
	ProyectoCerrado      ProyectoEstado = "cerrado"
	ProyectoSuspendido   ProyectoEstado = "suspendido"
	ProyectoCancelado    ProyectoEstado = "cancelado"
)

var proyectoEstadoHumanName = map[ProyectoEstado]string{
	ProyectoPlanificado:  "Planificado",
	ProyectoEnEjecucion:  "En Ejecución",
	ProyectoEnValidacion: "En Validación",
	ProyectoCerrado:      "Cerrado",
	ProyectoSuspendido:   "Suspendido",
	ProyectoCancelado:    "Cancelado",
}

func (e ProyectoEstado) ToHuman() string {
	if human, exist := proyectoEstadoHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e ProyectoEstado) Validate() error {
	if _, exist := proyectoEstadoHumanName[e]; exist {
		return nil
	}
	return errors.Errorf("estado de proyecto desconocido (%v)", string(e))
}

// proyectoTransiciones es la única tabla de transiciones permitidas.
// El cierre no figura en las ediciones directas: solo llega vía aprobación.
var proyectoTransiciones = map[ProyectoEstado][]ProyectoEstado{
	ProyectoPlanificado:  {ProyectoEnEjecucion, ProyectoCancelado},
	ProyectoEnEjecucion:  {ProyectoEnValidacion, ProyectoSuspendido, ProyectoCancelado},
	ProyectoEnValidacion: {ProyectoCerrado, ProyectoEnEjecucion},
	ProyectoSuspendido:   {ProyectoEnEjecucion, ProyectoCancelado},
	ProyectoCerrado:      {},
	ProyectoCancelado:    {},
}

func (e ProyectoEstado) PuedeTransicionar(destino ProyectoEstado) bool {
	for _, permitido := range proyectoTransiciones[e] {
		if permitido == destino {
			return true
		}
	}
	return false
}

// PermiteSolicitarAprobacion lista los estados origen válidos para pedir cierre.
// Se aceptan también los valores legados "pendiente" y "en_proceso" presentes
// en proyectos migrados de versiones anteriores.
func (e ProyectoEstado) PermiteSolicitarAprobacion() bool {
	switch string(e) {
	case string(ProyectoEnEjecucion), string(ProyectoPlanificado), "pendiente", "en_proceso":
		return true
	}
	return false
}

type ModoPresupuesto string

const (
	PresupuestoGlobal   ModoPresupuesto = "global"
	PresupuestoPorItems ModoPresupuesto = "por_items"
)

func (m ModoPresupuesto) Validate() error {
	switch m {
	case PresupuestoGlobal, PresupuestoPorItems:
		return nil
	}
	return errors.Errorf("modo de presupuesto desconocido (%v)", string(m))
}

type Prioridad string

const (
	PrioridadCritica Prioridad = "critica"
	PrioridadAlta    Prioridad = "alta"
	PrioridadMedia   Prioridad = "media"
	PrioridadBaja    Prioridad = "baja"
)

func (p Prioridad) Validate() error {
	switch p {
	case PrioridadCritica, PrioridadAlta, PrioridadMedia, PrioridadBaja:
		return nil
	}
	return errors.Errorf("prioridad desconocida (%v)", string(p))
}

type CategoriaProyecto string

const (
	CategoriaTecnico        CategoriaProyecto = "tecnico"
	CategoriaDocumental     CategoriaProyecto = "documental"
	CategoriaProcesal       CategoriaProyecto = "procesal"
	CategoriaOrganizacional CategoriaProyecto = "organizacional"
	CategoriaCapacitacion   CategoriaProyecto = "capacitacion"
)

func (c CategoriaProyecto) Validate() error {
	switch c {
	case CategoriaTecnico, CategoriaDocumental, CategoriaProcesal, CategoriaOrganizacional, CategoriaCapacitacion:
		return nil
	}
	return errors.Errorf("categoría de proyecto desconocida (%v)", string(c))
}

type Moneda string

const (
	MonedaUSD Moneda = "USD"
	MonedaEUR Moneda = "EUR"
	MonedaPEN Moneda = "PEN"
	MonedaCOP Moneda = "COP"
	MonedaMXN Moneda = "MXN"
)

func (m Moneda) Validate() error {
	switch m {
	case MonedaUSD, MonedaEUR, MonedaPEN, MonedaCOP, MonedaMXN:
		return nil
	}
	return errors.Errorf("moneda desconocida (%v)", string(m))
}

type ItemEstado string

const (
	ItemPendiente  ItemEstado = "pendiente"
	ItemEnProceso  ItemEstado = "en_proceso"
	ItemCompletado ItemEstado = "completado"
	ItemBloqueado  ItemEstado = "bloqueado"
)

var itemEstadoHumanName = map[ItemEstado]string{
	ItemPendiente:  "Pendiente",
	ItemEnProceso:  "En Proceso",
	ItemCompletado: "Completado",
	ItemBloqueado:  "Bloqueado por Dependencia",
}

func (e ItemEstado) ToHuman() string {
	if human, exist := itemEstadoHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e ItemEstado) Validate() error {
	if _, exist := itemEstadoHumanName[e]; exist {
		return nil
	}
	return errors.Errorf("estado de ítem desconocido (%v)", string(e))
}

// RequiereDependenciaCompleta marca los estados que exigen predecesor completado
func (e ItemEstado) RequiereDependenciaCompleta() bool {
	return e == ItemEnProceso || e == ItemCompletado
}

func (e ItemEstado) EsCompletado() bool {
	return e == ItemCompletado
}

// ElasticidadPresupuesto es el margen permitido sobre el planificado (110%)
const ElasticidadPresupuesto = 0.10

type AprobacionEstado string

const (
	AprobacionPendiente AprobacionEstado = "pendiente"
	AprobacionAprobado  AprobacionEstado = "aprobado"
	AprobacionRechazado AprobacionEstado = "rechazado"
)

func (e AprobacionEstado) Validate() error {
	switch e {
	case AprobacionPendiente, AprobacionAprobado, AprobacionRechazado:
		return nil
	}
	return errors.Errorf("estado de aprobación desconocido (%v)", string(e))
}
