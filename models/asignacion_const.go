package models

import "github.com/pkg/errors"

type AsignacionEstado string

const (
	AsignacionPendiente         AsignacionEstado = "pendiente"
	AsignacionEnProgreso        AsignacionEstado = "en_progreso"
	AsignacionCompletado        AsignacionEstado = "completado"
	AsignacionVencido           AsignacionEstado = "vencido"
	AsignacionPendienteRevision AsignacionEstado = "pendiente_revision"
	AsignacionRechazado         AsignacionEstado = "rechazado"
)

var asignacionEstadoHumanName = map[AsignacionEstado]string{
	AsignacionPendiente:         "Pendiente",
	AsignacionEnProgreso:        "En Progreso",
	AsignacionCompletado:        "Completado",
	AsignacionVencido:           "Vencido",
	AsignacionPendienteRevision: "Pendiente de Revisión",
	AsignacionRechazado:         "Rechazado",
}

func (e AsignacionEstado) ToHuman() string {
	if human, exist := asignacionEstadoHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e AsignacionEstado) Validate() error {
	if _, exist := asignacionEstadoHumanName[e]; exist {
		return nil
	}
	return errors.Errorf("estado de asignación desconocido (%v)", string(e))
}

// EsTerminal indica los estados que el vencimiento ya no puede pisar
func (e AsignacionEstado) EsTerminal() bool {
	return e == AsignacionCompletado || e == AsignacionRechazado
}

type AccionRevision string

const (
	RevisionAprobar  AccionRevision = "aprobar"
	RevisionRechazar AccionRevision = "rechazar"
)

func (a AccionRevision) Validate() error {
	switch a {
	case RevisionAprobar, RevisionRechazar:
		return nil
	}
	return errors.Errorf("acción de revisión desconocida (%v)", string(a))
}
