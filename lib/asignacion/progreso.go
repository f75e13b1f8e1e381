package asignacionhandler

import (
	"time"

	"grc-maturity-backend/models"
)

// ResumenProgreso es la foto del avance sobre la que se evalúa el estado
type ResumenProgreso struct {
	Estado           models.AsignacionEstado
	TotalPreguntas   int
	Respondidas      int
	RequiereRevision bool
	FechaLimite      time.Time
}

// AplicarProgreso deriva el estado siguiente a partir del avance. El orden
// de evaluación es fijo: primero la completitud, luego el arranque, y el
// vencimiento pisa al final todo estado no terminal. Completar el mismo día
// gana al vencimiento porque la completitud se evalúa antes.
func AplicarProgreso(resumen ResumenProgreso, ahora time.Time) models.AsignacionEstado {
	estado := resumen.Estado
	if resumen.TotalPreguntas > 0 && resumen.Respondidas >= resumen.TotalPreguntas {
		if resumen.RequiereRevision && estado != models.AsignacionRechazado {
			estado = models.AsignacionPendienteRevision
		} else {
			estado = models.AsignacionCompletado
		}
	} else if resumen.Respondidas > 0 {
		switch estado {
		case models.AsignacionPendiente, models.AsignacionRechazado, models.AsignacionVencido:
			estado = models.AsignacionEnProgreso
		}
	}
	if ahora.After(resumen.FechaLimite) && EsVencible(estado) {
		estado = models.AsignacionVencido
	}
	return estado
}

// EsVencible indica los estados que el vencimiento puede pisar
func EsVencible(estado models.AsignacionEstado) bool {
	return !estado.EsTerminal() && estado != models.AsignacionVencido
}

// CalcularPorcentaje redondea a dos decimales, como se persiste
func CalcularPorcentaje(respondidas, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(int(float64(respondidas)/float64(total)*100*100+0.5)) / 100
}
