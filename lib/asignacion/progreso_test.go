package asignacionhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grc-maturity-backend/models"
)

var ahora = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func resumen(estado models.AsignacionEstado, total, respondidas int) ResumenProgreso {
	return ResumenProgreso{
		Estado:         estado,
		TotalPreguntas: total,
		Respondidas:    respondidas,
		FechaLimite:    ahora.AddDate(0, 0, 7),
	}
}

func TestAplicarProgresoCompletitud(t *testing.T) {
	r := resumen(models.AsignacionEnProgreso, 10, 10)
	assert.Equal(t, models.AsignacionCompletado, AplicarProgreso(r, ahora))

	r.RequiereRevision = true
	assert.Equal(t, models.AsignacionPendienteRevision, AplicarProgreso(r, ahora))

	// desde el rechazo, la completitud cierra directo sin nueva revisión
	r.Estado = models.AsignacionRechazado
	assert.Equal(t, models.AsignacionCompletado, AplicarProgreso(r, ahora))
}

func TestAplicarProgresoArranque(t *testing.T) {
	assert.Equal(t, models.AsignacionEnProgreso,
		AplicarProgreso(resumen(models.AsignacionPendiente, 10, 1), ahora))

	// tras el rechazo, la primera respuesta nueva reactiva la asignación
	assert.Equal(t, models.AsignacionEnProgreso,
		AplicarProgreso(resumen(models.AsignacionRechazado, 10, 1), ahora))

	// sin respuestas no hay arranque
	assert.Equal(t, models.AsignacionRechazado,
		AplicarProgreso(resumen(models.AsignacionRechazado, 10, 0), ahora))

	// los estados de revisión no se tocan por avance parcial
	assert.Equal(t, models.AsignacionPendienteRevision,
		AplicarProgreso(resumen(models.AsignacionPendienteRevision, 10, 5), ahora))
}

func TestAplicarProgresoVencimiento(t *testing.T) {
	vencida := resumen(models.AsignacionEnProgreso, 10, 5)
	vencida.FechaLimite = ahora.AddDate(0, 0, -1)
	assert.Equal(t, models.AsignacionVencido, AplicarProgreso(vencida, ahora))

	// la completitud gana al vencimiento: se evalúa primero
	completa := resumen(models.AsignacionEnProgreso, 10, 10)
	completa.FechaLimite = ahora.AddDate(0, 0, -1)
	assert.Equal(t, models.AsignacionCompletado, AplicarProgreso(completa, ahora))

	// la revisión pendiente no es terminal, el vencimiento sí la pisa
	enRevision := resumen(models.AsignacionPendienteRevision, 10, 10)
	enRevision.RequiereRevision = true
	enRevision.FechaLimite = ahora.AddDate(0, 0, -1)
	assert.Equal(t, models.AsignacionVencido, AplicarProgreso(enRevision, ahora))

	// los estados terminales nunca vencen
	rechazada := resumen(models.AsignacionRechazado, 10, 0)
	rechazada.FechaLimite = ahora.AddDate(0, 0, -1)
	assert.Equal(t, models.AsignacionRechazado, AplicarProgreso(rechazada, ahora))
}

func TestAplicarProgresoVencidaReactivada(t *testing.T) {
	// responder sobre una vencida la reactiva solo si la fecha ya no aplica
	r := resumen(models.AsignacionVencido, 10, 3)
	assert.Equal(t, models.AsignacionEnProgreso, AplicarProgreso(r, ahora))

	r.FechaLimite = ahora.AddDate(0, 0, -1)
	assert.Equal(t, models.AsignacionVencido, AplicarProgreso(r, ahora))
}

func TestCalcularPorcentaje(t *testing.T) {
	assert.Equal(t, 50.0, CalcularPorcentaje(5, 10))
	assert.Equal(t, 33.33, CalcularPorcentaje(1, 3))
	assert.Equal(t, 0.0, CalcularPorcentaje(0, 10))
	assert.Equal(t, 0.0, CalcularPorcentaje(3, 0))
	assert.Equal(t, 100.0, CalcularPorcentaje(10, 10))
}
