package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// EsDiaLaborable excluye sábados y domingos
func EsDiaLaborable(fecha time.Time) bool {
	dia := fecha.Weekday()
	return dia != time.Saturday && dia != time.Sunday
}

// SumarDiasLaborables avanza la fecha saltando fines de semana.
// Con dias=1 un ítem que inicia lunes termina el mismo lunes.
func SumarDiasLaborables(inicio time.Time, dias int) time.Time {
	if dias <= 0 {
		return inicio
	}
	fecha := inicio
	restantes := dias
	for !EsDiaLaborable(fecha) {
		fecha = fecha.AddDate(0, 0, 1)
	}
	restantes--
	for restantes > 0 {
		fecha = fecha.AddDate(0, 0, 1)
		if EsDiaLaborable(fecha) {
			restantes--
		}
	}
	return fecha
}

// DiasLaborablesEntre cuenta los días laborables del rango inclusivo
func DiasLaborablesEntre(desde, hasta time.Time) int {
	if hasta.Before(desde) {
		return 0
	}
	total := 0
	for fecha := desde; !fecha.After(hasta); fecha = fecha.AddDate(0, 0, 1) {
		if EsDiaLaborable(fecha) {
			total++
		}
	}
	return total
}
