package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fecha(valor string) time.Time {
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSumarDiasLaborables(t *testing.T) {
	// 2026-08-31 es lunes
	lunes := fecha("2026-08-31")

	assert.Equal(t, lunes, SumarDiasLaborables(lunes, 1), "un día laborable termina el mismo día")
	assert.Equal(t, fecha("2026-09-04"), SumarDiasLaborables(lunes, 5), "cinco días cierran el viernes")
	assert.Equal(t, fecha("2026-09-07"), SumarDiasLaborables(lunes, 6), "el sexto día salta el fin de semana")
}

func TestSumarDiasLaborablesDesdeFinDeSemana(t *testing.T) {
	sabado := fecha("2026-09-05")
	assert.Equal(t, fecha("2026-09-07"), SumarDiasLaborables(sabado, 1), "el inicio en sábado se corre al lunes")
}

func TestDiasLaborablesEntre(t *testing.T) {
	assert.Equal(t, 5, DiasLaborablesEntre(fecha("2026-08-31"), fecha("2026-09-04")))
	assert.Equal(t, 5, DiasLaborablesEntre(fecha("2026-08-31"), fecha("2026-09-06")), "el fin de semana no cuenta")
	assert.Equal(t, 0, DiasLaborablesEntre(fecha("2026-09-04"), fecha("2026-08-31")), "rango invertido")
}

func TestEsDiaLaborable(t *testing.T) {
	assert.True(t, EsDiaLaborable(fecha("2026-09-02")))
	assert.False(t, EsDiaLaborable(fecha("2026-09-05")))
	assert.False(t, EsDiaLaborable(fecha("2026-09-06")))
}
