package calculonivelhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grc-maturity-backend/models"
)

func opciones(si, parcial, no, noAplica int) []models.OpcionRespuesta {
	result := []models.OpcionRespuesta{}
	for j := 0; j < si; j++ {
		result = append(result, models.RespuestaSiCumple)
	}
	for j := 0; j < parcial; j++ {
		result = append(result, models.RespuestaCumpleParcial)
	}
	for j := 0; j < no; j++ {
		result = append(result, models.RespuestaNoCumple)
	}
	for j := 0; j < noAplica; j++ {
		result = append(result, models.RespuestaNoAplica)
	}
	return result
}

func TestCalcularNivelesPromedio(t *testing.T) {
	// 8 cumplimientos plenos y 2 incumplimientos
	resultado := CalcularNiveles(opciones(8, 0, 2, 0))
	assert.Equal(t, 10, resultado.TotalPreguntas)
	assert.Equal(t, 0.8, resultado.NivelActual)
	assert.Equal(t, 80.0, resultado.PorcentajeCumplimiento)
	assert.Equal(t, 8, resultado.SiCumple)
	assert.Equal(t, 2, resultado.NoCumple)
}

func TestCalcularNivelesExcluyeNoAplica(t *testing.T) {
	// NO_APLICA no entra en el promedio ni en el porcentaje
	resultado := CalcularNiveles(opciones(2, 0, 0, 2))
	assert.Equal(t, 4, resultado.TotalPreguntas)
	assert.Equal(t, 2, resultado.NoAplica)
	assert.Equal(t, 1.0, resultado.NivelActual)
	assert.Equal(t, 100.0, resultado.PorcentajeCumplimiento)
}

func TestCalcularNivelesSinAplicables(t *testing.T) {
	resultado := CalcularNiveles(opciones(0, 0, 0, 3))
	assert.Equal(t, 0.0, resultado.NivelActual)
	assert.Equal(t, 0.0, resultado.PorcentajeCumplimiento)
}

func TestCalcularNivelesParciales(t *testing.T) {
	// 1.0 + 0.5 + 0.0 sobre 3 aplicables
	resultado := CalcularNiveles(opciones(1, 1, 1, 0))
	assert.Equal(t, 0.5, resultado.NivelActual)
	assert.Equal(t, 66.67, resultado.PorcentajeCumplimiento)
}

func TestClasificacionDesdeGapCalculado(t *testing.T) {
	// nivel deseado 4.0 con nivel actual 2.0 produce una brecha alta
	gap := redondear2(4.0 - 2.0)
	assert.Equal(t, 2.0, gap)
	assert.Equal(t, models.GapAlto, models.ClasificarGap(gap))
	assert.Equal(t, models.PrioridadAlta, models.ClasificarGap(gap).PrioridadProyecto())
}
