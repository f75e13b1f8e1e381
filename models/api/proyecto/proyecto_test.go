package proyectoapimodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grc-maturity-backend/models"
)

func proyectoData() ProyectoDesdeGapData {
	return ProyectoDesdeGapData{
		CalculoNivelID:              "calc-1",
		DuenoProyectoID:             "usr-1",
		ResponsableImplementacionID: "usr-2",
		FechaInicio:                 "2026-01-15",
		FechaFinEstimada:            "2026-06-30",
	}
}

// El modo global es el modo por defecto: omitir modo_presupuesto exige el
// mismo presupuesto mayor a cero que pedirlo de forma explícita.
func TestValidateModoOmitidoExigePresupuesto(t *testing.T) {
	data := proyectoData()
	require.Equal(t, models.PresupuestoGlobal, data.ModoEfectivo())

	err := data.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presupuesto global")

	data.PresupuestoGlobal = 5000
	assert.NoError(t, data.Validate())
}

func TestValidateModoGlobalExplicito(t *testing.T) {
	data := proyectoData()
	data.ModoPresupuesto = models.PresupuestoGlobal

	err := data.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presupuesto global")
}

func TestValidatePorItemsSinPresupuestoGlobal(t *testing.T) {
	data := proyectoData()
	data.ModoPresupuesto = models.PresupuestoPorItems

	assert.NoError(t, data.Validate())
}
