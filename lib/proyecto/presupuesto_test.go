package proyectohandler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dbmodels "grc-maturity-backend/models/db"
)

func itemConPresupuesto(planificado, ejecutado float64) dbmodels.ItemProyecto {
	return dbmodels.ItemProyecto{
		PresupuestoPlanificado: planificado,
		PresupuestoEjecutado:   ejecutado,
	}
}

func TestCruceDelTechoPresupuestario(t *testing.T) {
	// planificado 1000, techo 1100: el gasto pasa de 1050 a 1150
	item := itemConPresupuesto(1000, 1050)
	assert.Equal(t, 1100.0, item.PresupuestoLimite())
	assert.True(t, CruzaLimitePresupuesto(item, 1150))
}

func TestCruceDisparaUnaSolaVez(t *testing.T) {
	// con el gasto ya por encima del techo, subirlo más no vuelve a cruzar
	item := itemConPresupuesto(1000, 1150)
	assert.False(t, CruzaLimitePresupuesto(item, 1200))
}

func TestGastoDentroDelTechoNoCruza(t *testing.T) {
	item := itemConPresupuesto(1000, 500)
	assert.False(t, CruzaLimitePresupuesto(item, 1100))
	assert.False(t, CruzaLimitePresupuesto(item, 900))
}

func TestGastoExactoEnElTechoNoCruza(t *testing.T) {
	item := itemConPresupuesto(1000, 0)
	assert.False(t, CruzaLimitePresupuesto(item, 1100))
	assert.True(t, CruzaLimitePresupuesto(item, 1100.01))
}
