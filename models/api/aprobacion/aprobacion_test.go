package aprobacionapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

func TestRechazoExigeObservaciones(t *testing.T) {
	assert.Error(t, DecisionData{}.ValidateRechazo())
	assert.Error(t, DecisionData{Observaciones: "   "}.ValidateRechazo())
	assert.NoError(t, DecisionData{Observaciones: "faltan evidencias del ítem 3"}.ValidateRechazo())
}

func TestAprobacionConvertConSnapshot(t *testing.T) {
	revision := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	view := AprobacionConvert(dbmodels.AprobacionGAP{
		ProyectoID:             "p1",
		SolicitadoPorID:        "u1",
		ValidadorID:            "u2",
		Estado:                 models.AprobacionAprobado,
		FechaRevision:          &revision,
		ItemsCompletados:       4,
		ItemsTotales:           4,
		PresupuestoEjecutado:   900,
		PresupuestoPlanificado: 1000,
		GapOriginal:            2.5,
	})
	assert.Equal(t, "aprobado", view.Estado)
	assert.Equal(t, 4, view.ItemsCompletados)
	assert.Equal(t, 900.0, view.PresupuestoEjecutado)
	assert.Equal(t, 2.5, view.GapOriginal)
	assert.Equal(t, "2026-03-10T15:00:00Z", view.FechaRevision)
}
