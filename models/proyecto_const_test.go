package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProyectoTransiciones(t *testing.T) {
	t.Run(`flujo normal`, func(t *testing.T) {
		require.True(t, ProyectoPlanificado.PuedeTransicionar(ProyectoEnEjecucion))
		require.True(t, ProyectoEnEjecucion.PuedeTransicionar(ProyectoEnValidacion))
		require.True(t, ProyectoEnValidacion.PuedeTransicionar(ProyectoCerrado))
		require.True(t, ProyectoEnValidacion.PuedeTransicionar(ProyectoEnEjecucion))
		require.True(t, ProyectoSuspendido.PuedeTransicionar(ProyectoEnEjecucion))
	})

	t.Run(`cierre directo prohibido`, func(t *testing.T) {
		require.False(t, ProyectoPlanificado.PuedeTransicionar(ProyectoCerrado))
		require.False(t, ProyectoEnEjecucion.PuedeTransicionar(ProyectoCerrado))
		require.False(t, ProyectoSuspendido.PuedeTransicionar(ProyectoCerrado))
	})

	t.Run(`estados terminales`, func(t *testing.T) {
		require.False(t, ProyectoCerrado.PuedeTransicionar(ProyectoEnEjecucion))
		require.False(t, ProyectoCancelado.PuedeTransicionar(ProyectoPlanificado))
	})
}

func TestPermiteSolicitarAprobacion(t *testing.T) {
	require.True(t, ProyectoEnEjecucion.PermiteSolicitarAprobacion())
	require.True(t, ProyectoPlanificado.PermiteSolicitarAprobacion())
	require.True(t, ProyectoEstado("pendiente").PermiteSolicitarAprobacion())
	require.True(t, ProyectoEstado("en_proceso").PermiteSolicitarAprobacion())
	require.False(t, ProyectoEnValidacion.PermiteSolicitarAprobacion())
	require.False(t, ProyectoCerrado.PermiteSolicitarAprobacion())
	require.False(t, ProyectoSuspendido.PermiteSolicitarAprobacion())
}
