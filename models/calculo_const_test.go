package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClasificarGap(t *testing.T) {
	t.Run(`umbrales canónicos`, func(t *testing.T) {
		require.Equal(t, GapCumplido, ClasificarGap(0))
		require.Equal(t, GapSuperado, ClasificarGap(-1))
		require.Equal(t, GapBajo, ClasificarGap(0.5))
		require.Equal(t, GapMedio, ClasificarGap(1.5))
		require.Equal(t, GapAlto, ClasificarGap(2.5))
		require.Equal(t, GapCritico, ClasificarGap(3.5))
	})

	t.Run(`bordes exactos`, func(t *testing.T) {
		require.Equal(t, GapMedio, ClasificarGap(1))
		require.Equal(t, GapAlto, ClasificarGap(2))
		require.Equal(t, GapCritico, ClasificarGap(3))
		require.Equal(t, GapSuperado, ClasificarGap(-0.01))
	})
}

func TestPrioridadProyecto(t *testing.T) {
	require.Equal(t, PrioridadCritica, GapCritico.PrioridadProyecto())
	require.Equal(t, PrioridadAlta, GapAlto.PrioridadProyecto())
	require.Equal(t, PrioridadMedia, GapMedio.PrioridadProyecto())
	require.Equal(t, PrioridadBaja, GapBajo.PrioridadProyecto())
	require.Equal(t, PrioridadBaja, GapCumplido.PrioridadProyecto())
	require.Equal(t, PrioridadBaja, GapSuperado.PrioridadProyecto())
}
