package dbmodels

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// La unicidad de (proyecto_id, numero_item) vive en un índice parcial creado
// por la migración, filtrado por deleted_at IS NULL. Un índice único declarado
// en el modelo incluiría las filas con borrado lógico y el número de un ítem
// eliminado quedaría ocupado para siempre.
func TestItemProyectoNumeroSinIndiceUnicoEnElModelo(t *testing.T) {
	tipo := reflect.TypeOf(ItemProyecto{})

	numero, ok := tipo.FieldByName("NumeroItem")
	require.True(t, ok)
	assert.NotContains(t, numero.Tag.Get("gorm"), "uniqueIndex")

	proyecto, ok := tipo.FieldByName("ProyectoID")
	require.True(t, ok)
	assert.NotContains(t, proyecto.Tag.Get("gorm"), "uniqueIndex")
}

// El código de proyecto sí mantiene su índice único del modelo: el generador
// cuenta con Unscoped, por lo que un proyecto cancelado conserva su número
// reservado y nunca se reutiliza.
func TestCodigoProyectoConservaIndiceUnico(t *testing.T) {
	tipo := reflect.TypeOf(ProyectoCierreBrecha{})

	codigo, ok := tipo.FieldByName("CodigoProyecto")
	require.True(t, ok)
	assert.True(t, strings.Contains(codigo.Tag.Get("gorm"), "uniqueIndex"))
}
