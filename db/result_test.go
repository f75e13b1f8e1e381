package db

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestResultadoUpdateErrorDeBaseMandaSobreCeroFilas(t *testing.T) {
	errConexion := errors.New("conexión perdida")
	tx := &gorm.DB{Error: errConexion, RowsAffected: 0}

	assert.Equal(t, errConexion, ResultadoUpdate(tx))
}

func TestResultadoUpdateCeroFilasSinError(t *testing.T) {
	tx := &gorm.DB{RowsAffected: 0}

	err := ResultadoUpdate(tx)
	assert.EqualError(t, err, "registro no encontrado")
}

func TestResultadoUpdateFilasAfectadas(t *testing.T) {
	tx := &gorm.DB{RowsAffected: 1}

	assert.NoError(t, ResultadoUpdate(tx))
}
