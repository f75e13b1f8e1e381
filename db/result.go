package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ResultadoUpdate normaliza el resultado de un Updates: un error de la base
// tiene prioridad sobre el "no encontrado" por cero filas afectadas.
func ResultadoUpdate(tx *gorm.DB) error {
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("registro no encontrado")
	}
	return nil
}
