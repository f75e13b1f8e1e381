package proveedorstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Proveedor) (id string, err error)
	GetDisponible(empresaID, id string) (rec *dbmodels.Proveedor, err error)
	List(empresaID string) (list []dbmodels.Proveedor, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Proveedor) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetDisponible devuelve el proveedor si es global o pertenece a la empresa
func (i impl) GetDisponible(empresaID, id string) (*dbmodels.Proveedor, error) {
	rec := dbmodels.Proveedor{}
	err := i.db.
		Where("id = ?", id).
		Where("empresa_id IS NULL OR empresa_id = ?", empresaID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(empresaID string) (list []dbmodels.Proveedor, err error) {
	list = []dbmodels.Proveedor{}
	err = i.db.
		Where("empresa_id IS NULL OR empresa_id = ?", empresaID).
		Order("razon_social").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Proveedor{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}
