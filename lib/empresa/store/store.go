package empresastore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Empresa) (id string, err error)
	GetByID(id string) (rec *dbmodels.Empresa, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Empresa, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Empresa) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Empresa, error) {
	rec := dbmodels.Empresa{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Empresa{}).
		Where("id = ?", id).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Empresa{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Empresa, err error) {
	list = []dbmodels.Empresa{}
	err = i.db.
		Order("nombre").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
