package proyectoitemstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ItemProyecto) (id string, err error)
	GetByID(empresaID, id string) (rec *dbmodels.ItemProyecto, err error)
	Update(empresaID, id string, updMap map[string]interface{}) error
	Delete(empresaID, id string) error
	ListByProyecto(empresaID, proyectoID string) (list []dbmodels.ItemProyecto, err error)
	ListDependientes(empresaID, itemID string) (list []dbmodels.ItemProyecto, err error)
	SiguienteNumero(proyectoID string) (numero int, err error)
	SumPresupuestoEjecutado(proyectoID string) (total float64, err error)
	CountByEstado(proyectoID string, estado models.ItemEstado) (total int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ItemProyecto) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(empresaID, id string) (*dbmodels.ItemProyecto, error) {
	rec := dbmodels.ItemProyecto{}
	err := i.db.
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Preload("Dependencia").
		Preload("Proveedor").
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

func (i impl) Update(empresaID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ItemProyecto{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) Delete(empresaID, id string) error {
	rec := dbmodels.ItemProyecto{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			EmpresaID: empresaID,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ListByProyecto(empresaID, proyectoID string) (list []dbmodels.ItemProyecto, err error) {
	list = []dbmodels.ItemProyecto{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("proyecto_id = ?", proyectoID).
		Preload("Dependencia").
		Order("numero_item").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListDependientes devuelve los ítems bloqueados que dependen del ítem dado
func (i impl) ListDependientes(empresaID, itemID string) (list []dbmodels.ItemProyecto, err error) {
	list = []dbmodels.ItemProyecto{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("dependencia_id = ?", itemID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SiguienteNumero(proyectoID string) (numero int, err error) {
	var max *int
	err = i.db.
		Model(&dbmodels.ItemProyecto{}).
		Where("proyecto_id = ?", proyectoID).
		Select("MAX(numero_item)").
		Scan(&max).
		Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

func (i impl) SumPresupuestoEjecutado(proyectoID string) (total float64, err error) {
	err = i.db.
		Model(&dbmodels.ItemProyecto{}).
		Where("proyecto_id = ?", proyectoID).
		Select("COALESCE(SUM(presupuesto_ejecutado), 0)").
		Scan(&total).
		Error
	return total, err
}

func (i impl) CountByEstado(proyectoID string, estado models.ItemEstado) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.ItemProyecto{}).
		Where("proyecto_id = ?", proyectoID).
		Where("estado = ?", estado).
		Count(&total).
		Error
	return total, err
}
