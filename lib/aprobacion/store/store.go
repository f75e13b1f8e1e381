package aprobacionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AprobacionGAP) (id string, err error)
	GetByID(empresaID, id string) (rec *dbmodels.AprobacionGAP, err error)
	GetPendienteByProyecto(empresaID, proyectoID string) (rec *dbmodels.AprobacionGAP, err error)
	Update(empresaID, id string, updMap map[string]interface{}) error
	ListByProyecto(empresaID, proyectoID string) (list []dbmodels.AprobacionGAP, err error)
	ListPendientesByValidador(empresaID, validadorID string) (list []dbmodels.AprobacionGAP, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AprobacionGAP) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(empresaID, id string) (*dbmodels.AprobacionGAP, error) {
	rec := dbmodels.AprobacionGAP{}
	err := i.db.
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Preload(clause.Associations).
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

func (i impl) GetPendienteByProyecto(empresaID, proyectoID string) (*dbmodels.AprobacionGAP, error) {
	rec := dbmodels.AprobacionGAP{}
	err := i.db.
		Where("empresa_id = ?", empresaID).
		Where("proyecto_id = ?", proyectoID).
		Where("estado = ?", models.AprobacionPendiente).
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
		Model(&dbmodels.AprobacionGAP{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) ListByProyecto(empresaID, proyectoID string) (list []dbmodels.AprobacionGAP, err error) {
	list = []dbmodels.AprobacionGAP{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("proyecto_id = ?", proyectoID).
		Preload("SolicitadoPor").
		Preload("Validador").
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendientesByValidador(empresaID, validadorID string) (list []dbmodels.AprobacionGAP, err error) {
	list = []dbmodels.AprobacionGAP{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("validador_id = ?", validadorID).
		Where("estado = ?", models.AprobacionPendiente).
		Preload("Proyecto").
		Preload("SolicitadoPor").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
