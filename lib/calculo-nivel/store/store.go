package calculonivelstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.CalculoNivel) (id string, err error)
	GetByID(empresaID, id string) (rec *dbmodels.CalculoNivel, err error)
	GetByAsignacion(empresaID, asignacionID string) (rec *dbmodels.CalculoNivel, err error)
	ListByEvaluacion(empresaID, evaluacionID string) (list []dbmodels.CalculoNivel, err error)
	ListByEmpresa(empresaID string) (list []dbmodels.CalculoNivel, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert sobrescribe el cálculo existente de la asignación, nunca duplica
func (i impl) Upsert(rec dbmodels.CalculoNivel) (id string, err error) {
	existente := dbmodels.CalculoNivel{}
	err = i.db.
		Where("asignacion_id = ?", rec.AsignacionID).
		First(&existente).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if err == nil {
		rec.ID = existente.ID
		rec.CreatedAt = existente.CreatedAt
	}
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(empresaID, id string) (*dbmodels.CalculoNivel, error) {
	rec := dbmodels.CalculoNivel{}
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

func (i impl) GetByAsignacion(empresaID, asignacionID string) (*dbmodels.CalculoNivel, error) {
	rec := dbmodels.CalculoNivel{}
	err := i.db.
		Where("empresa_id = ?", empresaID).
		Where("asignacion_id = ?", asignacionID).
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

func (i impl) ListByEvaluacion(empresaID, evaluacionID string) (list []dbmodels.CalculoNivel, err error) {
	list = []dbmodels.CalculoNivel{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("evaluacion_empresa_id = ?", evaluacionID).
		Preload("Dimension").
		Order("gap DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmpresa(empresaID string) (list []dbmodels.CalculoNivel, err error) {
	list = []dbmodels.CalculoNivel{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Preload("Dimension").
		Order("gap DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
