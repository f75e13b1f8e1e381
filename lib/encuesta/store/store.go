package encuestastore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	GetEncuesta(id string) (rec *dbmodels.Encuesta, err error)
	GetDimension(id string) (rec *dbmodels.Dimension, err error)
	GetPregunta(id string) (rec *dbmodels.Pregunta, err error)
	ListDimensiones(encuestaID string) (list []dbmodels.Dimension, err error)
	ListPreguntasDimension(dimensionID string) (list []dbmodels.Pregunta, err error)
	CountPreguntasDimension(dimensionID string) (total int64, err error)
	CountPreguntasEncuesta(encuestaID string) (total int64, err error)
	GetEvaluacion(empresaID, id string) (rec *dbmodels.EvaluacionEmpresa, err error)
	UpdateEvaluacion(empresaID, id string, updMap map[string]interface{}) error
	GetNivelDeseado(empresaID, evaluacionID, dimensionID string) (nivel *float64, err error)
	SaveNivelDeseado(rec dbmodels.ConfigNivelDeseado) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetEncuesta(id string) (*dbmodels.Encuesta, error) {
	rec := dbmodels.Encuesta{}
	err := i.db.
		Where("id = ?", id).
		Preload("Dimensiones", func(db *gorm.DB) *gorm.DB {
			return db.Order("dimensions.orden")
		}).
		Preload("Dimensiones.Preguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("preguntas.orden")
		}).
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

func (i impl) GetDimension(id string) (*dbmodels.Dimension, error) {
	rec := dbmodels.Dimension{}
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

func (i impl) GetPregunta(id string) (*dbmodels.Pregunta, error) {
	rec := dbmodels.Pregunta{}
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

func (i impl) ListDimensiones(encuestaID string) (list []dbmodels.Dimension, err error) {
	list = []dbmodels.Dimension{}
	err = i.db.
		Where("encuesta_id = ?", encuestaID).
		Order("orden").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPreguntasDimension(dimensionID string) (list []dbmodels.Pregunta, err error) {
	list = []dbmodels.Pregunta{}
	err = i.db.
		Where("dimension_id = ?", dimensionID).
		Order("orden").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountPreguntasDimension(dimensionID string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.Pregunta{}).
		Where("dimension_id = ?", dimensionID).
		Count(&total).
		Error
	return total, err
}

func (i impl) CountPreguntasEncuesta(encuestaID string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.Pregunta{}).
		Joins("JOIN dimensions ON dimensions.id = preguntas.dimension_id").
		Where("dimensions.encuesta_id = ?", encuestaID).
		Where("dimensions.deleted_at IS NULL").
		Count(&total).
		Error
	return total, err
}

func (i impl) GetEvaluacion(empresaID, id string) (*dbmodels.EvaluacionEmpresa, error) {
	rec := dbmodels.EvaluacionEmpresa{}
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

func (i impl) UpdateEvaluacion(empresaID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.EvaluacionEmpresa{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

// GetNivelDeseado resuelve el nivel objetivo en cadena: primero la
// configuración de la evaluación, luego la configuración legada de la
// empresa. Devuelve nil cuando no hay ninguna.
func (i impl) GetNivelDeseado(empresaID, evaluacionID, dimensionID string) (*float64, error) {
	rec := dbmodels.ConfigNivelDeseado{}
	err := i.db.
		Where("empresa_id = ?", empresaID).
		Where("dimension_id = ?", dimensionID).
		Where("evaluacion_empresa_id = ?", evaluacionID).
		Order("updated_at DESC").
		First(&rec).
		Error
	if err == nil {
		return &rec.NivelDeseado, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("dimension_id = ?", dimensionID).
		Where("evaluacion_empresa_id IS NULL").
		Order("updated_at DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec.NivelDeseado, nil
}

func (i impl) SaveNivelDeseado(rec dbmodels.ConfigNivelDeseado) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
