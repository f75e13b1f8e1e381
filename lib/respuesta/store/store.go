package respuestastore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Respuesta) (id string, err error)
	GetByID(empresaID, id string) (rec *dbmodels.Respuesta, err error)
	GetByAsignacionPregunta(empresaID, asignacionID, preguntaID string) (rec *dbmodels.Respuesta, err error)
	Update(empresaID, id string, updMap map[string]interface{}) error
	ListByAsignacion(empresaID, asignacionID string) (list []dbmodels.Respuesta, err error)
	CountRespondidas(empresaID, asignacionID string) (total int64, err error)
	ResetEnviadas(empresaID, asignacionID string) error
	CreateEvidencia(rec dbmodels.Evidencia) (id string, err error)
	GetEvidencia(empresaID, id string) (rec *dbmodels.Evidencia, err error)
	CountEvidencias(respuestaID string) (total int64, err error)
	DeleteEvidencia(empresaID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Respuesta) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(empresaID, id string) (*dbmodels.Respuesta, error) {
	rec := dbmodels.Respuesta{}
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

func (i impl) GetByAsignacionPregunta(empresaID, asignacionID, preguntaID string) (*dbmodels.Respuesta, error) {
	rec := dbmodels.Respuesta{}
	err := i.db.
		Where("empresa_id = ?", empresaID).
		Where("asignacion_id = ?", asignacionID).
		Where("pregunta_id = ?", preguntaID).
		Preload("Evidencias").
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
		Model(&dbmodels.Respuesta{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) ListByAsignacion(empresaID, asignacionID string) (list []dbmodels.Respuesta, err error) {
	list = []dbmodels.Respuesta{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("asignacion_id = ?", asignacionID).
		Preload("Pregunta").
		Preload("Evidencias").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountRespondidas cuenta solo respuestas enviadas o corregidas por el
// administrador, los borradores no avanzan el progreso
func (i impl) CountRespondidas(empresaID, asignacionID string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.Respuesta{}).
		Where("empresa_id = ?", empresaID).
		Where("asignacion_id = ?", asignacionID).
		Where("estado IN ?", []models.RespuestaEstado{
			models.RespuestaEstadoEnviado,
			models.RespuestaEstadoModificadoAdmin,
		}).
		Count(&total).
		Error
	return total, err
}

// ResetEnviadas regresa a borrador las respuestas de una asignación
// rechazada. Corre sobre la conexión con la que se creó el store, que en
// el rechazo es la transacción en curso.
func (i impl) ResetEnviadas(empresaID, asignacionID string) error {
	return i.db.
		Model(&dbmodels.Respuesta{}).
		Where("empresa_id = ?", empresaID).
		Where("asignacion_id = ?", asignacionID).
		Where("estado = ?", models.RespuestaEstadoEnviado).
		Update("estado", models.RespuestaEstadoBorrador).
		Error
}

func (i impl) CreateEvidencia(rec dbmodels.Evidencia) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetEvidencia(empresaID, id string) (*dbmodels.Evidencia, error) {
	rec := dbmodels.Evidencia{}
	err := i.db.
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
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

func (i impl) CountEvidencias(respuestaID string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.Evidencia{}).
		Where("respuesta_id = ?", respuestaID).
		Count(&total).
		Error
	return total, err
}

func (i impl) DeleteEvidencia(empresaID, id string) error {
	rec := dbmodels.Evidencia{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			EmpresaID: empresaID,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}
