package asignacionstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	"grc-maturity-backend/models"
	asignacionapimodels "grc-maturity-backend/models/api/asignacion"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Asignacion) (id string, err error)
	GetByID(empresaID, id string) (rec *dbmodels.Asignacion, err error)
	Update(empresaID, id string, updMap map[string]interface{}) error
	Delete(empresaID, id string) error
	List(empresaID string, filter asignacionapimodels.AsignacionFilter) (list []dbmodels.Asignacion, rowCount int64, err error)
	ListByEvaluacion(empresaID, evaluacionID string) (list []dbmodels.Asignacion, err error)
	ListVencidas(limite time.Time) (list []dbmodels.Asignacion, err error)
	ExisteActiva(empresaID, evaluacionID, usuarioID string, dimensionID *string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Asignacion) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(empresaID, id string) (*dbmodels.Asignacion, error) {
	rec := dbmodels.Asignacion{}
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

func (i impl) Update(empresaID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Asignacion{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) Delete(empresaID, id string) error {
	rec := dbmodels.Asignacion{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			EmpresaID: empresaID,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List(empresaID string, filter asignacionapimodels.AsignacionFilter) (list []dbmodels.Asignacion, rowCount int64, err error) {
	list = []dbmodels.Asignacion{}
	tx := i.db.
		Model(&dbmodels.Asignacion{}).
		Where("empresa_id = ?", empresaID)
	if filter.EvaluacionEmpresaID != "" {
		tx = tx.Where("evaluacion_empresa_id = ?", filter.EvaluacionEmpresaID)
	}
	if filter.UsuarioID != "" {
		tx = tx.Where("usuario_asignado_id = ?", filter.UsuarioID)
	}
	if filter.DimensionID != "" {
		tx = tx.Where("dimension_id = ?", filter.DimensionID)
	}
	if filter.Estado != "" {
		tx = tx.Where("estado = ?", filter.Estado)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload(clause.Associations).
		Order("fecha_limite").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByEvaluacion(empresaID, evaluacionID string) (list []dbmodels.Asignacion, err error) {
	list = []dbmodels.Asignacion{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("evaluacion_empresa_id = ?", evaluacionID).
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListVencidas devuelve asignaciones activas con fecha límite superada,
// de todas las empresas, para el barrido del worker
func (i impl) ListVencidas(limite time.Time) (list []dbmodels.Asignacion, err error) {
	list = []dbmodels.Asignacion{}
	err = i.db.
		Where("estado IN ?", []models.AsignacionEstado{
			models.AsignacionPendiente,
			models.AsignacionEnProgreso,
			models.AsignacionPendienteRevision,
		}).
		Where("fecha_limite < ?", limite).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ExisteActiva detecta una asignación no terminal duplicada para el mismo
// usuario y alcance
func (i impl) ExisteActiva(empresaID, evaluacionID, usuarioID string, dimensionID *string) (bool, error) {
	var total int64
	tx := i.db.
		Model(&dbmodels.Asignacion{}).
		Where("empresa_id = ?", empresaID).
		Where("evaluacion_empresa_id = ?", evaluacionID).
		Where("usuario_asignado_id = ?", usuarioID).
		Where("estado NOT IN ?", []models.AsignacionEstado{
			models.AsignacionCompletado,
			models.AsignacionRechazado,
		})
	if dimensionID == nil || *dimensionID == "" {
		tx = tx.Where("dimension_id IS NULL")
	} else {
		tx = tx.Where("dimension_id = ?", *dimensionID)
	}
	err := tx.Count(&total).Error
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
