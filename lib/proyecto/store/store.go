package proyectostore

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	proyectoapimodels "grc-maturity-backend/models/api/proyecto"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ProyectoCierreBrecha) (id string, err error)
	GetByID(empresaID, id string) (rec *dbmodels.ProyectoCierreBrecha, err error)
	GetByIDForUpdate(empresaID, id string) (rec *dbmodels.ProyectoCierreBrecha, err error)
	GetByCalculoNivel(empresaID, calculoNivelID string) (rec *dbmodels.ProyectoCierreBrecha, err error)
	CountByCalculoNivel(empresaID, calculoNivelID string) (total int64, err error)
	Update(empresaID, id string, updMap map[string]interface{}) error
	Delete(empresaID, id string) error
	List(empresaID string, filter proyectoapimodels.ProyectoFilter) (list []dbmodels.ProyectoCierreBrecha, rowCount int64, err error)
	SiguienteSecuencia(anio int) (seq int, err error)
	AddPregunta(rec dbmodels.ProyectoPregunta) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProyectoCierreBrecha) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(empresaID, id string) (*dbmodels.ProyectoCierreBrecha, error) {
	rec := dbmodels.ProyectoCierreBrecha{}
	err := i.db.
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Preload(clause.Associations).
		Preload("CalculoNivel.Dimension").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_proyectos.numero_item")
		}).
		Preload("PreguntasAbordadas.Pregunta").
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

// GetByIDForUpdate bloquea la fila del proyecto dentro de la transacción
// en curso, para serializar solicitudes de aprobación concurrentes
func (i impl) GetByIDForUpdate(empresaID, id string) (*dbmodels.ProyectoCierreBrecha, error) {
	rec := dbmodels.ProyectoCierreBrecha{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
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

func (i impl) GetByCalculoNivel(empresaID, calculoNivelID string) (*dbmodels.ProyectoCierreBrecha, error) {
	rec := dbmodels.ProyectoCierreBrecha{}
	err := i.db.
		Where("empresa_id = ?", empresaID).
		Where("calculo_nivel_id = ?", calculoNivelID).
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

// CountByCalculoNivel cuenta los proyectos activos derivados de la brecha,
// para numerar las fases sucesivas
func (i impl) CountByCalculoNivel(empresaID, calculoNivelID string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.ProyectoCierreBrecha{}).
		Where("empresa_id = ?", empresaID).
		Where("calculo_nivel_id = ?", calculoNivelID).
		Count(&total).
		Error
	return total, err
}

func (i impl) Update(empresaID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ProyectoCierreBrecha{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) Delete(empresaID, id string) error {
	rec := dbmodels.ProyectoCierreBrecha{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			EmpresaID: empresaID,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List(empresaID string, filter proyectoapimodels.ProyectoFilter) (list []dbmodels.ProyectoCierreBrecha, rowCount int64, err error) {
	list = []dbmodels.ProyectoCierreBrecha{}
	tx := i.db.
		Model(&dbmodels.ProyectoCierreBrecha{}).
		Where("empresa_id = ?", empresaID)
	if filter.Estado != "" {
		tx = tx.Where("estado = ?", filter.Estado)
	}
	if filter.Prioridad != "" {
		tx = tx.Where("prioridad = ?", filter.Prioridad)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload("CalculoNivel.Dimension").
		Preload("Items").
		Order("codigo_proyecto").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// SiguienteSecuencia calcula el correlativo anual de códigos REM-AAAA-NNN.
// La numeración es global, los registros borrados siguen reservando su número.
func (i impl) SiguienteSecuencia(anio int) (seq int, err error) {
	var total int64
	prefijo := fmt.Sprintf("REM-%d-%%", anio)
	err = i.db.
		Unscoped().
		Model(&dbmodels.ProyectoCierreBrecha{}).
		Where("codigo_proyecto LIKE ?", prefijo).
		Count(&total).
		Error
	if err != nil {
		return 0, err
	}
	return int(total) + 1, nil
}

func (i impl) AddPregunta(rec dbmodels.ProyectoPregunta) error {
	return i.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rec).
		Error
}
