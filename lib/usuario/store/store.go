package usuariostore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Usuario) (id string, err error)
	GetByID(id string) (rec *dbmodels.Usuario, err error)
	GetByEmail(email string) (rec *dbmodels.Usuario, err error)
	GetDeEmpresa(empresaID, id string) (rec *dbmodels.Usuario, err error)
	Update(id string, updMap map[string]interface{}) error
	List(empresaID string) (list []dbmodels.Usuario, err error)
	ListAdmins(empresaID string) (list []dbmodels.Usuario, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Usuario) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Usuario, error) {
	rec := dbmodels.Usuario{}
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

func (i impl) GetByEmail(email string) (*dbmodels.Usuario, error) {
	rec := dbmodels.Usuario{}
	err := i.db.
		Where("lower(email) = lower(?)", email).
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

// GetDeEmpresa devuelve el usuario solo si pertenece a la empresa indicada
func (i impl) GetDeEmpresa(empresaID, id string) (*dbmodels.Usuario, error) {
	rec := dbmodels.Usuario{}
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Usuario{}).
		Where("id = ?", id).
		Updates(updMap)
	return db.ResultadoUpdate(tx)
}

func (i impl) List(empresaID string) (list []dbmodels.Usuario, err error) {
	list = []dbmodels.Usuario{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Order("nombre_completo").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAdmins(empresaID string) (list []dbmodels.Usuario, err error) {
	list = []dbmodels.Usuario{}
	err = i.db.
		Where("empresa_id = ?", empresaID).
		Where("rol = ?", models.EmpresaAdminRole).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
