package dbmodels

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string         `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BaseEmpresaModel es la base de toda entidad aislada por empresa (multi-tenant)
type BaseEmpresaModel struct {
	BaseModel
	EmpresaID string `gorm:"type:varchar(36);index" json:"empresa_id"`
}
