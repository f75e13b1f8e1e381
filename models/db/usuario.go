package dbmodels

import "grc-maturity-backend/models"

type Usuario struct {
	BaseModel
	EmpresaID      *string         `gorm:"type:varchar(36);index"`
	Empresa        *Empresa        `gorm:"foreignKey:EmpresaID"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash   string          `gorm:"type:varchar(255)"`
	NombreCompleto string          `gorm:"type:varchar(300)"`
	Rol            models.UserRole `gorm:"type:varchar(50)"`
	Cargo          string          `gorm:"type:varchar(150)"`
}

// PerteneceA valida la pertenencia del usuario a una empresa
func (u Usuario) PerteneceA(empresaID string) bool {
	return u.EmpresaID != nil && *u.EmpresaID == empresaID
}
