package dbmodels

import (
	"time"

	"grc-maturity-backend/models"
)

// Notificacion es un aviso dirigido a un usuario (bandeja in-app + correo)
type Notificacion struct {
	BaseEmpresaModel
	UsuarioID      string                  `gorm:"type:varchar(36);index:idx_notif_usuario"`
	Tipo           models.NotificacionTipo `gorm:"type:varchar(50);index"`
	Titulo         string                  `gorm:"type:varchar(300)"`
	Mensaje        string
	Url            string `gorm:"type:varchar(500)"`
	Metadata       string `gorm:"type:jsonb;default:'{}'"`
	RequiereAccion bool   `gorm:"default:false"`
	Leida          bool   `gorm:"default:false;index:idx_notif_usuario"`
	LeidaAt        *time.Time
	EmailEnviado   bool `gorm:"default:false;index"`
}
