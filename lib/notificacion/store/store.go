package notificacionstore

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grc-maturity-backend/db"
	notificacionapimodels "grc-maturity-backend/models/api/notificacion"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notificacion) (id string, err error)
	List(empresaID, usuarioID string, filter notificacionapimodels.NotificacionFilter) (list []dbmodels.Notificacion, rowCount int64, err error)
	CountNoLeidas(empresaID, usuarioID string) (total int64, err error)
	MarcarLeida(empresaID, usuarioID, id string) error
	MarcarTodasLeidas(empresaID, usuarioID string) error
	ListEmailPendientes(limit int) (list []dbmodels.Notificacion, err error)
	MarcarEmailEnviado(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notificacion) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(empresaID, usuarioID string, filter notificacionapimodels.NotificacionFilter) (list []dbmodels.Notificacion, rowCount int64, err error) {
	list = []dbmodels.Notificacion{}
	tx := i.db.
		Model(&dbmodels.Notificacion{}).
		Where("empresa_id = ?", empresaID).
		Where("usuario_id = ?", usuarioID)
	if filter.SoloNoLeidas {
		tx = tx.Where("leida = false")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) CountNoLeidas(empresaID, usuarioID string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.Notificacion{}).
		Where("empresa_id = ?", empresaID).
		Where("usuario_id = ?", usuarioID).
		Where("leida = false").
		Count(&total).
		Error
	return total, err
}

func (i impl) MarcarLeida(empresaID, usuarioID, id string) error {
	tx := i.db.
		Model(&dbmodels.Notificacion{}).
		Where("id = ?", id).
		Where("empresa_id = ?", empresaID).
		Where("usuario_id = ?", usuarioID).
		Updates(map[string]interface{}{
			"leida":    true,
			"leida_at": time.Now(),
		})
	return db.ResultadoUpdate(tx)
}

func (i impl) MarcarTodasLeidas(empresaID, usuarioID string) error {
	return i.db.
		Model(&dbmodels.Notificacion{}).
		Where("empresa_id = ?", empresaID).
		Where("usuario_id = ?", usuarioID).
		Where("leida = false").
		Updates(map[string]interface{}{
			"leida":    true,
			"leida_at": time.Now(),
		}).
		Error
}

// ListEmailPendientes devuelve las notificaciones cuyo correo aún no ha
// salido, en orden de creación
func (i impl) ListEmailPendientes(limit int) (list []dbmodels.Notificacion, err error) {
	list = []dbmodels.Notificacion{}
	err = i.db.
		Where("email_enviado = false").
		Order("created_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarcarEmailEnviado(id string) error {
	return i.db.
		Model(&dbmodels.Notificacion{}).
		Where("id = ?", id).
		Update("email_enviado", true).
		Error
}
