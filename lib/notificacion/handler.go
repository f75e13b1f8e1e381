package notificacionhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"grc-maturity-backend/config"
	"grc-maturity-backend/db"
	notificacionstore "grc-maturity-backend/lib/notificacion/store"
	"grc-maturity-backend/lib/smtp"
	usuariostore "grc-maturity-backend/lib/usuario/store"
	"grc-maturity-backend/models"
	notificacionapimodels "grc-maturity-backend/models/api/notificacion"
	dbmodels "grc-maturity-backend/models/db"
)

// Aviso es el contenido de una notificación dirigida a un usuario
type Aviso struct {
	UsuarioID      string
	Tipo           models.NotificacionTipo
	Titulo         string
	Mensaje        string
	Url            string
	Metadata       string
	RequiereAccion bool
}

type Provider interface {
	Notificar(empresaID string, aviso Aviso)
	EnviarCorreosPendientes() (enviados int, err error)
	List(empresaID, usuarioID string, filter notificacionapimodels.NotificacionFilter) (list []notificacionapimodels.NotificacionView, rowCount int64, err error)
	CountNoLeidas(empresaID, usuarioID string) (total int64, err error)
	MarcarLeida(empresaID, usuarioID, id string) error
	MarcarTodasLeidas(empresaID, usuarioID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        notificacionstore.NewInstance(db.DB),
		usuarioStore: usuariostore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx registra la notificación dentro de la transacción en curso
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:        notificacionstore.NewInstance(tx),
		usuarioStore: usuariostore.NewInstance(tx),
	}
}

type impl struct {
	store        notificacionstore.Provider
	usuarioStore usuariostore.Provider
}

// Notificar guarda el aviso en la bandeja. El correo sale después, cuando
// el barrido de pendientes lo recoge; así un rollback de la transacción
// que generó el aviso nunca llega a enviar nada.
func (i impl) Notificar(empresaID string, aviso Aviso) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("usuario_id", aviso.UsuarioID).
		WithField("tipo", aviso.Tipo)
	rec := dbmodels.Notificacion{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		UsuarioID:      aviso.UsuarioID,
		Tipo:           aviso.Tipo,
		Titulo:         aviso.Titulo,
		Mensaje:        aviso.Mensaje,
		Url:            aviso.Url,
		RequiereAccion: aviso.RequiereAccion,
	}
	if aviso.Metadata != "" {
		rec.Metadata = aviso.Metadata
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Error registrando la notificación")
	}
}

const loteCorreos = 100

// EnviarCorreosPendientes reenvía por correo las notificaciones ya
// confirmadas en la base. Un fallo de envío deja el registro pendiente
// para el siguiente barrido.
func (i impl) EnviarCorreosPendientes() (enviados int, err error) {
	pendientes, err := i.store.ListEmailPendientes(loteCorreos)
	if err != nil {
		log.WithError(err).Error("Error obteniendo los correos pendientes")
		return 0, err
	}
	for _, rec := range pendientes {
		logger := log.
			WithField("notificacion_id", rec.ID).
			WithField("usuario_id", rec.UsuarioID)
		usuario, userErr := i.usuarioStore.GetByID(rec.UsuarioID)
		if userErr != nil {
			logger.WithError(userErr).Error("Error resolviendo el destinatario")
			continue
		}
		if usuario == nil {
			// sin destinatario no hay reintento que valga
			logger.Warn("Destinatario inexistente, se descarta el correo")
			if markErr := i.store.MarcarEmailEnviado(rec.ID); markErr != nil {
				logger.WithError(markErr).Error("Error marcando la notificación")
			}
			continue
		}
		sendErr := smtp.Instance.SendEMail(config.Conf.Smtp.EmailFrom, usuario.Email, rec.Mensaje, rec.Titulo)
		if sendErr != nil {
			logger.WithError(sendErr).Error("Error enviando la notificación por correo")
			continue
		}
		if markErr := i.store.MarcarEmailEnviado(rec.ID); markErr != nil {
			logger.WithError(markErr).Error("Error marcando la notificación")
			continue
		}
		enviados++
	}
	return enviados, nil
}

func (i impl) List(empresaID, usuarioID string, filter notificacionapimodels.NotificacionFilter) (list []notificacionapimodels.NotificacionView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(empresaID, usuarioID, filter)
	if err != nil {
		log.
			WithField("empresa_id", empresaID).
			WithError(err).
			Error("Error obteniendo las notificaciones")
		return nil, 0, err
	}
	result := make([]notificacionapimodels.NotificacionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificacionapimodels.NotificacionConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) CountNoLeidas(empresaID, usuarioID string) (total int64, err error) {
	return i.store.CountNoLeidas(empresaID, usuarioID)
}

func (i impl) MarcarLeida(empresaID, usuarioID, id string) error {
	return i.store.MarcarLeida(empresaID, usuarioID, id)
}

func (i impl) MarcarTodasLeidas(empresaID, usuarioID string) error {
	return i.store.MarcarTodasLeidas(empresaID, usuarioID)
}
