package notificacionhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grc-maturity-backend/config"
	"grc-maturity-backend/lib/smtp"
	"grc-maturity-backend/models"
	notificacionapimodels "grc-maturity-backend/models/api/notificacion"
	dbmodels "grc-maturity-backend/models/db"
)

type storeStub struct {
	creadas    []dbmodels.Notificacion
	pendientes []dbmodels.Notificacion
	marcadas   []string
}

func (s *storeStub) Create(rec dbmodels.Notificacion) (string, error) {
	s.creadas = append(s.creadas, rec)
	return "notif-1", nil
}

func (s *storeStub) List(empresaID, usuarioID string, filter notificacionapimodels.NotificacionFilter) ([]dbmodels.Notificacion, int64, error) {
	return nil, 0, nil
}

func (s *storeStub) CountNoLeidas(empresaID, usuarioID string) (int64, error) {
	return 0, nil
}

func (s *storeStub) MarcarLeida(empresaID, usuarioID, id string) error { return nil }

func (s *storeStub) MarcarTodasLeidas(empresaID, usuarioID string) error { return nil }

func (s *storeStub) ListEmailPendientes(limit int) ([]dbmodels.Notificacion, error) {
	if limit < len(s.pendientes) {
		return s.pendientes[:limit], nil
	}
	return s.pendientes, nil
}

func (s *storeStub) MarcarEmailEnviado(id string) error {
	s.marcadas = append(s.marcadas, id)
	return nil
}

type usuarioStub struct {
	usuarios map[string]*dbmodels.Usuario
}

func (s usuarioStub) Create(rec dbmodels.Usuario) (string, error) { return rec.ID, nil }

func (s usuarioStub) GetByID(id string) (*dbmodels.Usuario, error) {
	return s.usuarios[id], nil
}

func (s usuarioStub) GetByEmail(email string) (*dbmodels.Usuario, error) { return nil, nil }

func (s usuarioStub) GetDeEmpresa(empresaID, id string) (*dbmodels.Usuario, error) {
	return s.usuarios[id], nil
}

func (s usuarioStub) Update(id string, updMap map[string]interface{}) error { return nil }

func (s usuarioStub) List(empresaID string) ([]dbmodels.Usuario, error) { return nil, nil }

func (s usuarioStub) ListAdmins(empresaID string) ([]dbmodels.Usuario, error) { return nil, nil }

type correoEnviado struct {
	para   string
	asunto string
}

type smtpStub struct {
	enviados []correoEnviado
	falla    error
}

func (s *smtpStub) SendEMail(from, to, message, subject string) error {
	if s.falla != nil {
		return s.falla
	}
	s.enviados = append(s.enviados, correoEnviado{para: to, asunto: subject})
	return nil
}

func notificacionPendiente(id, usuarioID string) dbmodels.Notificacion {
	return dbmodels.Notificacion{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			EmpresaID: "emp-1",
		},
		UsuarioID: usuarioID,
		Tipo:      models.NotifAsignacionCreada,
		Titulo:    "Nueva evaluación asignada",
		Mensaje:   "Se le ha asignado la evaluación de madurez",
	}
}

// El aviso solo se registra en la bandeja; el correo sale por el barrido
// de pendientes, nunca dentro de la operación que lo generó.
func TestNotificarNoEnviaCorreoInmediato(t *testing.T) {
	store := &storeStub{}
	correo := &smtpStub{}
	smtp.Instance = correo
	h := impl{
		store:        store,
		usuarioStore: usuarioStub{},
	}

	h.Notificar("emp-1", Aviso{
		UsuarioID: "usr-1",
		Tipo:      models.NotifAsignacionCreada,
		Titulo:    "Nueva evaluación asignada",
		Mensaje:   "Se le ha asignado la evaluación de madurez",
	})

	require.Len(t, store.creadas, 1)
	assert.Equal(t, "usr-1", store.creadas[0].UsuarioID)
	assert.False(t, store.creadas[0].EmailEnviado)
	assert.Empty(t, correo.enviados)
}

func TestEnviarCorreosPendientes(t *testing.T) {
	config.Conf = &config.Configuration{}
	store := &storeStub{
		pendientes: []dbmodels.Notificacion{
			notificacionPendiente("n-1", "usr-1"),
			notificacionPendiente("n-2", "usr-2"),
		},
	}
	correo := &smtpStub{}
	smtp.Instance = correo
	h := impl{
		store: store,
		usuarioStore: usuarioStub{usuarios: map[string]*dbmodels.Usuario{
			"usr-1": {Email: "ana@acme.test"},
			"usr-2": {Email: "luis@acme.test"},
		}},
	}

	enviados, err := h.EnviarCorreosPendientes()
	require.NoError(t, err)
	assert.Equal(t, 2, enviados)
	assert.Equal(t, []string{"n-1", "n-2"}, store.marcadas)
	require.Len(t, correo.enviados, 2)
	assert.Equal(t, "ana@acme.test", correo.enviados[0].para)
	assert.Equal(t, "Nueva evaluación asignada", correo.enviados[0].asunto)
}

// Un fallo del servidor de correo deja la notificación pendiente para el
// siguiente barrido
func TestEnviarCorreosPendientesFalloDeEnvio(t *testing.T) {
	config.Conf = &config.Configuration{}
	store := &storeStub{
		pendientes: []dbmodels.Notificacion{notificacionPendiente("n-1", "usr-1")},
	}
	smtp.Instance = &smtpStub{falla: errors.New("conexión rechazada")}
	h := impl{
		store: store,
		usuarioStore: usuarioStub{usuarios: map[string]*dbmodels.Usuario{
			"usr-1": {Email: "ana@acme.test"},
		}},
	}

	enviados, err := h.EnviarCorreosPendientes()
	require.NoError(t, err)
	assert.Zero(t, enviados)
	assert.Empty(t, store.marcadas)
}

// Sin destinatario el registro se marca para no reintentarlo en bucle
func TestEnviarCorreosPendientesDestinatarioInexistente(t *testing.T) {
	config.Conf = &config.Configuration{}
	store := &storeStub{
		pendientes: []dbmodels.Notificacion{notificacionPendiente("n-1", "usr-borrado")},
	}
	correo := &smtpStub{}
	smtp.Instance = correo
	h := impl{
		store:        store,
		usuarioStore: usuarioStub{},
	}

	enviados, err := h.EnviarCorreosPendientes()
	require.NoError(t, err)
	assert.Zero(t, enviados)
	assert.Equal(t, []string{"n-1"}, store.marcadas)
	assert.Empty(t, correo.enviados)
}
