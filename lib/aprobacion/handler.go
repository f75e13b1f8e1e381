package aprobacionhandler

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"grc-maturity-backend/db"
	aprobacionstore "grc-maturity-backend/lib/aprobacion/store"
	notificacionhandler "grc-maturity-backend/lib/notificacion"
	proyectostore "grc-maturity-backend/lib/proyecto/store"
	"grc-maturity-backend/models"
	aprobacionapimodels "grc-maturity-backend/models/api/aprobacion"
	dbmodels "grc-maturity-backend/models/db"
)

// errYaPendiente aborta la transacción cuando otro solicitante ganó la
// carrera por la única solicitud pendiente permitida
var errYaPendiente = errors.New("el proyecto ya tiene una solicitud de aprobación pendiente")

type Provider interface {
	Solicitar(empresaID, usuarioID, proyectoID string, data aprobacionapimodels.SolicitudData) (id, hMsg string, err error)
	Aprobar(empresaID, validadorID, id string, data aprobacionapimodels.DecisionData) (hMsg string, err error)
	Rechazar(empresaID, validadorID, id string, data aprobacionapimodels.DecisionData) (hMsg string, err error)
	GetByID(empresaID, id string) (item aprobacionapimodels.AprobacionView, err error)
	ListByProyecto(empresaID, proyectoID string) (list []aprobacionapimodels.AprobacionView, err error)
	ListPendientes(empresaID, validadorID string) (list []aprobacionapimodels.AprobacionView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:            db.DB,
		store:         aprobacionstore.NewInstance(db.DB),
		proyectoStore: proyectostore.NewInstance(db.DB),
	}
}

type impl struct {
	db            *gorm.DB
	store         aprobacionstore.Provider
	proyectoStore proyectostore.Provider
}

// Solicitar abre la solicitud formal de cierre del proyecto y su brecha.
// En modo por ítems todos los ítems deben estar completados. La fila del
// proyecto se bloquea en la transacción para que dos solicitudes
// concurrentes no produzcan dos pendientes.
func (i impl) Solicitar(empresaID, usuarioID, proyectoID string, data aprobacionapimodels.SolicitudData) (id, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("proyecto_id", proyectoID)
	proyecto, err := i.proyectoStore.GetByID(empresaID, proyectoID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo el proyecto")
		return "", "", err
	}
	if proyecto == nil {
		return "", "proyecto no encontrado", nil
	}
	if !proyecto.Estado.PermiteSolicitarAprobacion() {
		return "", fmt.Sprintf("no se puede solicitar aprobación con el proyecto en estado %s",
			proyecto.Estado.ToHuman()), nil
	}
	if proyecto.ValidadorInternoID == nil {
		return "", "el proyecto no tiene validador interno asignado", nil
	}

	itemsCompletados := 0
	for _, item := range proyecto.Items {
		if item.Estado.EsCompletado() {
			itemsCompletados++
		}
	}
	if proyecto.ModoPresupuesto == models.PresupuestoPorItems {
		if len(proyecto.Items) == 0 {
			return "", "el proyecto por ítems no tiene ítems que aprobar", nil
		}
		if pendientes := len(proyecto.Items) - itemsCompletados; pendientes > 0 {
			return "", fmt.Sprintf("el proyecto tiene %d ítem(s) sin completar", pendientes), nil
		}
	}

	ejecutado := proyecto.PresupuestoGlobalGastado
	planificado := proyecto.PresupuestoGlobal
	if proyecto.ModoPresupuesto == models.PresupuestoPorItems {
		ejecutado = 0
		planificado = 0
		for _, item := range proyecto.Items {
			ejecutado += item.PresupuestoEjecutado
			planificado += item.PresupuestoPlanificado
		}
	}
	gapOriginal := 0.0
	if proyecto.CalculoNivel != nil {
		gapOriginal = proyecto.CalculoNivel.Gap
	}
	rec := dbmodels.AprobacionGAP{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		ProyectoID:             proyectoID,
		SolicitadoPorID:        usuarioID,
		ValidadorID:            *proyecto.ValidadorInternoID,
		Estado:                 models.AprobacionPendiente,
		ComentariosSolicitud:   data.Comentarios,
		DocumentosAdjuntos:     pq.StringArray(data.Documentos),
		ItemsCompletados:       itemsCompletados,
		ItemsTotales:           len(proyecto.Items),
		PresupuestoEjecutado:   ejecutado,
		PresupuestoPlanificado: planificado,
		GapOriginal:            gapOriginal,
	}

	err = i.db.Transaction(func(tx *gorm.DB) error {
		txProyectoStore := proyectostore.NewInstance(tx)
		txStore := aprobacionstore.NewInstance(tx)
		bloqueado, err := txProyectoStore.GetByIDForUpdate(empresaID, proyectoID)
		if err != nil {
			return err
		}
		if bloqueado == nil || !bloqueado.Estado.PermiteSolicitarAprobacion() {
			return errYaPendiente
		}
		pendiente, err := txStore.GetPendienteByProyecto(empresaID, proyectoID)
		if err != nil {
			return err
		}
		if pendiente != nil {
			return errYaPendiente
		}
		id, err = txStore.Create(rec)
		if err != nil {
			return err
		}
		err = txProyectoStore.Update(empresaID, proyectoID, map[string]interface{}{
			"estado":  models.ProyectoEnValidacion,
			"version": bloqueado.Version + 1,
		})
		if err != nil {
			return err
		}
		notificacionhandler.NewHandlerWithTx(tx).Notificar(empresaID, notificacionhandler.Aviso{
			UsuarioID: *proyecto.ValidadorInternoID,
			Tipo:      models.NotifProyectoEnValidacion,
			Titulo:    "Solicitud de cierre de brecha",
			Mensaje: fmt.Sprintf("El proyecto %s (%s) solicita su aprobación de cierre",
				proyecto.CodigoProyecto, proyecto.NombreProyecto),
			Url:            fmt.Sprintf("/aprobaciones/%s", id),
			RequiereAccion: true,
		})
		return nil
	})
	if errors.Is(err, errYaPendiente) {
		return "", err.Error(), nil
	}
	if err != nil {
		logger.WithError(err).Error("Error creando la solicitud de aprobación")
		return "", "", err
	}
	logger.
		WithField("aprobacion_id", id).
		WithField("validador_id", *proyecto.ValidadorInternoID).
		Info("Solicitud de cierre de brecha creada")
	return id, "", nil
}

// Aprobar cierra el proyecto y da la brecha por remediada. Solo el
// validador asignado puede decidir.
func (i impl) Aprobar(empresaID, validadorID, id string, data aprobacionapimodels.DecisionData) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("aprobacion_id", id)
	rec, hMsg, err := i.getPendienteParaRevision(empresaID, validadorID, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	ahora := time.Now()
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStore := aprobacionstore.NewInstance(tx)
		txProyectoStore := proyectostore.NewInstance(tx)
		err := txStore.Update(empresaID, id, map[string]interface{}{
			"estado":         models.AprobacionAprobado,
			"observaciones":  data.Observaciones,
			"fecha_revision": ahora,
		})
		if err != nil {
			return err
		}
		err = txProyectoStore.Update(empresaID, rec.ProyectoID, map[string]interface{}{
			"estado":          models.ProyectoCerrado,
			"fecha_fin_real":  ahora,
			"resultado_final": "brecha_cerrada",
		})
		if err != nil {
			return err
		}
		notificacionhandler.NewHandlerWithTx(tx).Notificar(empresaID, notificacionhandler.Aviso{
			UsuarioID: rec.SolicitadoPorID,
			Tipo:      models.NotifCierreGapAprobado,
			Titulo:    "Cierre de brecha aprobado",
			Mensaje:   "La solicitud de cierre fue aprobada y el proyecto quedó cerrado",
			Url:       fmt.Sprintf("/proyectos/%s", rec.ProyectoID),
		})
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Error aprobando el cierre de brecha")
		return "", err
	}
	logger.WithField("proyecto_id", rec.ProyectoID).Info("Cierre de brecha aprobado")
	return "", nil
}

// Rechazar devuelve el proyecto a ejecución con las observaciones del
// validador. Las observaciones son obligatorias.
func (i impl) Rechazar(empresaID, validadorID, id string, data aprobacionapimodels.DecisionData) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("aprobacion_id", id)
	if err := data.ValidateRechazo(); err != nil {
		return err.Error(), nil
	}
	rec, hMsg, err := i.getPendienteParaRevision(empresaID, validadorID, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStore := aprobacionstore.NewInstance(tx)
		txProyectoStore := proyectostore.NewInstance(tx)
		err := txStore.Update(empresaID, id, map[string]interface{}{
			"estado":         models.AprobacionRechazado,
			"observaciones":  data.Observaciones,
			"fecha_revision": time.Now(),
		})
		if err != nil {
			return err
		}
		err = txProyectoStore.Update(empresaID, rec.ProyectoID, map[string]interface{}{
			"estado": models.ProyectoEnEjecucion,
		})
		if err != nil {
			return err
		}
		notificacionhandler.NewHandlerWithTx(tx).Notificar(empresaID, notificacionhandler.Aviso{
			UsuarioID:      rec.SolicitadoPorID,
			Tipo:           models.NotifCierreGapRechazado,
			Titulo:         "Cierre de brecha rechazado",
			Mensaje:        fmt.Sprintf("La solicitud de cierre fue rechazada: %s", data.Observaciones),
			Url:            fmt.Sprintf("/proyectos/%s", rec.ProyectoID),
			RequiereAccion: true,
		})
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Error rechazando el cierre de brecha")
		return "", err
	}
	logger.WithField("proyecto_id", rec.ProyectoID).Info("Cierre de brecha rechazado")
	return "", nil
}

func (i impl) getPendienteParaRevision(empresaID, validadorID, id string) (rec *dbmodels.AprobacionGAP, hMsg string, err error) {
	rec, err = i.store.GetByID(empresaID, id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "solicitud de aprobación no encontrada", nil
	}
	if rec.Estado != models.AprobacionPendiente {
		return nil, "la solicitud ya fue revisada", nil
	}
	if rec.ValidadorID != validadorID {
		return nil, "solo el validador asignado puede revisar la solicitud", nil
	}
	return rec, "", nil
}

func (i impl) GetByID(empresaID, id string) (item aprobacionapimodels.AprobacionView, err error) {
	rec, err := i.store.GetByID(empresaID, id)
	if err != nil {
		return aprobacionapimodels.AprobacionView{}, err
	}
	if rec == nil {
		return aprobacionapimodels.AprobacionView{}, errors.New("solicitud de aprobación no encontrada")
	}
	return aprobacionapimodels.AprobacionConvert(*rec), nil
}

func (i impl) ListByProyecto(empresaID, proyectoID string) (list []aprobacionapimodels.AprobacionView, err error) {
	recList, err := i.store.ListByProyecto(empresaID, proyectoID)
	if err != nil {
		return nil, err
	}
	result := make([]aprobacionapimodels.AprobacionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, aprobacionapimodels.AprobacionConvert(rec))
	}
	return result, nil
}

func (i impl) ListPendientes(empresaID, validadorID string) (list []aprobacionapimodels.AprobacionView, err error) {
	recList, err := i.store.ListPendientesByValidador(empresaID, validadorID)
	if err != nil {
		return nil, err
	}
	result := make([]aprobacionapimodels.AprobacionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, aprobacionapimodels.AprobacionConvert(rec))
	}
	return result, nil
}
