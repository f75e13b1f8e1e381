package proyectohandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"grc-maturity-backend/db"
	asignacionstore "grc-maturity-backend/lib/asignacion/store"
	calculonivelstore "grc-maturity-backend/lib/calculo-nivel/store"
	encuestastore "grc-maturity-backend/lib/encuesta/store"
	notificacionhandler "grc-maturity-backend/lib/notificacion"
	proveedorstore "grc-maturity-backend/lib/proveedor/store"
	proyectoitemstore "grc-maturity-backend/lib/proyecto/item-store"
	proyectostore "grc-maturity-backend/lib/proyecto/store"
	respuestastore "grc-maturity-backend/lib/respuesta/store"
	usuariostore "grc-maturity-backend/lib/usuario/store"
	"grc-maturity-backend/lib/utils/lock"
	"grc-maturity-backend/models"
	proyectoapimodels "grc-maturity-backend/models/api/proyecto"
	dbmodels "grc-maturity-backend/models/db"
)

const lockCodigoProyecto = "codigo-proyecto"

type Provider interface {
	CrearDesdeGap(empresaID, usuarioID string, data proyectoapimodels.ProyectoDesdeGapData) (id, hMsg string, err error)
	GetByID(empresaID, id string) (item proyectoapimodels.ProyectoView, err error)
	List(empresaID string, filter proyectoapimodels.ProyectoFilter) (list []proyectoapimodels.ProyectoView, rowCount int64, err error)
	Update(empresaID, id string, data proyectoapimodels.ProyectoEditData) (hMsg string, err error)
	Delete(empresaID, id string) (hMsg string, err error)
	AgregarItem(empresaID, proyectoID string, data proyectoapimodels.ItemData) (id, hMsg string, err error)
	ActualizarItem(empresaID, proyectoID, itemID string, data proyectoapimodels.ItemUpdateData) (hMsg string, err error)
	EliminarItem(empresaID, proyectoID, itemID string) (hMsg string, err error)
	ReordenarItems(empresaID, proyectoID string, data proyectoapimodels.ItemReorderData) (hMsg string, err error)
	ListItems(empresaID, proyectoID string) (list []proyectoapimodels.ItemView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:              db.DB,
		store:           proyectostore.NewInstance(db.DB),
		itemStore:       proyectoitemstore.NewInstance(db.DB),
		calculoStore:    calculonivelstore.NewInstance(db.DB),
		asignacionStore: asignacionstore.NewInstance(db.DB),
		encuestaStore:   encuestastore.NewInstance(db.DB),
		respuestaStore:  respuestastore.NewInstance(db.DB),
		usuarioStore:    usuariostore.NewInstance(db.DB),
		proveedorStore:  proveedorstore.NewInstance(db.DB),
	}
}

type impl struct {
	db              *gorm.DB
	store           proyectostore.Provider
	itemStore       proyectoitemstore.Provider
	calculoStore    calculonivelstore.Provider
	asignacionStore asignacionstore.Provider
	encuestaStore   encuestastore.Provider
	respuestaStore  respuestastore.Provider
	usuarioStore    usuariostore.Provider
	proveedorStore  proveedorstore.Provider
}

// CrearDesdeGap crea el proyecto de remediación a partir de una brecha
// calculada. El código REM se genera bajo candado para evitar duplicados
// y las preguntas no conformes de la asignación quedan vinculadas.
func (i impl) CrearDesdeGap(empresaID, usuarioID string, data proyectoapimodels.ProyectoDesdeGapData) (id, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("calculo_nivel_id", data.CalculoNivelID)
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	calculo, err := i.calculoStore.GetByID(empresaID, data.CalculoNivelID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo la brecha")
		return "", "", err
	}
	if calculo == nil {
		return "", "brecha no encontrada", nil
	}

	nombre := data.NombreProyecto
	if nombre == "" {
		nombre = "Cierre de brecha"
		if calculo.Dimension != nil {
			nombre = fmt.Sprintf("Cierre de brecha - %s", calculo.Dimension.Nombre)
		}
	}
	previos, err := i.store.CountByCalculoNivel(empresaID, data.CalculoNivelID)
	if err != nil {
		return "", "", err
	}
	if previos > 0 {
		nombre = fmt.Sprintf("%s (Fase %d)", nombre, previos+1)
	}

	dueno, err := i.usuarioStore.GetDeEmpresa(empresaID, data.DuenoProyectoID)
	if err != nil {
		return "", "", err
	}
	if dueno == nil {
		return "", "el dueño del proyecto no pertenece a la empresa", nil
	}
	responsable, err := i.usuarioStore.GetDeEmpresa(empresaID, data.ResponsableImplementacionID)
	if err != nil {
		return "", "", err
	}
	if responsable == nil {
		return "", "el responsable de implementación no pertenece a la empresa", nil
	}
	validadorID, hMsg, err := i.resolverValidador(empresaID, usuarioID, data.ValidadorInternoID, *calculo)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}

	categoria := data.Categoria
	if categoria == "" {
		categoria = models.CategoriaTecnico
	}
	modo := data.ModoEfectivo()
	moneda := data.Moneda
	if moneda == "" {
		moneda = models.MonedaUSD
	}
	fechaInicio, _ := data.GetFechaInicio()
	fechaFin, _ := data.GetFechaFinEstimada()

	respuestas, err := i.respuestaStore.ListByAsignacion(empresaID, calculo.AsignacionID)
	if err != nil {
		return "", "", err
	}
	preguntasNoConformes := []string{}
	for _, respuesta := range respuestas {
		if respuesta.Respuesta == models.RespuestaNoCumple || respuesta.Respuesta == models.RespuestaCumpleParcial {
			preguntasNoConformes = append(preguntasNoConformes, respuesta.PreguntaID)
		}
	}

	rec := dbmodels.ProyectoCierreBrecha{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		NombreProyecto:              nombre,
		Descripcion:                 data.Descripcion,
		CalculoNivelID:              calculo.ID,
		Estado:                      models.ProyectoPlanificado,
		Prioridad:                   calculo.ClasificacionGap.PrioridadProyecto(),
		Categoria:                   categoria,
		FechaInicio:                 fechaInicio,
		FechaFinEstimada:            fechaFin,
		DuenoProyectoID:             data.DuenoProyectoID,
		ResponsableImplementacionID: data.ResponsableImplementacionID,
		ValidadorInternoID:          &validadorID,
		ModoPresupuesto:             modo,
		Moneda:                      moneda,
		PresupuestoGlobal:           data.PresupuestoGlobal,
		AlcanceProyecto:             data.AlcanceProyecto,
		ObjetivosEspecificos:        data.ObjetivosEspecificos,
		CriteriosAceptacion:         data.CriteriosAceptacion,
		RiesgosProyecto:             data.RiesgosProyecto,
		CreadoPorID:                 &usuarioID,
	}

	// el correlativo anual se serializa con un candado en memoria, la
	// consulta del siguiente número y el insert van en el mismo tramo
	anio := time.Now().Year()
	ok, err := lock.WithDelay(context.Background(), lockCodigoProyecto, 5*time.Second, func() error {
		return i.db.Transaction(func(tx *gorm.DB) error {
			txStore := proyectostore.NewInstance(tx)
			seq, err := txStore.SiguienteSecuencia(anio)
			if err != nil {
				return err
			}
			rec.CodigoProyecto = fmt.Sprintf("REM-%d-%03d", anio, seq)
			id, err = txStore.Create(rec)
			if err != nil {
				return err
			}
			for _, preguntaID := range preguntasNoConformes {
				err = txStore.AddPregunta(dbmodels.ProyectoPregunta{
					ProyectoID: id,
					PreguntaID: preguntaID,
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Error creando el proyecto de remediación")
		return "", "", err
	}
	if !ok {
		return "", "el generador de códigos está ocupado, intente nuevamente", nil
	}
	logger.
		WithField("proyecto_id", id).
		WithField("codigo", rec.CodigoProyecto).
		Info("Proyecto de remediación creado")
	return id, "", nil
}

// resolverValidador aplica la cadena de resolución del validador interno:
// el indicado explícitamente, el admin que asignó la evaluación de origen,
// el administrador de la evaluación, o quien crea el proyecto.
func (i impl) resolverValidador(empresaID, usuarioID, explicito string, calculo dbmodels.CalculoNivel) (validadorID, hMsg string, err error) {
	if explicito != "" {
		validador, err := i.usuarioStore.GetDeEmpresa(empresaID, explicito)
		if err != nil {
			return "", "", err
		}
		if validador == nil {
			return "", "el validador interno no pertenece a la empresa", nil
		}
		return explicito, "", nil
	}
	asignacion, err := i.asignacionStore.GetByID(empresaID, calculo.AsignacionID)
	if err != nil {
		return "", "", err
	}
	if asignacion != nil && asignacion.AsignadoPorID != nil {
		return *asignacion.AsignadoPorID, "", nil
	}
	evaluacion, err := i.encuestaStore.GetEvaluacion(empresaID, calculo.EvaluacionEmpresaID)
	if err != nil {
		return "", "", err
	}
	if evaluacion != nil && evaluacion.AdministradorID != nil {
		return *evaluacion.AdministradorID, "", nil
	}
	return usuarioID, "", nil
}

func (i impl) GetByID(empresaID, id string) (item proyectoapimodels.ProyectoView, err error) {
	rec, err := i.store.GetByID(empresaID, id)
	if err != nil {
		return proyectoapimodels.ProyectoView{}, err
	}
	if rec == nil {
		return proyectoapimodels.ProyectoView{}, errors.New("proyecto no encontrado")
	}
	return proyectoapimodels.ProyectoConvert(*rec), nil
}

func (i impl) List(empresaID string, filter proyectoapimodels.ProyectoFilter) (list []proyectoapimodels.ProyectoView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(empresaID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]proyectoapimodels.ProyectoView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, proyectoapimodels.ProyectoConvert(rec))
	}
	return result, rowCount, nil
}

// Update edita los campos del proyecto y valida las transiciones de estado.
// El cierre nunca procede por esta vía, solo por el flujo de aprobación.
func (i impl) Update(empresaID, id string, data proyectoapimodels.ProyectoEditData) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("proyecto_id", id)
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(empresaID, id)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo el proyecto")
		return "", err
	}
	if rec == nil {
		return "proyecto no encontrado", nil
	}

	updMap := map[string]interface{}{}
	if data.Estado != "" && data.Estado != rec.Estado {
		if data.Estado == models.ProyectoCerrado {
			return "el cierre del proyecto solo procede por el flujo de aprobación", nil
		}
		if !rec.Estado.PuedeTransicionar(data.Estado) {
			return fmt.Sprintf("transición de estado no permitida (%s a %s)",
				rec.Estado.ToHuman(), data.Estado.ToHuman()), nil
		}
		updMap["estado"] = data.Estado
	}
	if data.NombreProyecto != "" {
		updMap["nombre_proyecto"] = data.NombreProyecto
	}
	if data.Descripcion != "" {
		updMap["descripcion"] = data.Descripcion
	}
	if data.Prioridad != "" {
		updMap["prioridad"] = data.Prioridad
	}
	if data.FechaFinEstimada != "" {
		fin, err := time.Parse("2006-01-02", data.FechaFinEstimada)
		if err != nil {
			return "fecha de fin estimada inválida, formato esperado YYYY-MM-DD", nil
		}
		if !fin.After(rec.FechaInicio) {
			return "la fecha de fin debe ser posterior a la fecha de inicio", nil
		}
		updMap["fecha_fin_estimada"] = fin
	}
	if data.DuenoProyectoID != "" && data.DuenoProyectoID != rec.DuenoProyectoID {
		dueno, err := i.usuarioStore.GetDeEmpresa(empresaID, data.DuenoProyectoID)
		if err != nil {
			return "", err
		}
		if dueno == nil {
			return "el dueño del proyecto no pertenece a la empresa", nil
		}
		updMap["dueno_proyecto_id"] = data.DuenoProyectoID
	}
	if data.ValidadorInternoID != "" {
		validador, err := i.usuarioStore.GetDeEmpresa(empresaID, data.ValidadorInternoID)
		if err != nil {
			return "", err
		}
		if validador == nil {
			return "el validador interno no pertenece a la empresa", nil
		}
		updMap["validador_interno_id"] = data.ValidadorInternoID
	}
	if data.PresupuestoGlobal > 0 {
		if rec.ModoPresupuesto != models.PresupuestoGlobal {
			return "el presupuesto global no aplica en el modo por ítems", nil
		}
		updMap["presupuesto_global"] = data.PresupuestoGlobal
	}
	if data.AlcanceProyecto != "" {
		updMap["alcance_proyecto"] = data.AlcanceProyecto
	}
	if data.ObjetivosEspecificos != "" {
		updMap["objetivos_especificos"] = data.ObjetivosEspecificos
	}
	if data.CriteriosAceptacion != "" {
		updMap["criterios_aceptacion"] = data.CriteriosAceptacion
	}
	if data.RiesgosProyecto != "" {
		updMap["riesgos_proyecto"] = data.RiesgosProyecto
	}
	if data.LeccionesAprendidas != "" {
		updMap["lecciones_aprendidas"] = data.LeccionesAprendidas
	}
	if len(updMap) == 0 {
		return "", nil
	}
	updMap["version"] = rec.Version + 1
	err = i.store.Update(empresaID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("Error actualizando el proyecto")
		return "", err
	}
	return "", nil
}

// Delete cancela y borra lógicamente el proyecto. Un proyecto cerrado es
// un registro de auditoría y no puede eliminarse.
func (i impl) Delete(empresaID, id string) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("proyecto_id", id)
	rec, err := i.store.GetByID(empresaID, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "proyecto no encontrado", nil
	}
	if rec.Estado == models.ProyectoCerrado {
		return "un proyecto cerrado no puede eliminarse", nil
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStore := proyectostore.NewInstance(tx)
		err := txStore.Update(empresaID, id, map[string]interface{}{
			"estado": models.ProyectoCancelado,
		})
		if err != nil {
			return err
		}
		return txStore.Delete(empresaID, id)
	})
	if err != nil {
		logger.WithError(err).Error("Error eliminando el proyecto")
		return "", err
	}
	logger.Info("Proyecto cancelado y eliminado")
	return "", nil
}

func (i impl) notificarTx(tx *gorm.DB, empresaID string, aviso notificacionhandler.Aviso) {
	notificacionhandler.NewHandlerWithTx(tx).Notificar(empresaID, aviso)
}
