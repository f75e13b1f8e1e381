package proyectohandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	notificacionhandler "grc-maturity-backend/lib/notificacion"
	proyectoitemstore "grc-maturity-backend/lib/proyecto/item-store"
	"grc-maturity-backend/lib/utils/helpers"
	"grc-maturity-backend/models"
	proyectoapimodels "grc-maturity-backend/models/api/proyecto"
	dbmodels "grc-maturity-backend/models/db"
)

// AgregarItem agrega una tarea presupuestada al final de la secuencia del
// proyecto. La fecha de fin se proyecta en días laborables y debe caber
// dentro del rango del proyecto.
func (i impl) AgregarItem(empresaID, proyectoID string, data proyectoapimodels.ItemData) (id, hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("proyecto_id", proyectoID)
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	proyecto, err := i.store.GetByID(empresaID, proyectoID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo el proyecto")
		return "", "", err
	}
	if proyecto == nil {
		return "", "proyecto no encontrado", nil
	}
	if proyecto.ModoPresupuesto != models.PresupuestoPorItems {
		return "", "los ítems requieren un proyecto con presupuesto por ítems", nil
	}
	switch proyecto.Estado {
	case models.ProyectoCerrado, models.ProyectoCancelado, models.ProyectoEnValidacion:
		return "", fmt.Sprintf("el proyecto no admite nuevos ítems en estado %s", proyecto.Estado.ToHuman()), nil
	}

	responsable, err := i.usuarioStore.GetDeEmpresa(empresaID, data.ResponsableEjecucionID)
	if err != nil {
		return "", "", err
	}
	if responsable == nil {
		return "", "el responsable de ejecución no pertenece a la empresa", nil
	}
	var proveedorID *string
	if data.RequiereProveedor {
		proveedor, err := i.proveedorStore.GetDisponible(empresaID, data.ProveedorID)
		if err != nil {
			return "", "", err
		}
		if proveedor == nil {
			return "", "el proveedor no está disponible para la empresa", nil
		}
		proveedorID = &data.ProveedorID
	}

	fechaInicio, _ := data.GetFechaInicio()
	if fechaInicio.Before(proyecto.FechaInicio) || fechaInicio.After(proyecto.FechaFinEstimada) {
		return "", "la fecha de inicio del ítem está fuera del rango del proyecto", nil
	}
	fechaFin := helpers.SumarDiasLaborables(fechaInicio, data.DuracionDias)
	if fechaFin.After(proyecto.FechaFinEstimada) {
		return "", "la duración del ítem excede la fecha de fin estimada del proyecto", nil
	}

	estado := models.ItemPendiente
	var dependenciaID *string
	tieneDependencia := false
	if data.DependenciaID != "" {
		var dependencia *dbmodels.ItemProyecto
		for j := range proyecto.Items {
			if proyecto.Items[j].ID == data.DependenciaID {
				dependencia = &proyecto.Items[j]
				break
			}
		}
		if dependencia == nil {
			return "", "la dependencia indicada no es un ítem del proyecto", nil
		}
		dependenciaID = &data.DependenciaID
		tieneDependencia = true
		if !dependencia.Estado.EsCompletado() {
			estado = models.ItemBloqueado
		}
	}

	numero, err := i.itemStore.SiguienteNumero(proyectoID)
	if err != nil {
		return "", "", err
	}
	rec := dbmodels.ItemProyecto{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			EmpresaID: empresaID,
		},
		ProyectoID:                 proyectoID,
		NumeroItem:                 numero,
		NombreItem:                 data.NombreItem,
		Descripcion:                data.Descripcion,
		RequiereProveedor:          data.RequiereProveedor,
		ProveedorID:                proveedorID,
		NombreResponsableProveedor: data.NombreResponsableProveedor,
		ResponsableEjecucionID:     data.ResponsableEjecucionID,
		PresupuestoPlanificado:     data.PresupuestoPlanificado,
		FechaInicio:                fechaInicio,
		DuracionDias:               data.DuracionDias,
		FechaFin:                   fechaFin,
		TieneDependencia:           tieneDependencia,
		DependenciaID:              dependenciaID,
		Estado:                     estado,
	}
	id, err = i.itemStore.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("Error creando el ítem")
		return "", "", err
	}
	logger.
		WithField("item_id", id).
		WithField("numero_item", numero).
		Info("Ítem agregado al proyecto")
	return id, "", nil
}

// ActualizarItem es la acción unificada de seguimiento: avance, estado,
// gasto y observaciones. Un ítem con dependencia sin completar no puede
// iniciarse ni completarse. Al completarse, los ítems bloqueados que
// dependen de él pasan a pendiente. El cruce del techo presupuestario
// notifica al dueño del proyecto una sola vez.
func (i impl) ActualizarItem(empresaID, proyectoID, itemID string, data proyectoapimodels.ItemUpdateData) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("proyecto_id", proyectoID).
		WithField("item_id", itemID)
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	item, err := i.itemStore.GetByID(empresaID, itemID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo el ítem")
		return "", err
	}
	if item == nil || item.ProyectoID != proyectoID {
		return "ítem no encontrado", nil
	}
	proyecto, err := i.store.GetByID(empresaID, proyectoID)
	if err != nil {
		return "", err
	}
	if proyecto == nil {
		return "proyecto no encontrado", nil
	}
	switch proyecto.Estado {
	case models.ProyectoCerrado, models.ProyectoCancelado:
		return fmt.Sprintf("el proyecto no admite cambios en estado %s", proyecto.Estado.ToHuman()), nil
	}

	estadoDestino := item.Estado
	if data.Estado != "" {
		estadoDestino = data.Estado
	}
	if data.PorcentajeAvance != nil && *data.PorcentajeAvance >= 100 {
		estadoDestino = models.ItemCompletado
	}

	updMap := map[string]interface{}{}
	dependencia := item.Dependencia
	if data.DependenciaID != nil {
		if *data.DependenciaID == "" {
			dependencia = nil
			updMap["tiene_dependencia"] = false
			updMap["dependencia_id"] = nil
		} else {
			items, err := i.itemStore.ListByProyecto(empresaID, proyectoID)
			if err != nil {
				return "", err
			}
			var objetivo *dbmodels.ItemProyecto
			for j := range items {
				if items[j].ID == *data.DependenciaID {
					objetivo = &items[j]
					break
				}
			}
			if objetivo == nil || objetivo.ID == itemID {
				return "la dependencia indicada no es válida para el ítem", nil
			}
			if objetivo.NumeroItem >= item.NumeroItem {
				return "la dependencia debe tener un número de ítem menor", nil
			}
			if IntroduceCiclo(items, itemID, *data.DependenciaID) {
				return "la dependencia indicada formaría un ciclo", nil
			}
			dependencia = objetivo
			updMap["tiene_dependencia"] = true
			updMap["dependencia_id"] = *data.DependenciaID
			if item.Estado == models.ItemPendiente && !objetivo.Estado.EsCompletado() && estadoDestino == item.Estado {
				estadoDestino = models.ItemBloqueado
			}
		}
	}
	if estadoDestino.RequiereDependenciaCompleta() && dependencia != nil && !dependencia.Estado.EsCompletado() {
		return fmt.Sprintf("el ítem está bloqueado por el ítem %d (%s) que aún no se completa",
			dependencia.NumeroItem, dependencia.NombreItem), nil
	}
	if estadoDestino != item.Estado {
		updMap["estado"] = estadoDestino
	}
	if data.PorcentajeAvance != nil {
		updMap["porcentaje_avance"] = *data.PorcentajeAvance
	}
	seCompleta := estadoDestino == models.ItemCompletado && !item.Estado.EsCompletado()
	if seCompleta {
		updMap["porcentaje_avance"] = 100
		if item.FechaCompletado == nil {
			updMap["fecha_completado"] = time.Now()
		}
	}
	if data.Observaciones != "" {
		updMap["observaciones"] = data.Observaciones
	}
	cruzaLimite := false
	if data.PresupuestoEjecutado != nil {
		updMap["presupuesto_ejecutado"] = *data.PresupuestoEjecutado
		cruzaLimite = CruzaLimitePresupuesto(*item, *data.PresupuestoEjecutado)
	}
	if len(updMap) == 0 {
		return "", nil
	}

	err = i.db.Transaction(func(tx *gorm.DB) error {
		txItemStore := proyectoitemstore.NewInstance(tx)
		err := txItemStore.Update(empresaID, itemID, updMap)
		if err != nil {
			return err
		}
		if seCompleta {
			// desbloqueo en cascada de un solo nivel
			dependientes, err := txItemStore.ListDependientes(empresaID, itemID)
			if err != nil {
				return err
			}
			for _, dependiente := range dependientes {
				if dependiente.Estado != models.ItemBloqueado {
					continue
				}
				err = txItemStore.Update(empresaID, dependiente.ID, map[string]interface{}{
					"estado": models.ItemPendiente,
				})
				if err != nil {
					return err
				}
			}
		}
		if cruzaLimite {
			i.notificarTx(tx, empresaID, notificacionhandler.Aviso{
				UsuarioID: proyecto.DuenoProyectoID,
				Tipo:      models.NotifPresupuestoExcedido,
				Titulo:    "Presupuesto de ítem excedido",
				Mensaje: fmt.Sprintf("El ítem %d (%s) del proyecto %s superó su techo presupuestario de %.2f %s con un gasto de %.2f",
					item.NumeroItem, item.NombreItem, proyecto.CodigoProyecto,
					item.PresupuestoLimite(), proyecto.Moneda, *data.PresupuestoEjecutado),
				Url:            fmt.Sprintf("/proyectos/%s", proyectoID),
				RequiereAccion: true,
			})
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Error actualizando el ítem")
		return "", err
	}
	if cruzaLimite {
		logger.
			WithField("presupuesto_limite", item.PresupuestoLimite()).
			WithField("presupuesto_ejecutado", *data.PresupuestoEjecutado).
			Warn("Ítem por encima del techo presupuestario")
	}
	return "", nil
}

// EliminarItem borra el ítem si ningún otro depende de él
func (i impl) EliminarItem(empresaID, proyectoID, itemID string) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("item_id", itemID)
	item, err := i.itemStore.GetByID(empresaID, itemID)
	if err != nil {
		return "", err
	}
	if item == nil || item.ProyectoID != proyectoID {
		return "ítem no encontrado", nil
	}
	dependientes, err := i.itemStore.ListDependientes(empresaID, itemID)
	if err != nil {
		return "", err
	}
	if len(dependientes) > 0 {
		return fmt.Sprintf("no se puede eliminar, %d ítem(s) dependen de este", len(dependientes)), nil
	}
	err = i.itemStore.Delete(empresaID, itemID)
	if err != nil {
		logger.WithError(err).Error("Error eliminando el ítem")
		return "", err
	}
	logger.Info("Ítem eliminado")
	return "", nil
}

// ReordenarItems renumera la secuencia completa de ítems del proyecto.
// El nuevo orden debe cubrir todos los ítems y respetar que cada
// dependencia quede con número menor al de su dependiente.
func (i impl) ReordenarItems(empresaID, proyectoID string, data proyectoapimodels.ItemReorderData) (hMsg string, err error) {
	logger := log.
		WithField("empresa_id", empresaID).
		WithField("proyecto_id", proyectoID)
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	items, err := i.itemStore.ListByProyecto(empresaID, proyectoID)
	if err != nil {
		logger.WithError(err).Error("Error obteniendo los ítems del proyecto")
		return "", err
	}
	if len(items) == 0 {
		return "el proyecto no tiene ítems", nil
	}
	if len(data.Items) != len(items) {
		return "el nuevo orden debe incluir todos los ítems del proyecto", nil
	}
	porID := map[string]dbmodels.ItemProyecto{}
	for _, item := range items {
		porID[item.ID] = item
	}
	nuevoNumero := map[string]int{}
	for _, orden := range data.Items {
		if _, existe := porID[orden.ItemID]; !existe {
			return "el nuevo orden incluye un ítem que no es del proyecto", nil
		}
		nuevoNumero[orden.ItemID] = orden.NumeroItem
	}
	for _, item := range items {
		if item.DependenciaID == nil {
			continue
		}
		if nuevoNumero[*item.DependenciaID] >= nuevoNumero[item.ID] {
			return fmt.Sprintf("el ítem %s quedaría antes que su dependencia", item.NombreItem), nil
		}
	}

	// renumerado en dos fases para no chocar con el índice único
	offset := len(items) + 1000
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txItemStore := proyectoitemstore.NewInstance(tx)
		for _, item := range items {
			err := txItemStore.Update(empresaID, item.ID, map[string]interface{}{
				"numero_item": nuevoNumero[item.ID] + offset,
			})
			if err != nil {
				return err
			}
		}
		for _, item := range items {
			err := txItemStore.Update(empresaID, item.ID, map[string]interface{}{
				"numero_item": nuevoNumero[item.ID],
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Error reordenando los ítems")
		return "", err
	}
	logger.Info("Ítems del proyecto reordenados")
	return "", nil
}

func (i impl) ListItems(empresaID, proyectoID string) (list []proyectoapimodels.ItemView, err error) {
	recList, err := i.itemStore.ListByProyecto(empresaID, proyectoID)
	if err != nil {
		return nil, err
	}
	result := make([]proyectoapimodels.ItemView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, proyectoapimodels.ItemConvert(rec))
	}
	return result, nil
}
