package models

// NotificacionTipo codifica los eventos que generan notificación
type NotificacionTipo string

const (
	NotifAsignacionCreada     NotificacionTipo = "asignacion_creada"
	NotifRevisionAprobada     NotificacionTipo = "revision_aprobada"
	NotifRevisionRechazada    NotificacionTipo = "revision_rechazada"
	NotifPresupuestoExcedido  NotificacionTipo = "presupuesto_excedido"
	NotifProyectoEnValidacion NotificacionTipo = "proyecto_en_validacion"
	NotifCierreGapAprobado    NotificacionTipo = "cierre_gap_aprobado"
	NotifCierreGapRechazado   NotificacionTipo = "cierre_gap_rechazado"
	NotifAsignacionVencida    NotificacionTipo = "asignacion_vencida"
)
