package proyectohandler

import (
	dbmodels "grc-maturity-backend/models/db"
)

// CruzaLimitePresupuesto detecta el momento exacto en que el gasto supera
// el techo del ítem, comparando contra el ejecutado previo almacenado. Una
// vez cruzado, los guardados siguientes ya no vuelven a disparar la alerta.
func CruzaLimitePresupuesto(item dbmodels.ItemProyecto, ejecutadoNuevo float64) bool {
	limite := item.PresupuestoLimite()
	return item.PresupuestoEjecutado <= limite && ejecutadoNuevo > limite
}
