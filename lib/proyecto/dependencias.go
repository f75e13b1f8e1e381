package proyectohandler

import (
	dbmodels "grc-maturity-backend/models/db"
)

// IntroduceCiclo verifica si declarar dependenciaID como predecesor de
// itemID cierra un ciclo. Se recorre la cadena de predecesores desde la
// dependencia propuesta; el orden por número de ítem previene referencias
// hacia adelante pero no protege tras un reordenamiento, por eso el grafo
// se valida de forma explícita.
func IntroduceCiclo(items []dbmodels.ItemProyecto, itemID, dependenciaID string) bool {
	predecesores := make(map[string]string, len(items))
	for _, item := range items {
		if item.DependenciaID != nil {
			predecesores[item.ID] = *item.DependenciaID
		}
	}
	actual := dependenciaID
	for pasos := 0; pasos <= len(items); pasos++ {
		if actual == itemID {
			return true
		}
		siguiente, existe := predecesores[actual]
		if !existe {
			return false
		}
		actual = siguiente
	}
	// cadena más larga que la lista de ítems: ya había un ciclo previo
	return true
}
