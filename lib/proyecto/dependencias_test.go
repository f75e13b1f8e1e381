package proyectohandler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dbmodels "grc-maturity-backend/models/db"
)

func itemConDependencia(id string, dependenciaID string) dbmodels.ItemProyecto {
	rec := dbmodels.ItemProyecto{
		BaseEmpresaModel: dbmodels.BaseEmpresaModel{
			BaseModel: dbmodels.BaseModel{ID: id},
		},
	}
	if dependenciaID != "" {
		rec.TieneDependencia = true
		rec.DependenciaID = &dependenciaID
	}
	return rec
}

func TestDependenciaLinealNoFormaCiclo(t *testing.T) {
	// a <- b, y c quiere depender de b
	items := []dbmodels.ItemProyecto{
		itemConDependencia("a", ""),
		itemConDependencia("b", "a"),
		itemConDependencia("c", ""),
	}
	assert.False(t, IntroduceCiclo(items, "c", "b"))
}

func TestDependenciaDirectaSobreSiMismo(t *testing.T) {
	items := []dbmodels.ItemProyecto{
		itemConDependencia("a", ""),
	}
	assert.True(t, IntroduceCiclo(items, "a", "a"))
}

func TestCicloIndirectoDetectado(t *testing.T) {
	// a <- b <- c, y a quiere depender de c
	items := []dbmodels.ItemProyecto{
		itemConDependencia("a", ""),
		itemConDependencia("b", "a"),
		itemConDependencia("c", "b"),
	}
	assert.True(t, IntroduceCiclo(items, "a", "c"))
}

func TestCadenaAjenaNoAfecta(t *testing.T) {
	// x <- y en otra rama, a puede depender de y
	items := []dbmodels.ItemProyecto{
		itemConDependencia("x", ""),
		itemConDependencia("y", "x"),
		itemConDependencia("a", ""),
	}
	assert.False(t, IntroduceCiclo(items, "a", "y"))
}
