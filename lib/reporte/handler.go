package reportehandler

import (
	"bytes"
	"fmt"
	"time"

	"grc-maturity-backend/db"
	calculonivelhandler "grc-maturity-backend/lib/calculo-nivel"
	empresastore "grc-maturity-backend/lib/empresa/store"
	encuestastore "grc-maturity-backend/lib/encuesta/store"
	pdfexport "grc-maturity-backend/lib/export/pdf"
	xlsexport "grc-maturity-backend/lib/export/xls"
	proyectohandler "grc-maturity-backend/lib/proyecto"
	apimodels "grc-maturity-backend/models/api"
	proyectoapimodels "grc-maturity-backend/models/api/proyecto"
)

// exportLimit acota la exportación de proyectos, que no pagina
const exportLimit = 10000

type Provider interface {
	MatrizGapsXlsx(empresaID, evaluacionID string) (buffer *bytes.Buffer, nombreArchivo, hMsg string, err error)
	ResumenGapsPdf(empresaID, evaluacionID string) (contenido []byte, nombreArchivo, hMsg string, err error)
	ProyectosXlsx(empresaID string) (buffer *bytes.Buffer, nombreArchivo string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		empresaStore:  empresastore.NewInstance(db.DB),
		encuestaStore: encuestastore.NewInstance(db.DB),
	}
}

type impl struct {
	empresaStore  empresastore.Provider
	encuestaStore encuestastore.Provider
}

// MatrizGapsXlsx arma el libro Excel con la matriz de brechas de la evaluación
func (i impl) MatrizGapsXlsx(empresaID, evaluacionID string) (*bytes.Buffer, string, string, error) {
	evaluacion, err := i.encuestaStore.GetEvaluacion(empresaID, evaluacionID)
	if err != nil {
		return nil, "", "", err
	}
	if evaluacion == nil {
		return nil, "", "evaluación no encontrada", nil
	}
	list, err := calculonivelhandler.Instance.ListByEvaluacion(empresaID, evaluacionID)
	if err != nil {
		return nil, "", "", err
	}
	buffer, err := xlsexport.Instance.ExportMatrizGaps(list)
	if err != nil {
		return nil, "", "", err
	}
	nombreArchivo := fmt.Sprintf("matriz-gaps-%v.xlsx", time.Now().Format("20060102-150405"))
	return buffer, nombreArchivo, "", nil
}

// ResumenGapsPdf genera el resumen ejecutivo de brechas de la evaluación
func (i impl) ResumenGapsPdf(empresaID, evaluacionID string) ([]byte, string, string, error) {
	evaluacion, err := i.encuestaStore.GetEvaluacion(empresaID, evaluacionID)
	if err != nil {
		return nil, "", "", err
	}
	if evaluacion == nil {
		return nil, "", "evaluación no encontrada", nil
	}
	empresaNombre := ""
	empresa, err := i.empresaStore.GetByID(empresaID)
	if err != nil {
		return nil, "", "", err
	}
	if empresa != nil {
		empresaNombre = empresa.Nombre
	}
	list, err := calculonivelhandler.Instance.ListByEvaluacion(empresaID, evaluacionID)
	if err != nil {
		return nil, "", "", err
	}
	contenido, err := pdfexport.GenerateResumenGaps(empresaNombre, evaluacion.Nombre, list)
	if err != nil {
		return nil, "", "", err
	}
	nombreArchivo := fmt.Sprintf("resumen-gaps-%v.pdf", time.Now().Format("20060102-150405"))
	return contenido, nombreArchivo, "", nil
}

// ProyectosXlsx arma el libro Excel con el portafolio de proyectos de la empresa
func (i impl) ProyectosXlsx(empresaID string) (*bytes.Buffer, string, error) {
	filter := proyectoapimodels.ProyectoFilter{
		Pagination: apimodels.Pagination{Page: 1, Limit: exportLimit},
	}
	list, _, err := proyectohandler.Instance.List(empresaID, filter)
	if err != nil {
		return nil, "", err
	}
	buffer, err := xlsexport.Instance.ExportProyectos(list)
	if err != nil {
		return nil, "", err
	}
	nombreArchivo := fmt.Sprintf("proyectos-%v.xlsx", time.Now().Format("20060102-150405"))
	return buffer, nombreArchivo, nil
}
