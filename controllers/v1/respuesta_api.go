package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"grc-maturity-backend/controllers"
	respuestahandler "grc-maturity-backend/lib/respuesta"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
	respuestaapimodels "grc-maturity-backend/models/api/respuesta"
)

type respuestaApiController struct {
	controllers.BaseAPIController
}

func InitRespuestaApiRouters(app fiber.Router) {
	controller := respuestaApiController{}
	app.Route("respuesta", func(router fiber.Router) {
		router.Post("", controller.guardar)
		router.Get("asignacion/:id", controller.listByAsignacion)
		router.Post(":id/evidencia", controller.adjuntarEvidencia)
		router.Get("evidencia/:id", controller.descargarEvidencia)
		router.Delete("evidencia/:id", controller.eliminarEvidencia)
	})
}

// @Summary Guardar respuesta
// @Tags Respuesta
// @Description Guarda o envía la respuesta a una pregunta de la asignación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 respuestaapimodels.RespuestaData	true	"request body"
// @Success 200 {object} apimodels.Response{data=respuestaapimodels.RespuestaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/respuesta [post]
func (c *respuestaApiController) guardar(ctx *fiber.Ctx) error {
	var payload respuestaapimodels.RespuestaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	esAdmin := middleware.EsEmpresaAdmin(ctx)
	item, hMsg, err := respuestahandler.Instance.Guardar(empresaID, userID, esAdmin, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error guardando la respuesta")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Respuestas de la asignación
// @Tags Respuesta
// @Description Listado de respuestas registradas en la asignación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la asignación"
// @Success 200 {object} apimodels.Response{data=[]respuestaapimodels.RespuestaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/respuesta/asignacion/{id} [get]
func (c *respuestaApiController) listByAsignacion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	list, err := respuestahandler.Instance.ListByAsignacion(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo las respuestas de la asignación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Adjuntar evidencia
// @Tags Respuesta
// @Description Adjunta un documento de evidencia a la respuesta
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la respuesta"
// @Param   archivo		formData	file 	true 	"documento de evidencia"
// @Param   codigo_documento	formData	string 	false 	"código interno del documento"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/respuesta/{id}/evidencia [post]
func (c *respuestaApiController) adjuntarEvidencia(ctx *fiber.Ctx) error {
	respuestaID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("archivo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta el archivo de evidencia"))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Error abriendo el archivo de evidencia")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	contenido, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Error leyendo el archivo de evidencia")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := respuestahandler.Instance.AdjuntarEvidencia(ctx.UserContext(), empresaID, userID, respuestaID,
		file.Filename, ctx.FormValue("codigo_documento"), file.Header.Get("Content-Type"), contenido)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error adjuntando la evidencia")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Descargar evidencia
// @Tags Respuesta
// @Description Descarga el documento de evidencia
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la evidencia"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/respuesta/evidencia/{id} [get]
func (c *respuestaApiController) descargarEvidencia(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	contenido, nombreArchivo, contentType, err := respuestahandler.Instance.DescargarEvidencia(ctx.UserContext(), empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error descargando la evidencia")
	}
	if contentType != "" {
		ctx.Set("Content-Type", contentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombreArchivo+`"`)
	return ctx.Send(contenido)
}

// @Summary Eliminar evidencia
// @Tags Respuesta
// @Description Elimina el documento de evidencia de la respuesta
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la evidencia"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/respuesta/evidencia/{id} [delete]
func (c *respuestaApiController) eliminarEvidencia(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	hMsg, err := respuestahandler.Instance.EliminarEvidencia(ctx.UserContext(), empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la evidencia")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
