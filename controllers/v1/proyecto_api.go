package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"grc-maturity-backend/controllers"
	proyectohandler "grc-maturity-backend/lib/proyecto"
	"grc-maturity-backend/middleware"
	apimodels "grc-maturity-backend/models/api"
	proyectoapimodels "grc-maturity-backend/models/api/proyecto"
)

type proyectoApiController struct {
	controllers.BaseAPIController
}

func InitProyectoApiRouters(app fiber.Router) {
	controller := proyectoApiController{}
	app.Route("proyecto", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", middleware.EmpresaAdminRequired(), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", middleware.EmpresaAdminRequired(), controller.delete)
			idRoute.Get("items", controller.listItems)
			idRoute.Post("items", controller.addItem)
			idRoute.Put("items/reordenar", controller.reordenarItems)
			idRoute.Put("items/:itemId", controller.updateItem)
			idRoute.Delete("items/:itemId", controller.deleteItem)
		})
	})
}

// @Summary Crear proyecto desde brecha
// @Tags Proyecto
// @Description Crea el proyecto de remediación a partir de una brecha calculada
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 proyectoapimodels.ProyectoDesdeGapData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto [post]
func (c *proyectoApiController) create(ctx *fiber.Ctx) error {
	var payload proyectoapimodels.ProyectoDesdeGapData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := proyectohandler.Instance.CrearDesdeGap(empresaID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando el proyecto de remediación")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Listado de proyectos
// @Tags Proyecto
// @Description Listado paginado con filtros por estado y prioridad
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 proyectoapimodels.ProyectoFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]proyectoapimodels.ProyectoView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/list [post]
func (c *proyectoApiController) list(ctx *fiber.Ctx) error {
	var payload proyectoapimodels.ProyectoFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	list, rowCount, err := proyectohandler.Instance.List(empresaID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo el listado de proyectos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Obtener proyecto
// @Tags Proyecto
// @Description Obtener proyecto por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=proyectoapimodels.ProyectoView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id} [get]
func (c *proyectoApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	resp, err := proyectohandler.Instance.GetByID(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo el proyecto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Actualizar proyecto
// @Tags Proyecto
// @Description Edita campos y transiciones de estado del proyecto
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 proyectoapimodels.ProyectoEditData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id} [put]
func (c *proyectoApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload proyectoapimodels.ProyectoEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	hMsg, err := proyectohandler.Instance.Update(empresaID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando el proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminar proyecto
// @Tags Proyecto
// @Description Cancela y elimina el proyecto; un proyecto cerrado no se elimina
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id} [delete]
func (c *proyectoApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	hMsg, err := proyectohandler.Instance.Delete(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando el proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Ítems del proyecto
// @Tags Proyecto
// @Description Listado de ítems del proyecto en orden de secuencia
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]proyectoapimodels.ItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id}/items [get]
func (c *proyectoApiController) listItems(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	list, err := proyectohandler.Instance.ListItems(empresaID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo los ítems del proyecto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Agregar ítem
// @Tags Proyecto
// @Description Agrega una tarea presupuestada al proyecto por ítems
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 proyectoapimodels.ItemData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id}/items [post]
func (c *proyectoApiController) addItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload proyectoapimodels.ItemData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	itemID, hMsg, err := proyectohandler.Instance.AgregarItem(empresaID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error agregando el ítem al proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(itemID))
}

// @Summary Actualizar ítem
// @Tags Proyecto
// @Description Acción unificada de seguimiento: avance, estado, gasto y dependencia
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID del proyecto"
// @Param   itemId      		path    string  				    	true         "ID del ítem"
// @Param	body body	 proyectoapimodels.ItemUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id}/items/{itemId} [put]
func (c *proyectoApiController) updateItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	itemID, err := c.GetIDByKey(ctx, "itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload proyectoapimodels.ItemUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	hMsg, err := proyectohandler.Instance.ActualizarItem(empresaID, id, itemID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando el ítem del proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminar ítem
// @Tags Proyecto
// @Description Elimina el ítem si ningún otro depende de él
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID del proyecto"
// @Param   itemId      		path    string  				    	true         "ID del ítem"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id}/items/{itemId} [delete]
func (c *proyectoApiController) deleteItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	itemID, err := c.GetIDByKey(ctx, "itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	hMsg, err := proyectohandler.Instance.EliminarItem(empresaID, id, itemID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando el ítem del proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reordenar ítems
// @Tags Proyecto
// @Description Renumera la secuencia completa de ítems respetando las dependencias
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 proyectoapimodels.ItemReorderData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/empresa/proyecto/{id}/items/reordenar [put]
func (c *proyectoApiController) reordenarItems(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload proyectoapimodels.ItemReorderData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	empresaID := middleware.GetUserEmpresa(ctx)
	hMsg, err := proyectohandler.Instance.ReordenarItems(empresaID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error reordenando los ítems del proyecto")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
