package apiv1

import (
	"recruitment-backend/controllers"
	stagehandler "recruitment-backend/lib/stage"
	apimodels "recruitment-backend/models/api"
	stageapimodels "recruitment-backend/models/api/stage"

	"github.com/gofiber/fiber/v2"
)

type stageApiController struct {
	controllers.BaseAPIController
}

func InitStageApiRouters(app *fiber.App) {
	controller := stageApiController{}
	app.Route("stage", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_order", controller.changeOrder)
		})
	})
}

// @Summary Create pipeline stage
// @Tags Stage
// @Description Create pipeline stage, appended at the end of the sequence
// @Param	body body	 stageapimodels.StageData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/stage [post]
func (c *stageApiController) create(ctx *fiber.Ctx) error {
	var payload stageapimodels.StageData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := stagehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update pipeline stage
// @Tags Stage
// @Description Update stage name, description or duration. Enrolled candidates keep their snapshots.
// @Param	body body	 stageapimodels.StageData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/stage/{id} [put]
func (c *stageApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload stageapimodels.StageData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = stagehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List pipeline stages
// @Tags Stage
// @Description List pipeline stages ordered by position
// @Success 200 {object} apimodels.Response{data=[]stageapimodels.StageView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/stage/list [get]
func (c *stageApiController) list(ctx *fiber.Ctx) error {
	list, err := stagehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Move pipeline stage
// @Tags Stage
// @Description Swap the stage with its neighbor and renumber the sequence
// @Param	body body	 stageapimodels.StageOrderData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/stage/{id}/change_order [put]
func (c *stageApiController) changeOrder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload stageapimodels.StageOrderData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = stagehandler.Instance.ChangeOrder(id, payload.Direction)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage reorder failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete pipeline stage
// @Tags Stage
// @Description Delete the stage template; in-flight candidate records are not touched
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/stage/{id} [delete]
func (c *stageApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = stagehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
