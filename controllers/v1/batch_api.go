package apiv1

import (
	"recruitment-backend/controllers"
	batchhandler "recruitment-backend/lib/batch"
	apimodels "recruitment-backend/models/api"
	batchapimodels "recruitment-backend/models/api/batch"

	"github.com/gofiber/fiber/v2"
)

type batchApiController struct {
	controllers.BaseAPIController
}

func InitBatchApiRouters(app *fiber.App) {
	controller := batchApiController{}
	app.Route("batch", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Route("assignment", func(assignRoute fiber.Router) {
				assignRoute.Get("list", controller.assignmentList)
				assignRoute.Post("", controller.assignStages)
				assignRoute.Delete(":stage_id", controller.removeAssignment)
			})
		})
	})
}

// @Summary Create batch
// @Tags Batch
// @Description Create candidate batch
// @Param	body body	 batchapimodels.BatchData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch [post]
func (c *batchApiController) create(ctx *fiber.Ctx) error {
	var payload batchapimodels.BatchData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := batchhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "batch creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update batch
// @Tags Batch
// @Description Update batch fields, counts included
// @Param	body body	 batchapimodels.BatchData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/{id} [put]
func (c *batchApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload batchapimodels.BatchData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = batchhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "batch update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get batch by ID
// @Tags Batch
// @Description Get batch by ID
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=batchapimodels.BatchView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/{id} [get]
func (c *batchApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := batchhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "batch fetch failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List batches
// @Tags Batch
// @Description List batches, newest first
// @Success 200 {object} apimodels.Response{data=[]batchapimodels.BatchView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/list [get]
func (c *batchApiController) list(ctx *fiber.Ctx) error {
	list, err := batchhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "batch list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete batch
// @Tags Batch
// @Description Delete batch and its session assignments
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/{id} [delete]
func (c *batchApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = batchhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "batch delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign stages to batch
// @Tags Batch
// @Description Replace the batch's stage assignment set for this session
// @Param	body body	 batchapimodels.AssignmentData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/{id}/assignment [post]
func (c *batchApiController) assignStages(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload batchapimodels.AssignmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = batchhandler.Instance.AssignStages(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage assignment failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List batch assignments
// @Tags Batch
// @Description List the batch's session stage assignments in order
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]batchapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/{id}/assignment/list [get]
func (c *batchApiController) assignmentList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := batchhandler.Instance.ListAssignments(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "assignment list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Remove batch assignment
// @Tags Batch
// @Description Remove one stage from the batch's session assignments
// @Param   id          		path    string	true	"rec ID"
// @Param   stage_id    		path    string	true	"stage ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/batch/{id}/assignment/{stage_id} [delete]
func (c *batchApiController) removeAssignment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageID := ctx.Params("stage_id")
	if stageID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("stage id is required"))
	}
	err = batchhandler.Instance.RemoveAssignment(id, stageID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "assignment removal failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
