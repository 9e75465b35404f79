package apiv1

import (
	"io"

	"recruitment-backend/controllers"
	candidatehandler "recruitment-backend/lib/candidate"
	filestorage "recruitment-backend/lib/file-storage"
	"recruitment-backend/lib/tracking"
	apimodels "recruitment-backend/models/api"
	candidateapimodels "recruitment-backend/models/api/candidate"
	trackingapimodels "recruitment-backend/models/api/tracking"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Post("resume", controller.uploadResume)
			idRoute.Post("note", controller.addNote)
			idRoute.Get("note/list", controller.noteList)
			idRoute.Route("stage", func(stageRoute fiber.Router) {
				stageRoute.Get("list", controller.stageList)
				stageRoute.Put("advance", controller.advance)
			})
		})
	})
	app.Route("stage_progress", func(router fiber.Router) {
		router.Put(":id/feedback", controller.recordFeedback)
	})
}

// @Summary Create candidate
// @Tags Candidate
// @Description Create candidate and enroll it into the current pipeline
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update candidate
// @Tags Candidate
// @Description Update candidate profile fields
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = candidatehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get candidate by ID
// @Tags Candidate
// @Description Get candidate by ID
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate fetch failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List candidates
// @Tags Candidate
// @Description List candidates, newest first
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.CandidateView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/list [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	list, err := candidatehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete candidate
// @Tags Candidate
// @Description Delete candidate with its stage progress and notes
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = candidatehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change candidate status
// @Tags Candidate
// @Description Change the candidate's overall status
// @Param	body body	 candidateapimodels.CandidateStatusData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id}/change_status [put]
func (c *candidateApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = candidatehandler.Instance.UpdateStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate status change failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload candidate resume
// @Tags Candidate
// @Description Upload resume file, store it and set the candidate's resume URL
// @Accept multipart/form-data
// @Param   file	formData	file	true	"resume file"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id}/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("resume file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume file open failed")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume file read failed")
	}
	url, err := filestorage.Instance.UploadResume(ctx.UserContext(), id, fileHeader.Filename, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume upload failed")
	}
	if err = candidatehandler.Instance.SetResumeUrl(id, url); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume url update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(url))
}

// @Summary Add candidate note
// @Tags Candidate
// @Description Append a note to the candidate
// @Param	body body	 candidateapimodels.NoteData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id}/note [post]
func (c *candidateApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.NoteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	noteID, err := candidatehandler.Instance.AddNote(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "note creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(noteID))
}

// @Summary List candidate notes
// @Tags Candidate
// @Description List candidate notes, newest first
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.NoteView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id}/note/list [get]
func (c *candidateApiController) noteList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatehandler.Instance.ListNotes(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "note list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List candidate stage progress
// @Tags Tracking
// @Description List the candidate's stage progress records in pipeline order
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]trackingapimodels.StageProgressView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id}/stage/list [get]
func (c *candidateApiController) stageList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := tracking.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stage progress list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Advance candidate
// @Tags Tracking
// @Description Complete the candidate's current stage and activate the next one
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=trackingapimodels.AdvanceResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/candidate/{id}/stage/advance [put]
func (c *candidateApiController) advance(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := tracking.Instance.Advance(id)
	if err != nil {
		if errors.Is(err, tracking.ErrNoActiveStage) || errors.Is(err, tracking.ErrMultipleActiveStages) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate advance failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Record stage feedback
// @Tags Tracking
// @Description Record score and feedback on a stage progress record
// @Param	body body	 trackingapimodels.FeedbackData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/stage_progress/{id}/feedback [put]
func (c *candidateApiController) recordFeedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trackingapimodels.FeedbackData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = tracking.Instance.RecordFeedback(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "feedback record failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
