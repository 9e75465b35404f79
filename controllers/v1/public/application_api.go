package publicapi

import (
	"io"

	"recruitment-backend/controllers"
	candidatehandler "recruitment-backend/lib/candidate"
	filestorage "recruitment-backend/lib/file-storage"
	"recruitment-backend/lib/job"
	"recruitment-backend/lib/notify"
	apimodels "recruitment-backend/models/api"
	candidateapimodels "recruitment-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type publicApplicationApiController struct {
	controllers.BaseAPIController
}

func InitPublicApplicationApiRouters(app *fiber.App) {
	controller := publicApplicationApiController{}
	app.Get("jobs", controller.listOpenJobs)
	app.Route("application", func(router fiber.Router) {
		router.Post("", controller.apply)
		router.Post(":id/resume", controller.uploadResume)
	})
}

// @Summary List open jobs
// @Tags Public
// @Description List job postings accepting applications
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/jobs [get]
func (c *publicApplicationApiController) listOpenJobs(ctx *fiber.Ctx) error {
	list, err := job.Instance.ListOpen()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Submit application
// @Tags Public
// @Description Register a new candidate from the public application form
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application [post]
func (c *publicApplicationApiController) apply(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		logger := log.WithField("email", payload.Email)
		return c.SendError(ctx, logger, err, "application registration failed")
	}
	notify.Instance.ApplicationReceived(payload.Name, payload.Email, payload.Position)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Upload application resume
// @Tags Public
// @Description Attach a resume file to a submitted application
// @Accept multipart/form-data
// @Param   file	formData	file	true	"resume file"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/{id}/resume [post]
func (c *publicApplicationApiController) uploadResume(ctx *fiber.Ctx) error {
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
