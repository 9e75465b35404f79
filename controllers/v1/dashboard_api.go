package apiv1

import (
	"fmt"
	"time"

	"recruitment-backend/controllers"
	dashboardhandler "recruitment-backend/lib/dashboard"
	apimodels "recruitment-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Get("stats", controller.stats)
		router.Get("export/candidates", controller.exportCandidates)
	})
}

// @Summary Dashboard statistics
// @Tags Dashboard
// @Description Candidate, region, stage, job and batch figures, recomputed on every call
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.DashboardStats}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/dashboard/stats [get]
func (c *dashboardApiController) stats(ctx *fiber.Ctx) error {
	stats, err := dashboardhandler.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "dashboard stats failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Export candidates to XLSX
// @Tags Dashboard
// @Description Export the full candidate list as an XLSX file
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/dashboard/export/candidates [get]
func (c *dashboardApiController) exportCandidates(ctx *fiber.Ctx) error {
	buf, err := dashboardhandler.Instance.ExportCandidatesXls()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate export failed")
	}
	fileName := fmt.Sprintf("candidates-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
