package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	"recruit-flow-backend/lib/evaluation"
	pdfexport "recruit-flow-backend/lib/export/pdf"
	apimodels "recruit-flow-backend/models/api"
)

type evaluationApiController struct {
	controllers.BaseAPIController
}

func InitEvaluationApiRouters(app *fiber.App) {
	controller := evaluationApiController{}
	app.Route("evaluation/:id", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Get("report", controller.report)
		router.Get("report/pdf", controller.reportPDF)
	})
}

// @Summary Get an evaluation
// @Tags Evaluation
// @Param   id   path   string   true   "evaluation ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/{id} [get]
func (c *evaluationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := evaluation.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get the evaluation report as text
// @Tags Evaluation
// @Param   id   path   string   true   "evaluation ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/{id}/report [get]
func (c *evaluationApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	report, err := evaluation.Instance.Report(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.SendString(report)
}

// @Summary Download the evaluation report as PDF
// @Tags Evaluation
// @Param   id   path   string   true   "evaluation ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/{id}/report/pdf [get]
func (c *evaluationApiController) reportPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := evaluation.Instance.ReportData(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	body, err := pdfexport.GenerateEvaluationReport(result)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "evaluation-"+id+".pdf"))
	return ctx.Send(body)
}
