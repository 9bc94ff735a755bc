package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	"recruit-flow-backend/lib/question"
	apimodels "recruit-flow-backend/models/api"
	questionapimodels "recruit-flow-backend/models/api/question"
)

type questionApiController struct {
	controllers.BaseAPIController
}

func InitQuestionApiRouters(app *fiber.App) {
	controller := questionApiController{}
	app.Route("candidate/:id/question", func(router fiber.Router) {
		router.Post("generate", controller.generate)
		router.Get("list", controller.list)
		router.Delete(":questionID", controller.delete)
	})
}

// @Summary Generate interview questions
// @Tags Question
// @Description Generate interview questions for the candidate's stage; falls back to a built-in bank when generation is unavailable
// @Param   id   path   string   true   "candidate ID"
// @Param body body questionapimodels.GenerateRequest true "generation parameters"
// @Success 200 {object} apimodels.Response{data=[]questionapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/question/generate [post]
func (c *questionApiController) generate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := questionapimodels.GenerateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := question.Instance.Generate(ctx.UserContext(), id, req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List generated questions
// @Tags Question
// @Param   id         path    string   true    "candidate ID"
// @Param   stage_id   query   string   false   "selection stage ID"
// @Success 200 {object} apimodels.Response{data=[]questionapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/question/list [get]
func (c *questionApiController) list(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var stageID *string
	if value := ctx.Query("stage_id"); value != "" {
		stageID = &value
	}
	list, err := question.Instance.ListByCandidate(id, stageID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete a generated question
// @Tags Question
// @Param   id           path   string   true   "candidate ID"
// @Param   questionID   path   string   true   "question ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/question/{questionID} [delete]
func (c *questionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID, err := c.GetIDByKey(ctx, "questionID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := question.Instance.Delete(id, questionID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
