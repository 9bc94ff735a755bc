package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/controllers"
	"recruit-flow-backend/db"
	"recruit-flow-backend/lib/candidate"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	"recruit-flow-backend/lib/evaluation"
	filestorage "recruit-flow-backend/lib/file-storage"
	"recruit-flow-backend/lib/workflow"
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	dbmodels "recruit-flow-backend/models/db"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Put("status", controller.updateStatus)
			idRouter.Put("advance-stage", controller.advanceStage)
			idRouter.Put("stage-status", controller.setStageStatus)
			idRouter.Post("evaluate", controller.evaluate)
			idRouter.Get("evaluation/list", controller.listEvaluations)
			idRouter.Get("resume", controller.getResume)
		})
	})
}

// @Summary Register a candidate
// @Tags Candidate
// @Description Register a candidate on a posting; a candidate number is allocated when none is supplied
// @Param body body candidateapimodels.CandidateCreateRequest true "candidate data"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	req := candidateapimodels.CandidateCreateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidate.Instance.Create(req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List candidates
// @Tags Candidate
// @Param body body dbmodels.CandidateFilter true "filter"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	filter := dbmodels.CandidateFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidate.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a candidate with stage progress
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidate.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a candidate
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Param body body candidateapimodels.CandidateUpdateRequest true "fields to update"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.CandidateUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidate.Instance.Update(id, req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a candidate
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidate.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update the candidate's overall status
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Param body body candidateapimodels.StatusUpdateRequest true "new status"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.StatusUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidate.Instance.UpdateStatus(id, models.CandidateStatus(req.Status)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Advance the candidate to the next stage
// @Tags Candidate
// @Description Complete the current stage and start the next one
// @Param   id   path   string   true   "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.AdvanceResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/advance-stage [put]
func (c *candidateApiController) advanceStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := workflow.Instance.Advance(id)
	if err != nil {
		if errors.Is(err, workflow.ErrNoNextStage) || errors.Is(err, workflow.ErrNoCurrentStage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Set the progress status of one stage
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Param body body candidateapimodels.StageStatusUpdateRequest true "stage and status"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/stage-status [put]
func (c *candidateApiController) setStageStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.StageStatusUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workflow.Instance.SetStageStatus(id, req.StageID, models.ProgressStatus(req.Status), req.Notes)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Evaluate an uploaded resume
// @Tags Candidate
// @Description Run the screening evaluation on the uploaded resume document
// @Param   id          path      string   true    "candidate ID"
// @Param   stage_id    query     string   false   "selection stage ID"
// @Param   resume      formData  file     true    "file to upload"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/evaluate [post]
func (c *candidateApiController) evaluate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("resume file not readable")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("resume file not readable")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var stageID *string
	if value := ctx.Query("stage_id"); value != "" {
		stageID = &value
	}
	view, err := evaluation.Instance.EvaluateAndSave(ctx.UserContext(), id, stageID, file.Filename, fileBody)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List the candidate's evaluations
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/evaluation/list [get]
func (c *candidateApiController) listEvaluations(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := evaluation.Instance.ListByCandidate(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download the candidate's resume
// @Tags Candidate
// @Param   id   path   string   true   "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/resume [get]
func (c *candidateApiController) getResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := candidatestore.NewInstance(db.DB).GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil || rec.ResumeObjectKey == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("no resume uploaded for the candidate"))
	}
	body, err := filestorage.Instance.GetResume(ctx.UserContext(), rec.ResumeObjectKey)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", rec.CandidateNumber+".pdf"))
	return ctx.Send(body)
}
