package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"recruit-flow-backend/controllers"
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	xlsexport "recruit-flow-backend/lib/export/xls"
	jobposting "recruit-flow-backend/lib/job-posting"
	apimodels "recruit-flow-backend/models/api"
	postingapimodels "recruit-flow-backend/models/api/posting"
	dbmodels "recruit-flow-backend/models/db"
)

type jobPostingApiController struct {
	controllers.BaseAPIController
}

func InitJobPostingApiRouters(app *fiber.App) {
	controller := jobPostingApiController{}
	app.Route("posting", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Post("stage", controller.addStage)
			idRouter.Get("stage/list", controller.listStages)
			idRouter.Delete("stage/:stageID", controller.deleteStage)
			idRouter.Get("candidates/export", controller.exportCandidates)
		})
	})
}

// @Summary Create a job posting
// @Tags Posting
// @Description Create a job posting, optionally with the default stage template
// @Param body body postingapimodels.PostingCreateRequest true "posting data"
// @Success 200 {object} apimodels.Response{data=postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting [post]
func (c *jobPostingApiController) create(ctx *fiber.Ctx) error {
	req := postingapimodels.PostingCreateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := jobposting.Instance.Create(req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List job postings
// @Tags Posting
// @Success 200 {object} apimodels.Response{data=[]postingapimodels.PostingView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/list [get]
func (c *jobPostingApiController) list(ctx *fiber.Ctx) error {
	list, err := jobposting.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a job posting with its stages
// @Tags Posting
// @Param   id   path   string   true   "posting ID"
// @Success 200 {object} apimodels.Response{data=postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id} [get]
func (c *jobPostingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := jobposting.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a job posting
// @Tags Posting
// @Param   id   path   string   true   "posting ID"
// @Param body body postingapimodels.PostingUpdateRequest true "fields to update"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id} [put]
func (c *jobPostingApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := postingapimodels.PostingUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := jobposting.Instance.Update(id, req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a job posting
// @Tags Posting
// @Param   id   path   string   true   "posting ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id} [delete]
func (c *jobPostingApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := jobposting.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add a selection stage
// @Tags Posting
// @Description Append a selection stage to the posting
// @Param   id   path   string   true   "posting ID"
// @Param body body postingapimodels.StageCreateRequest true "stage data"
// @Success 200 {object} apimodels.Response{data=postingapimodels.StageView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id}/stage [post]
func (c *jobPostingApiController) addStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := postingapimodels.StageCreateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := jobposting.Instance.AddStage(id, req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List the posting's selection stages
// @Tags Posting
// @Param   id   path   string   true   "posting ID"
// @Success 200 {object} apimodels.Response{data=[]postingapimodels.StageView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id}/stage/list [get]
func (c *jobPostingApiController) listStages(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := jobposting.Instance.ListStages(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Delete a selection stage
// @Tags Posting
// @Description Refused while any candidate is on the stage
// @Param   id        path   string   true   "posting ID"
// @Param   stageID   path   string   true   "stage ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id}/stage/{stageID} [delete]
func (c *jobPostingApiController) deleteStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageID, err := c.GetIDByKey(ctx, "stageID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := jobposting.Instance.DeleteStage(id, stageID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export the posting's candidates as xlsx
// @Tags Posting
// @Param   id   path   string   true   "posting ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id}/candidates/export [get]
func (c *jobPostingApiController) exportCandidates(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatestore.NewInstance(db.DB).List(dbmodels.CandidateFilter{JobPostingID: id})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "candidates.xlsx"))
	return ctx.Send(buf.Bytes())
}
