package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/config"
	"recruit-flow-backend/fiberlog"
	"recruit-flow-backend/lib/candidate"
	"recruit-flow-backend/lib/evaluation"
	xlsexport "recruit-flow-backend/lib/export/xls"
	gpthandler "recruit-flow-backend/lib/gpt"
	jobposting "recruit-flow-backend/lib/job-posting"
	"recruit-flow-backend/lib/knowledge"
	pdfextract "recruit-flow-backend/lib/pdf-extract"
	"recruit-flow-backend/lib/question"
	"recruit-flow-backend/lib/workflow"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()

	know, err := knowledge.Load(config.Conf.Knowledge.JobRequirementsPath, config.Conf.Knowledge.EvaluationTemplatePath)
	if err != nil {
		log.WithError(err).Fatal("knowledge base not loaded")
	}
	if err := gpthandler.NewHandler(ctx); err != nil {
		log.WithError(err).Fatal("generation backend not initialized")
	}

	pdfextract.NewHandler()
	jobposting.NewHandler()
	candidate.NewHandler()
	workflow.NewHandler()
	evaluation.NewHandler(know)
	question.NewHandler(know)
	xlsexport.NewHandler()
}
