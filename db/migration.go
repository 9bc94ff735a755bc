package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruit-flow-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.JobPosting{}); err != nil {
		return errors.Wrap(err, "migration failed for JobPosting")
	}
	if err := DB.AutoMigrate(&dbmodels.SelectionStage{}); err != nil {
		return errors.Wrap(err, "migration failed for SelectionStage")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration failed for Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateStageProgress{}); err != nil {
		return errors.Wrap(err, "migration failed for CandidateStageProgress")
	}
	if err := DB.AutoMigrate(&dbmodels.Evaluation{}); err != nil {
		return errors.Wrap(err, "migration failed for Evaluation")
	}
	if err := DB.AutoMigrate(&dbmodels.GeneratedQuestion{}); err != nil {
		return errors.Wrap(err, "migration failed for GeneratedQuestion")
	}
	log.Info("migrations finished")
	return nil
}
