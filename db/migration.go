package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruitment-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "migration of Job failed")
	}
	if err := DB.AutoMigrate(&dbmodels.StageTemplate{}); err != nil {
		return errors.Wrap(err, "migration of StageTemplate failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration of Candidate failed")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateStage{}); err != nil {
		return errors.Wrap(err, "migration of CandidateStage failed")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateNote{}); err != nil {
		return errors.Wrap(err, "migration of CandidateNote failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Batch{}); err != nil {
		return errors.Wrap(err, "migration of Batch failed")
	}
	log.Info("migrations finished")
	return nil
}
