package initializers

import (
	"context"

	"recruitment-backend/config"
	"recruitment-backend/fiberlog"
	"recruitment-backend/lib/batch"
	"recruitment-backend/lib/candidate"
	"recruitment-backend/lib/dashboard"
	xlsexport "recruitment-backend/lib/export/xls"
	filestorage "recruitment-backend/lib/file-storage"
	"recruitment-backend/lib/job"
	"recruitment-backend/lib/notify"
	"recruitment-backend/lib/stage"
	"recruitment-backend/lib/tracking"
	connectionhub "recruitment-backend/lib/ws/hub/connection-hub"
	s3client "recruitment-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler(s3client.Client)
	xlsexport.NewHandler()
	notify.NewHandler(config.Conf.Smtp.FromEmail)
	job.NewHandler()
	stage.NewHandler()
	// candidate creation enrolls through tracking, so tracking goes first
	tracking.NewHandler()
	candidate.NewHandler()
	batch.NewHandler()
	dashboard.NewHandler()
}
