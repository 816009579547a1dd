package initializers

import (
	"context"

	"conges-backend/config"
	"conges-backend/fiberlog"
	audithandler "conges-backend/lib/audit"
	authhandler "conges-backend/lib/auth"
	holidayhandler "conges-backend/lib/dicts/holiday"
	leavetypehandler "conges-backend/lib/dicts/leave-type"
	orgunithandler "conges-backend/lib/dicts/org-unit"
	employeehandler "conges-backend/lib/employee"
	xlsexport "conges-backend/lib/export/xls"
	filestoragehandler "conges-backend/lib/file-storage"
	leaverequesthandler "conges-backend/lib/leave-request"
	notificationhandler "conges-backend/lib/notification"
	connectionhub "conges-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	audithandler.NewHandler()
	notificationhandler.NewHandler()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	leaverequesthandler.NewHandler()
	orgunithandler.NewHandler()
	leavetypehandler.NewHandler()
	holidayhandler.NewHandler()
	filestoragehandler.NewHandler()
	xlsexport.NewHandler()
}
