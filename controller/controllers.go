// controller/controllers.go
package controller

import (
	"time"

	"github.com/ZORO77a/Lockey/service"
)

type Controllers struct {
	PolicyConfig *PolicyConfigController
	Bypass       *BypassController
	File         *FileController
	Audit        *AuditController
}

func InitializeControllers(services *service.Services, loc *time.Location) *Controllers {
	return &Controllers{
		PolicyConfig: NewPolicyConfigController(services.PolicyConfig),
		Bypass:       NewBypassController(services.Bypass, loc),
		File:         NewFileController(services.File, services.Access),
		Audit:        NewAuditController(services.Audit),
	}
}
