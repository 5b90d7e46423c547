// service/services.go
package service

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ZORO77a/Lockey/audit"
	"github.com/ZORO77a/Lockey/blobstore"
	"github.com/ZORO77a/Lockey/dao"
	"github.com/ZORO77a/Lockey/keyring"
	"github.com/ZORO77a/Lockey/util"
)

type Services struct {
	PolicyConfig IPolicyConfigService
	Bypass       IBypassService
	Access       IAccessService
	File         IFileService
	Audit        audit.Service
}

// Options carries the settings services read at construction.
type Options struct {
	MaxUploadSize int64
	// Now returns the evaluation time in the policy's timezone.
	Now func() time.Time
}

func InitializeServices(
	driver neo4j.DriverWithContext,
	auditService audit.Service,
	keys keyring.Provider,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	eventBus *util.EventBus,
	opts Options,
) (*Services, error) {
	policyConfigDAO := dao.NewPolicyConfigDAO(driver)
	bypassDAO := dao.NewBypassDAO(driver)
	blobDAO := dao.NewBlobDAO(driver)

	vault := blobstore.NewStore(blobDAO, keys)

	policyConfigService := NewPolicyConfigService(policyConfigDAO, cacheService, validationUtil, auditService, eventBus)
	bypassService := NewBypassService(bypassDAO, validationUtil, auditService, eventBus)

	services := &Services{
		PolicyConfig: policyConfigService,
		Bypass:       bypassService,
		Access:       NewAccessService(policyConfigService, bypassService, vault, auditService, opts.Now),
		File:         NewFileService(vault, validationUtil, auditService, opts.MaxUploadSize),
		Audit:        auditService,
	}

	return services, nil
}
