package services

// ServiceContainer holds instances of the application services.
// The backend binary fills everything but Store; the store binary fills only Store.
type ServiceContainer struct {
	Gateway   PersistenceGatewaySvc
	Khata     KhataSvcFacade
	Reporting ReportingService
	Export    ExportService
	Notices   NoticeBoardSvc
	Store     DocumentStoreSvc
}
