package services

import (
	"time"

	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
)

// BackendSettings carries the tunables the backend services need.
type BackendSettings struct {
	Location       *time.Location
	NoticeCapacity int
	PushTimeout    time.Duration
}

// NewBackendContainer wires the gateway and every service built on it.
// The gateway still holds the default document; callers run Gateway.Load before serving.
func NewBackendContainer(remote portsrepo.RemoteDocumentStore, cache portsrepo.LocalDocumentCache, settings BackendSettings) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notices = NewNoticeBoard(settings.NoticeCapacity)

	container.Gateway = NewPersistenceGateway(remote, cache,
		WithNotifier(container.Notices),
		WithPushTimeout(settings.PushTimeout),
	)

	container.Khata = NewKhataService(container.Gateway, container.Notices,
		WithLocation(settings.Location),
	)
	container.Reporting = NewReportingService(container.Gateway)
	container.Export = NewExportService(container.Gateway, WithExportLocation(settings.Location))

	return container
}

// NewStoreContainer wires the remote document endpoint service.
func NewStoreContainer(repo portsrepo.DocumentRepository) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Store: NewDocumentStoreService(repo),
	}
}
