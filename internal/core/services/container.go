package services

import (
	portsrepo "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/repositories"
	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
)

// NewContainer creates a service container with properly initialized
// dependencies.
func NewContainer(loader portsrepo.DealLoader) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Deal: NewDealStore(loader),
	}
}
