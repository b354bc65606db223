package handler

import (
	applicationdomain "welfare-app-go/internal/domain/application"
	authndomain "welfare-app-go/internal/domain/authn"
	contactdomain "welfare-app-go/internal/domain/contact"
	grievancedomain "welfare-app-go/internal/domain/grievance"
	listingdomain "welfare-app-go/internal/domain/listing"
	schemedomain "welfare-app-go/internal/domain/scheme"
	"welfare-app-go/pkg/logger"
)

type Handlers struct {
	Auth         *authndomain.Service
	Schemes      *schemedomain.Service
	Applications *applicationdomain.Service
	Contacts     *contactdomain.Service
	Marketplace  *listingdomain.Service
	Grievances   *grievancedomain.Service
	log          logger.Logger
}

func New(
	auth *authndomain.Service,
	schemes *schemedomain.Service,
	applications *applicationdomain.Service,
	contacts *contactdomain.Service,
	marketplace *listingdomain.Service,
	grievances *grievancedomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Auth:         auth,
		Schemes:      schemes,
		Applications: applications,
		Contacts:     contacts,
		Marketplace:  marketplace,
		Grievances:   grievances,
		log:          log,
	}
}
