package services

import (
	"flohmarkt_backend/internal/email"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	CategoryService    CategoryService
	ProductService     ProductService
	NegotiationService NegotiationService
	MessageService     MessageService
	EmailProvider      email.Provider
	Storage            storage.Storage
}

// NewServiceContainer wires repositories into services. Repositories are
// stateless, so they are created here rather than injected.
func NewServiceContainer(mailer email.Provider, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	negotiationRepo := repositories.NewNegotiationRepository()
	messageRepo := repositories.NewMessageRepository()

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, mailer),
		UserService:        NewUserService(userRepo),
		CategoryService:    NewCategoryService(categoryRepo),
		ProductService:     NewProductService(productRepo, categoryRepo, messageRepo, userRepo),
		NegotiationService: NewNegotiationService(negotiationRepo, productRepo, userRepo),
		MessageService:     NewMessageService(messageRepo, productRepo, userRepo, mailer),
		EmailProvider:      mailer,
		Storage:            store,
	}
}
