package handlers

import (
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	CategoryHandler    *CategoryHandler
	ProductHandler     *ProductHandler
	NegotiationHandler *NegotiationHandler
	MessageHandler     *MessageHandler
	AdminHandler       *AdminHandler
	UploadHandler      *UploadHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		UploadHandler:      NewUploadHandler(base, sc.Storage),
		AuthHandler:        NewAuthHandler(base, sc.AuthService),
		UserHandler:        NewUserHandler(base, sc.UserService),
		CategoryHandler:    NewCategoryHandler(base, sc.CategoryService),
		ProductHandler:     NewProductHandler(base, sc.ProductService),
		NegotiationHandler: NewNegotiationHandler(base, sc.NegotiationService),
		MessageHandler:     NewMessageHandler(base, sc.MessageService),
		AdminHandler:       NewAdminHandler(base, sc.ProductService, sc.CategoryService, sc.UserService),
	}
}
