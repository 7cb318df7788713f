package dto

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
