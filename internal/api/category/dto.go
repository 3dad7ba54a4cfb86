package category

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required"`
}

type UpdateCategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Direction   string `json:"direction"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CategoryTypeResponse struct {
	Type        string `json:"type"`
	Direction   string `json:"direction"`
	DisplayName string `json:"display_name"`
}

type CategoryTypeListResponse struct {
	Types []CategoryTypeResponse `json:"types"`
}
