package contact

type CreateContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Service *string `json:"service"`
	Address *string `json:"address"`
	Message string  `json:"message" binding:"required"`
}
