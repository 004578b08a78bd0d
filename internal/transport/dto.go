package transport

type UserDTO struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Password    string      `json:"password"`
	Address     *AddressDTO `json:"address"`
	IsSuperuser bool        `json:"is_superuser"`
}

type AddressDTO struct {
	Street    *string `json:"street"`
	Reference *string `json:"reference"`
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemDTO struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImagePath   string        `json:"image_path"`
	Categories  []CategoryDTO `json:"categories"`
	IsAvailable bool          `json:"is_available"`
}

type OrderItemDTO struct {
	Item     ItemDTO `json:"item"`
	Quantity int     `json:"quantity"`
}

type OrderDTO struct {
	ID       uint           `json:"id"`
	Items    []OrderItemDTO `json:"items"`
	IsPlaced bool           `json:"is_placed"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Pointer fields distinguish omitted keys from explicit values: an absent key
// leaves the stored field untouched, an explicit empty string clears it.
type EditUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

type EditAddressRequest struct {
	Street    *string `json:"street"`
	Reference *string `json:"reference"`
}

type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"image_path"`
	Categories  []uint  `json:"categories"`
	IsAvailable *bool   `json:"is_available"`
}

type EditItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImagePath   *string  `json:"image_path"`
	Categories  *[]uint  `json:"categories"`
	IsAvailable *bool    `json:"is_available"`
}

type DeleteItemResponse struct {
	Success bool `json:"success"`
}

type AddItemToOrderRequest struct {
	ItemID uint `json:"item_id"`
}

type RemoveItemFromOrderRequest struct {
	ItemID uint `json:"item_id"`
}

type SearchItemsResponse struct {
	Total int64     `json:"total"`
	Items []ItemDTO `json:"items"`
}
