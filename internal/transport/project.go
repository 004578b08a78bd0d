package transport

import "github.com/Skotchmaster/ufo_delivery/internal/models"

// Projections from storage entities to wire DTOs. Kept as free functions so
// the gorm models stay ignorant of the wire representation.

func UserToDTO(u *models.User) UserDTO {
	var addr *AddressDTO
	if u.Address != nil {
		a := AddressToDTO(u.Address)
		addr = &a
	}
	return UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Phone:       u.Phone,
		Password:    u.Password,
		Address:     addr,
		IsSuperuser: u.IsSuperuser,
	}
}

func AddressToDTO(a *models.Address) AddressDTO {
	return AddressDTO{
		Street:    a.Street,
		Reference: a.Reference,
	}
}

func CategoryToDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID,
		Name: c.Name,
	}
}

func ItemToDTO(i *models.Item) ItemDTO {
	categories := make([]CategoryDTO, len(i.Categories))
	for n := range i.Categories {
		categories[n] = CategoryToDTO(&i.Categories[n])
	}
	return ItemDTO{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		ImagePath:   i.ImagePath,
		Categories:  categories,
		IsAvailable: i.IsAvailable,
	}
}

func ItemsToDTO(items []models.Item) []ItemDTO {
	out := make([]ItemDTO, len(items))
	for n := range items {
		out[n] = ItemToDTO(&items[n])
	}
	return out
}

func CategoriesToDTO(categories []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, len(categories))
	for n := range categories {
		out[n] = CategoryToDTO(&categories[n])
	}
	return out
}

func OrderToDTO(o *models.Order) OrderDTO {
	items := make([]OrderItemDTO, len(o.Items))
	for n := range o.Items {
		items[n] = OrderItemDTO{
			Item:     ItemToDTO(&o.Items[n].Item),
			Quantity: o.Items[n].Quantity,
		}
	}
	return OrderDTO{
		ID:       o.ID,
		Items:    items,
		IsPlaced: o.IsPlaced,
	}
}
