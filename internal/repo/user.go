package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Address").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Address").Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser persists the user together with its empty address in one
// transaction.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (r *GormRepo) PatchUser(ctx context.Context, id uint, req transport.EditUserRequest) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Address").First(&user, id).Error; err != nil {
			return err
		}

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Phone != nil {
			user.Phone = *req.Phone
		}
		if req.Password != nil {
			user.Password = *req.Password
		}

		return tx.Omit("Address", "Orders").Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetAddress(ctx context.Context, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *GormRepo) PatchAddress(ctx context.Context, userID uint, req transport.EditAddressRequest) (*models.Address, error) {
	var address models.Address
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&address).Error; err != nil {
			return err
		}

		if req.Street != nil {
			address.Street = req.Street
		}
		if req.Reference != nil {
			address.Reference = req.Reference
		}

		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}
