package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/events"
	"github.com/Skotchmaster/ufo_delivery/internal/hash"
	"github.com/Skotchmaster/ufo_delivery/internal/logging"
	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/repo"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

type UserService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Register creates a new user with an empty address. The phone number must
// not be in use.
func (s *UserService) Register(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	if _, err := s.Repo.GetUserByPhone(ctx, req.Phone); err == nil {
		l.Warn("register failed", "status", 400, "reason", "phone taken")
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register failed", "status", 500, "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: pwHash,
		Address:  &models.Address{},
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			l.Warn("register failed", "status", 400, "reason", "phone taken")
			return nil, ErrUserExists
		}
		l.Error("register failed", "status", 500, "error", err)
		return nil, err
	}

	event := map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
		"phone":   user.Phone,
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), event); err != nil {
		l.Error("kafka publish error", "error", err)
	}

	l.Info("register success", "user_id", user.ID)
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.Repo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Edit applies only the fields present in the request. A password, when
// present, is re-hashed before persisting. An empty request returns the
// current record unchanged.
func (s *UserService) Edit(ctx context.Context, id uint, req transport.EditUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.edit", "user_id", id)

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name == nil && req.Phone == nil && req.Password == nil {
		return user, nil
	}

	if req.Password != nil {
		pwHash, err := hash.HashPassword(*req.Password)
		if err != nil {
			l.Error("edit failed", "status", 500, "reason", "cannot hash the password", "error", err)
			return nil, err
		}
		req.Password = &pwHash
	}

	updated, err := s.Repo.PatchUser(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		l.Error("edit failed", "status", 500, "error", err)
		return nil, err
	}

	return updated, nil
}

func (s *UserService) GetAddress(ctx context.Context, userID uint) (*models.Address, error) {
	address, err := s.Repo.GetAddress(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return address, nil
}

func (s *UserService) EditAddress(ctx context.Context, userID uint, req transport.EditAddressRequest) (*models.Address, error) {
	l := logging.FromContext(ctx).With("svc", "user.edit_address", "user_id", userID)

	if req.Street == nil && req.Reference == nil {
		return s.GetAddress(ctx, userID)
	}

	address, err := s.Repo.PatchAddress(ctx, userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		l.Error("edit_address failed", "status", 500, "error", err)
		return nil, err
	}

	return address, nil
}
