package service

import (
	"context"
	"errors"

	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/password"
	"github.com/railgoteam/railroad-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPseudoTaken        = errors.New("pseudo already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Requester is the decoded identity attached to an authenticated request.
type Requester struct {
	UserID uint
	Role   models.Role
}

// CanAccess reports whether the requester may read or mutate the given user.
func (r Requester) CanAccess(userID uint) bool {
	return r.Role == models.RoleAdmin || r.UserID == userID
}

type RegisterParams struct {
	Email    string
	Pseudo   string
	Password string
	Role     models.Role
	Employee bool
}

type UpdateUserParams struct {
	Email    *string
	Pseudo   *string
	Password *string
	Role     *models.Role
	Employee *bool
}

type UserService interface {
	Register(ctx context.Context, params RegisterParams) (*models.User, error)
	Login(ctx context.Context, pseudo, plainPassword string) (string, *models.User, error)
	Get(ctx context.Context, id uint, requester Requester) (*models.User, error)
	Update(ctx context.Context, id uint, requester Requester, patch UpdateUserParams) (*models.User, error)
	Delete(ctx context.Context, id uint, requester Requester) error
}

type userService struct {
	repo   repository.UserRepository
	hasher password.Hasher
	tokens *TokenService
}

func NewUserService(repo repository.UserRepository, hasher password.Hasher, tokens *TokenService) UserService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if _, err := s.repo.FindByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByPseudo(ctx, params.Pseudo); err == nil {
		return nil, ErrPseudoTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	role := params.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Email:    params.Email,
		Pseudo:   params.Pseudo,
		Password: hash,
		Role:     role,
		Employee: params.Employee,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, pseudo, plainPassword string) (string, *models.User, error) {
	user, err := s.repo.FindByPseudo(ctx, pseudo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.hasher.Compare(user.Password, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *userService) Get(ctx context.Context, id uint, requester Requester) (*models.User, error) {
	if !requester.CanAccess(id) {
		return nil, ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, requester Requester, patch UpdateUserParams) (*models.User, error) {
	if !requester.CanAccess(id) {
		return nil, ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *patch.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Pseudo != nil && *patch.Pseudo != user.Pseudo {
		if _, err := s.repo.FindByPseudo(ctx, *patch.Pseudo); err == nil {
			return nil, ErrPseudoTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Pseudo = *patch.Pseudo
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Employee != nil {
		user.Employee = *patch.Employee
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint, requester Requester) error {
	if !requester.CanAccess(id) {
		return ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
