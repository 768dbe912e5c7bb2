package user

import (
	"context"
	"errors"

	"usana-backend/domain"
	"usana-backend/entities"
	"usana-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		UpdatePassword(ctx context.Context, req domain.UpdatePasswordRequest, userID string) (string, error)
		GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
		SetUserVerification(ctx context.Context, userID string, verified bool) (domain.UserResponse, error)
		GetUser(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUserByID(ctx context.Context, targetID string, req domain.UpdateUserRequest, requesterID, role string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	newUser := &entities.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hashed),
		Role:         role,
		Organization: req.Organization,
		Location:     req.Location,
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.AuthResponse{}, err
	}

	return domain.AuthResponse{
		User:  toUserResponse(newUser),
		Token: s.jwtService.GenerateTokenUser(newUser.ID.String(), newUser.Role),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	found, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return domain.AuthResponse{
		User:  toUserResponse(found),
		Token: s.jwtService.GenerateTokenUser(found.ID.String(), found.Role),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	return s.GetUser(ctx, userID)
}

func (s *userService) GetUser(ctx context.Context, userID string) (domain.UserResponse, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(found), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Name != "" {
		found.Name = req.Name
	}
	if req.Email != "" {
		found.Email = req.Email
	}
	if req.Organization != "" {
		found.Organization = req.Organization
	}
	if req.Location != "" {
		found.Location = req.Location
	}
	if req.PhoneNumber != "" {
		found.PhoneNumber = req.PhoneNumber
	}

	if err := s.userRepository.UpdateUser(ctx, found); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(found), nil
}

// UpdateUserByID edits another user's profile. Only the user themselves
// or an admin may do so.
func (s *userService) UpdateUserByID(ctx context.Context, targetID string, req domain.UpdateUserRequest, requesterID, role string) (domain.UserResponse, error) {
	if targetID != requesterID && role != domain.RoleAdmin {
		return domain.UserResponse{}, domain.ErrUserNotAllowed
	}
	return s.UpdateUser(ctx, req, targetID)
}

func (s *userService) UpdatePassword(ctx context.Context, req domain.UpdatePasswordRequest, userID string) (string, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(req.CurrentPassword)); err != nil {
		return "", domain.ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	found.Password = string(hashed)
	if err := s.userRepository.UpdateUser(ctx, found); err != nil {
		return "", err
	}

	return s.jwtService.GenerateTokenUser(found.ID.String(), found.Role), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	return response, nil
}

func (s *userService) SetUserVerification(ctx context.Context, userID string, verified bool) (domain.UserResponse, error) {
	updated, err := s.userRepository.SetUserVerified(ctx, userID, verified)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(updated), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Organization: u.Organization,
		Location:     u.Location,
		PhoneNumber:  u.PhoneNumber,
		AvatarURL:    u.AvatarURL,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
	}
}
