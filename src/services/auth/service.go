package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	DB "Backend-FormCraft/src/database"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNameTaken          = errors.New("name is already taken")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	users *mongo.Collection
	now   func() time.Time
}

func NewService(db *mongo.Database) *Service {
	return &Service{users: db.Collection(DB.UsersCollection), now: time.Now}
}

// NormalizeEmail trims and lowercases an address before lookup or insert.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	if n, err := s.users.CountDocuments(ctx, bson.M{"email": email}); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, ErrEmailTaken
	}
	if n, err := s.users.CountDocuments(ctx, bson.M{"name": name}); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, ErrNameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	logger.Infof("[auth] registered user=%s", user.ID.Hex())
	return issue(user)
}

func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": NormalizeEmail(req.Email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return issue(user)
}

func (s *Service) Me(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string, remaining time.Duration) error {
	return utils.BlacklistToken(ctx, token, remaining)
}

func issue(user models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	user.Password = ""
	return &models.AuthResponse{Token: token, User: user}, nil
}
