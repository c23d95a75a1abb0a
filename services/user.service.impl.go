package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IrfanulM/MyBNB/domain"
	"github.com/IrfanulM/MyBNB/utils"
)

type UserServiceImpl struct {
	collection *mongo.Collection
}

func NewUserServiceImpl(collection *mongo.Collection) UserService {
	return &UserServiceImpl{collection: collection}
}

// Register creates an account for the given credentials. Emails are stored
// lowercased so lookups are case-insensitive.
func (s *UserServiceImpl) Register(ctx context.Context, credentials *domain.Credentials) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(credentials.Email))

	if !utils.ValidatePassword(credentials.Password) {
		return nil, domain.ErrWeakPassword
	}

	count, err := s.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(credentials.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
	}
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

// Authenticate checks the credentials against the stored hash. An unknown
// email and a wrong password return the same error so the two cases cannot
// be told apart by a caller.
func (s *UserServiceImpl) Authenticate(ctx context.Context, credentials *domain.Credentials) (*domain.User, error) {
	user, err := s.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(credentials.Email)))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.VerifyPassword(user.Password, credentials.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserServiceImpl) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
