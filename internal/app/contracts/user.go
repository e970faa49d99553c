package contracts

import (
	"clinix-service/internal/app/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	EnsureIndexes(ctx context.Context) error
}
