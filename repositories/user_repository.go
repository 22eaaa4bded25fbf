package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/models"
)

// UserRepository wraps lookups against the users collection
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Client) *UserRepository {
	return &UserRepository{
		collection: config.GetCollection(db, "users"),
	}
}

// FindByEmail returns the user with the given email, or mongo.ErrNoDocuments
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"userEmail": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the user with the given username, or mongo.ErrNoDocuments
func (r *UserRepository) FindByUsername(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or mongo.ErrNoDocuments
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(userID primitive.ObjectID, passwordHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password": passwordHash}},
	)
	return err
}

// ListNonAdmins returns all regular users, password hashes excluded
func (r *UserRepository) ListNonAdmins(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"isAdmin": false})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
