package mongodb

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) contract.UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, userToDocument(user))
	return err
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	filter := bson.M{"id": user.Id.String()}
	_, err := r.collection.ReplaceOne(ctx, filter, userToDocument(user))
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"id": id.String()})
}

// findOne reports misses and read faults both as (nil, nil), matching the
// lookup contract shared with the Postgres backend.
func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, nil
	}
	return userToEntity(&doc), nil
}
