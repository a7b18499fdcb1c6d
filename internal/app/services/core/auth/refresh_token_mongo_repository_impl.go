package auth

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RefreshTokenMongoRepository struct {
	Collection *mongo.Collection
}

func NewRefreshTokenMongoRepository(db *mongo.Client, dbName string) contracts.RefreshTokenRepository {
	return &RefreshTokenMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRefreshTokens),
	}
}

func (r *RefreshTokenMongoRepository) CreateToken(ctx context.Context, token *models.RefreshToken) (string, error) {
	result, err := r.Collection.InsertOne(ctx, token)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindActiveByHash matches on the digest and filters revoked and expired
// rows in the query itself, so the usecase only ever sees usable tokens.
func (r *RefreshTokenMongoRepository) FindActiveByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	filter := bson.M{
		"tokenHash": tokenHash,
		"revoked":   false,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	var token models.RefreshToken
	err := r.Collection.FindOne(ctx, filter).Decode(&token)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &token, nil
}

func (r *RefreshTokenMongoRepository) RevokeByID(ctx context.Context, tokenID string) error {
	objectID, err := primitive.ObjectIDFromHex(tokenID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"revoked": true, "updatedAt": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RefreshTokenMongoRepository) RevokeByHash(ctx context.Context, tokenHash string) error {
	update := bson.M{"$set": bson.M{"revoked": true, "updatedAt": time.Now()}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"tokenHash": tokenHash}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
