package students

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StudentAuthMongoRepository struct {
	Collection *mongo.Collection
}

func NewStudentAuthMongoRepository(db *mongo.Client, dbName string) contracts.StudentAuthRepository {
	return &StudentAuthMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStudentAuths),
	}
}

func (r *StudentAuthMongoRepository) FindByStudentID(ctx context.Context, studentID string) (*models.StudentAuth, error) {
	objectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var auth models.StudentAuth
	err = r.Collection.FindOne(ctx, bson.M{"studentId": objectID}).Decode(&auth)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &auth, nil
}

func (r *StudentAuthMongoRepository) UpdateAuth(ctx context.Context, auth *models.StudentAuth) error {
	update := bson.M{
		"$set": bson.M{
			"passwordHash":       auth.PasswordHash,
			"mustChangePassword": auth.MustChangePassword,
			"lastLogin":          auth.LastLogin,
			"updatedAt":          auth.UpdatedAt,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": auth.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *StudentAuthMongoRepository) CreateAuth(ctx context.Context, auth *models.StudentAuth) (string, error) {
	result, err := r.Collection.InsertOne(ctx, auth)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
