package auth

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) contracts.StaffRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaffs),
	}
}

func (r *StaffMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staff, nil
}

func (r *StaffMongoRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var staff models.Staff
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staff, nil
}

func (r *StaffMongoRepository) CreateStaff(ctx context.Context, staff *models.Staff) (string, error) {
	result, err := r.Collection.InsertOne(ctx, staff)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *StaffMongoRepository) ListStaffs(ctx context.Context) ([]models.Staff, error) {
	opts := options.Find().SetSort(bson.D{{Key: "firstName", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var staffs []models.Staff
	if err := cursor.All(ctx, &staffs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return staffs, nil
}
