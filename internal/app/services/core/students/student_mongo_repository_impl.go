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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentMongoRepository struct {
	Collection *mongo.Collection
}

func NewStudentMongoRepository(db *mongo.Client, dbName string) contracts.StudentRepository {
	return &StudentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStudents),
	}
}

func (r *StudentMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &student, nil
}

func (r *StudentMongoRepository) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var student models.Student
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &student, nil
}

func (r *StudentMongoRepository) FindByClassID(ctx context.Context, classID string) ([]models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	opts := options.Find().SetSort(bson.D{{Key: "firstName", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"classId": objectID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return students, nil
}

func (r *StudentMongoRepository) CreateStudent(ctx context.Context, student *models.Student) (string, error) {
	result, err := r.Collection.InsertOne(ctx, student)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
