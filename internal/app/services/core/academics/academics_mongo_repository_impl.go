package academics

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StreamMongoRepository struct {
	Collection *mongo.Collection
}

func NewStreamMongoRepository(db *mongo.Client, dbName string) contracts.StreamRepository {
	return &StreamMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStreams),
	}
}

func (r *StreamMongoRepository) FindByName(ctx context.Context, name string) (*models.Stream, error) {
	var stream models.Stream
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&stream)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &stream, nil
}

type CourseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCourseMongoRepository(db *mongo.Client, dbName string) contracts.CourseRepository {
	return &CourseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCourses),
	}
}

func (r *CourseMongoRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return courses, nil
}

func (r *CourseMongoRepository) FindByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &course, nil
}

type ClassMongoRepository struct {
	Collection *mongo.Collection
}

func NewClassMongoRepository(db *mongo.Client, dbName string) contracts.ClassRepository {
	return &ClassMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClasses),
	}
}

func (r *ClassMongoRepository) ListByCourseID(ctx context.Context, courseID string) ([]models.Class, error) {
	objectID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "section", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"courseId": objectID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return classes, nil
}

// FindOrCreate upserts on (courseId, year, section) so concurrent imports
// of the same roster never mint duplicate class units.
func (r *ClassMongoRepository) FindOrCreate(ctx context.Context, class *models.Class) (*models.Class, error) {
	now := time.Now()
	filter := bson.M{
		"courseId": class.CourseID,
		"year":     class.Year,
		"section":  class.Section,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"courseId":  class.CourseID,
			"year":      class.Year,
			"section":   class.Section,
			"name":      class.Name,
			"createdAt": now,
			"updatedAt": now,
		},
	}

	var found models.Class
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&found)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &found, nil
}
