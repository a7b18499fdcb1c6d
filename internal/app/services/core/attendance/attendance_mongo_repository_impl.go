package attendance

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"campushub-service/internal/pkg/exceptions"
	"campushub-service/internal/pkg/utils"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceMongoRepository struct {
	Collection *mongo.Collection
}

func NewAttendanceMongoRepository(db *mongo.Client, dbName string) contracts.AttendanceRepository {
	return &AttendanceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAttendances),
	}
}

func (r *AttendanceMongoRepository) FindOne(ctx context.Context, classID, staffID string, dateKey string, hour int) (*models.Attendance, error) {
	classObjectID, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	date, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	dayStart, dayEnd := utils.DayWindow(date)

	filter := bson.M{
		"class": classObjectID,
		"hour":  hour,
		"date":  bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	if staffID != "" {
		staffObjectID, err := primitive.ObjectIDFromHex(staffID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["staffId"] = staffObjectID
	}

	var attendance models.Attendance
	err = r.Collection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &attendance, nil
}

func (r *AttendanceMongoRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (string, error) {
	result, err := r.Collection.InsertOne(ctx, attendance)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AttendanceMongoRepository) FindByFilter(ctx context.Context, request *requests.GetAttendance) ([]models.Attendance, error) {
	filter := bson.M{}
	if request.ClassID != "" {
		classObjectID, err := primitive.ObjectIDFromHex(request.ClassID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["class"] = classObjectID
	}
	if request.StaffID != "" {
		staffObjectID, err := primitive.ObjectIDFromHex(request.StaffID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["staffId"] = staffObjectID
	}
	if request.Date != "" {
		date, err := utils.ParseDateKey(request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dayStart, dayEnd := utils.DayWindow(date)
		filter["date"] = bson.M{"$gte": dayStart, "$lt": dayEnd}
	}
	if request.Hour > 0 {
		filter["hour"] = request.Hour
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "hour", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var attendances []models.Attendance
	if err := cursor.All(ctx, &attendances); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return attendances, nil
}

// AggregateForStudent projects a student's own record out of every class
// register that mentions them, newest date first.
func (r *AttendanceMongoRepository) AggregateForStudent(ctx context.Context, studentID string) ([]responses.StudentAttendanceEntry, error) {
	studentObjectID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"records.student": studentObjectID}}},
		{{Key: "$addFields", Value: bson.M{
			"own": bson.M{"$first": bson.M{
				"$filter": bson.M{
					"input": "$records",
					"as":    "record",
					"cond":  bson.M{"$eq": []interface{}{"$$record.student", studentObjectID}},
				},
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"date":   1,
			"hour":   1,
			"class":  1,
			"status": "$own.status",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "hour", Value: 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID     primitive.ObjectID `bson:"_id"`
		Date   primitive.DateTime `bson:"date"`
		Hour   int                `bson:"hour"`
		Class  primitive.ObjectID `bson:"class"`
		Status string             `bson:"status"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	entries := make([]responses.StudentAttendanceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, responses.StudentAttendanceEntry{
			ID:      row.ID.Hex(),
			Date:    row.Date.Time(),
			Hour:    row.Hour,
			Status:  row.Status,
			ClassID: row.Class.Hex(),
		})
	}
	return entries, nil
}
