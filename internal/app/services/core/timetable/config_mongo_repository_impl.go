package timetable

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConfigMongoRepository struct {
	Collection *mongo.Collection
}

func NewConfigMongoRepository(db *mongo.Client, dbName string) contracts.CollegeConfigRepository {
	return &ConfigMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCollegeConfigs),
	}
}

func (r *ConfigMongoRepository) GetConfiguration(ctx context.Context) (*models.CollegeConfig, error) {
	var config models.CollegeConfig
	err := r.Collection.FindOne(ctx, bson.M{"type": constvars.TimetableConfigType}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &config, nil
}

// SaveConfiguration upserts the singleton in place so the document id is
// stable across saves.
func (r *ConfigMongoRepository) SaveConfiguration(ctx context.Context, weeklySchedule, overrides map[string]string) (*models.CollegeConfig, error) {
	if overrides == nil {
		overrides = map[string]string{}
	}
	now := time.Now()
	filter := bson.M{"type": constvars.TimetableConfigType}
	update := bson.M{
		"$set": bson.M{
			"weeklySchedule": weeklySchedule,
			"overrides":      overrides,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{
			"type":      constvars.TimetableConfigType,
			"createdAt": now,
		},
	}

	var config models.CollegeConfig
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&config)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &config, nil
}

func (r *ConfigMongoRepository) DeleteConfiguration(ctx context.Context) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"type": constvars.TimetableConfigType})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
