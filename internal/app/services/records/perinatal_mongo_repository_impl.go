package records

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PerinatalSessionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPerinatalSessionMongoRepository(db *mongo.Client, dbName string) contracts.PerinatalSessionRepository {
	return &PerinatalSessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPerinatalSessions),
	}
}

func (repo *PerinatalSessionMongoRepository) FindByPatientsInRange(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.PerinatalSession, error) {
	filter := bson.M{"pacienteId": bson.M{"$in": patientIDs}}
	if clauses := dateRangeClauses("fecha", from, to); clauses != nil {
		filter["$or"] = clauses
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessions []models.PerinatalSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sessions, nil
}

func (repo *PerinatalSessionMongoRepository) FindPatientIDsInRange(ctx context.Context, from, to time.Time) ([]string, error) {
	filter := bson.M{}
	if clauses := dateRangeClauses("fecha", from, to); clauses != nil {
		filter["$or"] = clauses
	}
	values, err := repo.Collection.Distinct(ctx, "pacienteId", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBDistinct(err)
	}
	return stringValues(values), nil
}
