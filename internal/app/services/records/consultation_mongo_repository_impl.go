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

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (repo *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := repo.Collection.FindOne(ctx, bson.M{"_id": consultationID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (repo *ConsultationMongoRepository) FindByPatientsInRange(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.Consultation, error) {
	filter := bson.M{"pacienteId": bson.M{"$in": patientIDs}}
	if clauses := dateRangeClauses("fecha", from, to); clauses != nil {
		filter["$or"] = clauses
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (repo *ConsultationMongoRepository) FindPatientIDsInRange(ctx context.Context, from, to time.Time) ([]string, error) {
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

func (repo *ConsultationMongoRepository) FindLatestByPatient(ctx context.Context, patientID string) (*models.Consultation, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"pacienteId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return latestConsultation(consultations), nil
}

// latestConsultation picks the newest consultation by decoded timestamp. A
// mongo sort on fecha cannot do this: BSON orders by type before value, so a
// datetime-typed fecha would always outrank a newer string-typed one.
func latestConsultation(consultations []models.Consultation) *models.Consultation {
	var latest *models.Consultation
	for i := range consultations {
		if latest == nil || consultations[i].Date.Time().After(latest.Date.Time()) {
			latest = &consultations[i]
		}
	}
	return latest
}

func stringValues(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
