package catalog

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogMongoRepository struct {
	Collection *mongo.Collection
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) contracts.CatalogRepository {
	return &CatalogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCatalog),
	}
}

func (repo *CatalogMongoRepository) FindAll(ctx context.Context) ([]models.CatalogEntry, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.CatalogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}
