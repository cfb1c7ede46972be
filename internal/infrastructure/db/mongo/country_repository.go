package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/songcontest/contest-api/internal/core/domain"
)

const collectionCountries = "countries"

type CountryRepository struct {
	col *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{col: db.Collection(collectionCountries)}
}

func (r *CountryRepository) FindByID(ctx context.Context, id string) (*domain.Country, error) {
	oid, err := objectID(id, domain.ErrCountryNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CountryRepository) FindByName(ctx context.Context, name string) (*domain.Country, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CountryRepository) List(ctx context.Context) ([]*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find countries: %w", err)
	}
	var docs []countryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	out := make([]*domain.Country, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *CountryRepository) Create(ctx context.Context, c *domain.Country) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCountryDoc(c)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCountryExists
		}
		return nil, fmt.Errorf("insert country: %w", err)
	}
	doc.ID = insertedID(res)
	return doc.toDomain(), nil
}

func (r *CountryRepository) Update(ctx context.Context, c *domain.Country) (*domain.Country, error) {
	oid, err := objectID(c.ID, domain.ErrCountryNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCountryDoc(c)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCountryExists
		}
		return nil, fmt.Errorf("replace country: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCountryNotFound
	}
	return doc.toDomain(), nil
}

func (r *CountryRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrCountryNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (r *CountryRepository) findOne(ctx context.Context, filter bson.M) (*domain.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc countryDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return doc.toDomain(), nil
}
