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

const collectionCompetitions = "competitions"

type CompetitionRepository struct {
	col *mongo.Collection
}

func NewCompetitionRepository(db *mongo.Database) *CompetitionRepository {
	return &CompetitionRepository{col: db.Collection(collectionCompetitions)}
}

func (r *CompetitionRepository) FindByID(ctx context.Context, id string) (*domain.Competition, error) {
	oid, err := objectID(id, domain.ErrCompetitionNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CompetitionRepository) FindByYear(ctx context.Context, year int) (*domain.Competition, error) {
	return r.findOne(ctx, bson.M{"year": year})
}

// List returns every edition, most recent first.
func (r *CompetitionRepository) List(ctx context.Context) ([]*domain.Competition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "year", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find competitions: %w", err)
	}
	var docs []competitionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode competitions: %w", err)
	}

	out := make([]*domain.Competition, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCompetitionDoc(c)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompetitionExists
		}
		return nil, fmt.Errorf("insert competition: %w", err)
	}
	doc.ID = insertedID(res)
	return doc.toDomain(), nil
}

func (r *CompetitionRepository) Update(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	oid, err := objectID(c.ID, domain.ErrCompetitionNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCompetitionDoc(c)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompetitionExists
		}
		return nil, fmt.Errorf("replace competition: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCompetitionNotFound
	}
	return doc.toDomain(), nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrCompetitionNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete competition: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompetitionNotFound
	}
	return nil
}

func (r *CompetitionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Competition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc competitionDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("find competition: %w", err)
	}
	return doc.toDomain(), nil
}
