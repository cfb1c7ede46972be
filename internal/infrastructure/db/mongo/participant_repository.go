package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/songcontest/contest-api/internal/core/domain"
)

const collectionParticipants = "participants"

type ParticipantRepository struct {
	col *mongo.Collection
}

func NewParticipantRepository(db *mongo.Database) *ParticipantRepository {
	return &ParticipantRepository{col: db.Collection(collectionParticipants)}
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (*domain.Participant, error) {
	oid, err := objectID(id, domain.ErrParticipantNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc participantDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("find participant: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs skips malformed and missing ids.
func (r *ParticipantRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Participant, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*domain.Participant{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// Find lists entries matching f, sorted by country name.
func (r *ParticipantRepository) Find(ctx context.Context, f domain.ParticipantFilter) ([]*domain.Participant, error) {
	filter := bson.M{}
	if f.Year != nil {
		filter["year"] = *f.Year
	}
	if f.VotedBy != "" {
		oid, err := primitive.ObjectIDFromHex(f.VotedBy)
		if err != nil {
			return []*domain.Participant{}, nil
		}
		filter["votes.user"] = oid
	}
	return r.find(ctx, filter)
}

func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	doc, err := toParticipantDoc(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert participant: %w", err)
	}
	doc.ID = insertedID(res)
	return doc.toDomain(), nil
}

// Update sets the descriptive fields only. The vote list is owned by Save.
func (r *ParticipantRepository) Update(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	doc, err := toParticipantDoc(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"country":    doc.Country,
		"countryId":  doc.CountryID,
		"emoji":      doc.Emoji,
		"flag":       doc.Flag,
		"artist":     doc.Artist,
		"song":       doc.Song,
		"image":      doc.Image,
		"intro":      doc.Intro,
		"bio":        doc.Bio,
		"writtenBy":  doc.WrittenBy,
		"composedBy": doc.ComposedBy,
		"semifinal":  doc.Semifinal,
		"final":      doc.Final,
		"youtube":    doc.Youtube,
		"year":       doc.Year,
		"points":     doc.Points,
	}

	var updated participantDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return updated.toDomain(), nil
}

// Save replaces the whole document, vote list included.
func (r *ParticipantRepository) Save(ctx context.Context, p *domain.Participant) error {
	doc, err := toParticipantDoc(p)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("replace participant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrParticipantNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *ParticipantRepository) find(ctx context.Context, filter bson.M) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "country", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find participants: %w", err)
	}
	var docs []participantDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode participants: %w", err)
	}

	out := make([]*domain.Participant, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
