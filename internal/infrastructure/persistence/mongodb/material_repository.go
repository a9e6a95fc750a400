package mongodb

import (
	"context"
	"errors"
	"time"

	dbmongo "career-connect/internal/database/mongo"
	"career-connect/internal/domain/material"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MaterialRepository struct {
	coll *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MaterialRepository {
	return &MaterialRepository{coll: db.Collection(dbmongo.CollStudyMaterials)}
}

func (r *MaterialRepository) Create(ctx context.Context, m material.Material) (material.Material, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return material.Material{}, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		m.ID = oid
	}
	return m, nil
}

func (r *MaterialRepository) GetByID(ctx context.Context, id string) (material.Material, error) {
	oid, err := materialObjectID(id)
	if err != nil {
		return material.Material{}, err
	}

	var m material.Material
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return material.Material{}, material.ErrNotFound
		}
		return material.Material{}, err
	}
	return m, nil
}

func (r *MaterialRepository) List(ctx context.Context, f material.ListFilter) ([]material.Material, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	out := make([]material.Material, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaterialRepository) Update(ctx context.Context, id string, fields map[string]any) (material.Material, error) {
	oid, err := materialObjectID(id)
	if err != nil {
		return material.Material{}, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return material.Material{}, err
	}
	if res.MatchedCount == 0 {
		return material.Material{}, material.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	oid, err := materialObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return material.ErrNotFound
	}
	return nil
}

func materialObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, material.ErrInvalidID
	}
	return oid, nil
}
