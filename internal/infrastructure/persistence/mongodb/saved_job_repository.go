package mongodb

import (
	"context"

	dbmongo "career-connect/internal/database/mongo"
	"career-connect/internal/domain/savedjob"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SavedJobRepository struct {
	coll *mongo.Collection
}

func NewSavedJobRepository(db *mongo.Database) *SavedJobRepository {
	return &SavedJobRepository{coll: db.Collection(dbmongo.CollSavedJobs)}
}

func (r *SavedJobRepository) ListByUser(ctx context.Context, userID string) ([]savedjob.SavedJob, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	out := make([]savedjob.SavedJob, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SavedJobRepository) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "job_id": jobID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SavedJobRepository) Create(ctx context.Context, s savedjob.SavedJob) error {
	_, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		// The unique (user_id, job_id) index turns a concurrent double-save
		// into a duplicate-key error; saving an already-saved job is a no-op.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *SavedJobRepository) Delete(ctx context.Context, userID, jobID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "job_id": jobID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return savedjob.ErrNotFound
	}
	return nil
}
