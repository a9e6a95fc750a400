package mongodb

import (
	"context"
	"errors"
	"time"

	dbmongo "career-connect/internal/database/mongo"
	"career-connect/internal/domain/job"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(dbmongo.CollJobs)}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	res, err := r.coll.InsertOne(ctx, j)
	if err != nil {
		return job.Job{}, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		j.ID = oid
	}
	return j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	oid, err := jobObjectID(id)
	if err != nil {
		return job.Job{}, err
	}

	var j job.Job
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) GetDetailByID(ctx context.Context, id string) (job.OverviewDetail, error) {
	oid, err := jobObjectID(id)
	if err != nil {
		return job.OverviewDetail{}, err
	}

	proj := bson.M{
		"title":            1,
		"department":       1,
		"location":         1,
		"description":      1,
		"application_link": 1,
		"views":            1,
	}

	var d job.OverviewDetail
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(proj)).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return job.OverviewDetail{}, job.ErrNotFound
		}
		return job.OverviewDetail{}, err
	}
	return d, nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.find(ctx, bson.D{})
}

func (r *JobRepository) ListByStatus(ctx context.Context, filter job.StatusFilter, today string) ([]job.Job, error) {
	return r.find(ctx, statusPredicate(filter, today))
}

// statusPredicate builds the disjunctive overview filter. Both branches OR
// the stored status field with the end_date comparison, so a document with
// stale status metadata still matches its stored classification.
func statusPredicate(filter job.StatusFilter, today string) any {
	switch filter {
	case job.FilterLive:
		return bson.M{"$or": bson.A{
			bson.M{"end_date": bson.M{"$exists": false}},
			bson.M{"end_date": bson.M{"$gt": today}},
			bson.M{"status": job.StatusLive},
		}}
	case job.FilterExpired:
		return bson.M{"$or": bson.A{
			bson.M{"end_date": bson.M{"$lt": today}},
			bson.M{"status": job.StatusExpired},
		}}
	default:
		return bson.D{}
	}
}

func (r *JobRepository) ListByIDs(ctx context.Context, ids []string) ([]job.Job, error) {
	if len(ids) == 0 {
		return []job.Job{}, nil
	}

	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	// An $in over an empty set would still run a full scan's worth of
	// nothing useful; short-circuit before touching the store.
	if len(oids) == 0 {
		return []job.Job{}, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *JobRepository) Update(ctx context.Context, id string, fields map[string]any) (job.Job, error) {
	oid, err := jobObjectID(id)
	if err != nil {
		return job.Job{}, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return job.Job{}, err
	}
	if res.MatchedCount == 0 {
		return job.Job{}, job.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := jobObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	oid, err := jobObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"pinned": pinned}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) IncrementViews(ctx context.Context, id string) error {
	oid, err := jobObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) find(ctx context.Context, filter any) ([]job.Job, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	jobs := make([]job.Job, 0)
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func jobObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, job.ErrInvalidID
	}
	return oid, nil
}
