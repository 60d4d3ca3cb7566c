package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

const collectionJobs = "jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

// buildJobQuery translates a JobFilter into a Mongo query document. Kept as a
// pure function so filter logic is testable without a database.
func buildJobQuery(f ports.JobFilter) bson.M {
	query := bson.M{}
	if f.UserID != "" {
		query["user_id"] = f.UserID
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"company": re},
			bson.M{"position": re},
		}
	}
	return query
}

// sortSpec builds the sort document. _id is the secondary key so pages are
// stable when the primary sort field has ties.
func sortSpec(field, order string) bson.D {
	dir := -1
	if order == ports.SortAsc {
		dir = 1
	}
	if field == "" {
		field = ports.DefaultSortField
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// scopedID builds the lookup filter for a job id, adding owner scoping when
// userID is non-empty so foreign jobs behave as absent.
func scopedID(id, userID string) bson.M {
	filter := bson.M{"_id": id}
	if userID != "" {
		filter["user_id"] = userID
	}
	return filter
}

// Create inserts a new job document, assigning an id when missing.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if job.ID == "" {
		job.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id, userID string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.Job
	err := r.col.FindOne(ctx, scopedID(id, userID)).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// List returns a page of jobs matching filter plus the total count matching
// the same filter independent of pagination.
func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildJobQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sortSpec(filter.SortField, filter.SortOrder)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Update applies the non-nil fields of update and returns the new document.
func (r *JobRepository) Update(ctx context.Context, id, userID string, update ports.JobUpdate) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.AppliedDate != nil {
		set["applied_date"] = update.AppliedDate.UTC()
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Salary != nil {
		set["salary"] = *update.Salary
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.JobURL != nil {
		set["job_url"] = *update.JobURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job domain.Job
	err := r.col.FindOneAndUpdate(ctx, scopedID(id, userID), bson.M{"$set": set}, opts).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, scopedID(id, userID))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// CountByStatus groups jobs by status server-side. An empty userID counts
// across all users.
func (r *JobRepository) CountByStatus(ctx context.Context, userID string) (map[domain.JobStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if userID != "" {
		match["user_id"] = userID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[domain.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[domain.JobStatus(row.Status)] = row.Count
	}
	return counts, nil
}

// RecentlyUpdated returns the owner's jobs ordered by updated_at descending.
func (r *JobRepository) RecentlyUpdated(ctx context.Context, userID string, limit int) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0, limit)
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *JobRepository) CountForUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *JobRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since.UTC()}})
}

// EnsureIndexes creates the secondary indexes for common query patterns.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
