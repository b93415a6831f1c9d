package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

const courseCollection = "courses"

// MongoCourseRepository persists courses. Courses carry bson tags directly
// (the record is ~50 flat fields; a separate document struct would just
// duplicate it), with the generated ID stored as the document key.
type MongoCourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *MongoCourseRepository {
	return &MongoCourseRepository{coll: db.Collection(courseCollection)}
}

func (r *MongoCourseRepository) Insert(ctx context.Context, course *domain.Course) error {
	if course.UniqueID == "" {
		return domain.ErrMissingUniqueID
	}
	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *MongoCourseRepository) Find(ctx context.Context, filters ports.ListFilters, skip, limit int) ([]domain.Course, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.coll.Find(ctx, listFilterQuery(filters), opts)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer cur.Close(ctx)

	var courses []domain.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

func (r *MongoCourseRepository) Count(ctx context.Context, filters ports.ListFilters) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, listFilterQuery(filters))
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

func (r *MongoCourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

func listFilterQuery(filters ports.ListFilters) bson.M {
	query := bson.M{}
	if filters.University != "" {
		query["universityName"] = filters.University
	}
	if filters.Discipline != "" {
		query["discipline"] = filters.Discipline
	}
	return query
}
