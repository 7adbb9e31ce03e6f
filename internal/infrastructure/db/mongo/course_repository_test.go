package mongo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/eduplatform/education-api/internal/core/domain"
)

func TestCourseRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by id decodes object id as hex", func(mt *mtest.T) {
		repo := &CourseRepository{col: mt.Coll}
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.courses", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Go basics"},
			{Key: "lessons", Value: 12},
			{Key: "hours", Value: 30},
		}))

		c, err := repo.FindByID(context.Background(), oid.Hex())
		if err != nil {
			mt.Fatalf("FindByID returned error: %v", err)
		}
		if c.ID != oid.Hex() || c.Title != "Go basics" || c.Lessons != 12 || c.Hours != 30 {
			mt.Fatalf("unexpected course: %+v", c)
		}
	})

	mt.Run("find by malformed id", func(mt *mtest.T) {
		repo := &CourseRepository{col: mt.Coll}

		if _, err := repo.FindByID(context.Background(), "not-an-id"); err != domain.ErrCourseNotFound {
			mt.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})

	mt.Run("list decodes every course", func(mt *mtest.T) {
		repo := &CourseRepository{col: mt.Coll}
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.courses", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "title", Value: "Go"}},
			bson.D{{Key: "_id", Value: second}, {Key: "title", Value: "Rust"}},
		))

		courses, err := repo.List(context.Background())
		if err != nil {
			mt.Fatalf("List returned error: %v", err)
		}
		if len(courses) != 2 || courses[0].ID != first.Hex() || courses[1].ID != second.Hex() {
			mt.Fatalf("unexpected courses: %+v", courses)
		}
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := &CourseRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, err := repo.Create(context.Background(), &domain.Course{Title: "Go basics", Lessons: 12, Hours: 30})
		if err != nil {
			mt.Fatalf("Create returned error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(c.ID); err != nil {
			mt.Fatalf("expected ObjectID hex id, got %q", c.ID)
		}
	})

	mt.Run("update missing course", func(mt *mtest.T) {
		repo := &CourseRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		_, err := repo.Update(context.Background(), &domain.Course{ID: primitive.NewObjectID().Hex(), Title: "x"})
		if err != domain.ErrCourseNotFound {
			mt.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})

	mt.Run("delete missing course", func(mt *mtest.T) {
		repo := &CourseRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Delete(context.Background(), primitive.NewObjectID().Hex()); err != domain.ErrCourseNotFound {
			mt.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})
}
