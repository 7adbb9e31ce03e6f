package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/eduplatform/education-api/internal/core/domain"
)

func articleDoc(oid primitive.ObjectID, title, userID string, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "title", Value: title},
		{Key: "description", Value: "notes"},
		{Key: "source_url", Value: "https://go.dev/doc"},
		{Key: "user_id", Value: userID},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(created)},
		{Key: "updated_at", Value: primitive.NewDateTimeFromTime(created)},
	}
}

func TestArticleRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	created := time.Date(2024, 5, 6, 7, 8, 9, 250_000_000, time.UTC)

	mt.Run("find by id decodes object id as hex", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.articles", mtest.FirstBatch,
			articleDoc(oid, "Effective Go", "7", created)))

		a, err := repo.FindByID(context.Background(), oid.Hex())
		if err != nil {
			mt.Fatalf("FindByID returned error: %v", err)
		}
		if a.ID != oid.Hex() {
			mt.Fatalf("expected id %q, got %q", oid.Hex(), a.ID)
		}
		if a.Title != "Effective Go" || a.UserID != "7" || !a.CreatedAt.Equal(created) {
			mt.Fatalf("unexpected article: %+v", a)
		}
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.articles", mtest.FirstBatch))

		if _, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex()); err != domain.ErrArticleNotFound {
			mt.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
	})

	mt.Run("find by malformed id", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}

		if _, err := repo.FindByID(context.Background(), "42"); err != domain.ErrArticleNotFound {
			mt.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
	})

	mt.Run("list by user filters on owner", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.articles", mtest.FirstBatch,
			articleDoc(first, "Tour", "7", created),
			articleDoc(second, "Generics", "7", created.Add(time.Minute)),
		))
		mt.ClearEvents()

		articles, err := repo.ListByUser(context.Background(), "7")
		if err != nil {
			mt.Fatalf("ListByUser returned error: %v", err)
		}
		if len(articles) != 2 || articles[0].ID != first.Hex() || articles[1].ID != second.Hex() {
			mt.Fatalf("unexpected articles: %+v", articles)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "find" {
			mt.Fatalf("expected a find command, got %+v", started)
		}
		owner, ok := started.Command.Lookup("filter", "user_id").StringValueOK()
		if !ok || owner != "7" {
			mt.Fatalf("expected filter on user_id 7, got %s", started.Command.Lookup("filter"))
		}
	})

	mt.Run("list by user with no articles", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.articles", mtest.FirstBatch))

		articles, err := repo.ListByUser(context.Background(), "9")
		if err != nil {
			mt.Fatalf("ListByUser returned error: %v", err)
		}
		if articles == nil || len(articles) != 0 {
			mt.Fatalf("expected empty non-nil slice, got %#v", articles)
		}
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		a, err := repo.Create(context.Background(), &domain.Article{Title: "Tour", UserID: "7", CreatedAt: created})
		if err != nil {
			mt.Fatalf("Create returned error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(a.ID); err != nil {
			mt.Fatalf("expected ObjectID hex id, got %q", a.ID)
		}
	})

	mt.Run("update missing article", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		_, err := repo.Update(context.Background(), &domain.Article{ID: primitive.NewObjectID().Hex(), Title: "x"})
		if err != domain.ErrArticleNotFound {
			mt.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
	})

	mt.Run("delete missing article", func(mt *mtest.T) {
		repo := &ArticleRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Delete(context.Background(), primitive.NewObjectID().Hex()); err != domain.ErrArticleNotFound {
			mt.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
	})
}
