package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/repository/specification"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.TaxonomyRepository())
	assert.NotNil(t, uow.MessageRepository())
	assert.NotNil(t, uow.ActivityRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Taxonomy Repository", func(t *testing.T) {
		count, err := uow.TaxonomyRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Taxonomy entry count: %d", count)
	})

	t.Run("Check Transactional Message Create", func(t *testing.T) {
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		msg := &entity.Message{
			Id:        uuid.New(),
			SessionId: sessionId,
			Body:      "integration test message",
		}

		err = uow.MessageRepository().Create(ctx, msg)
		assert.NoError(t, err)

		found, err := uow.MessageRepository().FindOne(ctx,
			specification.ByID{ID: msg.Id},
			specification.BySessionID{SessionID: sessionId},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "integration test message", found.Body)

		// Rollback via defer keeps the table clean.
	})

	t.Run("Check Taxonomy Repository Round Trip", func(t *testing.T) {
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		repo := uow.TaxonomyRepository()
		class := "itest-" + uuid.NewString()[:8]
		parent := "tooling"

		err = repo.CreateBulk(ctx, []*entity.TaxonomyEntry{
			{Id: uuid.New(), ClassName: class, Name: "tooling", Title: "Tooling"},
			{Id: uuid.New(), ClassName: class, Name: "git", Parent: &parent, Title: "Git", Synonyms: []string{"scm"}},
		})
		assert.NoError(t, err)

		err = repo.Create(ctx, &entity.TaxonomyEntry{
			Id: uuid.New(), ClassName: class, Name: "mercurial", Parent: &parent, Title: "Mercurial",
		})
		assert.NoError(t, err)

		found, err := repo.FindOne(ctx,
			specification.ByClassName{ClassName: class},
			specification.ByName{Name: "git"},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "Git", found.Title)

		found.Title = "Git SCM"
		err = repo.Update(ctx, found)
		assert.NoError(t, err)

		found, err = repo.FindOne(ctx,
			specification.ByClassName{ClassName: class},
			specification.ByName{Name: "git"},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "Git SCM", found.Title)

		err = repo.DeleteByClassName(ctx, class)
		assert.NoError(t, err)

		count, err := repo.Count(ctx, specification.ByClassName{ClassName: class})
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}
