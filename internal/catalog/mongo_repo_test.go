package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupCatalogTestMongo(t *testing.T) *MongoRepo {
	t.Helper()
	ctx := context.Background()

	uri := os.Getenv("CATALOG_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	connectCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	repo, err := OpenMongo(connectCtx, uri, "local_library_test", 5*time.Second)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test mongo: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.db.Drop(context.Background())
		_ = repo.Close(context.Background())
	})

	require.NoError(t, repo.db.Drop(ctx))
	res, err := repo.Seed(ctx, SampleCatalog())
	require.NoError(t, err)
	require.Equal(t, SeedResult{Authors: 4, Books: 6, Copies: 7}, res)
	return repo
}

func mongoBookID(t *testing.T, repo *MongoRepo, title string) string {
	t.Helper()
	var doc bookDoc
	err := repo.db.Collection(booksCollection).FindOne(context.Background(), bson.D{{Key: "title", Value: title}}).Decode(&doc)
	require.NoError(t, err)
	return doc.ID.Hex()
}

func TestMongoRepo_FindAuthors_SortedByFamilyName(t *testing.T) {
	repo := setupCatalogTestMongo(t)

	authors, err := repo.FindAuthors(context.Background())
	require.NoError(t, err)

	var families []string
	for _, a := range authors {
		families = append(families, a.FamilyName)
	}
	assert.Equal(t, []string{"Asimov", "Bova", "Jones", "Rothfuss"}, families)
	assert.Equal(t, "Asimov, Isaac : 1920 - 1992", FormatAuthorEntry(authors[0]))
}

func TestMongoRepo_FindBookByID(t *testing.T) {
	repo := setupCatalogTestMongo(t)
	ctx := context.Background()

	t.Run("resolves author name", func(t *testing.T) {
		id := mongoBookID(t, repo, "Death Wave")

		book, err := repo.FindBookByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, id, book.ID)
		assert.Equal(t, "Bova, Ben", book.AuthorName)
	})

	t.Run("dangling author leaves name empty", func(t *testing.T) {
		ins, err := repo.db.Collection(booksCollection).InsertOne(ctx, bookDoc{Title: "Orphan", Author: primitive.NewObjectID()})
		require.NoError(t, err)
		id := ins.InsertedID.(primitive.ObjectID).Hex()

		book, err := repo.FindBookByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, "Orphan", book.Title)
		assert.Empty(t, book.AuthorName)
	})

	t.Run("unknown id", func(t *testing.T) {
		book, err := repo.FindBookByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, book)
	})

	t.Run("malformed id", func(t *testing.T) {
		book, err := repo.FindBookByID(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, book)
	})
}

func TestMongoRepo_FindCopiesByBookID_ProjectsImprintAndStatus(t *testing.T) {
	repo := setupCatalogTestMongo(t)
	ctx := context.Background()

	copies, err := repo.FindCopiesByBookID(ctx, mongoBookID(t, repo, "Apes and Angels"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []Copy{
		{Imprint: "New York Tom Doherty Associates, 2016.", Status: StatusAvailable},
		{Imprint: "New York Tom Doherty Associates, 2016.", Status: StatusReserved},
	}, copies)

	copies, err = repo.FindCopiesByBookID(ctx, mongoBookID(t, repo, "Test Book 1"))
	require.NoError(t, err)
	assert.Empty(t, copies)
}

func TestMongoRepo_FindInstancesByStatus(t *testing.T) {
	repo := setupCatalogTestMongo(t)
	ctx := context.Background()

	instances, err := repo.FindInstancesByStatus(ctx, StatusLoaned)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, StatusLoaned, instances[0].Status)
	require.NotNil(t, instances[0].Book)
	assert.Equal(t, "The Name of the Wind (The Kingkiller Chronicle, #1)", instances[0].Book.Title)

	entries, err := NewService(repo).BooksStatus(ctx, StatusAvailable)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"The Name of the Wind (The Kingkiller Chronicle, #1): Available",
		"Apes and Angels: Available",
		"Death Wave: Available",
	}, entries)
}

func TestMongoRepo_DanglingBookReference(t *testing.T) {
	repo := setupCatalogTestMongo(t)
	ctx := context.Background()

	_, err := repo.db.Collection(instancesCollection).InsertOne(ctx, instanceDoc{
		Book:    primitive.NewObjectID(),
		Imprint: "Lost imprint",
		Status:  StatusMaintenance,
	})
	require.NoError(t, err)

	instances, err := repo.FindInstancesByStatus(ctx, StatusMaintenance)
	require.NoError(t, err)
	require.Len(t, instances, 2)

	var unresolved int
	for _, in := range instances {
		if in.Book == nil {
			unresolved++
		}
	}
	assert.Equal(t, 1, unresolved)

	_, err = NewService(repo).BooksStatus(ctx, StatusMaintenance)
	assert.ErrorIs(t, err, ErrUnresolvedBook)
}
