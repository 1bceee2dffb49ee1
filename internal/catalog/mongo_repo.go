package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	authorsCollection   = "authors"
	booksCollection     = "books"
	instancesCollection = "bookinstances"
)

type authorDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"first_name"`
	FamilyName  string             `bson:"family_name"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty"`
	DateOfDeath *time.Time         `bson:"date_of_death,omitempty"`
}

func (d authorDoc) toAuthor() Author {
	return Author{
		ID:          d.ID.Hex(),
		FirstName:   d.FirstName,
		FamilyName:  d.FamilyName,
		DateOfBirth: d.DateOfBirth,
		DateOfDeath: d.DateOfDeath,
	}
}

type bookDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author primitive.ObjectID `bson:"author"`
}

type instanceDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Book    primitive.ObjectID `bson:"book"`
	Imprint string             `bson:"imprint"`
	Status  string             `bson:"status"`
	// Books is filled by the $lookup stage.
	Books []bookDoc `bson:"books,omitempty"`
}

// MongoRepo reads the catalog from the authors, books and bookinstances collections.
type MongoRepo struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// OpenMongo connects to uri and verifies the primary is reachable.
func OpenMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	repo := NewMongoRepo(client, database, timeout)
	if err := repo.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return repo, nil
}

func NewMongoRepo(client *mongo.Client, database string, timeout time.Duration) *MongoRepo {
	return &MongoRepo{client: client, db: client.Database(database), timeout: timeout}
}

func (r *MongoRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepo) FindAuthors(ctx context.Context) ([]Author, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "family_name", Value: 1}})
	cur, err := r.db.Collection(authorsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	var docs []authorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}

	out := make([]Author, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toAuthor())
	}
	return out, nil
}

func (r *MongoRepo) FindBookByID(ctx context.Context, id string) (*Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid ObjectID, so nothing can match it.
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc bookDoc
	err = r.db.Collection(booksCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book %s: %w", id, err)
	}

	book := &Book{ID: doc.ID.Hex(), Title: doc.Title}

	var author authorDoc
	err = r.db.Collection(authorsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: doc.Author}}).Decode(&author)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		// dangling author reference: leave the name empty
	case err != nil:
		return nil, fmt.Errorf("populate author of book %s: %w", id, err)
	default:
		book.AuthorName = author.toAuthor().Name()
	}
	return book, nil
}

func (r *MongoRepo) FindCopiesByBookID(ctx context.Context, bookID string) ([]Copy, error) {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return []Copy{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "imprint", Value: 1},
		{Key: "status", Value: 1},
	})
	cur, err := r.db.Collection(instancesCollection).Find(ctx, bson.D{{Key: "book", Value: oid}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find copies of book %s: %w", bookID, err)
	}
	var docs []instanceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode copies of book %s: %w", bookID, err)
	}

	out := make([]Copy, 0, len(docs))
	for _, d := range docs {
		out = append(out, Copy{Imprint: d.Imprint, Status: d.Status})
	}
	return out, nil
}

func (r *MongoRepo) FindInstancesByStatus(ctx context.Context, status string) ([]Instance, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: bson.D{{Key: "$eq", Value: status}}}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: booksCollection},
			{Key: "localField", Value: "book"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "books"},
		}}},
	}
	cur, err := r.db.Collection(instancesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate instances with status %q: %w", status, err)
	}
	var docs []instanceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode instances with status %q: %w", status, err)
	}

	out := make([]Instance, 0, len(docs))
	for _, d := range docs {
		in := Instance{ID: d.ID.Hex(), Imprint: d.Imprint, Status: d.Status}
		if len(d.Books) > 0 {
			in.Book = &Book{ID: d.Books[0].ID.Hex(), Title: d.Books[0].Title}
		}
		out = append(out, in)
	}
	return out, nil
}

// Seed inserts authors, their books and the books' copies.
func (r *MongoRepo) Seed(ctx context.Context, authors []SeedAuthor) (SeedResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var res SeedResult
	for _, a := range authors {
		authorRes, err := r.db.Collection(authorsCollection).InsertOne(ctx, authorDoc{
			FirstName:   a.FirstName,
			FamilyName:  a.FamilyName,
			DateOfBirth: a.DateOfBirth,
			DateOfDeath: a.DateOfDeath,
		})
		if err != nil {
			return res, fmt.Errorf("insert author %s: %w", a.FamilyName, err)
		}
		res.Authors++
		authorID, ok := authorRes.InsertedID.(primitive.ObjectID)
		if !ok {
			return res, fmt.Errorf("insert author %s: unexpected id type %T", a.FamilyName, authorRes.InsertedID)
		}

		for _, b := range a.Books {
			bookRes, err := r.db.Collection(booksCollection).InsertOne(ctx, bookDoc{Title: b.Title, Author: authorID})
			if err != nil {
				return res, fmt.Errorf("insert book %q: %w", b.Title, err)
			}
			res.Books++
			bookID, ok := bookRes.InsertedID.(primitive.ObjectID)
			if !ok {
				return res, fmt.Errorf("insert book %q: unexpected id type %T", b.Title, bookRes.InsertedID)
			}

			if len(b.Copies) == 0 {
				continue
			}
			docs := make([]interface{}, 0, len(b.Copies))
			for _, c := range b.Copies {
				docs = append(docs, instanceDoc{Book: bookID, Imprint: c.Imprint, Status: c.Status})
			}
			if _, err := r.db.Collection(instancesCollection).InsertMany(ctx, docs); err != nil {
				return res, fmt.Errorf("insert copies of %q: %w", b.Title, err)
			}
			res.Copies += len(docs)
		}
	}
	return res, nil
}
