package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillbox/quillbox-server/internal/note"
)

// MongoRepo implements a MongoDB-backed repository for notes. Identifiers are
// ObjectID hex strings; an id that does not parse behaves like a missing note.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (m *MongoRepo) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.CreatedAt = now
	n.UpdatedAt = now
	if _, err := m.col.InsertOne(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*note.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var n note.Note
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (m *MongoRepo) List(ctx context.Context, q ListQuery) ([]*note.Note, error) {
	filter := bson.M{"deleted": false}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{bson.M{"title": re}, bson.M{"content": re}}
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	switch q.Sort {
	case SortUpdated:
		sort = bson.D{{Key: "updatedAt", Value: -1}}
	case SortTitle:
		sort = bson.D{{Key: "title", Value: 1}}
	}

	return m.find(ctx, filter, sort)
}

func (m *MongoRepo) ListDeleted(ctx context.Context) ([]*note.Note, error) {
	return m.find(ctx, bson.M{"deleted": true}, bson.D{{Key: "deletedAt", Value: -1}})
}

func (m *MongoRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]*note.Note, error) {
	cur, err := m.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*note.Note{}
	for cur.Next(ctx) {
		var n note.Note
		if err := cur.Decode(&n); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Update(ctx context.Context, id string, f UpdateFields) (*note.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if f.Title != nil {
		set["title"] = *f.Title
	}
	if f.Content != nil {
		set["content"] = *f.Content
	}
	if f.Color != nil {
		set["color"] = *f.Color
	}
	if f.Category != nil {
		set["category"] = *f.Category
	}
	if f.Tags != nil {
		set["tags"] = *f.Tags
	}
	if f.Pinned != nil {
		set["pinned"] = *f.Pinned
	}
	return m.findOneAndSet(ctx, oid, set)
}

func (m *MongoRepo) SetDeleted(ctx context.Context, id string, deleted bool, deletedAt *time.Time) (*note.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return m.findOneAndSet(ctx, oid, bson.M{"deleted": deleted, "deletedAt": deletedAt})
}

func (m *MongoRepo) findOneAndSet(ctx context.Context, oid primitive.ObjectID, set bson.M) (*note.Note, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var n note.Note
	err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllDeleted removes every trashed note in one command and reports how
// many were removed.
func (m *MongoRepo) DeleteAllDeleted(ctx context.Context) (int64, error) {
	res, err := m.col.DeleteMany(ctx, bson.M{"deleted": true})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
