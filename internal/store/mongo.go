// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/device-notes/internal/config"
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/models"
)

// mongoDocumentStore is the MongoDB-backed implementation of [DocumentStore].
// Each [models.Container] maps to one document in the configured collection;
// note-level mutations use $push, $pull and positional $set so every
// operation is a single atomic document update.
type mongoDocumentStore struct {
	client     *mongo.Client
	collection *mongo.Collection

	logger *logger.Logger
}

// NewMongoDocumentStore connects to MongoDB using the given settings and
// verifies the connection with a ping before returning the store.
func NewMongoDocumentStore(ctx context.Context, cfg config.Documents, logger *logger.Logger) (DocumentStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to document store: %w", err)
	}

	if pingErr := client.Ping(ctx, nil); pingErr != nil {
		return nil, fmt.Errorf("document store is not reachable: %w", pingErr)
	}

	logger.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to document store")

	return &mongoDocumentStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     logger,
	}, nil
}

func (m *mongoDocumentStore) FindContainer(ctx context.Context, identityKey string) (*models.Container, error) {
	var container models.Container

	err := m.collection.FindOne(ctx, bson.M{"identity_key": identityKey}).Decode(&container)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return &container, nil
}

func (m *mongoDocumentStore) FindContainers(ctx context.Context, identityKeys []string) ([]models.Container, error) {
	cursor, err := m.collection.Find(ctx, bson.M{"identity_key": bson.M{"$in": identityKeys}})
	if err != nil {
		return nil, err
	}

	var containers []models.Container
	if decodeErr := cursor.All(ctx, &containers); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, decodeErr)
	}

	return containers, nil
}

func (m *mongoDocumentStore) InsertContainer(ctx context.Context, container models.Container) error {
	_, err := m.collection.InsertOne(ctx, container)
	return err
}

func (m *mongoDocumentStore) PushNote(ctx context.Context, identityKey string, note models.Note) (int64, error) {
	result, err := m.collection.UpdateOne(ctx,
		bson.M{"identity_key": identityKey},
		bson.M{"$push": bson.M{"notes": note}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (m *mongoDocumentStore) SetNoteFields(ctx context.Context, identityKeys []string, noteID string, update models.NoteUpdate) (int64, error) {
	filter := bson.M{
		"identity_key": bson.M{"$in": identityKeys},
		"notes._id":    noteID,
	}

	result, err := m.collection.UpdateMany(ctx, filter, bson.M{"$set": noteUpdateFields(update)})
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (m *mongoDocumentStore) PullNote(ctx context.Context, identityKeys []string, noteID string) (int64, error) {
	result, err := m.collection.UpdateMany(ctx,
		bson.M{"identity_key": bson.M{"$in": identityKeys}},
		bson.M{"$pull": bson.M{"notes": bson.M{"_id": noteID}}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (m *mongoDocumentStore) FindNote(ctx context.Context, identityKeys []string, noteID string) (*models.Note, error) {
	filter := bson.M{
		"identity_key": bson.M{"$in": identityKeys},
		"notes._id":    noteID,
	}
	projection := options.FindOne().SetProjection(bson.M{
		"notes": bson.M{"$elemMatch": bson.M{"_id": noteID}},
	})

	var matched struct {
		Notes []models.Note `bson:"notes"`
	}

	err := m.collection.FindOne(ctx, filter, projection).Decode(&matched)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	if len(matched.Notes) == 0 {
		return nil, nil
	}

	return &matched.Notes[0], nil
}

func (m *mongoDocumentStore) ReplaceNotes(ctx context.Context, identityKey string, notes []models.Note) (int64, error) {
	if notes == nil {
		notes = []models.Note{}
	}

	result, err := m.collection.UpdateOne(ctx,
		bson.M{"identity_key": identityKey},
		bson.M{"$set": bson.M{"notes": notes}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (m *mongoDocumentStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *mongoDocumentStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// noteUpdateFields maps a [models.NoteUpdate] onto positional-$ field paths.
// The always-written fields come first; optional fields are added only when
// the update carries them, which is what keeps omitted fields untouched in
// the stored document.
func noteUpdateFields(update models.NoteUpdate) bson.M {
	fields := bson.M{
		"notes.$.text":        update.Text,
		"notes.$.editor_id":   update.EditorID,
		"notes.$.editor_name": update.EditorName,
		"notes.$.updated_on":  update.UpdatedOn,
	}

	if update.Subject != nil {
		fields["notes.$.subject"] = *update.Subject
	}
	if update.Category != nil {
		fields["notes.$.category"] = *update.Category
	}
	if update.NoteCategory != nil {
		fields["notes.$.note_category"] = *update.NoteCategory
	}
	if update.PerformedOn != nil {
		fields["notes.$.performed_on"] = *update.PerformedOn
	}
	if update.TagNumber != nil {
		fields["notes.$.tag_number"] = *update.TagNumber
	}
	if update.StackReplacements != nil {
		fields["notes.$.stack_replacements"] = *update.StackReplacements
	}
	if update.ExternalNote != nil {
		fields["notes.$.external_note"] = *update.ExternalNote
	}
	if update.Version != nil {
		fields["notes.$.version"] = *update.Version
	}
	if update.SoftwareType != nil {
		fields["notes.$.software_type"] = *update.SoftwareType
	}
	if update.WorkorderID != nil {
		fields["notes.$.workorder_id"] = *update.WorkorderID
	}

	return fields
}
