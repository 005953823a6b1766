package mongo

import (
	"context"
	"fmt"
	"time"

	"relief-custody-engine/internal/core/ports"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const campaignCollection = "campaign_index"

// Mirror implements ports.IndexMirror on a MongoDB collection. It holds a
// denormalized copy of campaign metadata for external consumers; the
// relational store stays authoritative.
type Mirror struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMirror connects to MongoDB and verifies connectivity.
func NewMirror(ctx context.Context, uri, database string, log zerolog.Logger) (*Mirror, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	log.Info().Str("database", database).Msg("MongoDB index mirror connected")

	return &Mirror{
		client: client,
		db:     client.Database(database),
	}, nil
}

// UpsertCampaign writes the denormalized campaign document, keyed by
// campaign ID.
func (m *Mirror) UpsertCampaign(ctx context.Context, doc ports.CampaignIndexDoc) error {
	filter := bson.M{"campaign_id": doc.CampaignID.String()}
	update := bson.M{"$set": bson.M{
		"campaign_id":        doc.CampaignID.String(),
		"title":              doc.Title,
		"organizer":          doc.Organizer.String(),
		"blockchain_address": doc.Address.String(),
		"status":             doc.Status,
		"updated_at":         time.Now().UTC(),
	}}

	_, err := m.db.Collection(campaignCollection).
		UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert campaign index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *Mirror) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
