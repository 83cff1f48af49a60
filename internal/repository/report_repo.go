package repository

import (
	"context"
	"pathfinder/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepo handles MongoDB operations for analysis reports
type ReportRepo interface {
	Save(ctx context.Context, report *model.Report) error
	GetBySession(ctx context.Context, sessionID string) (*model.Report, error)
}

type reportRepo struct {
	reports *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		reports: db.Collection("reports"),
	}
}

// Save upserts by session: a session keeps only its latest report.
func (r *reportRepo) Save(ctx context.Context, report *model.Report) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.reports.ReplaceOne(ctx, bson.M{"sessionId": report.SessionID}, report, opts)
	return err
}

func (r *reportRepo) GetBySession(ctx context.Context, sessionID string) (*model.Report, error) {
	var report model.Report
	err := r.reports.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
