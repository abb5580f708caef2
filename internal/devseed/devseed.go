// Package devseed populates a development database with a demo login and a
// sample client portfolio so the dashboard has data to show. Never run in
// production; the caller gates on dev mode.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seopulse/seopulse-api/internal/data"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

const (
	adminEmail    = "admin@seopulse.local"
	adminPassword = "devpassword"
)

// Run seeds the development database. Seeding is idempotent: when the demo
// admin user already exists, nothing is touched.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	users := data.NewUserRepo(db)

	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		logger.InfoContext(ctx, "dev seed skipped, demo data already present")
		return nil
	} else if !apperrors.IsNotFound(err) {
		return fmt.Errorf("check demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	admin, err := users.Create(ctx, &model.CreateUserRequest{
		Email:    adminEmail,
		Name:     "Dev Admin",
		Password: adminPassword,
		Role:     "admin",
	}, string(hash))
	if err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}

	client, err := seedClient(ctx, db, admin.ID)
	if err != nil {
		return err
	}

	if err := seedPortfolio(ctx, db, client.ID); err != nil {
		return err
	}
	if err := seedListings(ctx, db); err != nil {
		return err
	}

	logger.InfoContext(ctx, "dev seed completed",
		"login", adminEmail,
		"password", adminPassword,
		"client_id", client.ID)
	return nil
}

func seedClient(ctx context.Context, db *sql.DB, ownerID string) (*model.Client, error) {
	siteURL := "https://www.acme-widgets.example"
	propertyID := "123456789"
	client, err := data.NewClientRepo(db).Create(ctx, &model.CreateClientRequest{
		Name:                "Acme Widgets",
		Domain:              "acme-widgets.example",
		SiteURL:             &siteURL,
		AnalyticsPropertyID: &propertyID,
		OwnerID:             ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create demo client: %w", err)
	}
	return client, nil
}

func seedPortfolio(ctx context.Context, db *sql.DB, clientID string) error {
	keywords := data.NewKeywordRepo(db)
	for _, term := range []string{"widgets online", "buy widgets", "widget repair near me"} {
		kw, err := keywords.Create(ctx, &model.CreateKeywordRequest{ClientID: clientID, Term: term})
		if err != nil {
			return fmt.Errorf("create demo keyword: %w", err)
		}
		for _, pos := range []int{18, 12, 9} {
			if _, err := keywords.RecordPosition(ctx, &model.RecordPositionRequest{
				KeywordID: kw.ID,
				Position:  pos,
			}); err != nil {
				return fmt.Errorf("record demo position: %w", err)
			}
		}
	}

	backlinks := data.NewBacklinkRepo(db)
	contact := "editor@widgetweekly.example"
	followUp := time.Now().AddDate(0, 0, 7)
	seedLinks := []*model.CreateBacklinkRequest{
		{ClientID: clientID, SourceDomain: "widgetweekly.example", TargetURL: "https://www.acme-widgets.example/blog", Status: model.BacklinkStatusContacted, ContactEmail: &contact, FollowUpAt: &followUp},
		{ClientID: clientID, SourceDomain: "industrynews.example", TargetURL: "https://www.acme-widgets.example", Status: model.BacklinkStatusPlaced},
		{ClientID: clientID, SourceDomain: "cheapdirectory.example", TargetURL: "https://www.acme-widgets.example", Status: model.BacklinkStatusRejected},
	}
	for _, req := range seedLinks {
		if _, err := backlinks.Create(ctx, req); err != nil {
			return fmt.Errorf("create demo backlink: %w", err)
		}
	}

	content := data.NewContentRepo(db)
	due := time.Now().AddDate(0, 0, 14)
	seedContent := []*model.CreateContentRequest{
		{ClientID: clientID, Title: "Widget buying guide 2026", Status: model.ContentStatusWriting, DueDate: &due},
		{ClientID: clientID, Title: "How to maintain your widget", Status: model.ContentStatusIdea},
	}
	for _, req := range seedContent {
		if _, err := content.Create(ctx, req); err != nil {
			return fmt.Errorf("create demo content item: %w", err)
		}
	}

	roadmap := data.NewRoadmapRepo(db)
	for _, title := range []string{"Fix duplicate title tags", "Compress hero images", "Add FAQ schema"} {
		if _, err := roadmap.Create(ctx, &model.CreateRoadmapTaskRequest{ClientID: clientID, Title: title}); err != nil {
			return fmt.Errorf("create demo roadmap task: %w", err)
		}
	}

	return nil
}

func seedListings(ctx context.Context, db *sql.DB) error {
	listings := data.NewListingRepo(db)
	seed := []*model.CreateListingRequest{
		{SourceDomain: "techblog.example", DomainAuthority: 62, MonthlyTraffic: 45000, PriceCents: 25000, Category: "technology"},
		{SourceDomain: "homeimprove.example", DomainAuthority: 48, MonthlyTraffic: 18000, PriceCents: 12000, Category: "home"},
		{SourceDomain: "financedaily.example", DomainAuthority: 71, MonthlyTraffic: 90000, PriceCents: 48000, Category: "finance"},
	}
	for _, req := range seed {
		if _, err := listings.Create(ctx, req); err != nil {
			return fmt.Errorf("create demo listing: %w", err)
		}
	}
	return nil
}
