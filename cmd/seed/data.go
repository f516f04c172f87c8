package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

const day = 24 * time.Hour

// clearer empties a collection. *mongo.Collection satisfies it.
type clearer interface {
	DeleteMany(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error)
}

type dataTarget struct {
	News    repository.ArticleRepository
	Updates repository.UpdateRepository
	Clear   []clearer
}

// sampleNews mixes published and draft articles with staggered ages.
func sampleNews(now time.Time) []model.Article {
	items := []struct {
		title, slug, content, category, status string
		age                                    time.Duration
	}{
		{
			title:    "JEE Main 2024 Session 2 Results Declared",
			slug:     "jee-main-2024-session-2-results",
			content:  "<p>The National Testing Agency (NTA) has declared the results for JEE Main 2024 Session 2. Candidates can check their scorecards on the official website.</p>",
			category: "Results",
			status:   model.StatusPublished,
		},
		{
			title:    "NEET UG 2024 Registration Extended",
			slug:     "neet-ug-2024-registration-extended",
			content:  "<p>The registration deadline for NEET UG 2024 has been extended by one week. Students can now apply until the new deadline.</p>",
			category: "Admissions",
			status:   model.StatusPublished,
			age:      day,
		},
		{
			title:    "CBSE Class 10 Date Sheet Released",
			slug:     "cbse-class-10-date-sheet-2024",
			content:  "<p>CBSE has released the official date sheet for Class 10 board exams. Exams will commence from February 15th.</p>",
			category: "Exams",
			status:   model.StatusDraft,
			age:      2 * day,
		},
		{
			title:    "Top 10 Engineering Colleges in India",
			slug:     "top-10-engineering-colleges-india",
			content:  "<p>A comprehensive list of the top engineering colleges in India based on the latest NIRF rankings.</p>",
			category: "Career",
			status:   model.StatusPublished,
			age:      5 * day,
		},
	}

	out := make([]model.Article, 0, len(items))
	for _, it := range items {
		ts := now.Add(-it.age)
		out = append(out, model.Article{
			Title:     it.title,
			Slug:      it.slug,
			Content:   it.content,
			Category:  it.category,
			Language:  model.DefaultLanguage,
			Status:    it.status,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	return out
}

func sampleUpdates(now time.Time) []model.Update {
	items := []struct {
		title, content string
		age            time.Duration
	}{
		{title: "Admit Card", content: "JEE Main 2024 admit card available for download."},
		{title: "Results", content: "CUET PG 2024 results to be announced tomorrow.", age: 5 * time.Hour},
		{title: "Syllabus", content: "Updated syllabus for UPSC CSE 2024 released.", age: day},
	}

	out := make([]model.Update, 0, len(items))
	for _, it := range items {
		ts := now.Add(-it.age)
		out = append(out, model.Update{
			Title:     it.title,
			Content:   it.content,
			Category:  model.DefaultUpdateCategory,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	return out
}

// seedData optionally clears the target collections, then inserts the samples.
func seedData(ctx context.Context, t dataTarget, log *slog.Logger, now time.Time) error {
	for _, c := range t.Clear {
		res, err := c.DeleteMany(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("clear collection: %w", err)
		}
		log.Info("collection_cleared", "deleted", res.DeletedCount)
	}

	news := sampleNews(now)
	for i := range news {
		if _, err := t.News.Create(ctx, &news[i]); err != nil {
			return fmt.Errorf("insert news %q: %w", news[i].Slug, err)
		}
	}
	log.Info("news_seeded", "count", len(news))

	updates := sampleUpdates(now)
	for i := range updates {
		if _, err := t.Updates.Create(ctx, &updates[i]); err != nil {
			return fmt.Errorf("insert update %q: %w", updates[i].Title, err)
		}
	}
	log.Info("updates_seeded", "count", len(updates))
	return nil
}
