package sql

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"medialog/internal/entity"
)

func TestQueryMediaByYearDisjuncts(t *testing.T) {
	repo := newTestRepository(t, false)
	ctx := context.Background()

	entries := []entity.MediaPayload{
		bookPayload("starts in year", "2024-06-01", "2025-03-01"),
		bookPayload("ends in year", "2023-11-01", "2024-01-15"),
		bookPayload("spans year entirely", "2022-01-01", "2026-01-01"),
		bookPayload("open ended started in year", "2024-02-01", ""),
		bookPayload("open ended started earlier", "2023-02-01", ""),
		bookPayload("entirely before", "2022-01-01", "2022-12-31"),
		bookPayload("entirely after", "2025-06-01", "2025-12-31"),
	}
	for i := range entries {
		if _, err := repo.CreateMedia(ctx, &entries[i]); err != nil {
			t.Fatalf("create %q: %v", entries[i].Title, err)
		}
	}

	media, err := repo.QueryMediaByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("query by year: %v", err)
	}

	// 按 start_date 升序
	want := []string{
		"spans year entirely",
		"ends in year",
		"open ended started in year",
		"starts in year",
	}
	if len(media) != len(want) {
		titles := make([]string, len(media))
		for i, m := range media {
			titles[i] = m.Title
		}
		t.Fatalf("expected %v, got %v", want, titles)
	}
	for i, title := range want {
		if media[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, media[i].Title)
		}
	}
}

// overlapsYear 年份重叠谓词的内存参考实现，作为随机测试的对照。
func overlapsYear(startYear, endYear, y int, openEnded bool) bool {
	if startYear == y {
		return true
	}
	if openEnded {
		return false
	}
	if endYear == y {
		return true
	}
	return startYear < y && y < endYear
}

func TestQueryMediaByYearProperty(t *testing.T) {
	repo := newTestRepository(t, false)
	ctx := context.Background()

	rng := rand.New(rand.NewSource(42))

	type fixture struct {
		title     string
		startYear int
		endYear   int
		openEnded bool
	}

	fixtures := make([]fixture, 0, 60)
	for i := 0; i < 60; i++ {
		startYear := 2015 + rng.Intn(12)
		openEnded := rng.Intn(3) == 0
		endYear := startYear + rng.Intn(4)

		f := fixture{
			title:     fmt.Sprintf("entry-%03d", i),
			startYear: startYear,
			endYear:   endYear,
			openEnded: openEnded,
		}
		fixtures = append(fixtures, f)

		end := fmt.Sprintf("%04d-%02d-%02d", endYear, 1+rng.Intn(12), 1+rng.Intn(28))
		if openEnded {
			end = ""
		}
		payload := bookPayload(f.title, fmt.Sprintf("%04d-%02d-%02d", startYear, 1+rng.Intn(12), 1+rng.Intn(28)), end)
		if _, err := repo.CreateMedia(ctx, &payload); err != nil {
			t.Fatalf("create %q: %v", f.title, err)
		}
	}

	for year := 2014; year <= 2028; year++ {
		media, err := repo.QueryMediaByYear(ctx, year)
		if err != nil {
			t.Fatalf("query year %d: %v", year, err)
		}

		got := make(map[string]bool, len(media))
		for _, m := range media {
			got[m.Title] = true
		}

		for _, f := range fixtures {
			want := overlapsYear(f.startYear, f.endYear, year, f.openEnded)
			if got[f.title] != want {
				t.Errorf("year %d, %s (start %d, end %d, open %v): included=%v, want %v",
					year, f.title, f.startYear, f.endYear, f.openEnded, got[f.title], want)
			}
		}
	}
}

func TestQueryMediaByYearOrdering(t *testing.T) {
	repo := newTestRepository(t, false)
	ctx := context.Background()

	dates := []string{"2024-09-01", "2024-01-01", "2024-05-01"}
	for i, d := range dates {
		payload := bookPayload(fmt.Sprintf("b%d", i), d, "")
		if _, err := repo.CreateMedia(ctx, &payload); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	media, err := repo.QueryMediaByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for i := 1; i < len(media); i++ {
		if media[i-1].StartDate > media[i].StartDate {
			t.Errorf("results not ordered by start date: %q before %q",
				media[i-1].StartDate, media[i].StartDate)
		}
	}
}

func TestQueryMediaByYearJoinsTags(t *testing.T) {
	repo := newTestRepository(t, false)
	ctx := context.Background()

	payload := bookPayload("tagged", "2024-01-01", "", "Zeta", "alpha")
	if _, err := repo.CreateMedia(ctx, &payload); err != nil {
		t.Fatalf("create: %v", err)
	}

	media, err := repo.QueryMediaByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(media) != 1 {
		t.Fatalf("expected one record, got %d", len(media))
	}
	tags := media[0].Tags
	if len(tags) != 2 || tags[0].Name != "alpha" || tags[1].Name != "zeta" {
		t.Errorf("expected alphabetically sorted tags, got %+v", tags)
	}
}
