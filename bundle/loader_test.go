package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/syednoorhussain2025/hopgen/flow"
	"github.com/syednoorhussain2025/hopgen/model"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	fname := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fname), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fname, []byte(content), 0o666); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmptyDir(t *testing.T) {
	b, err := NewLoader(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b.Places) != 0 || len(b.Articles) != 0 || len(b.Collections) != 0 || len(b.Trips) != 0 || len(b.Reviews) != 0 {
		t.Errorf("got a non-empty bundle from an empty directory")
	}
}

func TestLoadPlaces(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "places.json", `[
		{
			"id": "p-lahore-fort",
			"slug": "lahore-fort",
			"name": "Lahore Fort",
			"localName": "شاہی قلعہ",
			"region": "Punjab",
			"categories": ["fort", "unesco"],
			"founded": "c. 1566",
			"foundedBasis": "traditional",
			"latitude": 31.588,
			"longitude": 74.315,
			"featured": true
		},
		{
			"name": "Takht-i-Bahi",
			"region": "KPK"
		}
	]`)

	b, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b.Places) != 2 {
		t.Fatalf("got %d places, wanted 2", len(b.Places))
	}

	p, ok := b.Place("p-lahore-fort")
	if !ok {
		t.Fatal("place p-lahore-fort not loaded")
	}
	if got := p.Founded.When(); got != "about 1566" {
		t.Errorf("founded: got %q, wanted %q", got, "about 1566")
	}
	if p.Founded.Basis != model.BasisTraditional {
		t.Errorf("basis: got %v, wanted %v", p.Founded.Basis, model.BasisTraditional)
	}
	if p.Location == nil || p.Location.Latitude != 31.588 {
		t.Errorf("location not loaded: %+v", p.Location)
	}

	var derived *model.Place
	for _, q := range b.Places {
		if q.Name == "Takht-i-Bahi" {
			derived = q
		}
	}
	if derived == nil {
		t.Fatal("minimal place not loaded")
	}
	if derived.Slug != "takht-i-bahi" {
		t.Errorf("derived slug: got %q, wanted %q", derived.Slug, "takht-i-bahi")
	}
	if derived.ID == "" {
		t.Error("derived place has no id")
	}
	if derived.Region != "Khyber Pakhtunkhwa" {
		t.Errorf("region: got %q, wanted %q", derived.Region, "Khyber Pakhtunkhwa")
	}
}

func TestLoadArticles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, filepath.Join("articles", "lahore-fort.json"), `{
		"title": "The Fort of Lahore",
		"placeId": "p-lahore-fort",
		"masterText": "Begun under Akbar.",
		"published": "2025-06-01T09:00:00Z",
		"layouts": [
			{
				"breakpoint": "desktop",
				"flow": [
					{"blockId": "b1", "type": "text", "sectionTypeId": "default", "sectionInstanceKey": "s1", "startChar": 0, "endChar": 18}
				]
			}
		],
		"images": {"s1:hero": {"storagePath": "img/fort.jpg", "alt": "The fort"}}
	}`)

	b, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b.Articles) != 1 {
		t.Fatalf("got %d articles, wanted 1", len(b.Articles))
	}

	var a *model.Article
	for _, v := range b.Articles {
		a = v
	}
	if a.Slug != "the-fort-of-lahore" {
		t.Errorf("slug: got %q, wanted %q", a.Slug, "the-fort-of-lahore")
	}
	if !a.IsPublished() {
		t.Error("article with a published time reported as draft")
	}
	if a.Published.Year() != 2025 {
		t.Errorf("published year: got %d, wanted 2025", a.Published.Year())
	}

	l, ok := a.LayoutFor(flow.BreakpointDesktop)
	if !ok {
		t.Fatal("desktop layout not loaded")
	}
	if len(l.Flow) != 1 || l.Flow[0].ID != "b1" {
		t.Errorf("flow not decoded: %+v", l.Flow)
	}
	if _, ok := a.Images.Resolve("s1", "hero"); !ok {
		t.Error("image set not decoded")
	}
}

func TestLoadCollections(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "collections.json", `[
		{
			"title": "Lahore Fort in Photographs",
			"placeId": "p-lahore-fort",
			"photos": [
				{"storagePath": "img/b.jpg", "width": 1600, "height": 1067, "position": 5},
				{"storagePath": "img/a.jpg", "width": 1200, "height": 900, "position": 2, "cover": true}
			]
		}
	]`)

	b, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var c string
	for id := range b.Collections {
		c = id
	}
	col := b.Collections[c]
	if col.Slug != "lahore-fort-in-photographs" {
		t.Errorf("slug: got %q, wanted %q", col.Slug, "lahore-fort-in-photographs")
	}

	// positions renumber from zero in position order
	if col.Photos[0].Photo.StoragePath != "img/a.jpg" || col.Photos[0].Position != 0 {
		t.Errorf("first photo: got %q at %d, wanted %q at 0", col.Photos[0].Photo.StoragePath, col.Photos[0].Position, "img/a.jpg")
	}
	if col.Photos[1].Position != 1 {
		t.Errorf("second photo position: got %d, wanted 1", col.Photos[1].Position)
	}

	cover, ok := col.Cover()
	if !ok || cover.StoragePath != "img/a.jpg" {
		t.Errorf("cover: got %q, wanted %q", cover.StoragePath, "img/a.jpg")
	}
	if col.Photos[0].Photo.PlaceID != "p-lahore-fort" {
		t.Errorf("photo place: got %q, wanted %q", col.Photos[0].Photo.PlaceID, "p-lahore-fort")
	}
}

func TestLoadReviewsSanitized(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "reviews.json", `[
		{
			"placeId": "p-lahore-fort",
			"author": "Asma",
			"rating": 5,
			"body": "<p>Stunning tile work.</p><script>alert(1)</script>",
			"createdAt": "2025-11-02T10:00:00Z"
		}
	]`)

	b, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b.Reviews) != 1 {
		t.Fatalf("got %d reviews, wanted 1", len(b.Reviews))
	}

	r := b.Reviews[0]
	if r.ID == "" {
		t.Error("review has no id")
	}
	if strings.Contains(r.Body, "script") {
		t.Errorf("body not sanitized: %q", r.Body)
	}
	if !r.CreatedAt.Equal(time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt: got %v", r.CreatedAt)
	}
}

func TestLoadTripsDerivesDays(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "itineraries.json", `[
		{
			"title": "Lahore in Two Days",
			"stops": [
				{"placeId": "p-fort", "day": 1, "order": 0, "minutes": 180},
				{"placeId": "p-shalimar", "day": 2, "order": 0, "minutes": 90}
			]
		}
	]`)

	b, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	trips := b.SortedTrips()
	if len(trips) != 1 {
		t.Fatalf("got %d trips, wanted 1", len(trips))
	}
	trip := trips[0]
	if trip.Slug != "lahore-in-two-days" {
		t.Errorf("slug: got %q, wanted %q", trip.Slug, "lahore-in-two-days")
	}
	if len(trip.Days) != 2 {
		t.Errorf("got %d days, wanted 2", len(trip.Days))
	}
	if got := trip.Minutes(); got != 270 {
		t.Errorf("minutes: got %d, wanted 270", got)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "places.json", `[
		{"id": "p1", "name": "Lahore Fort"}
	]`)
	writeFixture(t, dir, filepath.Join("articles", "a1.json"), `{
		"title": "Rohtas", "placeId": "p-missing",
		"masterText": "x"
	}`)
	writeFixture(t, dir, "reviews.json", `[
		{"id": "r1", "placeId": "p1", "author": "A", "rating": 4, "body": "ok", "createdAt": "2025-01-01T00:00:00Z"}
	]`)

	b, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	probs := b.Validate()
	var codes []string
	for _, p := range probs {
		codes = append(codes, p.Code)
	}

	want := []string{"layout-missing", "place-unresolved"}
	if len(codes) != len(want) {
		t.Fatalf("got problems %v, wanted codes %v", probs, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("problem %d: got %q, wanted %q", i, codes[i], want[i])
		}
	}
	if probs[1].Ref != "rohtas" {
		t.Errorf("unresolved ref: got %q, wanted %q", probs[1].Ref, "rohtas")
	}
}
