package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sort"

	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/repository/specification"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/pkg/database"
	"brigade-taxonomy-be/pkg/taxonomy"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// dumpedEntry is the editable form of one taxonomy node, keyed by its full
// path in the output document.
type dumpedEntry struct {
	Title    string   `toml:"title"`
	Synonyms []string `toml:"synonyms,omitempty"`
}

func main() {
	className := flag.String("taxonomy", "", "taxonomy class to dump (default: all)")
	outPath := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	repo := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx).TaxonomyRepository()

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at"},
	}
	if *className != "" {
		specs = append(specs, specification.Filter("class_name", *className))
	}

	rows, err := repo.FindAll(ctx, specs...)
	if err != nil {
		log.Fatalf("Error: Failed to load taxonomy entries: %v", err)
	}
	if len(rows) == 0 {
		color.Yellow("No entries found")
		return
	}

	byClass := make(map[string][]*entity.TaxonomyEntry)
	for _, row := range rows {
		byClass[row.ClassName] = append(byClass[row.ClassName], row)
	}

	document := make(map[string]map[string]dumpedEntry, len(byClass))
	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		entries := make([]taxonomy.Entry, 0, len(byClass[class]))
		for _, row := range byClass[class] {
			parent := ""
			if row.Parent != nil {
				parent = *row.Parent
			}
			entries = append(entries, taxonomy.Entry{
				Name:      row.Name,
				Parent:    parent,
				ClassName: row.ClassName,
				Title:     row.Title,
				Synonyms:  row.Synonyms,
			})
		}

		collection, err := taxonomy.NewCollection(entries)
		if err != nil {
			color.Red("Taxonomy %q: %v", class, err)
			continue
		}

		warnEntries(class, entries, collection)

		pathMap, err := collection.PathMap()
		if err != nil {
			color.Red("Taxonomy %q: %v", class, err)
			continue
		}

		section := make(map[string]dumpedEntry, len(pathMap))
		for path, entry := range pathMap {
			section[path] = dumpedEntry{
				Title:    entry.Title,
				Synonyms: entry.Synonyms,
			}
		}
		document[class] = section
		log.Printf("Dumped taxonomy %q (%d entries)", class, len(section))
	}

	out, err := toml.Marshal(document)
	if err != nil {
		log.Fatalf("Error: Failed to serialize: %v", err)
	}

	if *outPath == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("Error: Failed to write %s: %v", *outPath, err)
	}
	color.Green("Wrote %s", *outPath)
}

// warnEntries reports data problems the dump tolerates: identifiers that are
// not kebab-case, titles that are not title-cased, and parent loops.
func warnEntries(class string, entries []taxonomy.Entry, collection *taxonomy.Collection) {
	for _, e := range entries {
		if err := taxonomy.ValidateIdentifier(e.Name); err != nil {
			color.Yellow("Taxonomy %q: %v", class, err)
		}
		if err := taxonomy.ValidateTitle(e.Title); err != nil {
			color.Yellow("Taxonomy %q: %v", class, err)
		} else if !taxonomy.IsTitleCase(e.Title) {
			color.Yellow("Taxonomy %q: title %q is not title case (suggest %q)",
				class, e.Title, taxonomy.TitleCase(e.Title))
		}
		_, loop, err := collection.FullPath(e.Name)
		if err != nil {
			color.Yellow("Taxonomy %q: entry %q: %v", class, e.Name, err)
			continue
		}
		if loop {
			color.Yellow("Taxonomy %q: entry %q is its own parent, treated as root", class, e.Name)
		}
	}
}
