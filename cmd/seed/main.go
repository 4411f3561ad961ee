package main

import (
	"context"
	"flag"
	"log"
	"os"
	"slices"

	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/repository/contract"
	"brigade-taxonomy-be/internal/repository/specification"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/pkg/database"
	"brigade-taxonomy-be/pkg/taxonomy"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type fixtureEntry struct {
	Name     string   `yaml:"name"`
	Parent   string   `yaml:"parent"`
	Title    string   `yaml:"title"`
	Synonyms []string `yaml:"synonyms"`
}

type fixtureTaxonomy struct {
	ClassName string         `yaml:"class_name"`
	Entries   []fixtureEntry `yaml:"entries"`
}

type fixtureFile struct {
	Taxonomies []fixtureTaxonomy `yaml:"taxonomies"`
}

func main() {
	fixturePath := flag.String("fixture", "fixtures/taxonomies.yaml", "path to the taxonomy fixture file")
	replace := flag.Bool("replace", false, "drop each taxonomy before seeding it")
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

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatalf("Error: Failed to read fixture %s: %v", *fixturePath, err)
	}

	var fixture fixtureFile
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		log.Fatalf("Error: Failed to parse fixture: %v", err)
	}

	ctx := context.Background()
	repo := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx).TaxonomyRepository()

	for _, tax := range fixture.Taxonomies {
		log.Printf("Seeding taxonomy %q (%d entries)...", tax.ClassName, len(tax.Entries))
		seedTaxonomy(ctx, repo, tax, *replace)
	}

	color.Green("Taxonomy seeding completed")
}

func seedTaxonomy(ctx context.Context, repo contract.TaxonomyRepository, tax fixtureTaxonomy, replace bool) {
	if replace {
		if err := repo.DeleteByClassName(ctx, tax.ClassName); err != nil {
			color.Red("Error clearing taxonomy %q: %v", tax.ClassName, err)
			return
		}
		log.Printf("Cleared taxonomy %q", tax.ClassName)
	}

	var batch []*entity.TaxonomyEntry

	for _, e := range tax.Entries {
		if err := taxonomy.ValidateIdentifier(e.Name); err != nil {
			color.Red("Skipping entry: %v", err)
			continue
		}
		if e.Parent != "" {
			if err := taxonomy.ValidateIdentifier(e.Parent); err != nil {
				color.Red("Skipping entry %q: bad parent: %v", e.Name, err)
				continue
			}
		}
		if err := taxonomy.ValidateTitle(e.Title); err != nil {
			color.Red("Skipping entry %q: %v", e.Name, err)
			continue
		}
		if !taxonomy.IsTitleCase(e.Title) {
			color.Yellow("Entry %q: title %q is not title case (suggest %q)",
				e.Name, e.Title, taxonomy.TitleCase(e.Title))
		}

		existing, err := repo.FindOne(ctx,
			specification.ByClassName{ClassName: tax.ClassName},
			specification.ByName{Name: e.Name},
		)
		if err != nil {
			color.Red("Error looking up entry '%s/%s': %v", tax.ClassName, e.Name, err)
			continue
		}
		if existing != nil {
			if existing.Title == e.Title && slices.Equal(existing.Synonyms, e.Synonyms) {
				log.Printf("Entry '%s/%s' already exists, skipping...", tax.ClassName, e.Name)
				continue
			}
			existing.Title = e.Title
			existing.Synonyms = e.Synonyms
			if err := repo.Update(ctx, existing); err != nil {
				color.Red("Error updating entry '%s/%s': %v", tax.ClassName, e.Name, err)
			} else {
				log.Printf("Updated entry: %s/%s (%s)", tax.ClassName, e.Name, e.Title)
			}
			continue
		}

		var parent *string
		if e.Parent != "" {
			p := e.Parent
			parent = &p
		}
		batch = append(batch, &entity.TaxonomyEntry{
			Id:        uuid.New(),
			ClassName: tax.ClassName,
			Name:      e.Name,
			Parent:    parent,
			Title:     e.Title,
			Synonyms:  e.Synonyms,
		})
	}

	if err := repo.CreateBulk(ctx, batch); err != nil {
		color.Red("Error creating entries for taxonomy %q: %v", tax.ClassName, err)
		return
	}
	for _, entry := range batch {
		log.Printf("Created entry: %s/%s (%s)", tax.ClassName, entry.Name, entry.Title)
	}
}
