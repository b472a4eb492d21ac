package commands

import (
	"log/slog"

	"github.com/auditforge/auditforge/database"
	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/database/repositories"
	"github.com/auditforge/auditforge/shared"
	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Seed a small demo framework catalog",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := database.Factory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			frameworkRepository := repositories.NewFrameworkRepository(db)
			catalogRepository := repositories.NewCatalogRepository(db)

			framework := models.Framework{
				Name:        "Demo Security Framework",
				Slug:        slug.Make("Demo Security Framework"),
				Description: "A small demo catalog to try out assessments.",
			}
			if err := frameworkRepository.Create(nil, &framework); err != nil {
				slog.Error("could not create framework", "err", err)
				return
			}

			version := models.FrameworkVersion{
				FrameworkID: framework.ID,
				Name:        "2026",
			}
			if err := frameworkRepository.CreateVersion(nil, &version); err != nil {
				slog.Error("could not create framework version", "err", err)
				return
			}

			// a tiny two category tree with one shared clause
			type clauseSeed struct {
				code      string
				title     string
				checklist []string
			}
			categories := []struct {
				name    string
				clauses []clauseSeed
			}{
				{
					name: "Access Control",
					clauses: []clauseSeed{
						{code: "AC-1", title: "Access control policy", checklist: []string{"Policy documented", "Policy approved"}},
						{code: "AC-2", title: "Account management", checklist: []string{"Joiner process exists", "Leaver process exists"}},
					},
				},
				{
					name: "Operations",
					clauses: []clauseSeed{
						{code: "AC-2", title: "Account management", checklist: nil},
						{code: "OP-1", title: "Change management", checklist: []string{"Changes are reviewed"}},
					},
				},
			}

			clausesByCode := map[string]models.Clause{}
			for sortOrder, categorySeed := range categories {
				category := models.Category{Name: categorySeed.name}
				if err := catalogRepository.CreateCategory(nil, &category); err != nil {
					slog.Error("could not create category", "err", err)
					return
				}

				link := models.FrameworkVersionCategory{
					FrameworkVersionID: version.ID,
					CategoryID:         category.ID,
					SortOrder:          sortOrder,
				}
				if err := catalogRepository.LinkCategory(nil, &link); err != nil {
					slog.Error("could not link category", "err", err)
					return
				}

				for clauseOrder, clauseSeed := range categorySeed.clauses {
					clause, ok := clausesByCode[clauseSeed.code]
					if !ok {
						clause = models.Clause{Code: clauseSeed.code, Title: clauseSeed.title}
						if err := catalogRepository.CreateClause(nil, &clause); err != nil {
							slog.Error("could not create clause", "err", err)
							return
						}
						clausesByCode[clauseSeed.code] = clause

						for itemOrder, text := range clauseSeed.checklist {
							item := models.ChecklistItem{
								ClauseID:  clause.ID,
								Text:      text,
								SortOrder: itemOrder,
							}
							if err := catalogRepository.CreateChecklistItem(nil, &item); err != nil {
								slog.Error("could not create checklist item", "err", err)
								return
							}
						}
					}

					clauseLink := models.CategoryClause{
						FrameworkVersionCategoryID: link.ID,
						ClauseID:                   clause.ID,
						SortOrder:                  clauseOrder,
					}
					if err := catalogRepository.LinkClause(nil, &clauseLink); err != nil {
						slog.Error("could not link clause", "err", err)
						return
					}
				}
			}

			slog.Info("seeded demo catalog", "framework", framework.Slug, "version", version.Name)
		},
	}

	return &seed
}
