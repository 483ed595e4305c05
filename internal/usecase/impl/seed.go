package impl

import (
	"context"
	"log/slog"

	"sportera/config"
	"sportera/internal/domain/entity"
	"sportera/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DemoPlaces are the Paris venues loaded when places.seedDemoData is on.
var DemoPlaces = []entity.PlaceSpec{
	{
		Name:        "Stade Jean Bouin",
		Address:     "26 Avenue du Général Sarrail, 75016 Paris",
		Description: "Stade municipal avec piste d'athlétisme et terrain de football",
		Latitude:    48.8415,
		Longitude:   2.2530,
		Sports:      []string{"football", "running", "athlétisme"},
		Amenities:   []string{"vestiaires", "parking", "éclairage"},
		Contact:     &entity.ContactInfo{Phone: "01 42 88 02 76"},
	},
	{
		Name:        "Piscine Molitor",
		Address:     "13 Rue Nungesser et Coli, 75016 Paris",
		Description: "Piscine historique avec bassin olympique et bassin d'hiver",
		Latitude:    48.8476,
		Longitude:   2.2516,
		Sports:      []string{"natation", "aquafitness"},
		Amenities:   []string{"vestiaires", "sauna", "parking"},
		Contact:     &entity.ContactInfo{Phone: "01 56 07 08 80", Website: "https://www.molitor.fr"},
	},
	{
		Name:        "Tennis Club de Paris",
		Address:     "Bois de Boulogne, 75016 Paris",
		Description: "Club de tennis avec courts couverts et extérieurs",
		Latitude:    48.8566,
		Longitude:   2.2441,
		Sports:      []string{"tennis"},
		Amenities:   []string{"vestiaires", "pro-shop", "restaurant"},
		Contact:     &entity.ContactInfo{Phone: "01 45 27 79 12"},
	},
	{
		Name:        "Gymnase Charras",
		Address:     "7 Rue Charras, 92200 Neuilly-sur-Seine",
		Description: "Gymnase municipal polyvalent",
		Latitude:    48.8814,
		Longitude:   2.2689,
		Sports:      []string{"basketball", "volleyball", "handball", "badminton"},
		Amenities:   []string{"vestiaires", "parking"},
	},
	{
		Name:        "Fitness Park Levallois",
		Address:     "85 Rue Anatole France, 92300 Levallois-Perret",
		Description: "Salle de fitness moderne avec équipements dernière génération",
		Latitude:    48.8947,
		Longitude:   2.2875,
		Sports:      []string{"fitness", "musculation", "crossfit"},
		Amenities:   []string{"vestiaires", "parking", "sauna"},
		Contact:     &entity.ContactInfo{Phone: "01 47 57 63 00", Website: "https://www.fitnesspark.fr"},
	},
	{
		Name:        "Dojo Vincennes",
		Address:     "12 Avenue de la République, 94300 Vincennes",
		Description: "Dojo traditionnel pour arts martiaux",
		Latitude:    48.8466,
		Longitude:   2.4364,
		Sports:      []string{"judo", "karaté", "aikido", "arts-martiaux"},
		Amenities:   []string{"vestiaires", "tatamis"},
	},
	{
		Name:        "Piscine Georges Vallerey",
		Address:     "148 Avenue Gambetta, 75020 Paris",
		Description: "Centre aquatique avec piscine olympique et bassin ludique",
		Latitude:    48.8714,
		Longitude:   2.4039,
		Sports:      []string{"natation", "aquafitness", "plongée"},
		Amenities:   []string{"vestiaires", "parking", "cafétéria"},
	},
	{
		Name:        "Stade Charléty",
		Address:     "99 Boulevard Kellermann, 75013 Paris",
		Description: "Stade d'athlétisme avec piste et aires de saut",
		Latitude:    48.8186,
		Longitude:   2.3461,
		Sports:      []string{"athlétisme", "running", "football"},
		Amenities:   []string{"vestiaires", "parking", "tribune"},
	},
}

// SeedParams holds dependencies for the demo seed, injected by Fx.
type SeedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Catalog   usecase.PlaceCatalog
	Config    *config.Config
	Logger    *slog.Logger
}

// RegisterDemoSeed loads DemoPlaces on start when enabled. The hook is appended
// after the persistence hooks, so migrations have already run.
func RegisterDemoSeed(params SeedParams) {
	if params.Config == nil || params.Config.Places == nil || !params.Config.Places.SeedDemoData {
		return
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return SeedDemoPlaces(ctx, params.Catalog, params.Logger)
		},
	})
}

// SeedDemoPlaces creates DemoPlaces unless the catalog already holds places.
func SeedDemoPlaces(ctx context.Context, catalog usecase.PlaceCatalog, logger *slog.Logger) error {
	existing, err := catalog.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to inspect catalog before seeding")
	}
	if len(existing) > 0 {
		logger.Info("Catalog not empty, skipping demo seed", slog.Int("places", len(existing)))

		return nil
	}

	for _, spec := range DemoPlaces {
		if _, err := catalog.Create(ctx, spec); err != nil {
			return errors.Wrapf(err, "failed to seed %q", spec.Name)
		}
	}

	logger.Info("Demo places seeded", slog.Int("places", len(DemoPlaces)))

	return nil
}
