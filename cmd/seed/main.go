package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/tu-usuario/business-dashboard/internal/application/seed"
	"github.com/tu-usuario/business-dashboard/internal/infrastructure/csvstore"
	"github.com/urfave/cli/v2"
)

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directorio de los datasets CSV",
		Value:   "data",
		EnvVars: []string{"DATA_DIR"},
	}
}

func newSeedFlag() *cli.Int64Flag {
	return &cli.Int64Flag{
		Name:    "seed",
		Usage:   "Semilla del generador (0 = aleatoria)",
		EnvVars: []string{"DATA_SEED"},
	}
}

func newSeeder(c *cli.Context) *seed.UseCase {
	store := csvstore.NewStore(c.String("data-dir"))
	repos := seed.Repos{
		Products:    csvstore.NewProductRepository(store),
		Inventory:   csvstore.NewInventoryRepository(store),
		Sales:       csvstore.NewSalesRepository(store),
		Purchases:   csvstore.NewPurchaseRepository(store),
		Expenses:    csvstore.NewExpenseRepository(store),
		Employees:   csvstore.NewEmployeeRepository(store),
		Performance: csvstore.NewPerformanceRepository(store),
	}
	var rng *rand.Rand
	if s := c.Int64("seed"); s != 0 {
		rng = rand.New(rand.NewSource(s))
	}
	return seed.NewUseCase(repos, rng)
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("aviso: no se pudo cargar .env: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Genera los datasets sintéticos del dashboard",
		Flags: []cli.Flag{
			newDataDirFlag(),
			newSeedFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:  "bootstrap",
				Usage: "Genera todos los datasets si alguno falta",
				Flags: []cli.Flag{newDataDirFlag(), newSeedFlag()},
				Action: func(c *cli.Context) error {
					seeder := newSeeder(c)
					missing := seeder.MissingDatasets()
					generated, err := seeder.EnsureInitialData()
					if err != nil {
						return err
					}
					if !generated {
						fmt.Println("todos los datasets existen, nada que hacer")
						return nil
					}
					fmt.Printf("datasets generados en %s (faltaban: %v)\n", c.String("data-dir"), missing)
					return nil
				},
			},
			{
				Name:  "regenerate-performance",
				Usage: "Regenera performance.csv reutilizando employees.csv si existe",
				Flags: []cli.Flag{newDataDirFlag(), newSeedFlag()},
				Action: func(c *cli.Context) error {
					seeder := newSeeder(c)
					n, err := seeder.RegeneratePerformance()
					if err != nil {
						return err
					}
					fmt.Printf("%d registros de desempeño generados\n", n)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
