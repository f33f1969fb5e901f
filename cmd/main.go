package main

import (
	"github.com/rs/zerolog/log"

	"github.com/marustas/MealMasterServer/config"
	"github.com/marustas/MealMasterServer/logger"
	"github.com/marustas/MealMasterServer/repositories"
	"github.com/marustas/MealMasterServer/routes"
	"github.com/marustas/MealMasterServer/storage"
	"github.com/marustas/MealMasterServer/utils"
)

func main() {
	logger.Init()
	cfg := config.Load()

	if err := utils.LoadKeys(cfg.PrivateKeyPath, cfg.PublicKeyPath, cfg.TokenTTLSeconds); err != nil {
		log.Fatal().Err(err).Msg("failed to load signing keys")
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	repos, err := buildRepositories(store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load collections")
	}

	r := routes.SetupRouter(cfg, repos)
	log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage == "sqlite" {
		return storage.NewSQLiteStore(cfg.SQLitePath)
	}
	return storage.NewFileStore(cfg.DataDir)
}

func buildRepositories(store storage.Store) (routes.Repositories, error) {
	users, err := repositories.NewUserRepository(store)
	if err != nil {
		return routes.Repositories{}, err
	}
	ingredients, err := repositories.NewIngredientRepository(store)
	if err != nil {
		return routes.Repositories{}, err
	}
	recipes, err := repositories.NewRecipeRepository(store)
	if err != nil {
		return routes.Repositories{}, err
	}
	meals, err := repositories.NewMealRepository(store)
	if err != nil {
		return routes.Repositories{}, err
	}
	return routes.Repositories{
		Users:       users,
		Ingredients: ingredients,
		Recipes:     recipes,
		Meals:       meals,
	}, nil
}
