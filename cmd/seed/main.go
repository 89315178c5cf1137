// Siembra los datos de demostración en el almacén configurado y termina.
// Útil para preparar un entorno local sin levantar la API.
package main

import (
	"github.com/tu-usuario/almacen-pro/internal/application/seed"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/kvstore"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var drv kvstore.Driver
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		sq, err := kvstore.NewSQLiteDriver(cfg.Storage.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacén sqlite")
		}
		drv = sq
	default:
		drv = kvstore.NewMemoryDriver()
	}
	defer drv.Close()

	store := kvstore.NewStore(drv)
	if err := seed.Run(
		kvstore.NewUserRepository(store),
		kvstore.NewCategoryRepository(store),
		kvstore.NewItemRepository(store),
	); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demostración")
	}

	log.Info().Str("storage", cfg.Storage.Driver).Msg("datos de demostración sembrados")
}
