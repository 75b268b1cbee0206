// cachectl inspecciona y limpia las instantáneas de la caché local (archivo SQLite).
//
// Uso:
//
//	cachectl keys
//	cachectl show tasks:<parlor_id>
//	cachectl reset tasks:<parlor_id>
//
// Por defecto usa CACHE_PATH de la configuración; --path lo reemplaza.
package main

import (
	"os"

	"github.com/jhoicas/Funeraria-api/pkg/config"
)

func main() {
	defaultPath := "./data/cache.db"
	if cfg, err := config.Load(); err == nil && cfg.Cache.Path != "" {
		defaultPath = cfg.Cache.Path
	}
	if err := newRootCmd(os.Stdout, defaultPath, openSQLite).Execute(); err != nil {
		os.Exit(1)
	}
}
