package utils

import "os"

type ServerConfig struct {
	Addr        string
	CatalogPath string
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("GEMDASH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	catalog := os.Getenv("GEMDASH_CATALOG_PATH")
	if catalog == "" {
		catalog = "data/brands_catalog.json"
	}

	return ServerConfig{
		Addr:        addr,
		CatalogPath: catalog,
	}
}
