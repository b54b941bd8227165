package config

type Storage struct {
	// File is the path of the JSON document holding the productos,
	// clientes and ventas collections.
	File string `env:"DATABASE_FILE" envDefault:"pos_database.json"`
}
