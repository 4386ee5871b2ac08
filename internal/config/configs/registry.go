package configs

// Registry configures the campaign registry. Admin names the only
// principal allowed to pause campaign creation. SeedDemo creates a few
// demo campaigns on startup, useful for local development.
type Registry struct {
	Admin    string `env:"ADMIN" envDefault:"registry-admin"`
	SeedDemo bool   `env:"SEED_DEMO" envDefault:"false"`
}
