package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN   string        `env:"DSN,expand" envDefault:"data.sqlite"`
	Cache DatabaseCache `envPrefix:"CACHE_"`
}

type DatabaseCache struct {
	Users CacheUsers `envPrefix:"USERS_"`
}

type CacheUsers struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"1m"`
	Size    int           `env:"SIZE,expand" envDefault:"128"`
}
