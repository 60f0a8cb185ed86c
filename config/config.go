package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Media struct {
		// BaseURL is the public prefix prepended to stored image paths.
		BaseURL string
		// Dir is the local directory served under BaseURL.
		Dir string
	}
	Templates struct {
		Dir string
	}
}
