//go:build tools

package main

import (
	// swag genera docs/swagger.json para el middleware de swagger
	_ "github.com/swaggo/swag"
)
