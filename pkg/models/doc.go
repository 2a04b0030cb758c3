// Package models provides the shared data model for nxt-gen.
//
// # Project Configuration
//
// [ProjectConfig] is the immutable record of every choice the user made.
// It is built once by the wizard and read by the scaffolder:
//
//	cfg := models.DefaultProjectConfig()
//	cfg.Prisma = true
//	cfg.Examples = models.ExamplesCRUD
//
// [Options] is the partial form collected from command-line flags. A nil
// field means the dimension was not supplied and must be asked for.
//
// # Enumerations
//
// Two dimensions are closed enumerations:
//   - [UILibrary]: none, shadcn, heroui, both
//   - [Examples]: none, crud, auth, both
//
// Use the Parse functions to convert user input:
//
//	ui, err := models.ParseUILibrary("heroui")
package models
