package scaffold

import "embed"

// templateFS holds the embedded skeleton trees. The all: prefix is required
// so dotfile templates (.gitignore, .env.example) are included.
//
//go:embed all:templates
var templateFS embed.FS

// templateRoot is the directory prefix inside templateFS.
const templateRoot = "templates"
