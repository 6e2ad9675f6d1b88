package evaluator

import (
	_ "embed"
)

// SystemPrompt is the fixed system instruction sent with every evaluation.
// Loaded from prompts/system.md at compile time.
//
//go:embed prompts/system.md
var SystemPrompt string
