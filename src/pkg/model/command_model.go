package model

// Command represents a parsed CLI instruction: a scope (entity family),
// an operation within it, and the remaining arguments.
type Command struct {
	Scope     string
	Operation string
	Args      []string
}
