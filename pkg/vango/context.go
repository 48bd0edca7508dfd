package vango

// Context carries a typed value down the owner tree.
//
// Create a context with CreateContext, provide values with Provide on an
// ancestor Owner, and read them with Use from any descendant Owner.
//
// Example:
//
//	var ThemeContext = vango.CreateContext("light")
//
//	ThemeContext.Provide(pageOwner, "dark")
//	theme := ThemeContext.Use(buttonOwner) // "dark"
type Context[T any] struct {
	// key uniquely identifies this context in the owner value map
	key any

	// defaultValue is returned when no provider is found
	defaultValue T
}

// contextKey wraps Context to create a unique key type
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context with the given default value.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{
		defaultValue: defaultValue,
	}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Provide stores value on owner. Descendants of owner (and owner itself)
// see it through Use; siblings do not.
func (c *Context[T]) Provide(owner *Owner, value T) {
	if owner == nil {
		return
	}
	owner.SetValue(c.key, value)
}

// Use returns the value from the nearest providing Owner, starting at
// owner. If no Owner provides one, the default value is returned.
func (c *Context[T]) Use(owner *Owner) T {
	if owner == nil {
		return c.defaultValue
	}
	val, ok := owner.lookup(c.key)
	if !ok {
		return c.defaultValue
	}
	typed, ok := val.(T)
	if !ok {
		return c.defaultValue
	}
	return typed
}

// Default returns the context's default value.
func (c *Context[T]) Default() T {
	return c.defaultValue
}
