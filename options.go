package clearpass

// DefaultLabel is the name under which ClearPassNode labels its passes.
const DefaultLabel = "clear_pass"

// DefaultDepthClearValue is the depth a clear writes. Pipelines use
// reverse-Z, so 0 is the far plane.
const DefaultDepthClearValue float32 = 0

// Option configures a ClearPassNode during creation.
//
// Example:
//
//	node := clearpass.NewClearPassNode(
//	    clearpass.WithLabel("clear"),
//	    clearpass.WithDepthClearValue(1), // forward-Z
//	)
type Option func(*nodeOptions)

// nodeOptions holds optional configuration for ClearPassNode creation.
type nodeOptions struct {
	label string
	depth float32
}

// defaultOptions returns the default node options.
func defaultOptions() nodeOptions {
	return nodeOptions{
		label: DefaultLabel,
		depth: DefaultDepthClearValue,
	}
}

// WithLabel sets the prefix of the debug labels of recorded passes.
func WithLabel(label string) Option {
	return func(o *nodeOptions) {
		if label != "" {
			o.label = label
		}
	}
}

// WithDepthClearValue sets the value depth attachments are cleared to.
func WithDepthClearValue(depth float32) Option {
	return func(o *nodeOptions) {
		o.depth = depth
	}
}
