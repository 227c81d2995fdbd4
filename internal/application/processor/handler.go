package processor

// Handler processes the arguments of one command. Handlers are permissive:
// they absorb malformed arguments instead of returning errors, so the only
// error path out of a run is the renderer.
type Handler func(args []string) error

// HandlerInfo contains handler metadata for registry listing and logging.
type HandlerInfo struct {
	Name    string
	Handler Handler
}
