package client

// Client is what cmd/client runs. Run blocks until the user quits the
// reveal screen or the process receives SIGTERM or SIGQUIT.
type Client interface {
	Run() error
}

var _ Client = (*App)(nil)
