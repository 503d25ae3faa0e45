package dispatch

// Result is the normalized outcome of one provider call. ProviderRef carries
// the provider's own identifier (message id, order id) when it returns one.
type Result struct {
	Success     bool
	ProviderRef string
}
