package domain

// KeyPrefix namespaces all keys this service touches in the store.
const KeyPrefix = "avenbot:"

// Retrieval policy constants. TopK leaves headroom over MaxContextPassages
// for trust filtering and content extraction; MaxSources bounds the public
// attribution list.
const (
	// TopK is how many nearest neighbours are requested from the index.
	TopK = 15
	// MaxContextPassages caps the passages fed into one generation call.
	MaxContextPassages = 10
	// MaxSources caps the source attributions returned to the caller.
	MaxSources = 5
)
