package constants

// Redis key formats
const (
	KeyIndexerLease = "settlement:indexer:%s" // Format: settlement:indexer:{reference}
)
