package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Opportunity() OpportunityRepository

	Close() error
}
