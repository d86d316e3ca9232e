package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Catalog *CatalogHandler
	User    *UserHandler
	Chat    *ChatHandler
}
