package models

// FlightEvent is published to Kafka when a flight listing changes.
type FlightEvent struct {
	EventID   string  `json:"event_id"`  // Unique event identifier
	Operation string  `json:"operation"` // "created" or "deleted"
	FlightID  string  `json:"flight_id"` // Affected flight
	From      string  `json:"from"`      // Origin at event time
	To        string  `json:"to"`        // Destination at event time
	Price     float64 `json:"price"`     // Price at event time
	Timestamp int64   `json:"timestamp"` // Unix seconds
}
