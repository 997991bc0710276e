package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/models"
)

// ErrFlightNotFound is returned when a flight id does not exist.
var ErrFlightNotFound = errors.New("flight not found")

const (
	defaultPage  = 1
	defaultLimit = 5
)

// FlightReader defines read operations for flight listings.
type FlightReader interface {
	List(ctx context.Context, from, to *string, limit, offset int) ([]models.FlightDB, int64, error)
	GetByID(ctx context.Context, flightID uuid.UUID) (*models.FlightDB, error)
}

// FlightWriter defines write operations for flight listings.
type FlightWriter interface {
	Save(ctx context.Context, flight models.FlightDB) (*models.FlightDB, error)
	Delete(ctx context.Context, flightID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FlightService handles flight search and listing maintenance, publishing
// change events to Kafka.
type FlightService struct {
	readRepo    FlightReader
	writeRepo   FlightWriter
	kafkaWriter KafkaWriter
}

// NewFlightService creates a new FlightService.
func NewFlightService(readRepo FlightReader, writeRepo FlightWriter, kafkaWriter KafkaWriter) *FlightService {
	return &FlightService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of flights matching the filter. Page and limit
// fall back to 1 and 5 when unset or invalid.
func (s *FlightService) List(ctx context.Context, filter models.FlightFilter) (*models.FlightPage, error) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	flights, total, err := s.readRepo.List(ctx, filter.From, filter.To, limit, (page-1)*limit)
	if err != nil {
		logger.Log.Errorw("failed to list flights", "error", err)
		return nil, err
	}

	return &models.FlightPage{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Flights: flights,
	}, nil
}

// Get returns the flight with the given id.
func (s *FlightService) Get(ctx context.Context, flightID uuid.UUID) (*models.FlightDB, error) {
	flight, err := s.readRepo.GetByID(ctx, flightID)
	if err != nil {
		logger.Log.Errorw("failed to get flight", "flightID", flightID, "error", err)
		return nil, err
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

// Create stores a new flight listing and publishes a created event.
func (s *FlightService) Create(ctx context.Context, flight models.FlightDB) (*models.FlightDB, error) {
	saved, err := s.writeRepo.Save(ctx, flight)
	if err != nil {
		logger.Log.Errorw("failed to save flight", "error", err)
		return nil, err
	}

	s.publishFlightEvent(ctx, models.FlightEvent{
		EventID:   uuid.NewString(),
		Operation: "created",
		FlightID:  saved.FlightID.String(),
		From:      saved.From,
		To:        saved.To,
		Price:     saved.Price,
		Timestamp: time.Now().Unix(),
	})

	return saved, nil
}

// Delete removes a flight listing and publishes a deleted event.
func (s *FlightService) Delete(ctx context.Context, flightID uuid.UUID) error {
	deleted, err := s.writeRepo.Delete(ctx, flightID)
	if err != nil {
		logger.Log.Errorw("failed to delete flight", "flightID", flightID, "error", err)
		return err
	}
	if !deleted {
		return ErrFlightNotFound
	}

	s.publishFlightEvent(ctx, models.FlightEvent{
		EventID:   uuid.NewString(),
		Operation: "deleted",
		FlightID:  flightID.String(),
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// publishFlightEvent publishes a flight change event to Kafka. Publishing
// is best-effort: failures are logged and never surfaced to the request.
func (s *FlightService) publishFlightEvent(ctx context.Context, event models.FlightEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal flight event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.FlightID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish flight event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Flight event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}
