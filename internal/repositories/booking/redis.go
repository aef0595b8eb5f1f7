package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trainbook/internal/models"
)

const (
	// Key prefixes for Redis
	bookingKeyPrefix         = "booking:"
	bookingsKey              = "bookings"
	packageBookingsKeyPrefix = "package_bookings:"
	clientBookingsKeyPrefix  = "client_bookings:"
	slotBookingsKeyPrefix    = "slot_bookings:"
	dateBookingsKeyPrefix    = "date_bookings:"

	// Channel notified after every mutation; subscribers re-query
	bookingsChannel = "changed:bookings"
)

// ErrBookingNotFound is returned when a booking is not found
var ErrBookingNotFound = errors.New("booking not found")

// Config holds configuration for the Redis booking repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed booking repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func slotKey(dateISO string, hour int) string {
	return fmt.Sprintf("%s%s:%d", slotBookingsKeyPrefix, dateISO, hour)
}

// SaveBooking persists a booking and its index entries
func (r *redisRepository) SaveBooking(ctx context.Context, input *SaveBookingInput) error {
	if input == nil || input.Booking == nil {
		return errors.New("input and booking cannot be nil")
	}

	b := input.Booking

	if b.ID == "" {
		return errors.New("booking ID cannot be empty")
	}

	bookingJSON, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	pipe := r.client.Pipeline()

	bookingKey := fmt.Sprintf("%s%s", bookingKeyPrefix, b.ID)
	pipe.Set(ctx, bookingKey, bookingJSON, 0)
	pipe.SAdd(ctx, bookingsKey, b.ID)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", clientBookingsKeyPrefix, b.ClientName), b.ID)
	pipe.SAdd(ctx, slotKey(b.DateISO, b.Hour), b.ID)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", dateBookingsKeyPrefix, b.DateISO), b.ID)

	// A dangling booking with no package is tolerated
	if b.PackageID != "" {
		pipe.SAdd(ctx, fmt.Sprintf("%s%s", packageBookingsKeyPrefix, b.PackageID), b.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	r.notify(ctx)
	return nil
}

// GetBooking retrieves a booking by ID from Redis
func (r *redisRepository) GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error) {
	if input == nil || input.BookingID == "" {
		return nil, errors.New("input and booking ID cannot be empty")
	}

	bookingKey := fmt.Sprintf("%s%s", bookingKeyPrefix, input.BookingID)
	bookingJSON, err := r.client.Get(ctx, bookingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	var b models.Booking
	if err := json.Unmarshal([]byte(bookingJSON), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &b, nil
}

// GetBookingsByPackage retrieves all bookings charged to a package
func (r *redisRepository) GetBookingsByPackage(ctx context.Context, input *GetBookingsByPackageInput) (*GetBookingsByPackageOutput, error) {
	if input == nil || input.PackageID == "" {
		return nil, errors.New("input and package ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", packageBookingsKeyPrefix, input.PackageID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking IDs for package: %w", err)
	}

	bookings, err := r.getBookingsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &GetBookingsByPackageOutput{Bookings: bookings}, nil
}

// GetBookingsByClient retrieves all bookings for an exact client name
func (r *redisRepository) GetBookingsByClient(ctx context.Context, input *GetBookingsByClientInput) (*GetBookingsByClientOutput, error) {
	if input == nil || input.ClientName == "" {
		return nil, errors.New("input and client name cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", clientBookingsKeyPrefix, input.ClientName)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking IDs for client: %w", err)
	}

	bookings, err := r.getBookingsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &GetBookingsByClientOutput{Bookings: bookings}, nil
}

// GetBookingsBySlot retrieves the bookings occupying a (date, hour) slot
func (r *redisRepository) GetBookingsBySlot(ctx context.Context, input *GetBookingsBySlotInput) (*GetBookingsBySlotOutput, error) {
	if input == nil || input.DateISO == "" {
		return nil, errors.New("input and date cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, slotKey(input.DateISO, input.Hour)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking IDs for slot: %w", err)
	}

	bookings, err := r.getBookingsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &GetBookingsBySlotOutput{Bookings: bookings}, nil
}

// GetBookingsByDates retrieves all bookings on the given calendar dates
func (r *redisRepository) GetBookingsByDates(ctx context.Context, input *GetBookingsByDatesInput) (*GetBookingsByDatesOutput, error) {
	if input == nil || len(input.DatesISO) == 0 {
		return nil, errors.New("input and dates cannot be empty")
	}

	pipe := r.client.Pipeline()
	dateCommands := make([]*redis.StringSliceCmd, 0, len(input.DatesISO))
	for _, dateISO := range input.DatesISO {
		dateCommands = append(dateCommands, pipe.SMembers(ctx, fmt.Sprintf("%s%s", dateBookingsKeyPrefix, dateISO)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get booking IDs for dates: %w", err)
	}

	idSet := make(map[string]struct{})
	ids := make([]string, 0)
	for _, cmd := range dateCommands {
		members, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get booking IDs for date: %w", err)
		}
		for _, id := range members {
			if _, seen := idSet[id]; seen {
				continue
			}
			idSet[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	bookings, err := r.getBookingsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &GetBookingsByDatesOutput{Bookings: bookings}, nil
}

// UpdateSessionNumbers rewrites session numbers for a batch of bookings.
// The per-booking writes are independent; a mid-batch failure can leave the
// package transiently inconsistent, which the next reindex repairs.
func (r *redisRepository) UpdateSessionNumbers(ctx context.Context, input *UpdateSessionNumbersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Updates) == 0 {
		return nil
	}

	// Fetch the documents in one round trip
	readPipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(input.Updates))
	for _, update := range input.Updates {
		bookingKey := fmt.Sprintf("%s%s", bookingKeyPrefix, update.BookingID)
		commands[update.BookingID] = readPipe.Get(ctx, bookingKey)
	}

	if _, err := readPipe.Exec(ctx); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get bookings for renumbering: %w", err)
	}

	// Apply the new numbers and write them back in one round trip
	writePipe := r.client.Pipeline()
	for _, update := range input.Updates {
		bookingJSON, err := commands[update.BookingID].Result()
		if err != nil {
			if err == redis.Nil {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to get booking %s: %w", update.BookingID, err)
		}

		var b models.Booking
		if err := json.Unmarshal([]byte(bookingJSON), &b); err != nil {
			return fmt.Errorf("failed to unmarshal booking %s: %w", update.BookingID, err)
		}

		b.SessionNumber = update.SessionNumber

		updatedJSON, err := json.Marshal(&b)
		if err != nil {
			return fmt.Errorf("failed to marshal booking %s: %w", update.BookingID, err)
		}

		bookingKey := fmt.Sprintf("%s%s", bookingKeyPrefix, b.ID)
		writePipe.Set(ctx, bookingKey, updatedJSON, 0)
	}

	if _, err := writePipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update session numbers: %w", err)
	}

	r.notify(ctx)
	return nil
}

// DeleteBooking removes a booking and its index entries. Deleting an absent
// ID is a no-op so the caller can tolerate state drift.
func (r *redisRepository) DeleteBooking(ctx context.Context, input *DeleteBookingInput) error {
	if input == nil || input.BookingID == "" {
		return errors.New("input and booking ID cannot be empty")
	}

	bookingKey := fmt.Sprintf("%s%s", bookingKeyPrefix, input.BookingID)
	bookingJSON, err := r.client.Get(ctx, bookingKey).Result()
	if err != nil {
		if err == redis.Nil {
			// Already gone
			return nil
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	var b models.Booking
	if err := json.Unmarshal([]byte(bookingJSON), &b); err != nil {
		return fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, bookingKey)
	pipe.SRem(ctx, bookingsKey, b.ID)
	pipe.SRem(ctx, fmt.Sprintf("%s%s", clientBookingsKeyPrefix, b.ClientName), b.ID)
	pipe.SRem(ctx, slotKey(b.DateISO, b.Hour), b.ID)
	pipe.SRem(ctx, fmt.Sprintf("%s%s", dateBookingsKeyPrefix, b.DateISO), b.ID)
	if b.PackageID != "" {
		pipe.SRem(ctx, fmt.Sprintf("%s%s", packageBookingsKeyPrefix, b.PackageID), b.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	r.notify(ctx)
	return nil
}

// Subscribe registers a change listener. The listener receives the current
// collection immediately and a fresh snapshot after every mutation.
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.OnChange == nil {
		return nil, errors.New("input and change callback cannot be nil")
	}

	pubsub := r.client.Subscribe(ctx, bookingsChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to booking changes: %w", err)
	}

	deliver := func() {
		ids, err := r.client.SMembers(ctx, bookingsKey).Result()
		if err != nil {
			return
		}
		bookings, err := r.getBookingsByIDs(ctx, ids)
		if err != nil {
			return
		}
		input.OnChange(bookings)
	}

	go func() {
		deliver()
		for range pubsub.Channel() {
			deliver()
		}
	}()

	return &Subscription{pubsub: pubsub}, nil
}

// Subscription is a live change feed handle
type Subscription struct {
	pubsub *redis.PubSub
}

// Close stops the feed
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// getBookingsByIDs fetches booking documents in parallel using a pipeline
func (r *redisRepository) getBookingsByIDs(ctx context.Context, ids []string) ([]*models.Booking, error) {
	if len(ids) == 0 {
		return []*models.Booking{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		bookingKey := fmt.Sprintf("%s%s", bookingKeyPrefix, id)
		commands[id] = pipe.Get(ctx, bookingKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	bookings := make([]*models.Booking, 0, len(ids))
	for id, cmd := range commands {
		bookingJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Booking was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get booking %s: %w", id, err)
		}

		var b models.Booking
		if err := json.Unmarshal([]byte(bookingJSON), &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal booking %s: %w", id, err)
		}

		bookings = append(bookings, &b)
	}

	return bookings, nil
}

// notify tells subscribers the collection changed. Best effort: a missed
// notification only delays the next snapshot.
func (r *redisRepository) notify(ctx context.Context) {
	_ = r.client.Publish(ctx, bookingsChannel, "changed").Err()
}
