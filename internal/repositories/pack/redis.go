package pack

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
	packageKeyPrefix        = "package:"
	packagesKey             = "packages"
	clientPackagesKeyPrefix = "client_packages:"

	// Channel notified after every mutation; subscribers re-query
	packagesChannel = "changed:packages"
)

// ErrPackageNotFound is returned when a package is not found
var ErrPackageNotFound = errors.New("package not found")

// Config holds configuration for the Redis package repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed package repository
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

// SavePackage persists a package to Redis
func (r *redisRepository) SavePackage(ctx context.Context, input *SavePackageInput) error {
	if input == nil || input.Package == nil {
		return errors.New("input and package cannot be nil")
	}

	pkg := input.Package

	if pkg.ID == "" {
		return errors.New("package ID cannot be empty")
	}

	pkgJSON, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("failed to marshal package: %w", err)
	}

	pipe := r.client.Pipeline()

	packageKey := fmt.Sprintf("%s%s", packageKeyPrefix, pkg.ID)
	pipe.Set(ctx, packageKey, pkgJSON, 0)
	pipe.SAdd(ctx, packagesKey, pkg.ID)

	// Index the package under every client it names
	for _, name := range pkg.Owner.Names() {
		clientKey := fmt.Sprintf("%s%s", clientPackagesKeyPrefix, name)
		pipe.SAdd(ctx, clientKey, pkg.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}

	r.notify(ctx)
	return nil
}

// GetPackage retrieves a package by ID from Redis
func (r *redisRepository) GetPackage(ctx context.Context, input *GetPackageInput) (*models.Package, error) {
	if input == nil || input.PackageID == "" {
		return nil, errors.New("input and package ID cannot be empty")
	}

	packageKey := fmt.Sprintf("%s%s", packageKeyPrefix, input.PackageID)
	pkgJSON, err := r.client.Get(ctx, packageKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	var pkg models.Package
	if err := json.Unmarshal([]byte(pkgJSON), &pkg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal package: %w", err)
	}

	return &pkg, nil
}

// ListPackages retrieves every package in the collection
func (r *redisRepository) ListPackages(ctx context.Context, input *ListPackagesInput) (*ListPackagesOutput, error) {
	ids, err := r.client.SMembers(ctx, packagesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get package IDs: %w", err)
	}

	packages, err := r.getPackagesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListPackagesOutput{Packages: packages}, nil
}

// GetPackagesByClient retrieves all packages naming a client
func (r *redisRepository) GetPackagesByClient(ctx context.Context, input *GetPackagesByClientInput) (*GetPackagesByClientOutput, error) {
	if input == nil || input.ClientName == "" {
		return nil, errors.New("input and client name cannot be empty")
	}

	clientKey := fmt.Sprintf("%s%s", clientPackagesKeyPrefix, input.ClientName)
	ids, err := r.client.SMembers(ctx, clientKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get package IDs for client: %w", err)
	}

	packages, err := r.getPackagesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &GetPackagesByClientOutput{Packages: packages}, nil
}

// UpdateUsed rewrites a package's used count
func (r *redisRepository) UpdateUsed(ctx context.Context, input *UpdateUsedInput) error {
	if input == nil || input.PackageID == "" {
		return errors.New("input and package ID cannot be empty")
	}

	packageKey := fmt.Sprintf("%s%s", packageKeyPrefix, input.PackageID)
	pkgJSON, err := r.client.Get(ctx, packageKey).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to get package: %w", err)
	}

	var pkg models.Package
	if err := json.Unmarshal([]byte(pkgJSON), &pkg); err != nil {
		return fmt.Errorf("failed to unmarshal package: %w", err)
	}

	pkg.Used = input.Used

	updatedJSON, err := json.Marshal(&pkg)
	if err != nil {
		return fmt.Errorf("failed to marshal updated package: %w", err)
	}

	if err := r.client.Set(ctx, packageKey, updatedJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save updated package: %w", err)
	}

	r.notify(ctx)
	return nil
}

// DeletePackage removes a package and its index entries. Deleting an absent
// ID is a no-op.
func (r *redisRepository) DeletePackage(ctx context.Context, input *DeletePackageInput) error {
	if input == nil || input.PackageID == "" {
		return errors.New("input and package ID cannot be empty")
	}

	packageKey := fmt.Sprintf("%s%s", packageKeyPrefix, input.PackageID)
	pkgJSON, err := r.client.Get(ctx, packageKey).Result()
	if err != nil {
		if err == redis.Nil {
			// Already gone
			return nil
		}
		return fmt.Errorf("failed to get package: %w", err)
	}

	var pkg models.Package
	if err := json.Unmarshal([]byte(pkgJSON), &pkg); err != nil {
		return fmt.Errorf("failed to unmarshal package: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, packageKey)
	pipe.SRem(ctx, packagesKey, pkg.ID)
	for _, name := range pkg.Owner.Names() {
		clientKey := fmt.Sprintf("%s%s", clientPackagesKeyPrefix, name)
		pipe.SRem(ctx, clientKey, pkg.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
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

	pubsub := r.client.Subscribe(ctx, packagesChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to package changes: %w", err)
	}

	deliver := func() {
		out, err := r.ListPackages(ctx, &ListPackagesInput{})
		if err != nil {
			return
		}
		input.OnChange(out.Packages)
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

// getPackagesByIDs fetches package documents in parallel using a pipeline
func (r *redisRepository) getPackagesByIDs(ctx context.Context, ids []string) ([]*models.Package, error) {
	if len(ids) == 0 {
		return []*models.Package{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		packageKey := fmt.Sprintf("%s%s", packageKeyPrefix, id)
		commands[id] = pipe.Get(ctx, packageKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}

	packages := make([]*models.Package, 0, len(ids))
	for id, cmd := range commands {
		pkgJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Package was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get package %s: %w", id, err)
		}

		var pkg models.Package
		if err := json.Unmarshal([]byte(pkgJSON), &pkg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal package %s: %w", id, err)
		}

		packages = append(packages, &pkg)
	}

	return packages, nil
}

// notify tells subscribers the collection changed. Best effort: a missed
// notification only delays the next snapshot.
func (r *redisRepository) notify(ctx context.Context) {
	_ = r.client.Publish(ctx, packagesChannel, "changed").Err()
}
