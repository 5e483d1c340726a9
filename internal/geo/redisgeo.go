// Package geo maintains a Redis GEO index of missing-person sightings so the
// API can answer "who was last seen near these coordinates" queries.
package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NearbyPerson is one entry returned from a radius search.
type NearbyPerson struct {
	ID   int
	Dist float64
	Lon  float64
	Lat  float64
}

// PersonLocator handles the person geo index.
type PersonLocator struct {
	rdb *redis.Client
}

func NewPersonLocator(rdb *redis.Client) *PersonLocator {
	return &PersonLocator{rdb: rdb}
}

func redisKey(status string) string {
	return fmt.Sprintf("persons:%s", strings.ToLower(status))
}

func memberName(personID int) string {
	return fmt.Sprintf("person:%d", personID)
}

func parsePersonMember(member string) (int, error) {
	parts := strings.Split(member, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid member %q", member)
	}
	return strconv.Atoi(parts[1])
}

// Add records the last-seen position of a person under its status set.
func (l *PersonLocator) Add(ctx context.Context, personID int, lon, lat float64, status string) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("geo add: invalid coords lon=%.8f lat=%.8f", lon, lat)
	}
	return l.rdb.GeoAdd(ctx, redisKey(status), &redis.GeoLocation{
		Name:      memberName(personID),
		Longitude: lon,
		Latitude:  lat,
	}).Err()
}

// Move transfers a person between status sets, preserving coordinates.
func (l *PersonLocator) Move(ctx context.Context, personID int, fromStatus, toStatus string) error {
	if fromStatus == toStatus {
		return nil
	}
	src := redisKey(fromStatus)
	dst := redisKey(toStatus)
	mem := memberName(personID)

	pos, err := l.rdb.GeoPos(ctx, src, mem).Result()
	if err != nil {
		return err
	}
	if len(pos) == 0 || pos[0] == nil {
		return fmt.Errorf("geo move: coordinates not found for %s in %s", mem, src)
	}

	if err := l.rdb.GeoAdd(ctx, dst, &redis.GeoLocation{
		Name:      mem,
		Longitude: pos[0].Longitude,
		Latitude:  pos[0].Latitude,
	}).Err(); err != nil {
		return err
	}
	return l.rdb.ZRem(ctx, src, mem).Err()
}

// Remove drops a person from every status set.
func (l *PersonLocator) Remove(ctx context.Context, personID int, statuses ...string) error {
	mem := memberName(personID)
	for _, st := range statuses {
		if err := l.rdb.ZRem(ctx, redisKey(st), mem).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Nearby returns persons within radius sorted by distance ascending.
func (l *PersonLocator) Nearby(ctx context.Context, lon, lat, radiusMeters float64, limit int, status string) ([]NearbyPerson, error) {
	res, err := l.rdb.GeoSearchLocation(ctx, redisKey(status), &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  lon,
			Latitude:   lat,
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithCoord: true,
		WithDist:  true,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	persons := make([]NearbyPerson, 0, len(res))
	for _, item := range res {
		id, err := parsePersonMember(item.Name)
		if err != nil {
			continue
		}
		persons = append(persons, NearbyPerson{
			ID:   id,
			Dist: item.Dist,
			Lon:  item.Longitude,
			Lat:  item.Latitude,
		})
	}
	return persons, nil
}
