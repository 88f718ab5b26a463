package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edustack/course-platform/internal/core/domain"
)

const (
	courseListKey = "catalog:courses"
	courseListTTL = 5 * time.Minute
)

// CourseCache stores the serialized course list under a single key. A miss is
// (nil, nil); staleness is bounded by the TTL and inserts invalidate eagerly.
type CourseCache struct {
	client *redis.Client
}

func NewCourseCache(client *redis.Client) *CourseCache {
	return &CourseCache{client: client}
}

func (c *CourseCache) Get(ctx context.Context) ([]domain.Course, error) {
	raw, err := c.client.Get(ctx, courseListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("course cache get: %w", err)
	}

	var courses []domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("course cache decode: %w", err)
	}
	return courses, nil
}

func (c *CourseCache) Set(ctx context.Context, courses []domain.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("course cache encode: %w", err)
	}
	return c.client.Set(ctx, courseListKey, raw, courseListTTL).Err()
}

func (c *CourseCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, courseListKey).Err()
}
