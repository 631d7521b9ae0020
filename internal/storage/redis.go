package storage

import (
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"

	"wheely/backend/internal/config"
	"wheely/backend/internal/models"
)

// reportsChannel carries newly created reports to the live feed.
const reportsChannel = "reports:new"

const loginFailPrefix = "loginfail:"

// PublishReport publishes a created report to Redis Pub/Sub so every
// backend instance can fan it out to its websocket clients.
func (s *Service) PublishReport(report models.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, reportsChannel, payload).Err()
}

// SubscribeReports subscribes to the report event channel.
func (s *Service) SubscribeReports() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, reportsChannel)
}

// RegisterFailedLogin bumps the failure counter for an email. The counter
// expires after the throttle window, so stale failures age out on their own.
func (s *Service) RegisterFailedLogin(email string) error {
	key := loginFailPrefix + email
	count, err := s.Redis.Incr(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return s.Redis.Expire(s.Ctx, key, config.LoginThrottleWindow).Err()
	}
	return nil
}

// ResetFailedLogins clears the failure counter after a successful login.
func (s *Service) ResetFailedLogins(email string) error {
	return s.Redis.Del(s.Ctx, loginFailPrefix+email).Err()
}

// IsLoginThrottled reports whether an email has exhausted its login attempts
// within the current window.
func (s *Service) IsLoginThrottled(email string) (bool, error) {
	val, err := s.Redis.Get(s.Ctx, loginFailPrefix+email).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		return false, nil
	}
	return count >= config.LoginMaxAttempts, nil
}
