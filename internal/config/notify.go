package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	triggerOffsetsEnv = "TRIGGER_OFFSETS"
	anyNegativeEnv    = "NOTIFY_ANY_NEGATIVE"
	cooldownHoursEnv  = "COOLDOWN_HOURS"
	sendThrottleMsEnv = "SEND_THROTTLE_MS"

	defaultCooldownHours  = 12
	defaultSendThrottleMs = 500
)

// defaultTriggerOffsets is the superset the app settled on: a week out,
// three days, one day, the expiry day itself, and the first and third days
// after.
var defaultTriggerOffsets = []int{7, 3, 1, 0, -1, -3}

type NotifyConfig struct {
	TriggerOffsets []int
	// AnyNegative makes every expired item trigger, not just the negative
	// offsets listed above.
	AnyNegative  bool
	Cooldown     time.Duration
	SendThrottle time.Duration
}

func LoadNotifyConfig() (*NotifyConfig, error) {
	offsets := defaultTriggerOffsets
	if raw := os.Getenv(triggerOffsetsEnv); raw != "" {
		parsed, err := parseOffsets(raw)
		if err != nil {
			return nil, err
		}
		offsets = parsed
	}

	cooldownHours := defaultCooldownHours
	if v := os.Getenv(cooldownHoursEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidCooldown
		}
		cooldownHours = parsed
	}

	throttleMs := defaultSendThrottleMs
	if v := os.Getenv(sendThrottleMsEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidThrottle
		}
		throttleMs = parsed
	}

	return &NotifyConfig{
		TriggerOffsets: offsets,
		AnyNegative:    os.Getenv(anyNegativeEnv) == "true",
		Cooldown:       time.Duration(cooldownHours) * time.Hour,
		SendThrottle:   time.Duration(throttleMs) * time.Millisecond,
	}, nil
}

func parseOffsets(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	offsets := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, ErrInvalidTriggerOffsets
		}
		offsets = append(offsets, n)
	}
	if len(offsets) == 0 {
		return nil, ErrInvalidTriggerOffsets
	}
	return offsets, nil
}
