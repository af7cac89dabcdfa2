package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	scanScheduleEnv    = "SCAN_SCHEDULE"
	scanTimezoneEnv    = "SCAN_TIMEZONE"
	initialDelaySecEnv = "INITIAL_SCAN_DELAY_SECONDS"

	// The app's users are Colombian; the original deployment scanned at
	// 08:00 Bogota time.
	defaultScanSchedule    = "08:00"
	defaultScanTimezone    = "America/Bogota"
	defaultInitialDelaySec = 5
)

type ScheduleConfig struct {
	Hour     int
	Minute   int
	Timezone string
	// InitialDelay postpones the boot-time scan; negative disables it.
	InitialDelay time.Duration
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	schedule := os.Getenv(scanScheduleEnv)
	if schedule == "" {
		schedule = defaultScanSchedule
	}
	hour, minute, err := parseSchedule(schedule)
	if err != nil {
		return nil, err
	}

	timezone := os.Getenv(scanTimezoneEnv)
	if timezone == "" {
		timezone = defaultScanTimezone
	}

	initialDelaySec := defaultInitialDelaySec
	if v := os.Getenv(initialDelaySecEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidSchedule
		}
		initialDelaySec = parsed
	}

	return &ScheduleConfig{
		Hour:         hour,
		Minute:       minute,
		Timezone:     timezone,
		InitialDelay: time.Duration(initialDelaySec) * time.Second,
	}, nil
}

// Location resolves the configured IANA timezone.
func (c *ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func parseSchedule(raw string) (hour, minute int, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidSchedule
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidSchedule
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidSchedule
	}
	return hour, minute, nil
}
