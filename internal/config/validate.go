package config

// ValidateForRun checks everything the selected backends need before the
// server starts serving.
func ValidateForRun(cfg *Config) error {
	if err := cfg.Inventory.Validate(); err != nil {
		return err
	}

	if _, err := cfg.Schedule.Location(); err != nil {
		return ErrInvalidTimezone
	}

	switch cfg.Notifier {
	case NotifierSMTP:
		if err := cfg.SMTP.Validate(); err != nil {
			return err
		}
	case NotifierEmailJS:
		if err := cfg.EmailJS.Validate(); err != nil {
			return err
		}
	case NotifierExpo:
		// The Expo push endpoint needs no credentials.
	default:
		return ErrUnknownNotifier
	}

	switch cfg.CooldownBackend {
	case CooldownMemory:
	case CooldownRedis:
		if err := cfg.Redis.Validate(); err != nil {
			return err
		}
	default:
		return ErrUnknownCooldownBackend
	}

	return nil
}
