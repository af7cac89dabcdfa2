package urgency

import (
	"strings"
	"testing"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		wantTier   domain.Tier
		bodyNeedle string
	}{
		{
			name:       "two days overdue",
			offset:     -2,
			wantTier:   domain.TierExpired,
			bodyNeedle: "hace 2 día(s)",
		},
		{
			name:       "one day overdue",
			offset:     -1,
			wantTier:   domain.TierExpired,
			bodyNeedle: "hace 1 día(s)",
		},
		{
			name:       "expires today",
			offset:     0,
			wantTier:   domain.TierExpiresToday,
			bodyNeedle: "vence HOY",
		},
		{
			name:       "expires tomorrow",
			offset:     1,
			wantTier:   domain.TierExpiresSoon,
			bodyNeedle: "vence en 1 día(s)",
		},
		{
			name:       "upper bound of soon window",
			offset:     3,
			wantTier:   domain.TierExpiresSoon,
			bodyNeedle: "vence en 3 día(s)",
		},
		{
			name:       "just past soon window",
			offset:     4,
			wantTier:   domain.TierReminder,
			bodyNeedle: "vence en 4 días",
		},
		{
			name:       "distant reminder",
			offset:     10,
			wantTier:   domain.TierReminder,
			bodyNeedle: "vence en 10 días",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("Leche entera", tt.offset)

			if got.Tier != tt.wantTier {
				t.Errorf("Classify(%d).Tier = %v, want %v", tt.offset, got.Tier, tt.wantTier)
			}
			if !strings.Contains(got.Body, tt.bodyNeedle) {
				t.Errorf("Classify(%d).Body = %q, want substring %q", tt.offset, got.Body, tt.bodyNeedle)
			}
			if !strings.Contains(got.Body, "Leche entera") {
				t.Errorf("Classify(%d).Body = %q, missing product name", tt.offset, got.Body)
			}
			if !strings.Contains(got.Subject, "Leche entera") {
				t.Errorf("Classify(%d).Subject = %q, missing product name", tt.offset, got.Subject)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	a := Classify("Yogur", 2)
	b := Classify("Yogur", 2)

	if a != b {
		t.Errorf("Classify not deterministic: %+v vs %+v", a, b)
	}
}
