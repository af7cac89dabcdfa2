package urgency

import (
	"fmt"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

// Message is the rendered notification content for one item. Building it is
// pure: same (productName, offset) in, same strings out.
type Message struct {
	Tier    domain.Tier
	Subject string
	Body    string
}

// Classify maps a signed day offset to its urgency tier and renders the
// subject and body for the product. First matching tier wins: expired,
// expires today, expires within three days, plain reminder.
func Classify(productName string, dayOffset int) Message {
	switch {
	case dayOffset < 0:
		overdue := -dayOffset
		return Message{
			Tier:    domain.TierExpired,
			Subject: fmt.Sprintf("⚠️ Producto vencido: %s", productName),
			Body:    fmt.Sprintf("Tu producto %q venció hace %d día(s). ¡Revisa tu despensa!", productName, overdue),
		}
	case dayOffset == 0:
		return Message{
			Tier:    domain.TierExpiresToday,
			Subject: fmt.Sprintf("🚨 ¡VENCE HOY!: %s", productName),
			Body:    fmt.Sprintf("¡Tu producto %q vence HOY! Úsalo pronto.", productName),
		}
	case dayOffset <= 3:
		return Message{
			Tier:    domain.TierExpiresSoon,
			Subject: fmt.Sprintf("⏰ Próximo a vencer: %s", productName),
			Body:    fmt.Sprintf("Tu producto %q vence en %d día(s). Planifica usarlo pronto.", productName, dayOffset),
		}
	default:
		return Message{
			Tier:    domain.TierReminder,
			Subject: fmt.Sprintf("📅 Recordatorio: %s", productName),
			Body:    fmt.Sprintf("Tu producto %q vence en %d días.", productName, dayOffset),
		}
	}
}
