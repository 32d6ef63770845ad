// Package dealership implements the deterministic query engine behind the
// assistant's tools: inventory search, appointment scheduling, business info
// and financing estimates.
package dealership

import (
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/catalog"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/repository"
)

// Service answers tool queries from the catalog and the appointment ledger.
// Catalog data is read-only; the ledger is the only mutable state and guards
// its own consistency.
type Service struct {
	inventory []domain.Vehicle
	business  domain.BusinessInfo
	slots     []string
	plans     []domain.FinancingPlan
	ledger    *repository.AppointmentLedger
}

// New creates a query engine over the given catalog and ledger.
func New(cat *catalog.Catalog, ledger *repository.AppointmentLedger) *Service {
	return &Service{
		inventory: cat.Inventory,
		business:  cat.Business,
		slots:     cat.TimeSlots,
		plans:     cat.FinancingPlans,
		ledger:    ledger,
	}
}
