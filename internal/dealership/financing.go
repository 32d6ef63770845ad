package dealership

import (
	"math"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
)

const financingNote = "All rates and terms subject to credit approval. Monthly payments are estimates."

// FinancingRequest is the argument set for a financing estimate. Field names
// match the tool schema advertised to the model.
type FinancingRequest struct {
	CarPrice      float64 `json:"carPrice,omitempty"`
	DownPayment   float64 `json:"downPayment,omitempty"`
	CreditProfile string  `json:"creditProfile,omitempty"`
}

// FinancingOption is a financing plan, optionally annotated with the
// estimated monthly payment for a concrete car price.
type FinancingOption struct {
	domain.FinancingPlan
	EstimatedMonthlyPayment int `json:"estimatedMonthlyPayment,omitempty"`
}

// FinancingResult lists the plans available to the customer.
type FinancingResult struct {
	Success          bool              `json:"success"`
	FinancingOptions []FinancingOption `json:"financingOptions"`
	Note             string            `json:"note"`
}

// FinancingOptions filters the plan catalog by credit profile and, when a car
// price is supplied, computes the estimated monthly payment per plan.
func (s *Service) FinancingOptions(req FinancingRequest) FinancingResult {
	options := make([]FinancingOption, 0, len(s.plans))
	for _, plan := range s.plans {
		if !planAllowed(plan.ID, domain.CreditProfile(req.CreditProfile)) {
			continue
		}
		opt := FinancingOption{FinancingPlan: plan}
		if req.CarPrice > 0 {
			principal := req.CarPrice - req.DownPayment
			opt.EstimatedMonthlyPayment = monthlyPayment(principal, plan.APR, plan.TermMonths)
		}
		options = append(options, opt)
	}

	return FinancingResult{
		Success:          true,
		FinancingOptions: options,
		Note:             financingNote,
	}
}

// planAllowed applies the credit-profile restrictions: limited credit keeps a
// fixed allow-list, fair credit drops the lease program, excellent and good
// impose no restriction.
func planAllowed(planID string, profile domain.CreditProfile) bool {
	switch profile {
	case domain.CreditLimited:
		return planID == "first-time-buyer" || planID == "standard-financing"
	case domain.CreditFair:
		return planID != "lease-option"
	default:
		return true
	}
}

// monthlyPayment computes the standard amortizing-loan payment, rounded to the
// nearest currency unit. A zero APR makes the formula undefined; that case is
// a flat principal-over-term payment.
func monthlyPayment(principal, apr float64, termMonths int) int {
	if termMonths <= 0 {
		return 0
	}
	if apr == 0 {
		return int(math.Round(principal / float64(termMonths)))
	}
	r := apr / 100 / 12
	factor := math.Pow(1+r, float64(termMonths))
	payment := principal * r * factor / (factor - 1)
	return int(math.Round(payment))
}
