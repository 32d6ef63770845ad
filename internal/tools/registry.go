// Package tools maps tool names to their schemas and query-engine handlers.
// The registry advertises capabilities to the model provider and dispatches
// the tool calls it sends back.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/dealership"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/policy"
)

// Handler executes one tool call against the query engine. The returned value
// is serialized as the tool-result payload.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

type tool struct {
	schema  llm.Tool
	handler Handler
}

// Registry stores the six dealership tools keyed by name.
type Registry struct {
	svc      *dealership.Service
	policy   *policy.Engine
	readOnly bool
	order    []string
	tools    map[string]tool
}

// NewRegistry builds the registry over the query engine. Every dispatch is
// gated by the policy engine; readOnly is passed as policy input.
func NewRegistry(svc *dealership.Service, eng *policy.Engine, readOnly bool) *Registry {
	r := &Registry{
		svc:      svc,
		policy:   eng,
		readOnly: readOnly,
		tools:    make(map[string]tool),
	}

	r.register(searchInventorySchema, func(ctx context.Context, args json.RawMessage) (any, error) {
		criteria, err := decode[dealership.SearchCriteria](args)
		if err != nil {
			return nil, err
		}
		return r.svc.SearchInventory(criteria), nil
	})
	r.register(getCarDetailsSchema, func(ctx context.Context, args json.RawMessage) (any, error) {
		a, err := decode[carDetailsArgs](args)
		if err != nil {
			return nil, err
		}
		if a.CarID == "" {
			return nil, &InvalidArgumentError{Tool: "getCarDetails", Reason: "carId is required"}
		}
		return r.svc.CarDetails(a.CarID), nil
	})
	r.register(getAvailableAppointmentSlotsSchema, func(ctx context.Context, args json.RawMessage) (any, error) {
		a, err := decode[slotArgs](args)
		if err != nil {
			return nil, err
		}
		return r.svc.AvailableSlots(ctx, a.Date, a.AppointmentType)
	})
	r.register(scheduleAppointmentSchema, func(ctx context.Context, args json.RawMessage) (any, error) {
		req, err := decode[dealership.ScheduleRequest](args)
		if err != nil {
			return nil, err
		}
		if missing := missingBookingFields(req); len(missing) > 0 {
			return nil, &InvalidArgumentError{
				Tool:   "scheduleAppointment",
				Reason: "missing required fields: " + strings.Join(missing, ", "),
			}
		}
		return r.svc.Schedule(ctx, req)
	})
	r.register(getBusinessInfoSchema, func(ctx context.Context, args json.RawMessage) (any, error) {
		a, err := decode[businessInfoArgs](args)
		if err != nil {
			return nil, err
		}
		return r.svc.BusinessInfo(a.InfoType), nil
	})
	r.register(getFinancingOptionsSchema, func(ctx context.Context, args json.RawMessage) (any, error) {
		req, err := decode[dealership.FinancingRequest](args)
		if err != nil {
			return nil, err
		}
		return r.svc.FinancingOptions(req), nil
	})

	return r
}

func (r *Registry) register(schema llm.Tool, h Handler) {
	name := schema.Function.Name
	if _, exists := r.tools[name]; exists {
		panic(fmt.Sprintf("tool already registered: %s", name))
	}
	r.order = append(r.order, name)
	r.tools[name] = tool{schema: schema, handler: h}
}

// Schemas returns the tool definitions to advertise to the model provider, in
// registration order.
func (r *Registry) Schemas() []llm.Tool {
	schemas := make([]llm.Tool, 0, len(r.order))
	for _, name := range r.order {
		schemas = append(schemas, r.tools[name].schema)
	}
	return schemas
}

// Dispatch parses the raw argument payload and runs the named tool. Unknown
// tools, policy blocks and malformed arguments come back as structured
// failure payloads so the conversation can continue; only genuinely
// exceptional conditions (ledger failure, policy engine failure) return an
// error.
func (r *Registry) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage) (json.RawMessage, error) {
	t, ok := r.tools[name]
	if !ok {
		log.Printf("WARN: model requested unknown tool %q", name)
		return failurePayload(fmt.Sprintf("Unknown tool: %s", name)), nil
	}

	decision, _, err := r.policy.Evaluate(ctx, map[string]any{
		"tool_name": name,
		"read_only": r.readOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("policy evaluation failed: %w", err)
	}
	if decision != "allow" {
		log.Printf("policy blocked tool %q", name)
		return failurePayload(fmt.Sprintf("The %s action is currently disabled.", name)), nil
	}

	result, err := t.handler(ctx, rawArgs)
	if err != nil {
		var invalid *InvalidArgumentError
		if errors.As(err, &invalid) {
			log.Printf("WARN: invalid arguments for tool %q: %s", name, invalid.Reason)
			return failurePayload(fmt.Sprintf("Invalid arguments for %s: %s", name, invalid.Reason)), nil
		}
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return payload, nil
}

// decode strictly parses args into T, rejecting unknown fields. An empty
// payload decodes as the zero value, since every parameter is optional at the
// wire level.
func decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, &InvalidArgumentError{Reason: err.Error()}
	}
	return out, nil
}

func missingBookingFields(req dealership.ScheduleRequest) []string {
	var missing []string
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.AppointmentType == "" {
		missing = append(missing, "appointmentType")
	}
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.CustomerPhone == "" {
		missing = append(missing, "customerPhone")
	}
	return missing
}

func failurePayload(msg string) json.RawMessage {
	payload, _ := json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: msg})
	return payload
}
