package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/catalog"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/dealership"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/policy"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/repository"
)

func newTestRegistry(t *testing.T, readOnly bool) *Registry {
	t.Helper()
	ledger, err := repository.NewAppointmentLedger(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	eng, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)

	return NewRegistry(dealership.New(catalog.Default(), ledger), eng, readOnly)
}

type outcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func dispatch(t *testing.T, r *Registry, name, args string) (outcome, json.RawMessage) {
	t.Helper()
	payload, err := r.Dispatch(context.Background(), name, json.RawMessage(args))
	require.NoError(t, err)
	var out outcome
	require.NoError(t, json.Unmarshal(payload, &out))
	return out, payload
}

func TestSchemasAdvertiseAllSixTools(t *testing.T) {
	r := newTestRegistry(t, false)

	schemas := r.Schemas()
	require.Len(t, schemas, 6)

	names := make([]string, len(schemas))
	for i, s := range schemas {
		assert.Equal(t, "function", s.Type)
		names[i] = s.Function.Name
	}
	assert.Equal(t, []string{
		"searchInventory",
		"getCarDetails",
		"getAvailableAppointmentSlots",
		"scheduleAppointment",
		"getBusinessInfo",
		"getFinancingOptions",
	}, names)

	// Required fields are declared on the tools that enforce them.
	carDetails := schemas[1].Function.Parameters.(map[string]any)
	assert.Equal(t, []string{"carId"}, carDetails["required"])
	schedule := schemas[3].Function.Parameters.(map[string]any)
	assert.Equal(t, []string{"date", "time", "appointmentType", "customerName", "customerPhone"}, schedule["required"])
}

func TestDispatchSearchInventory(t *testing.T) {
	r := newTestRegistry(t, false)

	out, payload := dispatch(t, r, "searchInventory", `{"budget":"economico"}`)
	require.True(t, out.Success)

	var result dealership.SearchResult
	require.NoError(t, json.Unmarshal(payload, &result))
	require.NotZero(t, result.TotalFound)
	for _, car := range result.Cars {
		assert.Less(t, car.Price, 30000.0)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	r := newTestRegistry(t, false)

	out, _ := dispatch(t, r, "createInvoice", `{}`)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "Unknown tool: createInvoice")
}

func TestDispatchMalformedPayload(t *testing.T) {
	r := newTestRegistry(t, false)

	out, _ := dispatch(t, r, "searchInventory", `{"brand":`)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "Invalid arguments for searchInventory")
}

func TestDispatchRejectsUnknownFields(t *testing.T) {
	r := newTestRegistry(t, false)

	out, _ := dispatch(t, r, "getCarDetails", `{"vehicleId":"bmw-x5-2024-001"}`)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "Invalid arguments for getCarDetails")
}

func TestDispatchScheduleMissingRequiredFields(t *testing.T) {
	r := newTestRegistry(t, false)

	out, _ := dispatch(t, r, "scheduleAppointment",
		`{"date":"2025-07-01","time":"9:00 AM","appointmentType":"test_drive","customerName":"Ana"}`)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "customerPhone")
}

func TestDispatchScheduleAndConflict(t *testing.T) {
	r := newTestRegistry(t, false)
	args := `{"date":"2025-07-01","time":"9:00 AM","appointmentType":"test_drive","customerName":"Ana García","customerPhone":"555-0101"}`

	out, payload := dispatch(t, r, "scheduleAppointment", args)
	require.True(t, out.Success)
	var result dealership.ScheduleResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "apt-1", result.ConfirmationNumber)

	out, _ = dispatch(t, r, "scheduleAppointment", args)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "already booked")
}

func TestDispatchEmptyArgsDefaultsToAll(t *testing.T) {
	r := newTestRegistry(t, false)

	out, payload := dispatch(t, r, "getBusinessInfo", "")
	require.True(t, out.Success)

	var result dealership.BusinessInfoResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, "AutoMax Concesionario", result.Name)
	assert.NotEmpty(t, result.Hours)
	assert.NotEmpty(t, result.Services)
}

func TestReadOnlyPolicyBlocksBooking(t *testing.T) {
	r := newTestRegistry(t, true)

	out, _ := dispatch(t, r, "scheduleAppointment",
		`{"date":"2025-07-01","time":"9:00 AM","appointmentType":"test_drive","customerName":"Ana García","customerPhone":"555-0101"}`)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "disabled")

	// Read-only mode still answers queries.
	out, _ = dispatch(t, r, "searchInventory", `{}`)
	assert.True(t, out.Success)
}
