package payment

import (
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

const (
	testContract  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testOther     = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	testRecipient = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func testEvent() *Event {
	return &Event{
		EventID:          "evt_1",
		Type:             EventTypePaymentCompleted,
		BuyerID:          "cus_123",
		BuyerEmail:       "alice@example.com",
		AssetRef:         "ipfs://bafy/1.json",
		RecipientAddress: testRecipient,
		AmountTotal:      2500,
		Currency:         "usd",
		Mintable:         true,
	}
}

func TestExternalRef(t *testing.T) {
	t.Run("Email Buyer Default Contract", func(t *testing.T) {
		ref := ExternalRef(testEvent(), testContract)
		assert.Equal(t, "0x2d12989c329a1f71eebc2a2cb7dfe9526ae4dd345a07a0a9acdb2fbebf800460", ref)
	})

	t.Run("Buyer Id Without Email", func(t *testing.T) {
		event := testEvent()
		event.BuyerEmail = ""
		ref := ExternalRef(event, testContract)
		assert.Equal(t, "0x7c1f86a6d99400f2ccb9ed494184ba258e35d523c7e6204c37856b79f9c17ddc", ref)
	})

	t.Run("Explicit Target", func(t *testing.T) {
		event := testEvent()
		event.TargetContract = testOther
		ref := ExternalRef(event, testContract)
		assert.Equal(t, "0x589cf924e131f1928d07ac39cefe30ca018a67b10b84557c1569c37cba8f21f1", ref)
	})

	t.Run("Explicit Default Target Matches Implicit", func(t *testing.T) {
		event := testEvent()
		event.TargetContract = testContract
		assert.Equal(t, ExternalRef(testEvent(), testContract), ExternalRef(event, testContract))
	})

	t.Run("Case And Whitespace Insensitive Buyer", func(t *testing.T) {
		event := testEvent()
		event.BuyerEmail = "  Alice@Example.COM "
		assert.Equal(t, ExternalRef(testEvent(), testContract), ExternalRef(event, testContract))
	})

	t.Run("Recipient Does Not Change Ref", func(t *testing.T) {
		event := testEvent()
		event.RecipientAddress = testOther
		assert.Equal(t, ExternalRef(testEvent(), testContract), ExternalRef(event, testContract))
	})

	t.Run("Different Asset", func(t *testing.T) {
		event := testEvent()
		event.AssetRef = "ipfs://bafy/2.json"
		assert.NotEqual(t, ExternalRef(testEvent(), testContract), ExternalRef(event, testContract))
	})
}

func TestEventValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(e *Event)
		valid  bool
	}{
		{"Valid", func(e *Event) {}, true},
		{"Buyer Id Only", func(e *Event) { e.BuyerEmail = "" }, true},
		{"No Buyer", func(e *Event) { e.BuyerEmail = ""; e.BuyerID = " " }, false},
		{"No Asset", func(e *Event) { e.AssetRef = "" }, false},
		{"Bad Recipient", func(e *Event) { e.RecipientAddress = "alice.eth" }, false},
		{"Bad Target", func(e *Event) { e.TargetContract = "0x1234" }, false},
		{"Valid Target", func(e *Event) { e.TargetContract = testOther }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := testEvent()
			tc.modify(event)
			err := event.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			}
		})
	}
}

func TestEventActionable(t *testing.T) {
	event := testEvent()
	assert.True(t, event.Actionable())

	event.Mintable = false
	assert.False(t, event.Actionable())

	event = testEvent()
	event.Type = "payment.refunded"
	assert.False(t, event.Actionable())
}

func TestEventMintRequest(t *testing.T) {
	event := testEvent()
	event.RecipientAddress = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	event.TargetContract = "0xe7f1725e7734ce288f8367e1bb143e90bb3f0512"

	req := event.MintRequest(testContract)
	require.NotNil(t, req)

	assert.Equal(t, ExternalRef(event, testContract), req.ExternalRef)
	assert.Equal(t, testRecipient, req.RecipientAddress)
	assert.Equal(t, testOther, req.TargetContract)
	assert.Equal(t, "ipfs://bafy/1.json", req.AssetRef)
	assert.Equal(t, "evt_1", req.Source.EventID)
	assert.Equal(t, int64(2500), req.Source.AmountTotal)
	assert.Equal(t, "usd", req.Source.Currency)

	event.TargetContract = ""
	assert.Empty(t, event.MintRequest(testContract).TargetContract)
}
