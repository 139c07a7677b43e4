package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact(t *testing.T) {
	payload := fiber.Map{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Question about couponing",
		"message": "Where do I find digital coupons for my local store?",
	}

	t.Run("relays the message to the operator", func(t *testing.T) {
		sender := &fakeSender{ok: true}
		app, _ := newTestApp(t, sender)

		resp, raw := doJSON(t, app, http.MethodPost, "/api/contact", payload)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body subscribeResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Message sent successfully!", body.Message)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "owner@example.com", msg.To)
		assert.Equal(t, "Contact Form: Question about couponing", msg.Subject)
		assert.Contains(t, msg.Text, "jane@example.com")
	})

	t.Run("delivery failure is 500", func(t *testing.T) {
		app, _ := newTestApp(t, &fakeSender{ok: false})

		resp, raw := doJSON(t, app, http.MethodPost, "/api/contact", payload)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body subscribeResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Failed to send message. Please try again.", body.Message)
	})

	t.Run("short message is 400", func(t *testing.T) {
		app, _ := newTestApp(t, &fakeSender{ok: true})

		resp, _ := doJSON(t, app, http.MethodPost, "/api/contact", fiber.Map{
			"name":    "Jane",
			"email":   "jane@example.com",
			"subject": "Hi",
			"message": "Hey",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		app, _ := newTestApp(t, &fakeSender{ok: true})

		resp, _ := doJSON(t, app, http.MethodPost, "/api/contact", fiber.Map{
			"message": "A long enough message body here.",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
