// file: internals/middlewares/request_id_middleware_test.go
package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestRequestIDGeneratesIDAndDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(2 * time.Second))

	var (
		localID     string
		hasDeadline bool
	)
	app.Get("/", func(c *fiber.Ctx) error {
		localID, _ = c.Locals("reqid").(string)
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	headerID := resp.Header.Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("X-Request-ID header not set")
	}
	if localID != headerID {
		t.Fatalf("locals reqid %q does not match header %q", localID, headerID)
	}
	if !hasDeadline {
		t.Fatal("user context carries no deadline")
	}
}

func TestRequestIDKeepsCallerProvidedID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(2 * time.Second))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "caller-supplied-id" {
		t.Fatalf("caller id not preserved, got %q", got)
	}
}
