// internal/services/payment_service.go
package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"snaplens-backend/internal/config"
	"snaplens-backend/internal/models"
)

// PaymentService builds checkout URLs and processes signed webhook
// notifications into credit grants.
type PaymentService interface {
	BuildCheckoutURL(variantID, email string) string
	VerifySignature(rawBody []byte, signature string) bool
	HandleWebhook(ctx context.Context, rawBody []byte) error
}

type paymentService struct {
	creditsService CreditsService
	webhookSecret  string
	storeSubdomain string
	checkoutDomain string
	appURL         string
	variantCredits map[string]int
}

func NewPaymentService(cfg *config.Config, creditsService CreditsService) PaymentService {
	return &paymentService{
		creditsService: creditsService,
		webhookSecret:  cfg.Lemon.WebhookSecret,
		storeSubdomain: cfg.Lemon.StoreSubdomain,
		checkoutDomain: cfg.Lemon.CheckoutDomain,
		appURL:         cfg.Lemon.AppURL,
		// Plan identifier → fixed credit grant.
		variantCredits: map[string]int{
			cfg.Lemon.VariantSmallID:  20,
			cfg.Lemon.VariantMediumID: 45,
			cfg.Lemon.VariantLargeID:  70,
		},
	}
}

var uuidPattern = regexp.MustCompile(`(?i)[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`)

func (s *paymentService) BuildCheckoutURL(variantID, email string) string {
	domain := strings.TrimRight(strings.TrimSpace(s.checkoutDomain), "/")
	if domain == "" {
		domain = fmt.Sprintf("https://%s.lemonsqueezy.com", strings.TrimSpace(s.storeSubdomain))
	}

	// Checkout link UUIDs use the short buy path, numeric variant ids the
	// full checkout path.
	path := "/checkout/buy/" + url.PathEscape(variantID)
	if uuidPattern.MatchString(variantID) {
		path = "/buy/" + url.PathEscape(variantID)
	}

	origin := strings.TrimRight(s.appURL, "/")

	qs := url.Values{}
	qs.Set("checkout[email]", email)
	qs.Set("checkout[custom][user_email]", email)
	qs.Set("checkout[success_url]", origin+"/?payment=success")
	qs.Set("checkout[cancel_url]", origin+"/?payment=cancel")

	return domain + path + "?" + qs.Encode()
}

// VerifySignature checks the hex HMAC-SHA256 of the raw body against the
// header value with a timing-safe comparison. An unconfigured secret or a
// missing signature always fails.
func (s *paymentService) VerifySignature(rawBody []byte, signature string) bool {
	if s.webhookSecret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(rawBody)
	digest := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(digest), []byte(signature))
}

// HandleWebhook grants credits for completed purchases. Unknown plan ids and
// unrecognized event types are deliberate no-ops so the sender stops
// retrying.
func (s *paymentService) HandleWebhook(ctx context.Context, rawBody []byte) error {
	var event models.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return err
	}

	eventType := event.Type()
	email := event.Email()
	variantID := event.Data.Attributes.VariantID.String()
	creditsToAdd := s.variantCredits[variantID]

	if eventType != "order_created" && eventType != "subscription_payment_success" {
		zap.L().Debug("Ignoring webhook event", zap.String("type", eventType))
		return nil
	}
	if email == "" || creditsToAdd <= 0 {
		zap.L().Debug("Webhook event has no mapped grant",
			zap.String("variant_id", variantID))
		return nil
	}

	if _, err := s.creditsService.Grant(ctx, email, creditsToAdd); err != nil {
		return err
	}

	zap.L().Info("Credits granted from webhook",
		zap.String("variant_id", variantID),
		zap.Int("credits", creditsToAdd))
	return nil
}
