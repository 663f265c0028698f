package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "rental_backend/internal/infrastructure/config"
	"rental_backend/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges invoices through Mercado Pago. In mock mode it
// approves every request locally and echoes the payload back.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.Named("gateway")
	if cfg.Mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, now: time.Now}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Error("missing mercado pago access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), log: log, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("create success", zap.Any("provider_payment_id", resp.ID), zap.String("provider_status", resp.Status))

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
