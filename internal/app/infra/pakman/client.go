package pakman

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
	"github.com/ecomplus/app-pakman/internal/app/pkg/metric"
)

const quotationsPath = "/pak/v1/ePak/quotations"

// 出站调用结果分类（metric outcome 标签）
const (
	outcomeSuccess        = "success"
	outcomeBusinessError  = "business_error"
	outcomeProtocolError  = "protocol_error"
	outcomeTransportError = "transport_error"
)

// Client Pakman 报价客户端封装
// 单次请求单次尝试，重试策略由上游店面结账流程负责
type Client struct {
	baseURL         string
	httpClient      *http.Client
	previewTimeout  time.Duration
	checkoutTimeout time.Duration
	logger          logger.Logger
}

// NewClient 创建 Pakman 客户端
// 超时不设在 http.Client 上，由每次请求的 context 控制
func NewClient(baseURL string, previewTimeout, checkoutTimeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		previewTimeout:  previewTimeout,
		checkoutTimeout: checkoutTimeout,
		logger:          log,
	}
}

// Quote 请求运费报价
// 结账确认场景对延迟不敏感，允许等更久换一个更可靠的报价
func (c *Client) Quote(ctx context.Context, apiKey string, quotation *QuotationRequest, checkoutConfirmation bool) (*QuotationResponse, error) {
	timeout := c.previewTimeout
	if checkoutConfirmation {
		timeout = c.checkoutTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(quotation)
	if err != nil {
		return nil, &CarrierError{Err: err}
	}
	c.logger.Debugf(ctx, "sending quotation body: %s", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+quotationsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &CarrierError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metric.ObserveCarrier(time.Since(start), outcomeTransportError)
		return nil, &CarrierError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metric.ObserveCarrier(time.Since(start), outcomeTransportError)
		return nil, &CarrierError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusOK && len(body) > 0 {
		var result QuotationResponse
		if err := json.Unmarshal(body, &result); err == nil {
			metric.ObserveCarrier(time.Since(start), outcomeSuccess)
			return &result, nil
		}
		// 200 但响应体不是预期结构，按协议失败处理
	}

	return nil, c.classifyFailure(ctx, resp.StatusCode, body, time.Since(start))
}

// classifyFailure 区分承运商业务错误和协议异常
// 响应体带 data 字段的是承运商自己的拒绝消息，其余按协议失败处理
func (c *Client) classifyFailure(ctx context.Context, status int, body []byte, elapsed time.Duration) *CarrierError {
	carrierErr := &CarrierError{
		StatusCode: status,
		Message:    "invalid pakman quotation response",
	}

	var businessBody struct {
		Data string `json:"data"`
	}
	if len(body) > 0 && json.Unmarshal(body, &businessBody) == nil && businessBody.Data != "" {
		carrierErr.BusinessMessage = businessBody.Data
		metric.ObserveCarrier(elapsed, outcomeBusinessError)
		return carrierErr
	}

	c.logger.Warnf(ctx, "invalid pakman quotation response: status=%d body=%s", status, body)
	metric.ObserveCarrier(elapsed, outcomeProtocolError)
	return carrierErr
}
