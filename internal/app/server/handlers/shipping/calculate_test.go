package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etquote"
	"github.com/ecomplus/app-pakman/internal/app/pkg/errorx"
	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
)

// calculatorStub 报价服务打桩
type calculatorStub struct {
	calculateFn func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error)
}

func (s *calculatorStub) Calculate(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
	return s.calculateFn(ctx, params, opts)
}

func performRequest(stub *calculatorStub, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	handler := NewShippingHandler(stub, logger.NewNop())

	router := gin.New()
	router.POST("/ecom/modules/calculate-shipping", handler.Calculate)

	req := httptest.NewRequest(http.MethodPost, "/ecom/modules/calculate-shipping", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCalculate_Success(t *testing.T) {
	threshold := 150.0
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			// 请求体转换校验：zip 透传、hidden_data 的 apikey 进入配置
			require.NotNil(t, params.To)
			assert.Equal(t, "01310-100", params.To.Zip)
			assert.Equal(t, "secret-key", opts.APIKey)

			return &etquote.Quote{
				FreeShippingFromValue: &threshold,
				Services: []*etquote.Service{
					{
						Label:       "Transportadora",
						Carrier:     etquote.CarrierName,
						ServiceName: etquote.ServiceName,
						ServiceCode: etquote.ServiceCode,
						Line: &etquote.Line{
							Price:               10.5,
							TotalPrice:          10.5,
							DeliveryDays:        5,
							WorkingDays:         true,
							PostingDeadlineDays: 3,
							Flags:               etquote.DefaultFlags(),
						},
					},
				},
			}, nil
		},
	}

	recorder := performRequest(stub, `{
		"params": {
			"to": {"zip": "01310-100"},
			"items": [{"quantity": 1, "price": 10}]
		},
		"application": {
			"hidden_data": {"apikey": "secret-key"}
		}
	}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 150.0, body["free_shipping_from_value"])

	services := body["shipping_services"].([]interface{})
	require.Len(t, services, 1)
	service := services[0].(map[string]interface{})
	assert.Equal(t, "pakman transportadora", service["carrier"])

	line := service["shipping_line"].(map[string]interface{})
	assert.Equal(t, 10.5, line["price"])
	delivery := line["delivery_time"].(map[string]interface{})
	assert.Equal(t, 5.0, delivery["days"])
}

func TestCalculate_PreviewOmitsThreshold(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			return &etquote.Quote{Services: []*etquote.Service{}}, nil
		},
	}

	recorder := performRequest(stub, `{"params": {}}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	// 未配置免邮时字段整个省略，shipping_services 仍为空数组
	assert.NotContains(t, recorder.Body.String(), "free_shipping_from_value")
	assert.Contains(t, recorder.Body.String(), `"shipping_services":[]`)
}

func TestCalculate_BusinessErrorPassthrough(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			return nil, errorx.NewAuthError()
		},
	}

	recorder := performRequest(stub, `{"params": {"to": {"zip": "01310-100"}}}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "CALCULATE_AUTH_ERR", body["error"])
	assert.Contains(t, body["message"], "Apikey unset")
}

func TestCalculate_EmptyCartStatus(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			return nil, errorx.NewEmptyCartError()
		},
	}

	recorder := performRequest(stub, `{"params": {"to": {"zip": "01310-100"}, "items": []}}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "CALCULATE_EMPTY_CART")
}

func TestCalculate_UnknownErrorWrapped(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			return nil, errors.New("something broke")
		},
	}

	recorder := performRequest(stub, `{"params": {"to": {"zip": "01310-100"}}}`)

	// 非业务错误统一包装成 CALCULATE_ERR
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "CALCULATE_ERR")
	assert.Contains(t, recorder.Body.String(), "something broke")
}

func TestCalculate_MalformedBody(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			t.Fatal("service should not be called on malformed body")
			return nil, nil
		},
	}

	recorder := performRequest(stub, `{"params": `)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "CALCULATE_PARAMS_ERR")
}

func TestCalculate_MissingParams(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			t.Fatal("service should not be called without params")
			return nil, nil
		},
	}

	recorder := performRequest(stub, `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "CALCULATE_PARAMS_ERR")
}

func TestCalculate_FlexibleZipRangeTypes(t *testing.T) {
	stub := &calculatorStub{
		calculateFn: func(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
			// 数字和字符串写法的邮编边界都要解析成功
			require.Len(t, opts.FreeShippingRules, 1)
			assert.Equal(t, "1000000", opts.FreeShippingRules[0].ZipRange.Min)
			assert.Equal(t, "05999999", opts.FreeShippingRules[0].ZipRange.Max)
			return &etquote.Quote{Services: []*etquote.Service{}}, nil
		},
	}

	recorder := performRequest(stub, `{
		"params": {},
		"application": {
			"data": {
				"free_shipping_rules": [
					{"zip_range": {"min": 1000000, "max": "05999999"}, "min_amount": 100}
				]
			}
		}
	}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
