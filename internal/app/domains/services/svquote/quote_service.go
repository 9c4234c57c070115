package svquote

import (
	"context"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etquote"
	"github.com/ecomplus/app-pakman/internal/app/domains/modules/mdcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/modules/mdfreeship"
	"github.com/ecomplus/app-pakman/internal/app/infra/pakman"
	"github.com/ecomplus/app-pakman/internal/app/pkg/errorx"
	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
	"github.com/ecomplus/app-pakman/internal/app/pkg/metric"
)

// CarrierGateway 承运商报价网关
// 窄接口：请求进、响应或错误出，核心逻辑不依赖真实网络
type CarrierGateway interface {
	Quote(ctx context.Context, apiKey string, quotation *pakman.QuotationRequest, checkoutConfirmation bool) (*pakman.QuotationResponse, error)
}

// QuoteService 运费计算服务，负责单次请求的完整管线编排
// 无状态：所有实体按请求构造、随响应丢弃
type QuoteService struct {
	carrier CarrierGateway
	logger  logger.Logger
}

// NewQuoteService 创建运费计算服务实例
func NewQuoteService(carrier CarrierGateway, log logger.Logger) *QuoteService {
	return &QuoteService{
		carrier: carrier,
		logger:  log,
	}
}

// Calculate 计算运费报价（完整业务流程）
// 1. 静态免邮门槛
// 2. 无收货地址：仅返回免邮预览，不调用承运商
// 3. 校验 apikey 已配置
// 4. 评估免邮规则
// 5. 校验购物车非空
// 6. 归一化购物车并组装承运商请求
// 7. 调用承运商
// 8. 映射报价或失败
func (s *QuoteService) Calculate(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error) {
	quote := &etquote.Quote{
		FreeShippingFromValue: mdfreeship.StaticThreshold(opts),
		Services:              []*etquote.Service{},
	}

	if params.To == nil {
		return quote, nil
	}

	if opts.APIKey == "" {
		return nil, errorx.NewAuthError()
	}

	destinationZip := params.To.DigitsZip()
	originZip := resolveOriginZip(params.From, opts)

	quote.FreeShippingFromValue = mdfreeship.Evaluate(opts, params.Items, destinationZip)
	observeFreeShipping(quote.FreeShippingFromValue)

	if len(params.Items) == 0 {
		return nil, errorx.NewEmptyCartError()
	}

	normalized := mdcart.Normalize(params.Items)
	quotation := buildQuotationRequest(destinationZip, normalized.Lines)
	s.logger.Debugf(ctx, "quoting %d unit lines: destination=%s subtotal=%.2f", len(quotation.Items), destinationZip, normalized.Subtotal)

	result, err := s.carrier.Quote(ctx, opts.APIKey, quotation, params.IsCheckoutConfirmation)
	if err != nil {
		calcErr := mapCarrierError(err)
		s.logger.Warnf(ctx, "pakman quotation failed: code=%s message=%s", calcErr.Code, calcErr.Message)
		return nil, calcErr
	}

	quote.Services = append(quote.Services, buildService(params, opts, originZip, result))
	return quote, nil
}

// resolveOriginZip 发货地邮编回退链：params.from → 商户配置 zip → 哨兵值
// 发货地只回显在响应里，不发给承运商（该集成是单发货地的）
func resolveOriginZip(from *etcart.Address, opts *etoptions.MerchantOptions) string {
	if from != nil {
		return from.DigitsZip()
	}
	if opts.Zip != "" {
		return etcart.OnlyDigits(opts.Zip)
	}
	return "00000000"
}

// buildQuotationRequest 组装承运商请求体
func buildQuotationRequest(destinationZip string, lines []*mdcart.UnitLine) *pakman.QuotationRequest {
	items := make([]*pakman.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, &pakman.Item{
			ProductValue: line.ValueCents,
			Dimension: pakman.ItemDimension{
				Height: line.HeightCm,
				Width:  line.WidthCm,
				Length: line.LengthCm,
				Weight: line.WeightGrams,
			},
		})
	}
	return &pakman.QuotationRequest{
		Address: pakman.Address{ZipCode: destinationZip},
		Items:   items,
	}
}

// observeFreeShipping 记录免邮判定结果
func observeFreeShipping(threshold *float64) {
	switch {
	case threshold == nil:
		metric.FreeShippingHitsTotal.WithLabelValues("none").Inc()
	case *threshold == 0:
		metric.FreeShippingHitsTotal.WithLabelValues("unconditional").Inc()
	default:
		metric.FreeShippingHitsTotal.WithLabelValues("threshold").Inc()
	}
}
